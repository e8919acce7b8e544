// internal/applications/validator.go
package applications

import (
	"strings"

	"jobboard-api/internal/common/validation"
	"jobboard-api/internal/models"
)

const maxResumeBytes = 5 * 1024 * 1024

var allowedResumeTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ValidateForm checks a candidate submission field by field. Validation is
// all-or-nothing per attempt: the result carries every failing field, and
// submission is blocked while any error is present.
func ValidateForm(form *models.ApplicationForm) *validation.Result {
	r := &validation.Result{}

	r.Required("fullName", form.FullName, "Full name is required")

	if strings.TrimSpace(form.Email) == "" {
		r.Add("email", "Email is required", "REQUIRED_FIELD_MISSING")
	} else {
		r.Email("email", form.Email)
	}

	r.Required("phone", form.Phone, "Phone number is required")

	validateResume(r, form.Resume)

	r.Required("coverLetter", form.CoverLetter, "Cover letter is required")

	r.Required("experience", form.Experience, "Experience level is required")
	r.OneOf("experience", form.Experience, models.ExperienceBuckets)

	if len(form.Skills) == 0 {
		r.Add("skills", "At least one skill is required", "REQUIRED_FIELD_MISSING")
	}

	r.Required("availability", form.Availability, "Availability is required")
	r.OneOf("availability", form.Availability, models.AvailabilityBuckets)

	return r
}

func validateResume(r *validation.Result, resume *models.ResumeRef) {
	if resume == nil || strings.TrimSpace(resume.FileName) == "" {
		r.Add("resume", "Resume is required", "REQUIRED_FIELD_MISSING")
		return
	}

	if resume.SizeBytes > maxResumeBytes {
		r.Add("resume", "File size must be less than 5MB", "FILE_TOO_LARGE")
		return
	}

	for _, allowed := range allowedResumeTypes {
		if resume.ContentType == allowed {
			return
		}
	}
	r.Add("resume", "Only PDF and DOC files are allowed", "UNSUPPORTED_FILE_TYPE")
}
