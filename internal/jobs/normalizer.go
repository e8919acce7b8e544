// internal/jobs/normalizer.go
package jobs

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"jobboard-api/internal/models"
)

// typeLabels maps stored job_type codes onto the display vocabulary.
var typeLabels = map[string]string{
	"full-time":  models.JobTypeFullTime,
	"part-time":  models.JobTypePartTime,
	"remote":     models.JobTypeRemote,
	"contract":   models.JobTypeContract,
	"internship": models.JobTypeInternship,
	"hybrid":     models.JobTypeHybrid,
}

// MapJobType resolves a raw job_type code to its display label. Unknown or
// missing codes default to Full-time.
func MapJobType(code string) string {
	if label, ok := typeLabels[strings.ToLower(strings.TrimSpace(code))]; ok {
		return label
	}
	return models.JobTypeFullTime
}

// FormatSalary renders optional dollar bounds as the display string.
// Both bounds -> "$Xk - $Yk", min only -> "$Xk+", max only -> "Up to $Yk",
// neither -> "Competitive".
func FormatSalary(min, max *int) string {
	k := func(v int) int { return int(math.Round(float64(v) / 1000.0)) }

	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("$%dk - $%dk", k(*min), k(*max))
	case min != nil:
		return fmt.Sprintf("$%dk+", k(*min))
	case max != nil:
		return fmt.Sprintf("Up to $%dk", k(*max))
	default:
		return "Competitive"
	}
}

// FormatPosted buckets the age of a posting into the relative display
// string. A creation time in the future reads as "Today".
func FormatPosted(createdAt, now time.Time) string {
	diffDays := int(now.Sub(createdAt).Hours() / 24)
	if diffDays < 0 {
		diffDays = 0
	}

	switch {
	case diffDays == 0:
		return "Today"
	case diffDays == 1:
		return "1 day ago"
	case diffDays < 7:
		return fmt.Sprintf("%d days ago", diffDays)
	case diffDays < 14:
		return "1 week ago"
	case diffDays < 30:
		return fmt.Sprintf("%d weeks ago", diffDays/7)
	case diffDays < 60:
		return "1 month ago"
	default:
		return fmt.Sprintf("%d months ago", diffDays/30)
	}
}

// PostedDays converts a posted display string back to an approximate day
// count, the inverse of FormatPosted at bucket granularity. Unrecognized
// strings count as 0 (today).
func PostedDays(posted string) int {
	p := strings.ToLower(posted)
	n := leadingInt(p)

	switch {
	case strings.Contains(p, "today"):
		return 0
	case strings.Contains(p, "day"):
		return n
	case strings.Contains(p, "week"):
		return n * 7
	case strings.Contains(p, "month"):
		return n * 30
	default:
		return 0
	}
}

func leadingInt(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0
	}
	return n
}

// Normalize maps a stored job row into the display shape. Every field is
// populated or defaulted; absent optional fields never produce an error.
func Normalize(raw *models.RawJob, now time.Time) models.JobPosting {
	about := raw.Description

	return models.JobPosting{
		ID:           raw.ID,
		Title:        raw.Title,
		Company:      raw.Company,
		Logo:         raw.CompanyLogo,
		Location:     raw.Location,
		Type:         MapJobType(raw.JobType),
		Salary:       FormatSalary(raw.SalaryMin, raw.SalaryMax),
		Posted:       FormatPosted(raw.CreatedAt, now),
		Featured:     raw.Featured,
		Skills:       orEmpty(raw.Skills),
		Description:  raw.Description,
		Requirements: orEmpty(raw.Requirements),
		Benefits:     orEmpty(raw.Benefits),
		About:        about,
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
