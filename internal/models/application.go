// internal/models/application.go
package models

import (
	"context"
	"time"
)

// Application statuses. Reviewers advance pending applications; the
// candidate side only ever creates them.
const (
	ApplicationStatusPending     = "pending"
	ApplicationStatusReviewed    = "reviewed"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
	ApplicationStatusHired       = "hired"
)

// ApplicationStatuses is the full status vocabulary.
var ApplicationStatuses = []string{
	ApplicationStatusPending,
	ApplicationStatusReviewed,
	ApplicationStatusShortlisted,
	ApplicationStatusRejected,
	ApplicationStatusHired,
}

// ExperienceBuckets is the self-declared experience vocabulary on the
// application form.
var ExperienceBuckets = []string{"0-1 years", "1-3 years", "3-5 years", "5-10 years", "10+ years"}

// AvailabilityBuckets is the start-availability vocabulary on the form.
var AvailabilityBuckets = []string{"Immediately", "2 weeks", "1 month", "2+ months"}

// ApplicationForm is the candidate-entered field set, validated as a whole
// on every submit.
type ApplicationForm struct {
	JobID        string   `json:"jobId"`
	FullName     string   `json:"fullName"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Portfolio    string   `json:"portfolio,omitempty"`
	LinkedIn     string   `json:"linkedin,omitempty"`
	CoverLetter  string   `json:"coverLetter"`
	Experience   string   `json:"experience"`
	Skills       []string `json:"skills"`
	Availability string   `json:"availability"`
	Resume       *ResumeRef `json:"resume"`
}

// ResumeRef describes the uploaded resume file by reference; the file body
// itself lives in object storage owned by the upload path.
type ResumeRef struct {
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	SizeBytes   int64  `json:"sizeBytes"`
	URL         string `json:"url,omitempty"`
}

// Application is a stored submission against one job posting.
type Application struct {
	ID           string    `json:"id" db:"id"`
	CandidateID  string    `json:"candidateId" db:"candidate_id"`
	JobID        string    `json:"jobId" db:"job_id"`
	FullName     string    `json:"fullName" db:"full_name"`
	Email        string    `json:"email" db:"email"`
	Phone        string    `json:"phone" db:"phone"`
	ResumeURL    string    `json:"resumeUrl,omitempty" db:"resume_url"`
	Portfolio    string    `json:"portfolio,omitempty" db:"portfolio"`
	LinkedIn     string    `json:"linkedin,omitempty" db:"linkedin"`
	CoverLetter  string    `json:"coverLetter" db:"cover_letter"`
	Experience   string    `json:"experience" db:"experience"`
	Skills       []string  `json:"skills" db:"skills"`
	Availability string    `json:"availability" db:"availability"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// ApplicationWithJob joins a submission with its referenced posting for
// dashboard reads.
type ApplicationWithJob struct {
	Application
	Job *RawJob `json:"job,omitempty"`
}

// ApplicationRepository defines application data access.
type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	Exists(ctx context.Context, candidateID, jobID string) (bool, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]ApplicationWithJob, error)
	ListByEmployer(ctx context.Context, employerID string) ([]ApplicationWithJob, error)
	GetByID(ctx context.Context, id string) (*Application, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
