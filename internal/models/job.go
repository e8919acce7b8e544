// internal/models/job.go
package models

import (
	"context"
	"time"
)

// Job type display labels. Raw records carry lowercase codes; the
// normalizer maps them onto this vocabulary.
const (
	JobTypeFullTime   = "Full-time"
	JobTypePartTime   = "Part-time"
	JobTypeRemote     = "Remote"
	JobTypeContract   = "Contract"
	JobTypeInternship = "Internship"
	JobTypeHybrid     = "Hybrid"
)

// JobTypes is the fixed display vocabulary in filter-sidebar order.
var JobTypes = []string{
	JobTypeFullTime, JobTypePartTime, JobTypeRemote,
	JobTypeContract, JobTypeInternship, JobTypeHybrid,
}

// JobTypeCodes is the vocabulary accepted on employer submissions.
var JobTypeCodes = []string{"full-time", "part-time", "remote", "contract", "internship"}

const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

// RawJob is a job row as stored, before display normalization. Salary
// bounds and logo are optional; skills/requirements/benefits may be nil.
type RawJob struct {
	ID              string    `json:"id" db:"id"`
	EmployerID      string    `json:"employerId,omitempty" db:"employer_id"`
	Title           string    `json:"title" db:"title"`
	Company         string    `json:"company" db:"company"`
	CompanyLogo     string    `json:"companyLogo,omitempty" db:"company_logo"`
	Location        string    `json:"location" db:"location"`
	JobType         string    `json:"jobType" db:"job_type"`
	SalaryMin       *int      `json:"salaryMin,omitempty" db:"salary_min"`
	SalaryMax       *int      `json:"salaryMax,omitempty" db:"salary_max"`
	ExperienceLevel string    `json:"experienceLevel,omitempty" db:"experience_level"`
	Description     string    `json:"description" db:"description"`
	Skills          []string  `json:"skills" db:"skills"`
	Requirements    []string  `json:"requirements" db:"requirements"`
	Benefits        []string  `json:"benefits" db:"benefits"`
	Status          string    `json:"status" db:"status"`
	Featured        bool      `json:"featured" db:"featured"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

// JobPosting is the normalized display shape every consumer sees,
// regardless of whether the record came from the database or the seed
// list. Identity is always a string here.
type JobPosting struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Logo         string   `json:"logo"`
	Location     string   `json:"location"`
	Type         string   `json:"type"`
	Salary       string   `json:"salary"`
	Posted       string   `json:"posted"`
	Featured     bool     `json:"featured,omitempty"`
	Skills       []string `json:"skills"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
	About        string   `json:"about"`
}

// JobRepository defines job posting data access.
type JobRepository interface {
	ListActive(ctx context.Context, limit int) ([]RawJob, error)
	GetByID(ctx context.Context, id string) (*RawJob, error)
	ListByEmployer(ctx context.Context, employerID string) ([]RawJob, error)
	Create(ctx context.Context, job *RawJob) error
}
