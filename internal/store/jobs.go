// internal/store/jobs.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"jobboard-api/internal/models"
)

var (
	ErrQueryFailed  = errors.New("QUERY_EXECUTION_FAILED")
	ErrInsertFailed = errors.New("DATABASE_INSERT_FAILED")
	ErrDuplicate    = errors.New("DUPLICATE_RECORD")
)

// JobStore is the Postgres-backed job posting repository.
type JobStore struct {
	db *sql.DB
}

func NewJobStore(db *sql.DB) *JobStore {
	return &JobStore{db: db}
}

const jobColumns = `
	id, COALESCE(employer_id::text, ''), title, company, COALESCE(company_logo, ''),
	location, job_type, salary_min, salary_max, COALESCE(experience_level, ''),
	description, skills, requirements, benefits, status, featured, created_at`

func scanJob(row interface{ Scan(...interface{}) error }) (*models.RawJob, error) {
	var job models.RawJob
	var salaryMin, salaryMax sql.NullInt64

	err := row.Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Company, &job.CompanyLogo,
		&job.Location, &job.JobType, &salaryMin, &salaryMax, &job.ExperienceLevel,
		&job.Description, pq.Array(&job.Skills), pq.Array(&job.Requirements),
		pq.Array(&job.Benefits), &job.Status, &job.Featured, &job.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if salaryMin.Valid {
		v := int(salaryMin.Int64)
		job.SalaryMin = &v
	}
	if salaryMax.Valid {
		v := int(salaryMax.Int64)
		job.SalaryMax = &v
	}
	return &job, nil
}

// ListActive returns active postings, newest first.
func (s *JobStore) ListActive(ctx context.Context, limit int) ([]models.RawJob, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE status = $1
		ORDER BY featured DESC, created_at DESC
		LIMIT $2`, models.JobStatusActive, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: list active jobs: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// GetByID returns one posting, or (nil, nil) when no row matches.
func (s *JobStore) GetByID(ctx context.Context, id string) (*models.RawJob, error) {
	job, err := scanJob(s.db.QueryRowContext(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get job %s: %v", ErrQueryFailed, id, err)
	}
	return job, nil
}

// ListByEmployer returns all of an employer's postings regardless of status.
func (s *JobStore) ListByEmployer(ctx context.Context, employerID string) ([]models.RawJob, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE employer_id = $1
		ORDER BY created_at DESC`, employerID)
	if err != nil {
		return nil, fmt.Errorf("%w: list employer jobs: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	return collectJobs(rows)
}

// Create inserts a new posting row.
func (s *JobStore) Create(ctx context.Context, job *models.RawJob) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO jobs (
			id, employer_id, title, company, company_logo, location, job_type,
			salary_min, salary_max, experience_level, description,
			skills, requirements, benefits, status, featured, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		job.ID, job.EmployerID, job.Title, job.Company, nullable(job.CompanyLogo),
		job.Location, job.JobType, nullableInt(job.SalaryMin), nullableInt(job.SalaryMax),
		nullable(job.ExperienceLevel), job.Description,
		pq.Array(orEmptySlice(job.Skills)), pq.Array(orEmptySlice(job.Requirements)),
		pq.Array(orEmptySlice(job.Benefits)), job.Status, job.Featured, job.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: insert job: %v", ErrInsertFailed, err)
	}
	return nil
}

func collectJobs(rows *sql.Rows) ([]models.RawJob, error) {
	var jobs []models.RawJob
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan job row: %v", ErrQueryFailed, err)
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate job rows: %v", ErrQueryFailed, err)
	}
	return jobs, nil
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullableInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func orEmptySlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
