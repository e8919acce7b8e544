// internal/store/applications.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"jobboard-api/internal/models"
)

// ApplicationStore is the Postgres-backed application repository.
type ApplicationStore struct {
	db *sql.DB
}

func NewApplicationStore(db *sql.DB) *ApplicationStore {
	return &ApplicationStore{db: db}
}

const applicationColumns = `
	a.id, a.candidate_id, a.job_id, a.full_name, a.email, a.phone,
	COALESCE(a.resume_url, ''), COALESCE(a.portfolio, ''), COALESCE(a.linkedin, ''),
	a.cover_letter, a.experience, a.skills, a.availability, a.status,
	a.created_at, a.updated_at`

// Create inserts a new application row.
func (s *ApplicationStore) Create(ctx context.Context, app *models.Application) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO applications (
			id, candidate_id, job_id, full_name, email, phone, resume_url,
			portfolio, linkedin, cover_letter, experience, skills, availability,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $15)`,
		app.ID, app.CandidateID, app.JobID, app.FullName, app.Email, app.Phone,
		nullable(app.ResumeURL), nullable(app.Portfolio), nullable(app.LinkedIn),
		app.CoverLetter, app.Experience, pq.Array(orEmptySlice(app.Skills)),
		app.Availability, app.Status, app.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: insert application: %v", ErrInsertFailed, err)
	}
	return nil
}

// Exists reports whether the candidate already applied to the job.
func (s *ApplicationStore) Exists(ctx context.Context, candidateID, jobID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM applications
			WHERE candidate_id = $1 AND job_id = $2
		)`, candidateID, jobID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: duplicate check failed: %v", ErrQueryFailed, err)
	}
	return exists, nil
}

// ListByCandidate returns a candidate's submissions with their postings,
// newest first. Applications against seed postings come back without a
// joined job.
func (s *ApplicationStore) ListByCandidate(ctx context.Context, candidateID string) ([]models.ApplicationWithJob, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+applicationColumns+`
		FROM applications a
		WHERE a.candidate_id = $1
		ORDER BY a.created_at DESC`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("%w: list candidate applications: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	apps, err := s.collect(rows)
	if err != nil {
		return nil, err
	}
	return s.attachJobs(ctx, apps)
}

// ListByEmployer returns every submission against the employer's postings,
// newest first.
func (s *ApplicationStore) ListByEmployer(ctx context.Context, employerID string) ([]models.ApplicationWithJob, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+applicationColumns+`
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.employer_id = $1
		ORDER BY a.created_at DESC`, employerID)
	if err != nil {
		return nil, fmt.Errorf("%w: list employer applications: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	apps, err := s.collect(rows)
	if err != nil {
		return nil, err
	}
	return s.attachJobs(ctx, apps)
}

// GetByID returns one application, or (nil, nil) when no row matches.
func (s *ApplicationStore) GetByID(ctx context.Context, id string) (*models.Application, error) {
	app, err := scanApplication(s.db.QueryRowContext(ctx, `
		SELECT `+applicationColumns+`
		FROM applications a
		WHERE a.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get application %s: %v", ErrQueryFailed, id, err)
	}
	return app, nil
}

// UpdateStatus moves an application to a new status and bumps updated_at.
func (s *ApplicationStore) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE applications
		SET status = $1, updated_at = $2
		WHERE id = $3`, status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("%w: update application status: %v", ErrQueryFailed, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: application %s not found", ErrQueryFailed, id)
	}
	return nil
}

func scanApplication(row interface{ Scan(...interface{}) error }) (*models.Application, error) {
	var app models.Application
	err := row.Scan(
		&app.ID, &app.CandidateID, &app.JobID, &app.FullName, &app.Email, &app.Phone,
		&app.ResumeURL, &app.Portfolio, &app.LinkedIn,
		&app.CoverLetter, &app.Experience, pq.Array(&app.Skills), &app.Availability,
		&app.Status, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *ApplicationStore) collect(rows *sql.Rows) ([]models.ApplicationWithJob, error) {
	var apps []models.ApplicationWithJob
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan application row: %v", ErrQueryFailed, err)
		}
		apps = append(apps, models.ApplicationWithJob{Application: *app})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate application rows: %v", ErrQueryFailed, err)
	}
	return apps, nil
}

// attachJobs fills in the referenced postings with a single query. Job ids
// pointing at seed postings have no row and stay nil.
func (s *ApplicationStore) attachJobs(ctx context.Context, apps []models.ApplicationWithJob) ([]models.ApplicationWithJob, error) {
	if len(apps) == 0 {
		return apps, nil
	}

	ids := make([]string, 0, len(apps))
	seen := make(map[string]bool)
	for _, a := range apps {
		if !seen[a.JobID] {
			ids = append(ids, a.JobID)
			seen[a.JobID] = true
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+jobColumns+`
		FROM jobs
		WHERE id::text = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("%w: load referenced jobs: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	jobs, err := collectJobs(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.RawJob, len(jobs))
	for i := range jobs {
		byID[jobs[i].ID] = &jobs[i]
	}
	for i := range apps {
		apps[i].Job = byID[apps[i].JobID]
	}
	return apps, nil
}
