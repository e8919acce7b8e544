// internal/applications/service_test.go
package applications

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "jobboard-api/internal/common/errors"
	"jobboard-api/internal/common/logger"
	"jobboard-api/internal/models"
)

type stubAppRepo struct {
	apps      map[string]*models.Application
	exists    bool
	existsErr error
	created   []*models.Application
	updated   map[string]string
}

func newStubAppRepo() *stubAppRepo {
	return &stubAppRepo{
		apps:    make(map[string]*models.Application),
		updated: make(map[string]string),
	}
}

func (s *stubAppRepo) Create(ctx context.Context, app *models.Application) error {
	s.created = append(s.created, app)
	return nil
}

func (s *stubAppRepo) Exists(ctx context.Context, candidateID, jobID string) (bool, error) {
	return s.exists, s.existsErr
}

func (s *stubAppRepo) ListByCandidate(ctx context.Context, candidateID string) ([]models.ApplicationWithJob, error) {
	return nil, nil
}

func (s *stubAppRepo) ListByEmployer(ctx context.Context, employerID string) ([]models.ApplicationWithJob, error) {
	return nil, nil
}

func (s *stubAppRepo) GetByID(ctx context.Context, id string) (*models.Application, error) {
	return s.apps[id], nil
}

func (s *stubAppRepo) UpdateStatus(ctx context.Context, id, status string) error {
	s.updated[id] = status
	return nil
}

type stubCatalog struct {
	postings map[string]*models.JobPosting
}

func (s *stubCatalog) Get(ctx context.Context, id string) (*models.JobPosting, error) {
	if p, ok := s.postings[id]; ok {
		return p, nil
	}
	return nil, stderrors.New(stderrors.ErrCodeJobNotFound, "job posting not found")
}

type stubJobRepo struct {
	jobs map[string]*models.RawJob
}

func (s *stubJobRepo) ListActive(ctx context.Context, limit int) ([]models.RawJob, error) {
	return nil, nil
}

func (s *stubJobRepo) GetByID(ctx context.Context, id string) (*models.RawJob, error) {
	return s.jobs[id], nil
}

func (s *stubJobRepo) ListByEmployer(ctx context.Context, employerID string) ([]models.RawJob, error) {
	return nil, nil
}

func (s *stubJobRepo) Create(ctx context.Context, job *models.RawJob) error { return nil }

type stubNotifier struct {
	received []string
	statuses []string
	err      error
}

func (s *stubNotifier) ApplicationReceived(ctx context.Context, app *models.Application, jobTitle string) error {
	if s.err != nil {
		return s.err
	}
	s.received = append(s.received, app.ID)
	return nil
}

func (s *stubNotifier) StatusChanged(ctx context.Context, app *models.Application, newStatus string) error {
	if s.err != nil {
		return s.err
	}
	s.statuses = append(s.statuses, newStatus)
	return nil
}

func createTestService(t *testing.T, repo *stubAppRepo, jobRepo *stubJobRepo, notifier *stubNotifier) *Service {
	t.Helper()
	catalog := &stubCatalog{postings: map[string]*models.JobPosting{
		"job-1": {ID: "job-1", Title: "Backend Engineer"},
	}}
	svc := NewService(repo, jobRepo, catalog, notifier, logger.NewTestLogger(t))
	svc.now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("valid submission stores pending and notifies", func(t *testing.T) {
		repo := newStubAppRepo()
		notifier := &stubNotifier{}
		svc := createTestService(t, repo, &stubJobRepo{}, notifier)

		app, err := svc.Submit(ctx, "cand-1", createValidForm())
		require.NoError(t, err)

		require.Len(t, repo.created, 1)
		assert.Equal(t, models.ApplicationStatusPending, app.Status)
		assert.Equal(t, "cand-1", app.CandidateID)
		assert.NotEmpty(t, app.ID)
		assert.Equal(t, []string{app.ID}, notifier.received)
	})

	t.Run("validation failure blocks submission", func(t *testing.T) {
		repo := newStubAppRepo()
		svc := createTestService(t, repo, &stubJobRepo{}, nil)

		form := createValidForm()
		form.Email = "broken"
		_, err := svc.Submit(ctx, "cand-1", form)

		var se *stderrors.StandardError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, stderrors.ErrCodeApplicationValidationFailed, se.Code)
		assert.Empty(t, repo.created)
	})

	t.Run("unknown job rejected", func(t *testing.T) {
		svc := createTestService(t, newStubAppRepo(), &stubJobRepo{}, nil)

		form := createValidForm()
		form.JobID = "missing"
		_, err := svc.Submit(ctx, "cand-1", form)

		var se *stderrors.StandardError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, stderrors.ErrCodeJobNotFound, se.Code)
	})

	t.Run("duplicate application rejected", func(t *testing.T) {
		repo := newStubAppRepo()
		repo.exists = true
		svc := createTestService(t, repo, &stubJobRepo{}, nil)

		_, err := svc.Submit(ctx, "cand-1", createValidForm())

		var se *stderrors.StandardError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, stderrors.ErrCodeDuplicateApplication, se.Code)
		assert.Empty(t, repo.created)
	})

	t.Run("notification failure does not fail the submission", func(t *testing.T) {
		repo := newStubAppRepo()
		svc := createTestService(t, repo, &stubJobRepo{}, &stubNotifier{err: assert.AnError})

		_, err := svc.Submit(ctx, "cand-1", createValidForm())
		require.NoError(t, err)
		assert.Len(t, repo.created, 1)
	})
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, currentStatus string) (*Service, *stubAppRepo, *stubNotifier) {
		repo := newStubAppRepo()
		repo.apps["app-1"] = &models.Application{
			ID: "app-1", JobID: "job-1", CandidateID: "cand-1",
			Status: currentStatus,
		}
		jobRepo := &stubJobRepo{jobs: map[string]*models.RawJob{
			"job-1": {ID: "job-1", EmployerID: "emp-1"},
		}}
		notifier := &stubNotifier{}
		return createTestService(t, repo, jobRepo, notifier), repo, notifier
	}

	t.Run("pending to reviewed", func(t *testing.T) {
		svc, repo, notifier := setup(t, models.ApplicationStatusPending)

		app, err := svc.UpdateStatus(ctx, "emp-1", "app-1", models.ApplicationStatusReviewed)
		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusReviewed, app.Status)
		assert.Equal(t, models.ApplicationStatusReviewed, repo.updated["app-1"])
		assert.Equal(t, []string{models.ApplicationStatusReviewed}, notifier.statuses)
	})

	t.Run("terminal status cannot advance", func(t *testing.T) {
		svc, _, _ := setup(t, models.ApplicationStatusHired)

		_, err := svc.UpdateStatus(ctx, "emp-1", "app-1", models.ApplicationStatusReviewed)
		var se *stderrors.StandardError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, stderrors.ErrCodeInvalidStatusTransition, se.Code)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		svc, _, _ := setup(t, models.ApplicationStatusPending)

		_, err := svc.UpdateStatus(ctx, "emp-1", "app-1", "archived")
		var se *stderrors.StandardError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, stderrors.ErrCodeInvalidStatusTransition, se.Code)
	})

	t.Run("another employer's posting is forbidden", func(t *testing.T) {
		svc, repo, _ := setup(t, models.ApplicationStatusPending)

		_, err := svc.UpdateStatus(ctx, "emp-2", "app-1", models.ApplicationStatusReviewed)
		var se *stderrors.StandardError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, stderrors.ErrCodeForbiddenRole, se.Code)
		assert.Empty(t, repo.updated)
	})

	t.Run("missing application", func(t *testing.T) {
		svc, _, _ := setup(t, models.ApplicationStatusPending)

		_, err := svc.UpdateStatus(ctx, "emp-1", "nope", models.ApplicationStatusReviewed)
		var se *stderrors.StandardError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, stderrors.ErrCodeApplicationNotFound, se.Code)
	})
}
