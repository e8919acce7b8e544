// internal/applications/service.go
package applications

import (
	"context"
	"time"

	"github.com/google/uuid"

	"jobboard-api/internal/common/errors"
	"jobboard-api/internal/common/logger"
	"jobboard-api/internal/models"
)

// statusTransitions maps each status onto the statuses a reviewer may
// advance it to. Rejected and hired are terminal.
var statusTransitions = map[string][]string{
	models.ApplicationStatusPending:     {models.ApplicationStatusReviewed, models.ApplicationStatusShortlisted, models.ApplicationStatusRejected},
	models.ApplicationStatusReviewed:    {models.ApplicationStatusShortlisted, models.ApplicationStatusRejected, models.ApplicationStatusHired},
	models.ApplicationStatusShortlisted: {models.ApplicationStatusRejected, models.ApplicationStatusHired},
}

// JobCatalog resolves a posting for display, including seed postings.
type JobCatalog interface {
	Get(ctx context.Context, id string) (*models.JobPosting, error)
}

// Notifier delivers best-effort candidate notifications. Errors are logged
// and never propagate to the request that triggered them.
type Notifier interface {
	ApplicationReceived(ctx context.Context, app *models.Application, jobTitle string) error
	StatusChanged(ctx context.Context, app *models.Application, newStatus string) error
}

// Service owns application submission and review.
type Service struct {
	repo     models.ApplicationRepository
	jobRepo  models.JobRepository
	catalog  JobCatalog
	notifier Notifier
	log      logger.Logger
	now      func() time.Time
}

// NewService creates an application service. notifier may be nil when
// notifications are disabled.
func NewService(repo models.ApplicationRepository, jobRepo models.JobRepository, catalog JobCatalog, notifier Notifier, log logger.Logger) *Service {
	return &Service{
		repo:     repo,
		jobRepo:  jobRepo,
		catalog:  catalog,
		notifier: notifier,
		log:      log,
		now:      time.Now,
	}
}

// Submit validates and stores a candidate's application with status
// pending. One application per (candidate, job); a confirmation email goes
// out best-effort.
func (s *Service) Submit(ctx context.Context, candidateID string, form *models.ApplicationForm) (*models.Application, error) {
	result := ValidateForm(form)
	if !result.Valid() {
		return nil, errors.New(errors.ErrCodeApplicationValidationFailed, "application validation failed").
			WithMetadata(map[string]interface{}{"fieldErrors": result.FieldMap()})
	}

	posting, err := s.catalog.Get(ctx, form.JobID)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, candidateID, form.JobID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryExecutionFailed, "duplicate check failed", err)
	}
	if exists {
		return nil, errors.New(errors.ErrCodeDuplicateApplication, "you have already applied to this job").
			WithMetadata(map[string]interface{}{"jobId": form.JobID})
	}

	now := s.now().UTC()
	app := &models.Application{
		ID:           uuid.NewString(),
		CandidateID:  candidateID,
		JobID:        form.JobID,
		FullName:     form.FullName,
		Email:        form.Email,
		Phone:        form.Phone,
		Portfolio:    form.Portfolio,
		LinkedIn:     form.LinkedIn,
		CoverLetter:  form.CoverLetter,
		Experience:   form.Experience,
		Skills:       form.Skills,
		Availability: form.Availability,
		Status:       models.ApplicationStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if form.Resume != nil {
		app.ResumeURL = form.Resume.URL
	}

	if err := s.repo.Create(ctx, app); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDatabaseInsertFailed, "failed to store application", err)
	}

	s.log.Info("application submitted", map[string]interface{}{
		"applicationId": app.ID,
		"candidateId":   candidateID,
		"jobId":         form.JobID,
	})

	if s.notifier != nil {
		if err := s.notifier.ApplicationReceived(ctx, app, posting.Title); err != nil {
			s.log.Warn("confirmation notification failed", map[string]interface{}{
				"applicationId": app.ID,
				"error":         err.Error(),
			})
		}
	}

	return app, nil
}

// ListForCandidate returns a candidate's submissions with their postings,
// newest first.
func (s *Service) ListForCandidate(ctx context.Context, candidateID string) ([]models.ApplicationWithJob, error) {
	apps, err := s.repo.ListByCandidate(ctx, candidateID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryExecutionFailed, "failed to load applications", err)
	}
	return apps, nil
}

// ListForEmployer returns every submission against the employer's own
// postings.
func (s *Service) ListForEmployer(ctx context.Context, employerID string) ([]models.ApplicationWithJob, error) {
	apps, err := s.repo.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryExecutionFailed, "failed to load applications", err)
	}
	return apps, nil
}

// UpdateStatus advances an application's status on behalf of the employer
// owning its posting. The transition must follow the review ladder.
func (s *Service) UpdateStatus(ctx context.Context, employerID, applicationID, newStatus string) (*models.Application, error) {
	if !validStatus(newStatus) {
		return nil, errors.New(errors.ErrCodeInvalidStatusTransition, "unknown application status").
			WithMetadata(map[string]interface{}{"status": newStatus})
	}

	app, err := s.repo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryExecutionFailed, "failed to load application", err)
	}
	if app == nil {
		return nil, errors.New(errors.ErrCodeApplicationNotFound, "application not found").
			WithMetadata(map[string]interface{}{"applicationId": applicationID})
	}

	job, err := s.jobRepo.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryExecutionFailed, "failed to load posting", err)
	}
	if job == nil || job.EmployerID != employerID {
		return nil, errors.New(errors.ErrCodeForbiddenRole, "application belongs to another employer's posting")
	}

	if !transitionAllowed(app.Status, newStatus) {
		return nil, errors.New(errors.ErrCodeInvalidStatusTransition, "status transition not allowed").
			WithMetadata(map[string]interface{}{"from": app.Status, "to": newStatus})
	}

	if err := s.repo.UpdateStatus(ctx, applicationID, newStatus); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryExecutionFailed, "failed to update status", err)
	}

	app.Status = newStatus
	app.UpdatedAt = s.now().UTC()

	s.log.Info("application status updated", map[string]interface{}{
		"applicationId": applicationID,
		"status":        newStatus,
	})

	if s.notifier != nil {
		if err := s.notifier.StatusChanged(ctx, app, newStatus); err != nil {
			s.log.Warn("status notification failed", map[string]interface{}{
				"applicationId": applicationID,
				"error":         err.Error(),
			})
		}
	}

	return app, nil
}

func validStatus(status string) bool {
	for _, s := range models.ApplicationStatuses {
		if s == status {
			return true
		}
	}
	return false
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
