// internal/jobs/service.go
package jobs

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"jobboard-api/internal/common/errors"
	"jobboard-api/internal/common/logger"
	"jobboard-api/internal/common/validation"
	"jobboard-api/internal/models"
)

// listLimit caps a single catalog read.
const listLimit = 500

// Indexer pushes postings into the search index. Indexing is best-effort:
// a failed index write never fails the request that created the posting.
type Indexer interface {
	IndexJob(ctx context.Context, posting models.JobPosting) error
}

// Searcher serves query-bearing catalog reads from the search index.
type Searcher interface {
	Search(ctx context.Context, f models.FilterState, from, size int) ([]models.JobPosting, int, error)
}

// Service owns the job catalog: browsing with filters, detail lookup, and
// employer posting creation.
type Service struct {
	repo     models.JobRepository
	indexer  Indexer
	searcher Searcher
	log      logger.Logger
	now      func() time.Time
}

// NewService creates a job catalog service. indexer and searcher may be
// nil when search is disabled.
func NewService(repo models.JobRepository, indexer Indexer, searcher Searcher, log logger.Logger) *Service {
	return &Service{
		repo:     repo,
		indexer:  indexer,
		searcher: searcher,
		log:      log,
		now:      time.Now,
	}
}

// List returns the filtered, sorted catalog. Requests carrying a search
// query go through the search index when one is configured; the index
// answers the text stages and the remaining stages run in memory. Every
// other case, and any index failure, runs the in-memory pipeline over the
// database catalog. When the database has no active postings, or the read
// fails, the built-in seed catalog is served instead so browsing always
// works.
func (s *Service) List(ctx context.Context, f models.FilterState) ([]models.JobPosting, error) {
	clean, err := NormalizeFilters(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFilterFormat, "invalid search filters", err)
	}

	if s.searcher != nil && clean.Query != "" {
		hits, _, err := s.searcher.Search(ctx, clean, 0, listLimit)
		if err == nil {
			// The index already matched query, location, and type; only
			// the residual stages and the sort run here.
			residual := clean
			residual.Query = ""
			residual.Location = ""
			residual.Types = nil
			return Filter(hits, residual), nil
		}
		s.log.Warn("search index query failed, using in-memory pipeline", map[string]interface{}{
			"error": err.Error(),
		})
	}

	postings := s.loadCatalog(ctx)
	return Filter(postings, clean), nil
}

func (s *Service) loadCatalog(ctx context.Context) []models.JobPosting {
	rows, err := s.repo.ListActive(ctx, listLimit)
	if err != nil {
		s.log.Warn("job catalog read failed, serving seed postings", map[string]interface{}{
			"error": err.Error(),
		})
		return SeedPostings()
	}
	if len(rows) == 0 {
		return SeedPostings()
	}

	now := s.now()
	postings := make([]models.JobPosting, 0, len(rows))
	for i := range rows {
		postings = append(postings, Normalize(&rows[i], now))
	}
	return postings
}

// Get returns one posting by id, checking the database first and the seed
// catalog second. Seed ids are ordinals, stored ids are UUIDs, so the two
// namespaces never collide.
func (s *Service) Get(ctx context.Context, id string) (*models.JobPosting, error) {
	raw, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.log.Warn("job lookup failed, checking seed postings", map[string]interface{}{
			"jobId": id,
			"error": err.Error(),
		})
	} else if raw != nil {
		posting := Normalize(raw, s.now())
		return &posting, nil
	}

	for _, seed := range SeedPostings() {
		if seed.ID == id {
			found := seed
			return &found, nil
		}
	}

	return nil, errors.New(errors.ErrCodeJobNotFound, "job posting not found").
		WithMetadata(map[string]interface{}{"jobId": id})
}

// ListByEmployer returns an employer's own postings, newest first, in the
// normalized display shape. Closed postings are included.
func (s *Service) ListByEmployer(ctx context.Context, employerID string) ([]models.JobPosting, error) {
	rows, err := s.repo.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryExecutionFailed, "failed to load employer postings", err)
	}

	now := s.now()
	postings := make([]models.JobPosting, 0, len(rows))
	for i := range rows {
		postings = append(postings, Normalize(&rows[i], now))
	}
	return postings, nil
}

// PostJobInput is an employer's new-posting submission.
type PostJobInput struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	CompanyLogo  string   `json:"companyLogo"`
	Location     string   `json:"location"`
	JobType      string   `json:"jobType"`
	SalaryMin    *int     `json:"salaryMin"`
	SalaryMax    *int     `json:"salaryMax"`
	Description  string   `json:"description"`
	Skills       []string `json:"skills"`
	Requirements []string `json:"requirements"`
	Benefits     []string `json:"benefits"`
}

// ValidatePostJob checks an employer submission field by field.
func ValidatePostJob(in PostJobInput) *validation.Result {
	r := &validation.Result{}

	r.Required("title", in.Title, "Job title is required")
	r.LengthBetween("title", in.Title, 3, 100)
	r.Required("company", in.Company, "Company name is required")
	r.LengthBetween("company", in.Company, 2, 100)
	r.Required("location", in.Location, "Location is required")
	r.LengthBetween("location", in.Location, 2, 100)
	r.Required("jobType", in.JobType, "Job type is required")
	r.OneOf("jobType", in.JobType, models.JobTypeCodes)
	r.Required("description", in.Description, "Job description is required")
	r.LengthBetween("description", in.Description, 50, 5000)

	if in.SalaryMin != nil {
		r.NonNegative("salaryMin", float64(*in.SalaryMin))
	}
	if in.SalaryMax != nil {
		r.NonNegative("salaryMax", float64(*in.SalaryMax))
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		r.Add("salaryMax", "Maximum salary must not be below minimum", "INVALID_RANGE")
	}

	return r
}

// CreatePosting validates and stores a new employer posting, then indexes
// it for search when an indexer is configured.
func (s *Service) CreatePosting(ctx context.Context, employerID string, in PostJobInput) (*models.JobPosting, error) {
	result := ValidatePostJob(in)
	if !result.Valid() {
		return nil, errors.New(errors.ErrCodeJobValidationFailed, "job posting validation failed").
			WithMetadata(map[string]interface{}{"fieldErrors": result.FieldMap()})
	}

	raw := &models.RawJob{
		ID:           uuid.NewString(),
		EmployerID:   employerID,
		Title:        strings.TrimSpace(in.Title),
		Company:      strings.TrimSpace(in.Company),
		CompanyLogo:  strings.TrimSpace(in.CompanyLogo),
		Location:     strings.TrimSpace(in.Location),
		JobType:      strings.ToLower(strings.TrimSpace(in.JobType)),
		SalaryMin:    in.SalaryMin,
		SalaryMax:    in.SalaryMax,
		Description:  strings.TrimSpace(in.Description),
		Skills:       in.Skills,
		Requirements: in.Requirements,
		Benefits:     in.Benefits,
		Status:       models.JobStatusActive,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.Create(ctx, raw); err != nil {
		return nil, errors.Wrap(errors.ErrCodeDatabaseInsertFailed, "failed to store job posting", err)
	}

	posting := Normalize(raw, s.now())

	if s.indexer != nil {
		if err := s.indexer.IndexJob(ctx, posting); err != nil {
			s.log.Warn("search indexing failed for new posting", map[string]interface{}{
				"jobId": posting.ID,
				"error": err.Error(),
			})
		}
	}

	s.log.Info("job posting created", map[string]interface{}{
		"jobId":      posting.ID,
		"employerId": employerID,
		"title":      posting.Title,
	})
	return &posting, nil
}
