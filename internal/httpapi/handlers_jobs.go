// internal/httpapi/handlers_jobs.go
package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"jobboard-api/internal/common/errors"
	"jobboard-api/internal/jobs"
	"jobboard-api/internal/models"
	"jobboard-api/internal/search"
)

// JobsHandler serves the public catalog and the employer posting surface.
type JobsHandler struct {
	jobs   *jobs.Service
	search *search.SearchIndex
}

func NewJobsHandler(jobsSvc *jobs.Service, searchIdx *search.SearchIndex) *JobsHandler {
	return &JobsHandler{jobs: jobsSvc, search: searchIdx}
}

// List answers GET /api/v1/jobs with the filtered, sorted catalog.
func (h *JobsHandler) List(c *gin.Context) {
	filters, err := parseFilterState(c)
	if err != nil {
		errors.Respond(c, err)
		return
	}

	postings, err := h.jobs.List(c.Request.Context(), filters)
	if err != nil {
		errors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  postings,
		"total": len(postings),
	})
}

// Get answers GET /api/v1/jobs/:id.
func (h *JobsHandler) Get(c *gin.Context) {
	posting, err := h.jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": posting})
}

// Related answers GET /api/v1/jobs/:id/related with search-backed similar
// postings, or an empty list when search is disabled.
func (h *JobsHandler) Related(c *gin.Context) {
	if h.search == nil {
		c.JSON(http.StatusOK, gin.H{"jobs": []models.JobPosting{}})
		return
	}

	postings, err := h.search.RelatedJobs(c.Request.Context(), c.Param("id"), 5)
	if err != nil {
		errors.Respond(c, errors.Wrap(errors.ErrCodeSearchQueryFailed, "related search failed", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": postings})
}

// Create answers POST /api/v1/jobs for employers.
func (h *JobsHandler) Create(c *gin.Context) {
	var input jobs.PostJobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.Respond(c, errors.Wrap(errors.ErrCodeJobValidationFailed, "malformed posting payload", err))
		return
	}

	posting, err := h.jobs.CreatePosting(c.Request.Context(), c.GetString(ctxUserID), input)
	if err != nil {
		errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": posting})
}

// ListOwn answers GET /api/v1/employer/jobs.
func (h *JobsHandler) ListOwn(c *gin.Context) {
	postings, err := h.jobs.ListByEmployer(c.Request.Context(), c.GetString(ctxUserID))
	if err != nil {
		errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": postings})
}

func parseFilterState(c *gin.Context) (models.FilterState, error) {
	f := models.FilterState{
		Query:      c.Query("query"),
		Location:   c.Query("location"),
		Types:      c.QueryArray("types"),
		Experience: c.QueryArray("experience"),
		Categories: c.QueryArray("categories"),
		DatePosted: c.Query("datePosted"),
		SortBy:     c.Query("sortBy"),
	}

	var err error
	if f.SalaryMin, err = queryInt(c, "salaryMin", 0); err != nil {
		return f, err
	}
	if f.SalaryMax, err = queryInt(c, "salaryMax", models.SalaryCeiling); err != nil {
		return f, err
	}
	return f, nil
}

func queryInt(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidFilterFormat, "invalid search filters").
			WithMetadata(map[string]interface{}{"param": name})
	}
	return v, nil
}
