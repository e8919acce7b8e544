// internal/httpapi/handlers_savedjobs.go
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-api/internal/common/errors"
	"jobboard-api/internal/savedjobs"
)

// SavedJobsHandler serves a candidate's bookmarks.
type SavedJobsHandler struct {
	savedJobs *savedjobs.Service
}

func NewSavedJobsHandler(svc *savedjobs.Service) *SavedJobsHandler {
	return &SavedJobsHandler{savedJobs: svc}
}

// List answers GET /api/v1/saved-jobs.
func (h *SavedJobsHandler) List(c *gin.Context) {
	postings, err := h.savedJobs.List(c.Request.Context(), c.GetString(ctxUserID))
	if err != nil {
		errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": postings})
}

// Check answers GET /api/v1/saved-jobs/:jobID with the bookmark state,
// which the job detail view uses to render its save toggle.
func (h *SavedJobsHandler) Check(c *gin.Context) {
	jobID := c.Param("jobID")
	saved, err := h.savedJobs.IsSaved(c.Request.Context(), c.GetString(ctxUserID), jobID)
	if err != nil {
		errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved, "jobId": jobID})
}

// Save answers POST /api/v1/saved-jobs.
func (h *SavedJobsHandler) Save(c *gin.Context) {
	var body struct {
		JobID string `json:"jobId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.JobID == "" {
		errors.Respond(c, errors.New(errors.ErrCodeJobNotFound, "jobId is required"))
		return
	}

	if err := h.savedJobs.Save(c.Request.Context(), c.GetString(ctxUserID), body.JobID); err != nil {
		errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"saved": true, "jobId": body.JobID})
}

// Remove answers DELETE /api/v1/saved-jobs/:jobID.
func (h *SavedJobsHandler) Remove(c *gin.Context) {
	jobID := c.Param("jobID")
	if err := h.savedJobs.Remove(c.Request.Context(), c.GetString(ctxUserID), jobID); err != nil {
		errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": false, "jobId": jobID})
}
