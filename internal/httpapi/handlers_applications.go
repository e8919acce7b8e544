// internal/httpapi/handlers_applications.go
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-api/internal/applications"
	"jobboard-api/internal/common/errors"
	"jobboard-api/internal/models"
)

// ApplicationsHandler serves candidate submissions and employer review.
type ApplicationsHandler struct {
	applications *applications.Service
}

func NewApplicationsHandler(svc *applications.Service) *ApplicationsHandler {
	return &ApplicationsHandler{applications: svc}
}

// Submit answers POST /api/v1/applications for candidates.
func (h *ApplicationsHandler) Submit(c *gin.Context) {
	var form models.ApplicationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		errors.Respond(c, errors.Wrap(errors.ErrCodeApplicationValidationFailed, "malformed application payload", err))
		return
	}

	app, err := h.applications.Submit(c.Request.Context(), c.GetString(ctxUserID), &form)
	if err != nil {
		errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"application": app})
}

// ListOwn answers GET /api/v1/applications for candidates.
func (h *ApplicationsHandler) ListOwn(c *gin.Context) {
	apps, err := h.applications.ListForCandidate(c.Request.Context(), c.GetString(ctxUserID))
	if err != nil {
		errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// ListForEmployer answers GET /api/v1/employer/applications.
func (h *ApplicationsHandler) ListForEmployer(c *gin.Context) {
	apps, err := h.applications.ListForEmployer(c.Request.Context(), c.GetString(ctxUserID))
	if err != nil {
		errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// UpdateStatus answers PATCH /api/v1/applications/:id/status for employers.
func (h *ApplicationsHandler) UpdateStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		errors.Respond(c, errors.Wrap(errors.ErrCodeInvalidStatusTransition, "malformed status payload", err))
		return
	}

	app, err := h.applications.UpdateStatus(c.Request.Context(), c.GetString(ctxUserID), c.Param("id"), body.Status)
	if err != nil {
		errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": app})
}
