// internal/httpapi/handlers_auth.go
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-api/internal/auth"
	"jobboard-api/internal/common/errors"
)

// AuthHandler serves account lifecycle endpoints.
type AuthHandler struct {
	auth *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{auth: svc}
}

// Signup answers POST /api/v1/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var input auth.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		errors.Respond(c, errors.Wrap(errors.ErrCodeSignupValidationFailed, "malformed signup payload", err))
		return
	}

	result, err := h.auth.Signup(c.Request.Context(), input)
	if err != nil {
		errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Signin answers POST /api/v1/auth/signin.
func (h *AuthHandler) Signin(c *gin.Context) {
	var creds auth.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		errors.Respond(c, errors.New(errors.ErrCodeInvalidCredentials, "malformed signin payload"))
		return
	}

	result, err := h.auth.Signin(c.Request.Context(), creds)
	if err != nil {
		errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Signout answers POST /api/v1/auth/signout.
func (h *AuthHandler) Signout(c *gin.Context) {
	if err := h.auth.Signout(c.Request.Context(), c.GetString(ctxSessionID)); err != nil {
		errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"signedOut": true})
}

// Profile answers GET /api/v1/auth/profile.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.auth.Profile(c.Request.Context(), c.GetString(ctxUserID))
	if err != nil {
		errors.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
