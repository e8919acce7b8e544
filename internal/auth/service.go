// internal/auth/service.go
package auth

import (
	"context"
	goerrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	commonauth "jobboard-api/internal/common/auth"
	"jobboard-api/internal/common/errors"
	"jobboard-api/internal/common/logger"
	"jobboard-api/internal/common/validation"
	"jobboard-api/internal/models"
	"jobboard-api/internal/store"
)

const minPasswordLength = 8

// Service owns account lifecycle: sign-up, sign-in, sign-out, and profile
// reads. Passwords are bcrypt-hashed, sessions live in redis.
type Service struct {
	users      models.UserRepository
	sessions   models.SessionStore
	tokens     *commonauth.TokenManager
	bcryptCost int
	sessionTTL time.Duration
	log        logger.Logger
	now        func() time.Time
}

func NewService(users models.UserRepository, sessions models.SessionStore, tokens *commonauth.TokenManager, bcryptCost int, sessionTTL time.Duration, log logger.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		sessionTTL: sessionTTL,
		log:        log,
		now:        time.Now,
	}
}

// SignupInput is the registration payload. Employers carry company
// metadata; candidates leave it empty.
type SignupInput struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	CompanyName string `json:"companyName,omitempty"`
	CompanyLogo string `json:"companyLogo,omitempty"`
}

// Credentials carries a sign-in attempt.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is the response to a successful sign-up or sign-in.
type AuthResult struct {
	Token      string              `json:"token"`
	User       *models.UserProfile `json:"user"`
	RedirectTo string              `json:"redirectTo"`
	ExpiresAt  time.Time           `json:"expiresAt"`
}

func validateSignup(in SignupInput) *validation.Result {
	r := &validation.Result{}

	r.Required("email", in.Email, "Email is required")
	r.Email("email", in.Email)
	r.Required("name", in.Name, "Name is required")
	r.Required("role", in.Role, "Role is required")
	r.OneOf("role", in.Role, models.Roles)

	if len(in.Password) < minPasswordLength {
		r.Add("password", "Password must be at least 8 characters", "TOO_SHORT")
	}
	if in.Role == models.RoleEmployer {
		r.Required("companyName", in.CompanyName, "Company name is required")
	}

	return r
}

// Signup registers an account and signs it in.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*AuthResult, error) {
	result := validateSignup(in)
	if !result.Valid() {
		return nil, errors.New(errors.ErrCodeSignupValidationFailed, "signup validation failed").
			WithMetadata(map[string]interface{}{"fieldErrors": result.FieldMap()})
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryExecutionFailed, "account lookup failed", err)
	}
	if existing != nil {
		return nil, errors.New(errors.ErrCodeEmailTaken, "an account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "password hashing failed", err)
	}

	user := &models.UserProfile{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         strings.TrimSpace(in.Name),
		Role:         in.Role,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if in.Role == models.RoleEmployer {
		user.CompanyName = strings.TrimSpace(in.CompanyName)
		user.CompanyLogo = strings.TrimSpace(in.CompanyLogo)
	}

	if err := s.users.Create(ctx, user); err != nil {
		if goerrors.Is(err, store.ErrDuplicate) {
			return nil, errors.New(errors.ErrCodeEmailTaken, "an account with this email already exists")
		}
		return nil, errors.Wrap(errors.ErrCodeDatabaseInsertFailed, "account creation failed", err)
	}

	s.log.Info("account created", map[string]interface{}{
		"userId": user.ID,
		"role":   user.Role,
	})

	return s.openSession(ctx, user)
}

// Signin verifies credentials and opens a session.
func (s *Service) Signin(ctx context.Context, creds Credentials) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(creds.Email)))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryExecutionFailed, "account lookup failed", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrCodeInvalidCredentials, "invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, errors.New(errors.ErrCodeInvalidCredentials, "invalid email or password")
	}

	return s.openSession(ctx, user)
}

func (s *Service) openSession(ctx context.Context, user *models.UserProfile) (*AuthResult, error) {
	now := s.now()
	session := &models.Session{
		ID:           uuid.NewString(),
		UserID:       user.ID,
		Role:         user.Role,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.sessionTTL),
		LastActivity: now,
	}

	token, err := s.tokens.Generate(user.ID, user.Role, session.ID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "token generation failed", err)
	}
	session.Token = token

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "session creation failed", err)
	}

	s.log.Info("session opened", map[string]interface{}{
		"userId":    user.ID,
		"sessionId": session.ID,
	})

	return &AuthResult{
		Token:      token,
		User:       user,
		RedirectTo: user.DashboardPath(),
		ExpiresAt:  session.ExpiresAt,
	}, nil
}

// Signout invalidates one session. Unknown session ids are a no-op.
func (s *Service) Signout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "session invalidation failed", err)
	}
	return nil
}

// VerifySession resolves a bearer token into its session, or an auth error
// the middleware can answer with. The unknown state (token present, not
// yet checked) always resolves here before any allow/deny decision.
func (s *Service) VerifySession(ctx context.Context, token string) (*models.Session, *commonauth.Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		if goerrors.Is(err, commonauth.ErrExpiredToken) {
			return nil, nil, errors.New(errors.ErrCodeSessionExpired, "session expired")
		}
		return nil, nil, errors.New(errors.ErrCodeUnauthorized, "invalid session token")
	}

	session, err := s.sessions.FindByID(ctx, claims.SessionID)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, "session lookup failed", err)
	}
	if session == nil || session.IsExpired() {
		return nil, nil, errors.New(errors.ErrCodeSessionExpired, "session expired")
	}

	return session, claims, nil
}

// Profile returns the account behind a verified session.
func (s *Service) Profile(ctx context.Context, userID string) (*models.UserProfile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryExecutionFailed, "profile lookup failed", err)
	}
	if user == nil {
		return nil, errors.New(errors.ErrCodeUnauthorized, "account no longer exists")
	}
	return user, nil
}
