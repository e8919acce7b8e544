// internal/auth/service_test.go
package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	commonauth "jobboard-api/internal/common/auth"
	stderrors "jobboard-api/internal/common/errors"
	"jobboard-api/internal/common/logger"
	"jobboard-api/internal/models"
)

type stubUserRepo struct {
	byEmail map[string]*models.UserProfile
	byID    map[string]*models.UserProfile
	created []*models.UserProfile
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byEmail: make(map[string]*models.UserProfile),
		byID:    make(map[string]*models.UserProfile),
	}
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.UserProfile) error {
	s.created = append(s.created, user)
	s.byEmail[user.Email] = user
	s.byID[user.ID] = user
	return nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	return s.byEmail[email], nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	return s.byID[id], nil
}

func createTestAuthService(t *testing.T, users *stubUserRepo) *Service {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	tokens := commonauth.NewTokenManager("test-secret", time.Hour)
	return NewService(users, NewRedisSessionStore(client), tokens,
		bcrypt.MinCost, time.Hour, logger.NewTestLogger(t))
}

func seedAccount(t *testing.T, users *stubUserRepo, email, password, role string) *models.UserProfile {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.UserProfile{
		ID:           "user-" + email,
		Email:        email,
		Name:         "Test User",
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("candidate account", func(t *testing.T) {
		users := newStubUserRepo()
		svc := createTestAuthService(t, users)

		got, err := svc.Signup(ctx, SignupInput{
			Email:    "Jordan@Example.com",
			Password: "correct-horse",
			Name:     "Jordan Smith",
			Role:     models.RoleCandidate,
		})
		require.NoError(t, err)

		assert.NotEmpty(t, got.Token)
		assert.Equal(t, "/candidate/dashboard", got.RedirectTo)
		require.Len(t, users.created, 1)
		assert.Equal(t, "jordan@example.com", users.created[0].Email)
		assert.NotEqual(t, "correct-horse", users.created[0].PasswordHash)
	})

	t.Run("employer requires company name", func(t *testing.T) {
		svc := createTestAuthService(t, newStubUserRepo())

		_, err := svc.Signup(ctx, SignupInput{
			Email:    "hr@acme.com",
			Password: "correct-horse",
			Name:     "Acme HR",
			Role:     models.RoleEmployer,
		})
		var se *stderrors.StandardError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, stderrors.ErrCodeSignupValidationFailed, se.Code)

		got, err := svc.Signup(ctx, SignupInput{
			Email:       "hr@acme.com",
			Password:    "correct-horse",
			Name:        "Acme HR",
			Role:        models.RoleEmployer,
			CompanyName: "Acme",
		})
		require.NoError(t, err)
		assert.Equal(t, "/employer/dashboard", got.RedirectTo)
		assert.Equal(t, "Acme", got.User.CompanyName)
	})

	t.Run("taken email rejected", func(t *testing.T) {
		users := newStubUserRepo()
		seedAccount(t, users, "jordan@example.com", "password1", models.RoleCandidate)
		svc := createTestAuthService(t, users)

		_, err := svc.Signup(ctx, SignupInput{
			Email:    "jordan@example.com",
			Password: "password2",
			Name:     "Other Jordan",
			Role:     models.RoleCandidate,
		})
		var se *stderrors.StandardError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, stderrors.ErrCodeEmailTaken, se.Code)
	})

	t.Run("weak password rejected", func(t *testing.T) {
		svc := createTestAuthService(t, newStubUserRepo())

		_, err := svc.Signup(ctx, SignupInput{
			Email:    "jordan@example.com",
			Password: "short",
			Name:     "Jordan",
			Role:     models.RoleCandidate,
		})
		var se *stderrors.StandardError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, stderrors.ErrCodeSignupValidationFailed, se.Code)
	})
}

func TestSignin(t *testing.T) {
	ctx := context.Background()

	t.Run("correct credentials open a session", func(t *testing.T) {
		users := newStubUserRepo()
		seedAccount(t, users, "jordan@example.com", "correct-horse", models.RoleCandidate)
		svc := createTestAuthService(t, users)

		got, err := svc.Signin(ctx, Credentials{Email: "jordan@example.com", Password: "correct-horse"})
		require.NoError(t, err)
		assert.NotEmpty(t, got.Token)

		session, claims, err := svc.VerifySession(ctx, got.Token)
		require.NoError(t, err)
		assert.Equal(t, got.User.ID, session.UserID)
		assert.Equal(t, models.RoleCandidate, claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := newStubUserRepo()
		seedAccount(t, users, "jordan@example.com", "correct-horse", models.RoleCandidate)
		svc := createTestAuthService(t, users)

		_, err := svc.Signin(ctx, Credentials{Email: "jordan@example.com", Password: "wrong"})
		var se *stderrors.StandardError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, stderrors.ErrCodeInvalidCredentials, se.Code)
	})

	t.Run("unknown email gets the same answer as wrong password", func(t *testing.T) {
		svc := createTestAuthService(t, newStubUserRepo())

		_, err := svc.Signin(ctx, Credentials{Email: "nobody@example.com", Password: "whatever"})
		var se *stderrors.StandardError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, stderrors.ErrCodeInvalidCredentials, se.Code)
	})
}

func TestSignout(t *testing.T) {
	ctx := context.Background()
	users := newStubUserRepo()
	seedAccount(t, users, "jordan@example.com", "correct-horse", models.RoleCandidate)
	svc := createTestAuthService(t, users)

	got, err := svc.Signin(ctx, Credentials{Email: "jordan@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	_, claims, err := svc.VerifySession(ctx, got.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Signout(ctx, claims.SessionID))

	_, _, err = svc.VerifySession(ctx, got.Token)
	var se *stderrors.StandardError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, stderrors.ErrCodeSessionExpired, se.Code)
}

func TestVerifySessionGarbageToken(t *testing.T) {
	svc := createTestAuthService(t, newStubUserRepo())

	_, _, err := svc.VerifySession(context.Background(), "not-a-jwt")
	var se *stderrors.StandardError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, stderrors.ErrCodeUnauthorized, se.Code)
}
