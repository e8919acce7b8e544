// internal/store/users.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"jobboard-api/internal/models"
)

// UserStore is the Postgres-backed account repository.
type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

const userColumns = `
	id, email, name, role, COALESCE(company_name, ''), COALESCE(company_logo, ''),
	password_hash, created_at`

// Create inserts a new account row. A unique-violation on email maps to
// ErrDuplicate so callers can answer EMAIL_TAKEN.
func (s *UserStore) Create(ctx context.Context, user *models.UserProfile) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, email, name, role, company_name, company_logo, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, strings.ToLower(user.Email), user.Name, user.Role,
		nullable(user.CompanyName), nullable(user.CompanyLogo),
		user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return fmt.Errorf("%w: email %s already registered", ErrDuplicate, user.Email)
		}
		return fmt.Errorf("%w: insert user: %v", ErrInsertFailed, err)
	}
	return nil
}

// GetByEmail returns the account for an email, or (nil, nil) when none
// exists. Lookup is case-insensitive.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	user, err := s.scanUser(s.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1`, strings.ToLower(email)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get user by email: %v", ErrQueryFailed, err)
	}
	return user, nil
}

// GetByID returns the account, or (nil, nil) when no row matches.
func (s *UserStore) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	user, err := s.scanUser(s.db.QueryRowContext(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get user %s: %v", ErrQueryFailed, id, err)
	}
	return user, nil
}

func (s *UserStore) scanUser(row *sql.Row) (*models.UserProfile, error) {
	var user models.UserProfile
	err := row.Scan(
		&user.ID, &user.Email, &user.Name, &user.Role,
		&user.CompanyName, &user.CompanyLogo, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
