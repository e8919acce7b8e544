// internal/store/savedjobs.go
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SavedJobStore is the Postgres-backed bookmark repository.
type SavedJobStore struct {
	db *sql.DB
}

func NewSavedJobStore(db *sql.DB) *SavedJobStore {
	return &SavedJobStore{db: db}
}

// Save bookmarks a posting for the user. Saving an already-saved posting
// is a no-op.
func (s *SavedJobStore) Save(ctx context.Context, userID, jobID string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO saved_jobs (user_id, job_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, job_id) DO NOTHING`,
		userID, jobID, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: save job: %v", ErrInsertFailed, err)
	}
	return nil
}

// Remove drops a bookmark. Removing a bookmark that does not exist is a
// no-op.
func (s *SavedJobStore) Remove(ctx context.Context, userID, jobID string) error {
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM saved_jobs
		WHERE user_id = $1 AND job_id = $2`, userID, jobID)
	if err != nil {
		return fmt.Errorf("%w: remove saved job: %v", ErrQueryFailed, err)
	}
	return nil
}

// ListIDs returns the user's bookmarked posting ids, newest first.
func (s *SavedJobStore) ListIDs(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT job_id
		FROM saved_jobs
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list saved jobs: %v", ErrQueryFailed, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: scan saved job row: %v", ErrQueryFailed, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate saved job rows: %v", ErrQueryFailed, err)
	}
	return ids, nil
}

// IsSaved reports whether the user bookmarked the posting.
func (s *SavedJobStore) IsSaved(ctx context.Context, userID, jobID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM saved_jobs
			WHERE user_id = $1 AND job_id = $2
		)`, userID, jobID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: saved check failed: %v", ErrQueryFailed, err)
	}
	return exists, nil
}
