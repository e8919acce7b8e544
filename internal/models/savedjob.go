// internal/models/savedjob.go
package models

import (
	"context"
	"time"
)

// SavedJob is a bookmark linking a user to a posting.
type SavedJob struct {
	UserID    string    `json:"userId" db:"user_id"`
	JobID     string    `json:"jobId" db:"job_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// SavedJobRepository defines bookmark data access. Save is idempotent per
// (user, job) pair.
type SavedJobRepository interface {
	Save(ctx context.Context, userID, jobID string) error
	Remove(ctx context.Context, userID, jobID string) error
	ListIDs(ctx context.Context, userID string) ([]string, error)
	IsSaved(ctx context.Context, userID, jobID string) (bool, error)
}
