// internal/savedjobs/service.go
package savedjobs

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"jobboard-api/internal/common/errors"
	"jobboard-api/internal/common/logger"
	"jobboard-api/internal/models"
)

const cacheKeyPrefix = "saved-jobs:"
const cacheTTL = 5 * time.Minute

// JobCatalog resolves a posting for display, including seed postings.
type JobCatalog interface {
	Get(ctx context.Context, id string) (*models.JobPosting, error)
}

// Service owns a user's saved-job bookmarks. Reads go cache-aside through
// redis; every write invalidates the user's cache entry.
type Service struct {
	repo    models.SavedJobRepository
	cache   *redis.Client
	catalog JobCatalog
	log     logger.Logger
}

// NewService creates a saved-jobs service. cache may be nil, which turns
// the cache-aside path into a straight repository read.
func NewService(repo models.SavedJobRepository, cache *redis.Client, catalog JobCatalog, log logger.Logger) *Service {
	return &Service{repo: repo, cache: cache, catalog: catalog, log: log}
}

// Save bookmarks a posting. Saving twice is a no-op.
func (s *Service) Save(ctx context.Context, userID, jobID string) error {
	if _, err := s.catalog.Get(ctx, jobID); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, userID, jobID); err != nil {
		return errors.Wrap(errors.ErrCodeDatabaseInsertFailed, "failed to save job", err)
	}

	s.invalidate(ctx, userID)
	return nil
}

// Remove drops a bookmark. Removing a missing bookmark is a no-op.
func (s *Service) Remove(ctx context.Context, userID, jobID string) error {
	if err := s.repo.Remove(ctx, userID, jobID); err != nil {
		return errors.Wrap(errors.ErrCodeQueryExecutionFailed, "failed to remove saved job", err)
	}

	s.invalidate(ctx, userID)
	return nil
}

// IsSaved reports whether the user bookmarked the posting.
func (s *Service) IsSaved(ctx context.Context, userID, jobID string) (bool, error) {
	ids, err := s.listIDs(ctx, userID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == jobID {
			return true, nil
		}
	}
	return false, nil
}

// List returns the user's bookmarked postings, newest bookmark first.
// Postings that no longer resolve are skipped rather than failing the
// whole read.
func (s *Service) List(ctx context.Context, userID string) ([]models.JobPosting, error) {
	ids, err := s.listIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	postings := make([]models.JobPosting, 0, len(ids))
	for _, id := range ids {
		posting, err := s.catalog.Get(ctx, id)
		if err != nil {
			s.log.Warn("saved posting no longer resolves", map[string]interface{}{
				"userId": userID,
				"jobId":  id,
			})
			continue
		}
		postings = append(postings, *posting)
	}
	return postings, nil
}

// ListIDs returns the user's bookmarked posting ids.
func (s *Service) ListIDs(ctx context.Context, userID string) ([]string, error) {
	return s.listIDs(ctx, userID)
}

func (s *Service) listIDs(ctx context.Context, userID string) ([]string, error) {
	if ids, ok := s.cachedIDs(ctx, userID); ok {
		return ids, nil
	}

	ids, err := s.repo.ListIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryExecutionFailed, "failed to load saved jobs", err)
	}
	if ids == nil {
		ids = []string{}
	}

	s.storeCache(ctx, userID, ids)
	return ids, nil
}

// Cache failures degrade to repository reads, never to request failures.
func (s *Service) cachedIDs(ctx context.Context, userID string) ([]string, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, err := s.cache.Get(ctx, cacheKeyPrefix+userID).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("saved-jobs cache read failed", map[string]interface{}{
				"userId": userID,
				"error":  err.Error(),
			})
		}
		return nil, false
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, false
	}
	return ids, true
}

func (s *Service) storeCache(ctx context.Context, userID string, ids []string) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKeyPrefix+userID, data, cacheTTL).Err(); err != nil {
		s.log.Warn("saved-jobs cache write failed", map[string]interface{}{
			"userId": userID,
			"error":  err.Error(),
		})
	}
}

func (s *Service) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, cacheKeyPrefix+userID).Err(); err != nil {
		s.log.Warn("saved-jobs cache invalidation failed", map[string]interface{}{
			"userId": userID,
			"error":  err.Error(),
		})
	}
}
