// internal/search/index.go
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"jobboard-api/internal/common/logger"
	"jobboard-api/internal/models"
)

var (
	ErrSearchQueryFailed = errors.New("SEARCH_QUERY_FAILED")
	ErrIndexNotFound     = errors.New("INDEX_NOT_FOUND")
)

// SearchIndex wraps the job posting index. Documents are stored in the
// normalized display shape so search results need no second normalization
// pass.
type SearchIndex struct {
	client *elasticsearch.Client
	index  string
	logger logger.Logger
}

func NewSearchIndex(client *elasticsearch.Client, index string, log logger.Logger) *SearchIndex {
	return &SearchIndex{
		client: client,
		index:  index,
		logger: log.WithFields(map[string]interface{}{"index": index}),
	}
}

// IndexJob writes one posting document, keyed by posting id.
func (s *SearchIndex) IndexJob(ctx context.Context, posting models.JobPosting) error {
	body, err := json.Marshal(posting)
	if err != nil {
		return fmt.Errorf("%w: marshal posting: %v", ErrSearchQueryFailed, err)
	}

	req := esapi.IndexRequest{
		Index:      s.index,
		DocumentID: posting.ID,
		Body:       bytes.NewReader(body),
		Refresh:    "false",
	}

	res, err := req.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("%w: index request: %v", ErrSearchQueryFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: index responded %s", ErrSearchQueryFailed, res.Status())
	}

	s.logger.Debug("posting indexed", map[string]interface{}{"jobId": posting.ID})
	return nil
}

// DeleteJob removes a posting document. A missing document is not an
// error.
func (s *SearchIndex) DeleteJob(ctx context.Context, jobID string) error {
	req := esapi.DeleteRequest{Index: s.index, DocumentID: jobID}

	res, err := req.Do(ctx, s.client)
	if err != nil {
		return fmt.Errorf("%w: delete request: %v", ErrSearchQueryFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("%w: delete responded %s", ErrSearchQueryFailed, res.Status())
	}
	return nil
}

// Search runs a full-text query with filters against the index and returns
// matching postings, best first.
func (s *SearchIndex) Search(ctx context.Context, f models.FilterState, from, size int) ([]models.JobPosting, int, error) {
	queryBody := buildJobSearchQuery(f)
	body, err := json.Marshal(queryBody)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: marshal query: %v", ErrSearchQueryFailed, err)
	}

	req := esapi.SearchRequest{
		Index: []string{s.index},
		Body:  bytes.NewReader(body),
		From:  &from,
		Size:  &size,
	}

	res, err := req.Do(ctx, s.client)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: search request: %v", ErrSearchQueryFailed, err)
	}
	defer res.Body.Close()

	if res.StatusCode == 404 {
		return nil, 0, fmt.Errorf("%w: index %s", ErrIndexNotFound, s.index)
	}
	if res.IsError() {
		return nil, 0, fmt.Errorf("%w: search responded %s", ErrSearchQueryFailed, res.Status())
	}

	return decodeHits(res.Body)
}

// RelatedJobs returns postings similar to the given one, for the detail
// page's "similar jobs" strip.
func (s *SearchIndex) RelatedJobs(ctx context.Context, jobID string, size int) ([]models.JobPosting, error) {
	queryBody := map[string]interface{}{
		"query": map[string]interface{}{
			"more_like_this": map[string]interface{}{
				"fields": []string{"title", "description", "skills"},
				"like": []map[string]interface{}{
					{"_index": s.index, "_id": jobID},
				},
				"min_term_freq":   1,
				"max_query_terms": 12,
				"min_doc_freq":    1,
			},
		},
	}

	body, err := json.Marshal(queryBody)
	if err != nil {
		return nil, fmt.Errorf("%w: marshal query: %v", ErrSearchQueryFailed, err)
	}

	req := esapi.SearchRequest{
		Index: []string{s.index},
		Body:  bytes.NewReader(body),
		Size:  &size,
	}

	res, err := req.Do(ctx, s.client)
	if err != nil {
		return nil, fmt.Errorf("%w: related search request: %v", ErrSearchQueryFailed, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("%w: related search responded %s", ErrSearchQueryFailed, res.Status())
	}

	hits, _, err := decodeHits(res.Body)
	return hits, err
}

func decodeHits(body io.Reader) ([]models.JobPosting, int, error) {
	var parsed struct {
		Hits struct {
			Total struct {
				Value int `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.JobPosting `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(body).Decode(&parsed); err != nil {
		return nil, 0, fmt.Errorf("%w: decode response: %v", ErrSearchQueryFailed, err)
	}

	postings := make([]models.JobPosting, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		postings = append(postings, hit.Source)
	}
	return postings, parsed.Hits.Total.Value, nil
}
