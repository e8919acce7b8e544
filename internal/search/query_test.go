// internal/search/query_test.go
package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-api/internal/models"
)

func TestBuildJobSearchQuery(t *testing.T) {
	t.Run("empty filter builds match_all", func(t *testing.T) {
		q := buildJobSearchQuery(models.FilterState{})

		boolQuery := q["query"].(map[string]interface{})["bool"].(map[string]interface{})
		must := boolQuery["must"].([]interface{})
		require.Len(t, must, 1)
		assert.Contains(t, must[0], "match_all")
		assert.NotContains(t, boolQuery, "filter")
	})

	t.Run("query text becomes weighted multi_match", func(t *testing.T) {
		q := buildJobSearchQuery(models.FilterState{Query: "react developer"})

		boolQuery := q["query"].(map[string]interface{})["bool"].(map[string]interface{})
		must := boolQuery["must"].([]interface{})
		require.Len(t, must, 1)

		mm := must[0].(map[string]interface{})["multi_match"].(map[string]interface{})
		assert.Equal(t, "react developer", mm["query"])
		assert.Contains(t, mm["fields"], "title^3")
	})

	t.Run("type selections become a terms filter", func(t *testing.T) {
		q := buildJobSearchQuery(models.FilterState{
			Types: []string{models.JobTypeRemote, models.JobTypeContract},
		})

		boolQuery := q["query"].(map[string]interface{})["bool"].(map[string]interface{})
		filters := boolQuery["filter"].([]interface{})
		require.Len(t, filters, 1)

		terms := filters[0].(map[string]interface{})["terms"].(map[string]interface{})
		assert.Equal(t, []string{models.JobTypeRemote, models.JobTypeContract}, terms["type"])
	})

	t.Run("location becomes a match clause alongside the text query", func(t *testing.T) {
		q := buildJobSearchQuery(models.FilterState{Query: "engineer", Location: "Berlin"})

		boolQuery := q["query"].(map[string]interface{})["bool"].(map[string]interface{})
		must := boolQuery["must"].([]interface{})
		assert.Len(t, must, 2)
	})
}
