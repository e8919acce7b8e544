// internal/search/query.go
package search

import "jobboard-api/internal/models"

// buildJobSearchQuery translates a filter state into an Elasticsearch bool
// query. Free text becomes a multi_match over the weighted text fields,
// everything else becomes a filter clause.
func buildJobSearchQuery(f models.FilterState) map[string]interface{} {
	mustClauses := []interface{}{}
	filterClauses := []interface{}{}

	if f.Query != "" {
		mustClauses = append(mustClauses, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  f.Query,
				"fields": []string{"title^3", "company^2", "skills^2", "description"},
				"type":   "best_fields",
			},
		})
	}

	if f.Location != "" {
		mustClauses = append(mustClauses, map[string]interface{}{
			"match": map[string]interface{}{"location": f.Location},
		})
	}

	if len(f.Types) > 0 {
		filterClauses = append(filterClauses, map[string]interface{}{
			"terms": map[string]interface{}{"type": f.Types},
		})
	}

	if len(mustClauses) == 0 {
		mustClauses = append(mustClauses, map[string]interface{}{
			"match_all": map[string]interface{}{},
		})
	}

	boolQuery := map[string]interface{}{"must": mustClauses}
	if len(filterClauses) > 0 {
		boolQuery["filter"] = filterClauses
	}

	// Hits come back in score order; sort modes are applied by the
	// in-memory pipeline after normalization.
	return map[string]interface{}{
		"query": map[string]interface{}{"bool": boolQuery},
	}
}
