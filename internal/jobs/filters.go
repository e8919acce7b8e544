// internal/jobs/filters.go
package jobs

import (
	"errors"
	"fmt"
	"strings"

	"jobboard-api/internal/models"
)

var ErrInvalidFilterFormat = errors.New("INVALID_FILTER_FORMAT")

var validTypes = toSet(models.JobTypes)
var validExperience = toSet(models.ExperienceLevels)
var validCategories = toSet(models.JobCategories)
var validSortModes = toSet(models.SortModes)
var validDateBuckets = map[string]bool{
	models.DatePostedAnyTime:   true,
	models.DatePostedToday:     true,
	models.DatePostedPastWeek:  true,
	models.DatePostedPastMonth: true,
}

// NormalizeFilters validates the filter state against the fixed
// vocabularies and fills defaults. Selected sets come back deduplicated
// and trimmed; an out-of-vocabulary value is an error rather than a silent
// drop.
func NormalizeFilters(f models.FilterState) (models.FilterState, error) {
	var err error

	if f.Types, err = cleanSet(f.Types, validTypes, "type"); err != nil {
		return f, err
	}
	if f.Experience, err = cleanSet(f.Experience, validExperience, "experience"); err != nil {
		return f, err
	}
	if f.Categories, err = cleanSet(f.Categories, validCategories, "category"); err != nil {
		return f, err
	}

	if !validDateBuckets[f.DatePosted] {
		return f, fmt.Errorf("%w: invalid datePosted '%s'", ErrInvalidFilterFormat, f.DatePosted)
	}

	if f.SortBy == "" {
		f.SortBy = models.SortRelevance
	}
	if !validSortModes[f.SortBy] {
		return f, fmt.Errorf("%w: invalid sortBy '%s'", ErrInvalidFilterFormat, f.SortBy)
	}

	if f.SalaryMin < 0 {
		f.SalaryMin = 0
	}
	if f.SalaryMax <= 0 || f.SalaryMax > models.SalaryCeiling {
		f.SalaryMax = models.SalaryCeiling
	}
	if f.SalaryMin > f.SalaryMax {
		return f, fmt.Errorf("%w: salary min (%d) > max (%d)", ErrInvalidFilterFormat, f.SalaryMin, f.SalaryMax)
	}

	f.Query = strings.TrimSpace(f.Query)
	f.Location = strings.TrimSpace(f.Location)

	return f, nil
}

func cleanSet(values []string, valid map[string]bool, kind string) ([]string, error) {
	result := []string{}
	seen := make(map[string]bool)

	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		if !valid[trimmed] {
			return nil, fmt.Errorf("%w: invalid %s '%s'", ErrInvalidFilterFormat, kind, trimmed)
		}
		result = append(result, trimmed)
		seen[trimmed] = true
	}
	return result, nil
}

func toSet(values []string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}
