// internal/jobs/pipeline_test.go
package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-api/internal/models"
)

func TestSalaryValue(t *testing.T) {
	tests := []struct {
		salary   string
		expected int
	}{
		{"$120k - $180k", 120},
		{"$90k+", 90},
		{"Up to $60k", 60},
		{"Competitive", 0},
		{"$25 - $35/hr", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.salary, func(t *testing.T) {
			assert.Equal(t, tt.expected, SalaryValue(tt.salary))
		})
	}
}

func TestFilter(t *testing.T) {
	catalog := SeedPostings()
	noFilter := models.FilterState{SalaryMax: models.SalaryCeiling}

	t.Run("empty filter passes everything in relevance order", func(t *testing.T) {
		got := Filter(catalog, noFilter)
		require.Len(t, got, len(catalog))
		// Featured postings lead, otherwise input order holds.
		for i := 1; i < len(got); i++ {
			if got[i].Featured {
				assert.True(t, got[i-1].Featured, "featured posting after a non-featured one")
			}
		}
	})

	t.Run("query matches title company skills and description", func(t *testing.T) {
		got := Filter(catalog, models.FilterState{Query: "react", SalaryMax: models.SalaryCeiling})
		require.NotEmpty(t, got)
		for _, job := range got {
			assert.True(t, matchesQuery(job, "react"))
		}

		got = Filter(catalog, models.FilterState{Query: "no such term anywhere", SalaryMax: models.SalaryCeiling})
		assert.Empty(t, got)
	})

	t.Run("remote location text matches remote type jobs", func(t *testing.T) {
		got := Filter(catalog, models.FilterState{Location: "remote", SalaryMax: models.SalaryCeiling})
		require.NotEmpty(t, got)
		for _, job := range got {
			matched := job.Type == models.JobTypeRemote ||
				matchesLocation(job, "remote")
			assert.True(t, matched, "job %s leaked through remote location filter", job.ID)
		}
	})

	t.Run("type filter is a conjunct", func(t *testing.T) {
		got := Filter(catalog, models.FilterState{
			Types:     []string{models.JobTypeRemote},
			SalaryMax: models.SalaryCeiling,
		})
		require.NotEmpty(t, got)
		for _, job := range got {
			assert.Equal(t, models.JobTypeRemote, job.Type)
		}
	})

	t.Run("experience filter uses title classification", func(t *testing.T) {
		got := Filter(catalog, models.FilterState{
			Experience: []string{models.ExperienceExecutive},
			SalaryMax:  models.SalaryCeiling,
		})
		require.NotEmpty(t, got)
		for _, job := range got {
			assert.Equal(t, models.ExperienceExecutive, ExperienceLevel(job.Title))
		}
	})

	t.Run("date posted buckets", func(t *testing.T) {
		got := Filter(catalog, models.FilterState{
			DatePosted: models.DatePostedPastWeek,
			SalaryMax:  models.SalaryCeiling,
		})
		require.NotEmpty(t, got)
		for _, job := range got {
			assert.LessOrEqual(t, PostedDays(job.Posted), 7)
		}
	})

	t.Run("salary range excludes out-of-band postings", func(t *testing.T) {
		got := Filter(catalog, models.FilterState{SalaryMin: 100, SalaryMax: 150})
		require.NotEmpty(t, got)
		for _, job := range got {
			v := SalaryValue(job.Salary)
			assert.GreaterOrEqual(t, v, 100)
			assert.LessOrEqual(t, v, 150)
		}
	})

	t.Run("full-range salary slider passes unparsable salaries", func(t *testing.T) {
		got := Filter(catalog, models.FilterState{SalaryMin: 0, SalaryMax: models.SalaryCeiling})
		assert.Len(t, got, len(catalog))
	})

	t.Run("output is a subsequence of input", func(t *testing.T) {
		f := models.FilterState{Query: "e", SalaryMax: models.SalaryCeiling}
		got := Filter(catalog, f)

		idx := 0
		for _, job := range got {
			found := false
			for ; idx < len(catalog); idx++ {
				if catalog[idx].ID == job.ID {
					found = true
					idx++
					break
				}
			}
			require.True(t, found, "output reordered or invented posting %s", job.ID)
		}
	})

	t.Run("filtering is idempotent", func(t *testing.T) {
		f := models.FilterState{
			Types:     []string{models.JobTypeFullTime},
			SortBy:    models.SortSalaryHigh,
			SalaryMax: models.SalaryCeiling,
		}
		once := Filter(catalog, f)
		twice := Filter(once, f)
		assert.Equal(t, once, twice)
	})

	t.Run("input slice is never mutated", func(t *testing.T) {
		before := make([]models.JobPosting, len(catalog))
		copy(before, catalog)
		Filter(catalog, models.FilterState{SortBy: models.SortSalaryLow, SalaryMax: models.SalaryCeiling})
		assert.Equal(t, before, catalog)
	})
}

func TestSortModes(t *testing.T) {
	catalog := SeedPostings()

	t.Run("newest sorts by ascending age", func(t *testing.T) {
		got := Filter(catalog, models.FilterState{SortBy: models.SortNewest, SalaryMax: models.SalaryCeiling})
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, PostedDays(got[i-1].Posted), PostedDays(got[i].Posted))
		}
	})

	t.Run("salary-high sorts descending", func(t *testing.T) {
		got := Filter(catalog, models.FilterState{SortBy: models.SortSalaryHigh, SalaryMax: models.SalaryCeiling})
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, SalaryValue(got[i-1].Salary), SalaryValue(got[i].Salary))
		}
	})

	t.Run("salary-low sorts ascending", func(t *testing.T) {
		got := Filter(catalog, models.FilterState{SortBy: models.SortSalaryLow, SalaryMax: models.SalaryCeiling})
		for i := 1; i < len(got); i++ {
			assert.LessOrEqual(t, SalaryValue(got[i-1].Salary), SalaryValue(got[i].Salary))
		}
	})
}

func TestNormalizeFilters(t *testing.T) {
	t.Run("zero value gets defaults", func(t *testing.T) {
		got, err := NormalizeFilters(models.FilterState{})
		require.NoError(t, err)
		assert.Equal(t, models.SortRelevance, got.SortBy)
		assert.Equal(t, models.SalaryCeiling, got.SalaryMax)
	})

	t.Run("valid selections pass through deduplicated", func(t *testing.T) {
		got, err := NormalizeFilters(models.FilterState{
			Types:      []string{models.JobTypeRemote, models.JobTypeRemote, " Full-time "},
			Experience: []string{models.ExperienceSenior},
			Categories: []string{"Technology"},
			DatePosted: models.DatePostedPastWeek,
			SortBy:     models.SortNewest,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{models.JobTypeRemote, models.JobTypeFullTime}, got.Types)
	})

	t.Run("out of vocabulary values are rejected", func(t *testing.T) {
		cases := []models.FilterState{
			{Types: []string{"Freelance"}},
			{Experience: []string{"Guru"}},
			{Categories: []string{"Astrology"}},
			{DatePosted: "90d"},
			{SortBy: "alphabetical"},
			{SalaryMin: 150, SalaryMax: 100},
		}
		for _, f := range cases {
			_, err := NormalizeFilters(f)
			assert.ErrorIs(t, err, ErrInvalidFilterFormat)
		}
	})
}
