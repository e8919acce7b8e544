// internal/jobs/normalizer_test.go
package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"jobboard-api/internal/models"
)

func intPtr(v int) *int { return &v }

func TestMapJobType(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{"full-time code", "full-time", models.JobTypeFullTime},
		{"part-time code", "part-time", models.JobTypePartTime},
		{"remote code", "remote", models.JobTypeRemote},
		{"contract code", "contract", models.JobTypeContract},
		{"internship code", "internship", models.JobTypeInternship},
		{"hybrid code", "hybrid", models.JobTypeHybrid},
		{"mixed case", "Full-Time", models.JobTypeFullTime},
		{"surrounding whitespace", "  remote  ", models.JobTypeRemote},
		{"unknown code defaults", "freelance", models.JobTypeFullTime},
		{"empty code defaults", "", models.JobTypeFullTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapJobType(tt.code))
		})
	}
}

func TestFormatSalary(t *testing.T) {
	tests := []struct {
		name     string
		min      *int
		max      *int
		expected string
	}{
		{"both bounds", intPtr(80000), intPtr(120000), "$80k - $120k"},
		{"min only", intPtr(90000), nil, "$90k+"},
		{"max only", nil, intPtr(60000), "Up to $60k"},
		{"neither bound", nil, nil, "Competitive"},
		{"rounds to nearest thousand", intPtr(82500), intPtr(119600), "$83k - $120k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatSalary(tt.min, tt.max))
		})
	}
}

func TestFormatPosted(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		ageDays  int
		expected string
	}{
		{"same day", 0, "Today"},
		{"one day", 1, "1 day ago"},
		{"five days", 5, "5 days ago"},
		{"ten days", 10, "1 week ago"},
		{"twenty days", 20, "2 weeks ago"},
		{"forty five days", 45, "1 month ago"},
		{"ninety days", 90, "3 months ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			createdAt := now.AddDate(0, 0, -tt.ageDays)
			assert.Equal(t, tt.expected, FormatPosted(createdAt, now))
		})
	}

	t.Run("future timestamp clamps to today", func(t *testing.T) {
		createdAt := now.Add(48 * time.Hour)
		assert.Equal(t, "Today", FormatPosted(createdAt, now))
	})
}

func TestPostedDays(t *testing.T) {
	tests := []struct {
		posted   string
		expected int
	}{
		{"Today", 0},
		{"1 day ago", 1},
		{"5 days ago", 5},
		{"1 week ago", 7},
		{"2 weeks ago", 14},
		{"1 month ago", 30},
		{"3 months ago", 90},
		{"something odd", 0},
	}

	for _, tt := range tests {
		t.Run(tt.posted, func(t *testing.T) {
			assert.Equal(t, tt.expected, PostedDays(tt.posted))
		})
	}
}

func TestNormalize(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("fully populated row", func(t *testing.T) {
		raw := &models.RawJob{
			ID:           "job-1",
			Title:        "Backend Engineer",
			Company:      "Acme",
			CompanyLogo:  "https://example.com/logo.png",
			Location:     "Berlin",
			JobType:      "remote",
			SalaryMin:    intPtr(100000),
			SalaryMax:    intPtr(140000),
			Description:  "Build services.",
			Skills:       []string{"Go", "Postgres"},
			Requirements: []string{"3+ years"},
			Benefits:     []string{"Remote"},
			Featured:     true,
			CreatedAt:    now.AddDate(0, 0, -2),
		}

		got := Normalize(raw, now)

		assert.Equal(t, "job-1", got.ID)
		assert.Equal(t, models.JobTypeRemote, got.Type)
		assert.Equal(t, "$100k - $140k", got.Salary)
		assert.Equal(t, "2 days ago", got.Posted)
		assert.True(t, got.Featured)
		assert.Equal(t, []string{"Go", "Postgres"}, got.Skills)
		assert.Equal(t, "Build services.", got.About)
	})

	t.Run("sparse row defaults every optional field", func(t *testing.T) {
		raw := &models.RawJob{
			ID:        "job-2",
			Title:     "Analyst",
			Company:   "Acme",
			Location:  "NYC",
			CreatedAt: now,
		}

		got := Normalize(raw, now)

		assert.Equal(t, models.JobTypeFullTime, got.Type)
		assert.Equal(t, "Competitive", got.Salary)
		assert.Equal(t, "Today", got.Posted)
		assert.NotNil(t, got.Skills)
		assert.Empty(t, got.Skills)
		assert.NotNil(t, got.Requirements)
		assert.NotNil(t, got.Benefits)
	})
}
