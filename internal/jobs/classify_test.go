// internal/jobs/classify_test.go
package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jobboard-api/internal/models"
)

func TestExperienceLevel(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"Junior Data Analyst", models.ExperienceEntry},
		{"Software Intern", models.ExperienceEntry},
		{"Associate Consultant", models.ExperienceEntry},
		{"Senior React Developer", models.ExperienceSenior},
		{"Lead Designer", models.ExperienceSenior},
		{"Principal Engineer", models.ExperienceSenior},
		{"Engineering Director", models.ExperienceExecutive},
		{"VP of Sales", models.ExperienceExecutive},
		{"Chief Technology Officer", models.ExperienceExecutive},
		{"Head of Finance", models.ExperienceExecutive},
		{"Product Designer", models.ExperienceMid},
		{"Marketing Manager", models.ExperienceMid},
		// Precedence: executive keyword outranks senior, senior outranks entry.
		{"Senior Director of Operations", models.ExperienceExecutive},
		{"Senior Associate", models.ExperienceSenior},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExperienceLevel(tt.title))
		})
	}
}

func TestMatchesCategory(t *testing.T) {
	job := func(title string, skills ...string) models.JobPosting {
		return models.JobPosting{Title: title, Skills: skills}
	}

	tests := []struct {
		name     string
		job      models.JobPosting
		category string
		expected bool
	}{
		{"developer title is technology", job("React Developer"), "Technology", true},
		{"skill match counts", job("Generalist", "Python"), "Technology", true},
		{"design title", job("Product Designer"), "Design", true},
		{"finance skill", job("Advisor", "Accounting"), "Finance", true},
		{"no keyword overlap", job("Barista"), "Technology", false},
		{"unknown category never matches", job("React Developer"), "Astrology", false},
		{"case insensitive", job("SENIOR DEVOPS ENGINEER"), "Technology", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MatchesCategory(tt.job, tt.category))
		})
	}
}
