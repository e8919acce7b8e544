// internal/jobs/classify.go
package jobs

import (
	"strings"

	"jobboard-api/internal/models"
)

// Keyword heuristics for experience and category. Best-effort by design:
// a title can always be worded around them, so classification feeds
// convenience filters, never a guaranteed taxonomy.

var executiveKeywords = []string{"director", "vp", "chief", "head"}
var seniorKeywords = []string{"senior", "lead", "principal"}
var entryKeywords = []string{"junior", "intern", "associate"}

// ExperienceLevel derives the experience bucket from the title. Executive
// keywords win over Senior, Senior over Entry ("Senior Director" reads as
// Executive); anything unmatched is Mid Level.
func ExperienceLevel(title string) string {
	t := strings.ToLower(title)

	if containsAny(t, executiveKeywords) {
		return models.ExperienceExecutive
	}
	if containsAny(t, seniorKeywords) {
		return models.ExperienceSenior
	}
	if containsAny(t, entryKeywords) {
		return models.ExperienceEntry
	}
	return models.ExperienceMid
}

// categoryKeywords maps each category onto the terms that suggest it.
var categoryKeywords = map[string][]string{
	"Technology": {"developer", "engineer", "software", "data", "devops", "react", "node", "python", "cloud"},
	"Design":     {"design", "designer", "ux", "ui", "figma", "creative"},
	"Finance":    {"finance", "financial", "accountant", "accounting", "banking", "investment"},
	"Healthcare": {"health", "medical", "nurse", "clinical", "care"},
	"Education":  {"teacher", "education", "instructor", "tutor", "curriculum"},
	"Real Estate": {"real estate", "property", "realtor", "leasing"},
	"Marketing":  {"marketing", "seo", "brand", "content", "growth"},
	"Engineering": {"mechanical", "electrical", "civil", "hardware", "manufacturing"},
	"Sales":      {"sales", "account executive", "business development"},
	"Media":      {"media", "video", "journalist", "editor", "photographer"},
	"Customer Service": {"support", "customer service", "customer success", "helpdesk"},
	"Management": {"manager", "management", "operations", "scrum"},
}

// MatchesCategory reports whether the job's title or skills suggest the
// category.
func MatchesCategory(job models.JobPosting, category string) bool {
	keywords, ok := categoryKeywords[category]
	if !ok {
		return false
	}

	haystack := strings.ToLower(job.Title)
	for _, skill := range job.Skills {
		haystack += " " + strings.ToLower(skill)
	}

	return containsAny(haystack, keywords)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
