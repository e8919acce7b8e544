// internal/models/filter.go
package models

// Experience level display vocabulary.
const (
	ExperienceEntry     = "Entry Level"
	ExperienceMid       = "Mid Level"
	ExperienceSenior    = "Senior"
	ExperienceExecutive = "Executive"
)

// ExperienceLevels in filter-sidebar order.
var ExperienceLevels = []string{
	ExperienceEntry, ExperienceMid, ExperienceSenior, ExperienceExecutive,
}

// JobCategories is the fixed category vocabulary.
var JobCategories = []string{
	"Technology", "Design", "Finance", "Healthcare", "Education",
	"Real Estate", "Marketing", "Engineering", "Sales", "Media",
	"Customer Service", "Management",
}

// Date-posted buckets. Each bucket is a maximum age in days; AnyTime is
// unrestricted.
const (
	DatePostedAnyTime   = ""
	DatePostedToday     = "24h"
	DatePostedPastWeek  = "7d"
	DatePostedPastMonth = "30d"
)

// Sort modes for the pipeline. Exactly one applies per run.
const (
	SortRelevance  = "relevance"
	SortNewest     = "newest"
	SortSalaryHigh = "salary-high"
	SortSalaryLow  = "salary-low"
)

// SortModes is the accepted sort vocabulary.
var SortModes = []string{SortRelevance, SortNewest, SortSalaryHigh, SortSalaryLow}

// FilterState is the transient set of user-chosen search parameters. Zero
// value means "no filtering, relevance order". Selected sets contain only
// values from their fixed vocabularies; unknown values are rejected at the
// parse boundary, not here.
type FilterState struct {
	Query      string   `json:"query"`
	Location   string   `json:"location"`
	Types      []string `json:"types"`
	Experience []string `json:"experience"`
	Categories []string `json:"categories"`
	DatePosted string   `json:"datePosted"`
	SalaryMin  int      `json:"salaryMin"`
	SalaryMax  int      `json:"salaryMax"`
	SortBy     string   `json:"sortBy"`
}

// SalaryCeiling is the slider maximum in thousands; a max at the ceiling
// means "unbounded above".
const SalaryCeiling = 200
