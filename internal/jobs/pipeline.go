// internal/jobs/pipeline.go
package jobs

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"jobboard-api/internal/models"
)

// salaryPattern captures the leading thousands value of a salary display
// string ("$120k - $180k" -> 120). Strings without one count as 0.
var salaryPattern = regexp.MustCompile(`\$(\d+)k`)

// SalaryValue extracts the leading salary number in thousands.
func SalaryValue(salary string) int {
	m := salaryPattern.FindStringSubmatch(salary)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// Filter applies every active filter conjunctively and then orders the
// survivors by the requested sort mode. Pure: the input slice is never
// mutated and the output is always a subsequence of the input (stable
// relative order except where a sort mode reorders). An empty result is a
// valid output.
func Filter(jobs []models.JobPosting, f models.FilterState) []models.JobPosting {
	result := make([]models.JobPosting, 0, len(jobs))

	for _, job := range jobs {
		if !matchesQuery(job, f.Query) {
			continue
		}
		if !matchesLocation(job, f.Location) {
			continue
		}
		if len(f.Types) > 0 && !contains(f.Types, job.Type) {
			continue
		}
		if len(f.Experience) > 0 && !contains(f.Experience, ExperienceLevel(job.Title)) {
			continue
		}
		if len(f.Categories) > 0 && !matchesAnyCategory(job, f.Categories) {
			continue
		}
		if !matchesDatePosted(job, f.DatePosted) {
			continue
		}
		if !matchesSalaryRange(job, f.SalaryMin, f.SalaryMax) {
			continue
		}
		result = append(result, job)
	}

	sortJobs(result, f.SortBy)
	return result
}

// matchesQuery checks the free-text query against title, company, any
// skill, and description, case-insensitively.
func matchesQuery(job models.JobPosting, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	if strings.Contains(strings.ToLower(job.Title), q) ||
		strings.Contains(strings.ToLower(job.Company), q) ||
		strings.Contains(strings.ToLower(job.Description), q) {
		return true
	}
	for _, skill := range job.Skills {
		if strings.Contains(strings.ToLower(skill), q) {
			return true
		}
	}
	return false
}

// matchesLocation checks the location text as a substring, or treats a
// query mentioning "remote" as matching Remote-type jobs regardless of
// their location field.
func matchesLocation(job models.JobPosting, location string) bool {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		return true
	}

	if strings.Contains(strings.ToLower(job.Location), loc) {
		return true
	}
	return strings.Contains(loc, "remote") && job.Type == models.JobTypeRemote
}

func matchesAnyCategory(job models.JobPosting, categories []string) bool {
	for _, c := range categories {
		if MatchesCategory(job, c) {
			return true
		}
	}
	return false
}

func matchesDatePosted(job models.JobPosting, bucket string) bool {
	var maxDays int
	switch bucket {
	case models.DatePostedToday:
		maxDays = 1
	case models.DatePostedPastWeek:
		maxDays = 7
	case models.DatePostedPastMonth:
		maxDays = 30
	default:
		return true
	}
	return PostedDays(job.Posted) <= maxDays
}

func matchesSalaryRange(job models.JobPosting, min, max int) bool {
	if min <= 0 && (max <= 0 || max >= models.SalaryCeiling) {
		return true
	}
	v := SalaryValue(job.Salary)
	if v < min {
		return false
	}
	if max > 0 && max < models.SalaryCeiling && v > max {
		return false
	}
	return true
}

func sortJobs(jobs []models.JobPosting, mode string) {
	switch mode {
	case models.SortNewest:
		sort.SliceStable(jobs, func(i, j int) bool {
			return PostedDays(jobs[i].Posted) < PostedDays(jobs[j].Posted)
		})
	case models.SortSalaryHigh:
		sort.SliceStable(jobs, func(i, j int) bool {
			return SalaryValue(jobs[i].Salary) > SalaryValue(jobs[j].Salary)
		})
	case models.SortSalaryLow:
		sort.SliceStable(jobs, func(i, j int) bool {
			return SalaryValue(jobs[i].Salary) < SalaryValue(jobs[j].Salary)
		})
	default:
		// Relevance: featured postings first, input order otherwise.
		sort.SliceStable(jobs, func(i, j int) bool {
			return jobs[i].Featured && !jobs[j].Featured
		})
	}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
