// cmd/tools/seed-importer/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"jobboard-api/internal/common/config"
	"jobboard-api/internal/common/database"
	"jobboard-api/internal/common/logger"
	"jobboard-api/internal/jobs"
	"jobboard-api/internal/models"
	"jobboard-api/internal/store"
)

// typeCodes reverses the display labels back to stored job_type codes.
var typeCodes = map[string]string{
	models.JobTypeFullTime:   "full-time",
	models.JobTypePartTime:   "part-time",
	models.JobTypeRemote:     "remote",
	models.JobTypeContract:   "contract",
	models.JobTypeInternship: "internship",
	models.JobTypeHybrid:     "hybrid",
}

var salaryBounds = regexp.MustCompile(`\$(\d+)k`)

// parseSalary recovers dollar bounds from a display salary string. Hourly
// and free-text salaries come back unbounded.
func parseSalary(salary string) (*int, *int) {
	matches := salaryBounds.FindAllStringSubmatch(salary, 2)
	if len(matches) == 0 {
		return nil, nil
	}

	first, err := strconv.Atoi(matches[0][1])
	if err != nil {
		return nil, nil
	}
	minVal := first * 1000

	if strings.HasPrefix(strings.TrimSpace(salary), "Up to") {
		return nil, &minVal
	}
	if len(matches) == 1 {
		return &minVal, nil
	}

	second, err := strconv.Atoi(matches[1][1])
	if err != nil {
		return &minVal, nil
	}
	maxVal := second * 1000
	return &minVal, &maxVal
}

// toRawJob converts a seed posting into a storable row. The posting's
// relative age becomes an absolute created_at so the normalizer reproduces
// the same display bucket.
func toRawJob(posting models.JobPosting, now time.Time) *models.RawJob {
	code, ok := typeCodes[posting.Type]
	if !ok {
		code = "full-time"
	}
	salaryMin, salaryMax := parseSalary(posting.Salary)

	return &models.RawJob{
		ID:           uuid.NewString(),
		Title:        posting.Title,
		Company:      posting.Company,
		CompanyLogo:  posting.Logo,
		Location:     posting.Location,
		JobType:      code,
		SalaryMin:    salaryMin,
		SalaryMax:    salaryMax,
		Description:  posting.Description,
		Skills:       posting.Skills,
		Requirements: posting.Requirements,
		Benefits:     posting.Benefits,
		Status:       models.JobStatusActive,
		Featured:     posting.Featured,
		CreatedAt:    now.AddDate(0, 0, -jobs.PostedDays(posting.Posted)),
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, "console")
	defer zapLog.Sync()

	pg, err := database.NewPostgres(cfg.Database.Postgres)
	if err != nil {
		zapLog.Fatal("postgres init failed", zap.Error(err))
	}
	defer pg.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := pg.Ping(ctx); err != nil {
		zapLog.Fatal("postgres unreachable", zap.Error(err))
	}

	jobStore := store.NewJobStore(pg.DB)

	existing, err := jobStore.ListActive(ctx, 1)
	if err != nil {
		zapLog.Fatal("catalog check failed", zap.Error(err))
	}
	if len(existing) > 0 {
		zapLog.Info("jobs table already has postings, nothing to import")
		return
	}

	now := time.Now().UTC()
	imported := 0
	for _, posting := range jobs.SeedPostings() {
		raw := toRawJob(posting, now)
		if err := jobStore.Create(ctx, raw); err != nil {
			zapLog.Error("seed insert failed",
				zap.String("title", posting.Title),
				zap.Error(err),
			)
			continue
		}
		imported++
	}

	zapLog.Info("seed import finished",
		zap.Int("imported", imported),
		zap.Int("total", len(jobs.SeedPostings())),
	)
}
