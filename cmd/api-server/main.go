// cmd/api-server/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"jobboard-api/internal/applications"
	"jobboard-api/internal/auth"
	commonauth "jobboard-api/internal/common/auth"
	commonaws "jobboard-api/internal/common/aws"
	"jobboard-api/internal/common/config"
	"jobboard-api/internal/common/database"
	"jobboard-api/internal/common/logger"
	"jobboard-api/internal/common/observability"
	"jobboard-api/internal/httpapi"
	"jobboard-api/internal/jobs"
	"jobboard-api/internal/notify"
	"jobboard-api/internal/savedjobs"
	"jobboard-api/internal/search"
	"jobboard-api/internal/store"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting api server...",
		zap.String("service", cfg.App.Name),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var redisClient *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redisClient, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return redisClient.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")
	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redisClient.Close()
	zapLog.Info("Redis connected successfully")

	// --- Init Elasticsearch when search is enabled ---
	var searchIndex *search.SearchIndex
	if cfg.Search.Enabled {
		var esClient *database.ElasticsearchClient
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping()
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}
		searchIndex = search.NewSearchIndex(esClient.Client, cfg.Search.Index, log)
		zapLog.Info("Elasticsearch connected successfully")
	}

	// --- Init notification channels when enabled ---
	var notifier *notify.Notifier
	if cfg.Notifications.Enabled {
		var email notify.EmailSender
		var sms notify.SMSSender
		if cfg.Notifications.AWS.SES.Enabled {
			sesClient, err := commonaws.NewSESClient(ctx, cfg.Notifications.AWS.Region)
			if err != nil {
				zapLog.Fatal("ses client init failed", zap.Error(err))
			}
			email = sesClient
		}
		if cfg.Notifications.AWS.SNS.Enabled {
			snsClient, err := commonaws.NewSNSClient(ctx, cfg.Notifications.AWS.Region)
			if err != nil {
				zapLog.Fatal("sns client init failed", zap.Error(err))
			}
			sms = snsClient
		}
		notifier = notify.New(email, sms, cfg.Notifications.AWS, log)
		zapLog.Info("Notification channels initialized")
	}

	// --- Wire repositories and services ---
	jobStore := store.NewJobStore(pg.DB)
	applicationStore := store.NewApplicationStore(pg.DB)
	savedJobStore := store.NewSavedJobStore(pg.DB)
	userStore := store.NewUserStore(pg.DB)

	var indexer jobs.Indexer
	var searcher jobs.Searcher
	if searchIndex != nil {
		indexer = searchIndex
		searcher = searchIndex
	}
	jobsService := jobs.NewService(jobStore, indexer, searcher, log)

	var appNotifier applications.Notifier
	if notifier != nil {
		appNotifier = notifier
	}
	applicationsService := applications.NewService(applicationStore, jobStore, jobsService, appNotifier, log)

	savedJobsService := savedjobs.NewService(savedJobStore, redisClient.Client, jobsService, log)

	tokens := commonauth.NewTokenManager(cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	sessionStore := auth.NewRedisSessionStore(redisClient.Client)
	authService := auth.NewService(userStore, sessionStore, tokens,
		cfg.Auth.BcryptCost, time.Duration(cfg.Auth.SessionTTLHours)*time.Hour, log)

	router := httpapi.NewRouter(httpapi.Deps{
		Config:       cfg,
		Jobs:         jobsService,
		Applications: applicationsService,
		SavedJobs:    savedJobsService,
		Auth:         authService,
		Search:       searchIndex,
		Obs:          obs,
		Log:          log,
	})

	server := httpapi.NewServer(cfg.Server.Addr(), router,
		time.Duration(cfg.Server.ReadTimeout)*time.Millisecond,
		time.Duration(cfg.Server.WriteTimeout)*time.Millisecond,
		log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	case sig := <-stop:
		zapLog.Info("shutdown signal received", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("api server stopped")
}
