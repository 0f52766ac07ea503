package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobtrack/internal/advisory"
	"jobtrack/internal/config"
	"jobtrack/internal/database"
	"jobtrack/internal/ratelimit"
	"jobtrack/internal/repositories"
	"jobtrack/internal/server"
	"jobtrack/internal/services"
	"jobtrack/pkg/blobstore"
	"jobtrack/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
)

// App is the assembled process: the HTTP server plus the resources it owns.
type App struct {
	Fiber   *fiber.App
	closers []func() error
}

// Close releases every resource opened by NewApp, in reverse order.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewApp builds repositories, blob store, messaging, rate limiting and the advisory
// client from cfg and wires them into the HTTP server.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{}
	fail := func(err error) (*App, error) {
		app.Close()
		return nil, err
	}

	var (
		userRepo  repositories.UserRepository
		jobRepo   repositories.JobRepository
		skillRepo repositories.SkillProfileRepository
	)
	if cfg.DBDriver == "memory" {
		log.Println("Using in-memory repositories; data is lost on restart")
		userRepo = repositories.NewMemoryUserRepository()
		jobRepo = repositories.NewMemoryJobRepository()
		skillRepo = repositories.NewMemorySkillProfileRepository()
	} else {
		db, err := database.Open(cfg.DBDriver, cfg.DBDSN)
		if err != nil {
			return fail(err)
		}
		app.closers = append(app.closers, func() error { return database.Close(db) })
		userRepo = repositories.NewGORMUserRepository(db)
		jobRepo = repositories.NewGORMJobRepository(db)
		skillRepo = repositories.NewGORMSkillProfileRepository(db)
	}

	store, err := newBlobStore(ctx, cfg)
	if err != nil {
		return fail(err)
	}

	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{
			URL:    cfg.RabbitMQURL,
			Queues: []string{rabbitmq.JobEventsQueue, rabbitmq.ContactMessagesQueue},
		})
		if err != nil {
			// Messaging is fire-and-forget; the API works without it.
			log.Printf("RabbitMQ unavailable, events will not be published: %v", err)
		} else {
			publisher = mqClient
			app.closers = append(app.closers, mqClient.Close)
		}
	} else {
		log.Println("RABBITMQ_URL not set, events will not be published")
	}

	var limiter *ratelimit.FixedWindowLimiter
	if cfg.RedisAddr != "" {
		limiter, err = ratelimit.NewRedisFixedWindowLimiter(cfg.RedisAddr, cfg.RedisPassword, "jobtrack:ratelimit", cfg.AuthRateLimit, cfg.AuthRateWindow)
		if err != nil {
			return fail(fmt.Errorf("failed to create rate limiter: %w", err))
		}
		app.closers = append(app.closers, limiter.Close)
	} else {
		log.Println("REDIS_ADDR not set, login and signup are not rate limited")
	}

	var generator advisory.Generator = advisory.UnconfiguredGenerator{}
	if cfg.GeminiAPIKey != "" {
		gemini, err := advisory.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return fail(err)
		}
		generator = gemini
	} else {
		log.Println("GEMINI_API_KEY not set, advisory endpoints will answer 502")
	}

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	skillService := services.NewSkillService(skillRepo)
	resumeService := services.NewResumeService(userRepo, store)

	deps := server.Deps{
		Auth:           authService,
		Jobs:           services.NewJobService(jobRepo, publisher),
		Skills:         skillService,
		Resumes:        resumeService,
		Advisory:       services.NewAdvisoryService(advisory.NewClient(generator, cfg.AdvisoryTimeout), resumeService, skillService),
		Contact:        services.NewContactService(publisher),
		AllowOrigins:   cfg.CORSAllowOrigin,
		MaxUploadBytes: cfg.MaxUploadBytes,
		AccessLog:      true,
	}
	if limiter != nil {
		deps.Limiter = limiter
	}

	app.Fiber = server.New(deps)
	return app, nil
}

func newBlobStore(ctx context.Context, cfg *config.Config) (blobstore.Store, error) {
	switch cfg.BlobStore {
	case "minio":
		store, err := blobstore.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialise minio blob store: %w", err)
		}
		return store, nil
	case "s3":
		store, err := blobstore.NewS3Store(ctx, blobstore.S3Options{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialise s3 blob store: %w", err)
		}
		return store, nil
	default:
		log.Println("Using in-memory blob store; resumes are lost on restart")
		return blobstore.NewMemoryStore(), nil
	}
}
