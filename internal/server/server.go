package server

import (
	"time"

	"jobtrack/internal/handlers"
	"jobtrack/internal/middleware"
	"jobtrack/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Deps are the services the HTTP layer is built from. Limiter may be nil.
type Deps struct {
	Auth     *services.AuthService
	Jobs     *services.JobService
	Skills   *services.SkillService
	Resumes  *services.ResumeService
	Advisory *services.AdvisoryService
	Contact  *services.ContactService
	Limiter  middleware.Limiter

	AllowOrigins   string
	MaxUploadBytes int
	// AccessLog enables the per-request logger middleware.
	AccessLog bool
}

// New assembles the Fiber application: middleware chain, then routes.
func New(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "jobtrack",
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    deps.MaxUploadBytes,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	if deps.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} [${locals:requestid}] ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: deps.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Job tracker API is running")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	requireAuth := middleware.AuthRequired(deps.Auth)

	handlers.NewAuthHandler(deps.Auth).RegisterRoutes(app, requireAuth, middleware.RateLimit(deps.Limiter, "auth"))
	handlers.NewJobHandler(deps.Jobs).RegisterRoutes(app, requireAuth)
	handlers.NewSkillHandler(deps.Skills).RegisterRoutes(app, requireAuth)
	handlers.NewResumeHandler(deps.Resumes).RegisterRoutes(app, requireAuth)
	handlers.NewAdvisoryHandler(deps.Advisory).RegisterRoutes(app, requireAuth)
	handlers.NewContactHandler(deps.Contact).RegisterRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	return app
}
