package handlers

import (
	"jobtrack/internal/models"
	"jobtrack/internal/services"
	"jobtrack/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// JobHandler handles HTTP requests for job applications.
type JobHandler struct {
	service *services.JobService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service *services.JobService) *JobHandler {
	return &JobHandler{
		service: service,
	}
}

// RegisterRoutes registers the job routes; every one requires a session.
func (h *JobHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	router.Get("/getjobs", requireAuth, h.HandleGetJobs)
	router.Post("/addjob", requireAuth, h.HandleAddJob)
	router.Patch("/updatejob/:id", requireAuth, h.HandleUpdateJobStatus)
	router.Get("/jobstats", requireAuth, h.HandleJobStats)
	router.Get("/upcoming-interviews", requireAuth, h.HandleUpcomingInterviews)
}

// AddJobRequest represents the request body for adding a job.
type AddJobRequest struct {
	Username       string `json:"username" validate:"omitempty,username"`
	CompanyName    string `json:"companyName" validate:"required,max=200"`
	Role           string `json:"role" validate:"required,max=200"`
	SkillsRequired string `json:"skillsRequired" validate:"max=2000"`
	InterviewDate  string `json:"interviewDate" validate:"required"`
	Status         string `json:"status" validate:"omitempty,jobstatus"`
}

// UpdateJobStatusRequest represents the request body for a status change.
type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required,jobstatus"`
}

// HandleGetJobs lists the caller's jobs.
func (h *JobHandler) HandleGetJobs(c *fiber.Ctx) error {
	jobs, err := h.service.ListJobs(currentUsername(c))
	if err != nil {
		return err
	}
	return c.JSON(jobs)
}

// HandleAddJob creates a job owned by the caller.
func (h *JobHandler) HandleAddJob(c *fiber.Ctx) error {
	var req AddJobRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	interviewDate, err := services.ParseInterviewDate(req.InterviewDate)
	if err != nil {
		return apperror.Validation("Validation failed", map[string]string{
			"interviewDate": "must be a valid date or date-time",
		})
	}

	job, err := h.service.AddJob(currentUsername(c), services.NewJob{
		Username:       req.Username,
		CompanyName:    req.CompanyName,
		Role:           req.Role,
		SkillsRequired: req.SkillsRequired,
		InterviewDate:  interviewDate,
		Status:         models.JobStatus(req.Status),
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Job added successfully",
		"job":     job,
	})
}

// HandleUpdateJobStatus changes the status of one of the caller's jobs.
func (h *JobHandler) HandleUpdateJobStatus(c *fiber.Ctx) error {
	var req UpdateJobStatusRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	job, err := h.service.UpdateStatus(currentUsername(c), c.Params("id"), models.JobStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Job status updated",
		"job":     job,
	})
}

func (h *JobHandler) HandleJobStats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(currentUsername(c))
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func (h *JobHandler) HandleUpcomingInterviews(c *fiber.Ctx) error {
	jobs, err := h.service.UpcomingInterviews(currentUsername(c))
	if err != nil {
		return err
	}
	return c.JSON(jobs)
}
