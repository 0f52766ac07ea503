package handlers

import (
	"jobtrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AdvisoryHandler exposes the career advisory endpoints.
type AdvisoryHandler struct {
	service *services.AdvisoryService
}

// NewAdvisoryHandler creates a new AdvisoryHandler.
func NewAdvisoryHandler(service *services.AdvisoryService) *AdvisoryHandler {
	return &AdvisoryHandler{service: service}
}

// RegisterRoutes registers the advisory routes.
func (h *AdvisoryHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	router.Post("/interview-tips", requireAuth, h.HandleInterviewTips)
	router.Post("/analyze-resume", requireAuth, h.HandleAnalyzeResume)
	router.Post("/generate-cover-letter", requireAuth, h.HandleCoverLetter)
	router.Post("/analyze-skills", requireAuth, h.HandleAnalyzeSkills)
}

type InterviewTipsRequest struct {
	Role string `json:"role" validate:"required,max=200"`
}

// AnalyzeResumeRequest may omit Resume to analyse the stored resume.
type AnalyzeResumeRequest struct {
	Resume string `json:"resume"`
}

type CoverLetterRequest struct {
	Resume  string `json:"resume"`
	Company string `json:"company" validate:"required,max=200"`
	Role    string `json:"role" validate:"required,max=200"`
}

// AnalyzeSkillsRequest may omit either list to use the stored skill profile.
type AnalyzeSkillsRequest struct {
	Skills             []string `json:"skills" validate:"max=100"`
	InterestedJobRoles []string `json:"interestedJobRoles" validate:"max=50"`
}

func (h *AdvisoryHandler) HandleInterviewTips(c *fiber.Ctx) error {
	var req InterviewTipsRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	tips, err := h.service.InterviewTips(c.UserContext(), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(tips)
}

func (h *AdvisoryHandler) HandleAnalyzeResume(c *fiber.Ctx) error {
	var req AnalyzeResumeRequest
	if len(c.Body()) > 0 {
		if err := bindJSON(c, &req); err != nil {
			return err
		}
	}
	analysis, err := h.service.AnalyzeResume(c.UserContext(), currentUsername(c), req.Resume)
	if err != nil {
		return err
	}
	return c.JSON(analysis)
}

func (h *AdvisoryHandler) HandleCoverLetter(c *fiber.Ctx) error {
	var req CoverLetterRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	letter, err := h.service.CoverLetter(c.UserContext(), currentUsername(c), req.Resume, req.Company, req.Role)
	if err != nil {
		return err
	}
	return c.JSON(letter)
}

func (h *AdvisoryHandler) HandleAnalyzeSkills(c *fiber.Ctx) error {
	var req AnalyzeSkillsRequest
	if len(c.Body()) > 0 {
		if err := bindJSON(c, &req); err != nil {
			return err
		}
	}
	analysis, err := h.service.AnalyzeSkills(c.UserContext(), currentUsername(c), req.Skills, req.InterestedJobRoles)
	if err != nil {
		return err
	}
	return c.JSON(analysis)
}
