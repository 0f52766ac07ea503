package handlers

import (
	"jobtrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SkillHandler handles HTTP requests for the caller's skill profile.
type SkillHandler struct {
	service *services.SkillService
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(service *services.SkillService) *SkillHandler {
	return &SkillHandler{service: service}
}

// RegisterRoutes registers the skill profile routes.
func (h *SkillHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	router.Get("/getskills", requireAuth, h.HandleGetSkills)
	router.Post("/addskills", requireAuth, h.HandleAddSkills)
	router.Patch("/updateskills", requireAuth, h.HandleUpdateSkills)
}

// SkillProfileRequest is shared by the full and partial update endpoints.
// A nil field was not present in the JSON body.
type SkillProfileRequest struct {
	Skills             *[]string `json:"skills" validate:"omitempty,max=100,dive,max=100"`
	InterestedJobRoles *[]string `json:"interestedJobRoles" validate:"omitempty,max=50,dive,max=200"`
	Preference         *string   `json:"preference" validate:"omitempty,preference"`
	Experience         *int      `json:"experience" validate:"omitempty,gte=0"`
	Location           *string   `json:"location" validate:"omitempty,max=200"`
}

func (r SkillProfileRequest) input() services.SkillProfileInput {
	return services.SkillProfileInput{
		Skills:             r.Skills,
		InterestedJobRoles: r.InterestedJobRoles,
		Preference:         r.Preference,
		Experience:         r.Experience,
		Location:           r.Location,
	}
}

// HandleGetSkills returns the caller's profile, or the default profile when none exists.
func (h *SkillHandler) HandleGetSkills(c *fiber.Ctx) error {
	profile, err := h.service.GetProfile(currentUsername(c))
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// HandleAddSkills creates or fully replaces the caller's profile.
func (h *SkillHandler) HandleAddSkills(c *fiber.Ctx) error {
	var req SkillProfileRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	profile, err := h.service.UpsertProfile(currentUsername(c), req.input())
	if err != nil {
		return err
	}
	return c.JSON(profile)
}

// HandleUpdateSkills applies the fields present in the body to an existing profile.
func (h *SkillHandler) HandleUpdateSkills(c *fiber.Ctx) error {
	var req SkillProfileRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}
	profile, err := h.service.PatchProfile(currentUsername(c), req.input())
	if err != nil {
		return err
	}
	return c.JSON(profile)
}
