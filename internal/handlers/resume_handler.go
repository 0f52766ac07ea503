package handlers

import (
	"log"

	"jobtrack/internal/services"
	"jobtrack/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// resumeFormField is the multipart field carrying the uploaded PDF.
const resumeFormField = "resume"

// ResumeHandler handles resume upload, download and deletion.
type ResumeHandler struct {
	service *services.ResumeService
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(service *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{service: service}
}

// RegisterRoutes registers the resume routes.
func (h *ResumeHandler) RegisterRoutes(router fiber.Router, requireAuth fiber.Handler) {
	router.Post("/upload-resume", requireAuth, h.HandleUpload)
	router.Get("/get-resume", requireAuth, h.HandleDownload)
	router.Delete("/delete-resume", requireAuth, h.HandleDelete)
}

// HandleUpload stores the uploaded PDF as the caller's resume, replacing any previous one.
func (h *ResumeHandler) HandleUpload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile(resumeFormField)
	if err != nil {
		return apperror.BadRequest("No file uploaded")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperror.BadRequest("Could not read uploaded file")
	}
	defer file.Close()

	id, err := h.service.Upload(c.UserContext(), currentUsername(c), file, fileHeader.Size, fileHeader.Header.Get(fiber.HeaderContentType))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Resume uploaded successfully",
		"fileId":  id,
	})
}

// HandleDownload streams the caller's resume as an attachment.
func (h *ResumeHandler) HandleDownload(c *fiber.Ctx) error {
	resume, err := h.service.Fetch(c.UserContext(), currentUsername(c))
	if err != nil {
		return err
	}

	c.Attachment(resume.Filename)
	c.Set(fiber.HeaderContentType, resume.ContentType)
	size := int(resume.Size)
	if size <= 0 {
		size = -1
	}
	// The response writer closes the body once sent or when the client goes away.
	if err := c.SendStream(resume.Body, size); err != nil {
		resume.Body.Close()
		log.Printf("Failed to stream resume of %s: %v", currentUsername(c), err)
		return apperror.Storage(err)
	}
	return nil
}

func (h *ResumeHandler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), currentUsername(c)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Resume deleted successfully"})
}
