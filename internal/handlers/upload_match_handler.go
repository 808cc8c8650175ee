package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"apoorvcs/resume-matcher/internal/services"
)

type UploadMatchHandler struct {
	storageService services.StorageService
	documentParser services.DocumentParserService
	matcher        services.MatcherService
	maxFileSize    int64
}

func NewUploadMatchHandler(
	storageService services.StorageService,
	documentParser services.DocumentParserService,
	matcher services.MatcherService,
	maxFileSize int64,
) *UploadMatchHandler {
	return &UploadMatchHandler{
		storageService: storageService,
		documentParser: documentParser,
		matcher:        matcher,
		maxFileSize:    maxFileSize,
	}
}

// HandleUploadMatch handles POST /match/upload. It accepts a resume
// file (PDF or DOCX) plus a jd_text form field, extracts the resume
// text and runs the same matching pipeline as the JSON endpoint. The
// uploaded file is scratch data and is removed before responding.
func (h *UploadMatchHandler) HandleUploadMatch(c *fiber.Ctx) error {
	jdText := c.FormValue("jd_text")
	if jdText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jd_text is required",
		})
	}

	resumeFile, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	if resumeFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(resumeFile, "resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}
	defer h.storageService.DeleteFile(filename)

	resumeText, err := h.documentParser.ExtractText(filePath)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to extract resume text: %v", err),
		})
	}

	report, err := h.matcher.GenerateMatchReport(c.Context(), jdText, resumeText)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
