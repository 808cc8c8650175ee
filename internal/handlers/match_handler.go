package handlers

import (
	"github.com/gofiber/fiber/v2"

	"apoorvcs/resume-matcher/internal/models"
	"apoorvcs/resume-matcher/internal/services"
)

type MatchHandler struct {
	matcher services.MatcherService
}

func NewMatchHandler(matcher services.MatcherService) *MatchHandler {
	return &MatchHandler{
		matcher: matcher,
	}
}

// HandleMatch handles POST /match
func (h *MatchHandler) HandleMatch(c *fiber.Ctx) error {
	var req models.MatchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JDText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jd_text is required",
		})
	}

	if req.ResumeText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_text is required",
		})
	}

	report, err := h.matcher.GenerateMatchReport(c.Context(), req.JDText, req.ResumeText)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
