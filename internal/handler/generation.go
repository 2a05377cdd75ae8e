package handler

import (
	"quizcraft/internal/dto"
	"quizcraft/internal/logger"
	"quizcraft/internal/service"
	"quizcraft/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GenerationHandler handles question generation HTTP requests
type GenerationHandler struct {
	service   service.GenerationService
	validator *validation.Validator
}

// NewGenerationHandler creates a new GenerationHandler instance
func NewGenerationHandler(service service.GenerationService) *GenerationHandler {
	return &GenerationHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GenerateQuestions handles POST /api/questions/generate
func (h *GenerationHandler) GenerateQuestions(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}

	if errs := h.validator.ValidateGenerateRequest(&req); len(errs) > 0 {
		return errs // handled by the ErrorHandler middleware
	}

	result, err := h.service.GenerateQuestions(c.Context(), &req)
	if err != nil {
		logger.Get().Error("Failed to generate questions",
			zap.Error(err),
			zap.String("title", req.Title),
			zap.Int("count", req.Count),
		)
		return err
	}

	return c.JSON(result)
}

// ExtractKeywords handles POST /api/keywords/extract
func (h *GenerationHandler) ExtractKeywords(c *fiber.Ctx) error {
	var req dto.ExtractKeywordsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}

	if errs := h.validator.ValidateContent(req.Content); len(errs) > 0 {
		return errs
	}

	result, err := h.service.ExtractKeywords(c.Context(), &req)
	if err != nil {
		logger.Get().Error("Failed to extract keywords", zap.Error(err))
		return err
	}

	return c.JSON(result)
}

// SegmentSentences handles POST /api/sentences/segment
func (h *GenerationHandler) SegmentSentences(c *fiber.Ctx) error {
	var req dto.SegmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST",
		})
	}

	if errs := h.validator.ValidateContent(req.Content); len(errs) > 0 {
		return errs
	}

	result, err := h.service.SegmentSentences(req.Content)
	if err != nil {
		logger.Get().Error("Failed to segment sentences", zap.Error(err))
		return err
	}

	return c.JSON(result)
}
