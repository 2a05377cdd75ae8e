package validation

import (
	"strings"

	"quizcraft/internal/domain"
	"quizcraft/internal/dto"
)

// maxContentLength bounds request payloads; OCR dumps beyond this are
// rejected rather than silently truncated.
const maxContentLength = 1 << 20

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateRequest validates the question generation request
func (v *Validator) ValidateGenerateRequest(req *dto.GenerateRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if len(req.Content) > maxContentLength {
		errors = append(errors, domain.NewOutOfRangeError("content", len(req.Content), 0, maxContentLength))
	}

	if req.Count < 0 || req.Count > 50 {
		errors = append(errors, domain.NewOutOfRangeError("count", req.Count, 1, 50))
	}

	if req.MinDifficulty < 0 || req.MinDifficulty > 1 {
		errors = append(errors, domain.NewOutOfRangeError("min_difficulty", req.MinDifficulty, 0, 1))
	}
	if req.MaxDifficulty < 0 || req.MaxDifficulty > 1 {
		errors = append(errors, domain.NewOutOfRangeError("max_difficulty", req.MaxDifficulty, 0, 1))
	}

	for _, raw := range req.QuestionTypes {
		if _, err := domain.ParseQuestionType(raw); err != nil {
			errors = append(errors, domain.NewInvalidFormatError("question_types", raw))
		}
	}

	return errors
}

// ValidateContent validates the payload of the standalone keyword and
// segmentation endpoints.
func (v *Validator) ValidateContent(content string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(content) == "" {
		errors = append(errors, domain.NewMissingFieldError("content"))
	} else if len(content) > maxContentLength {
		errors = append(errors, domain.NewOutOfRangeError("content", len(content), 1, maxContentLength))
	}

	return errors
}
