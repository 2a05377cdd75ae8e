package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"quizcraft/internal/dto"
)

func TestValidateGenerateRequest(t *testing.T) {
	v := NewValidator()

	t.Run("ValidRequest", func(t *testing.T) {
		req := &dto.GenerateRequest{
			Title:         "Photosynthesis",
			Content:       "Plants convert light energy into chemical energy.",
			Count:         10,
			QuestionTypes: []string{"multiple-choice", "true-false"},
			MinDifficulty: 0.2,
			MaxDifficulty: 0.8,
		}
		assert.Empty(t, v.ValidateGenerateRequest(req))
	})

	t.Run("CountOutOfRange", func(t *testing.T) {
		req := &dto.GenerateRequest{Content: "some content", Count: 100}
		errs := v.ValidateGenerateRequest(req)
		assert.Len(t, errs, 1)
		assert.Equal(t, "count", errs[0].Field)
	})

	t.Run("NegativeDifficulty", func(t *testing.T) {
		req := &dto.GenerateRequest{Content: "some content", MinDifficulty: -0.5}
		errs := v.ValidateGenerateRequest(req)
		assert.Len(t, errs, 1)
		assert.Equal(t, "min_difficulty", errs[0].Field)
	})

	t.Run("UnknownQuestionType", func(t *testing.T) {
		req := &dto.GenerateRequest{Content: "some content", QuestionTypes: []string{"essay"}}
		errs := v.ValidateGenerateRequest(req)
		assert.Len(t, errs, 1)
		assert.Equal(t, "question_types", errs[0].Field)
	})

	t.Run("ContentTooLarge", func(t *testing.T) {
		req := &dto.GenerateRequest{Content: strings.Repeat("a", maxContentLength+1)}
		errs := v.ValidateGenerateRequest(req)
		assert.Len(t, errs, 1)
		assert.Equal(t, "content", errs[0].Field)
	})

	t.Run("MultipleErrorsAccumulate", func(t *testing.T) {
		req := &dto.GenerateRequest{
			Content:       "some content",
			Count:         -1,
			MaxDifficulty: 2,
			QuestionTypes: []string{"essay"},
		}
		errs := v.ValidateGenerateRequest(req)
		assert.Len(t, errs, 3)
	})
}

func TestValidateContent(t *testing.T) {
	v := NewValidator()

	t.Run("MissingContent", func(t *testing.T) {
		errs := v.ValidateContent("")
		assert.Len(t, errs, 1)
		assert.Equal(t, "content", errs[0].Field)
	})

	t.Run("WhitespaceOnly", func(t *testing.T) {
		assert.Len(t, v.ValidateContent("   \n\t "), 1)
	})

	t.Run("ValidContent", func(t *testing.T) {
		assert.Empty(t, v.ValidateContent("Plants convert light energy."))
	})

	t.Run("TooLarge", func(t *testing.T) {
		assert.Len(t, v.ValidateContent(strings.Repeat("a", maxContentLength+1)), 1)
	})
}
