package llmgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"quizcraft/internal/domain"
)

func TestNewOllamaGenerator_Validation(t *testing.T) {
	logger := zap.NewNop()

	t.Run("EmptyServerURL", func(t *testing.T) {
		_, err := NewOllamaGenerator("", "qwen3:0.6b", logger)
		assert.Error(t, err)
	})

	t.Run("EmptyModel", func(t *testing.T) {
		_, err := NewOllamaGenerator("http://localhost:11434", "", logger)
		assert.Error(t, err)
	})

	t.Run("ValidArguments", func(t *testing.T) {
		gen, err := NewOllamaGenerator("http://localhost:11434", "qwen3:0.6b", logger)
		assert.NoError(t, err)
		assert.NotNil(t, gen)
	})
}

func TestParseResponse(t *testing.T) {
	t.Run("PlainArray", func(t *testing.T) {
		raw := `[{"type":"true-false","question":"Q","answer":"True","difficulty":0.3}]`
		parsed, err := parseResponse(raw)
		assert.NoError(t, err)
		assert.Len(t, parsed, 1)
		assert.Equal(t, "true-false", parsed[0].Type)
	})

	t.Run("StripsThinkTags", func(t *testing.T) {
		raw := "<think>reasoning about the material</think>\n" +
			`[{"type":"short-answer","question":"Q","answer":"A","difficulty":0.5}]`
		parsed, err := parseResponse(raw)
		assert.NoError(t, err)
		assert.Len(t, parsed, 1)
		assert.Equal(t, "short-answer", parsed[0].Type)
	})

	t.Run("ToleratesSurroundingProse", func(t *testing.T) {
		raw := "Here are the questions:\n" +
			`[{"type":"fill-in-blank","question":"Q ____","answer":"A","difficulty":0.2}]` +
			"\nLet me know if you need more."
		parsed, err := parseResponse(raw)
		assert.NoError(t, err)
		assert.Len(t, parsed, 1)
	})

	t.Run("NoArray", func(t *testing.T) {
		_, err := parseResponse("I could not generate any questions.")
		assert.Error(t, err)
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		_, err := parseResponse(`[{"type": "true-false", "question": ]`)
		assert.Error(t, err)
	})
}

func TestBuildPrompt(t *testing.T) {
	doc := &domain.Document{Title: "Photosynthesis", Content: "Plants convert light energy."}
	opts := domain.GenerationOptions{
		Count:         3,
		QuestionTypes: []domain.QuestionType{domain.TypeTrueFalse, domain.TypeShortAnswer},
		MaxDifficulty: 0.8,
	}.Normalize()

	prompt := buildPrompt(doc, opts)
	assert.Contains(t, prompt, "Photosynthesis")
	assert.Contains(t, prompt, "Plants convert light energy.")
	assert.Contains(t, prompt, "true-false, short-answer")
	assert.True(t, strings.Contains(prompt, "3 self-contained"))
}
