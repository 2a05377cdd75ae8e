// Package llmgen provides an LLM-backed implementation of the question
// generation contract. It is an optional, higher-quality alternative to
// the offline statistical engine, selected by the caller through
// configuration; the core never depends on it.
package llmgen

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"

	"quizcraft/internal/domain"
	"quizcraft/internal/util"
)

// OllamaGenerator implements domain.QuestionGenerator against a local
// Ollama server.
type OllamaGenerator struct {
	llm    *ollama.LLM
	logger *zap.Logger
}

var _ domain.QuestionGenerator = (*OllamaGenerator)(nil)

// NewOllamaGenerator creates a generator bound to the given server and model.
func NewOllamaGenerator(serverURL, model string, logger *zap.Logger) (*OllamaGenerator, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	httpClient := &http.Client{
		Timeout: 60 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     10 * time.Second,
		},
	}
	llm, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(model),
		ollama.WithHTTPClient(httpClient),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	logger.Info("Initializing OllamaGenerator", zap.String("model", model))
	return &OllamaGenerator{llm: llm, logger: logger}, nil
}

// llmQuestion mirrors the JSON shape the model is instructed to emit.
type llmQuestion struct {
	Type        string   `json:"type"`
	Question    string   `json:"question"`
	Answer      string   `json:"answer"`
	Options     []string `json:"options,omitempty"`
	Difficulty  float64  `json:"difficulty"`
	Explanation string   `json:"explanation,omitempty"`
	Keywords    []string `json:"keywords"`
	Context     string   `json:"context"`
}

// Generate implements domain.QuestionGenerator. Questions that come back
// structurally invalid are dropped per-item, matching the offline
// engine's skip policy.
func (g *OllamaGenerator) Generate(ctx context.Context, doc *domain.Document, opts domain.GenerationOptions) ([]*domain.GeneratedQuestion, error) {
	if doc == nil {
		return nil, domain.NewInvalidInputError("document is required")
	}
	opts = opts.Normalize()

	prompt := buildPrompt(doc, opts)
	raw, err := g.llm.Call(ctx, prompt, llms.WithTemperature(0.1))
	if err != nil {
		return nil, domain.NewLLMServiceError(err)
	}

	parsed, err := parseResponse(raw)
	if err != nil {
		g.logger.Error("Failed to parse LLM response", zap.Error(err), zap.String("raw_response", raw))
		return nil, domain.NewLLMServiceError(err)
	}

	questions := make([]*domain.GeneratedQuestion, 0, len(parsed))
	for _, p := range parsed {
		qt, err := domain.ParseQuestionType(p.Type)
		if err != nil {
			g.logger.Warn("LLM emitted unknown question type", zap.String("type", p.Type))
			continue
		}
		q := &domain.GeneratedQuestion{
			ID:              util.NewULID(),
			Type:            qt,
			Question:        p.Question,
			Answer:          p.Answer,
			Options:         p.Options,
			Difficulty:      p.Difficulty,
			Explanation:     p.Explanation,
			RelatedKeywords: p.Keywords,
			SourceSection:   doc.Title,
			Context:         p.Context,
		}
		if err := q.Validate(); err != nil {
			g.logger.Warn("Dropping invalid LLM question", zap.Error(err))
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) > opts.Count {
		questions = questions[:opts.Count]
	}
	return questions, nil
}

func buildPrompt(doc *domain.Document, opts domain.GenerationOptions) string {
	types := make([]string, 0, len(opts.QuestionTypes))
	for _, t := range opts.QuestionTypes {
		types = append(types, string(t))
	}

	return fmt.Sprintf(`You are an expert quiz generator. Create %d self-contained assessment questions from the study material below.

Allowed question types: %s.
Difficulty must be a number between %.2f and %.2f.
For "multiple-choice", "options" must contain exactly 4 entries and include the answer exactly once.
For every other type, omit "options".

Respond with ONLY a JSON array of objects in this shape:
{
  "type": "fill-in-blank",
  "question": "Chlorophyll absorbs ____ in the leaves.",
  "answer": "light",
  "difficulty": 0.4,
  "explanation": "optional feedback",
  "keywords": ["chlorophyll", "light"],
  "context": "the source sentence the question was built from"
}

Title: %s

Material:
%s`, opts.Count, strings.Join(types, ", "), opts.MinDifficulty, opts.MaxDifficulty, doc.Title, doc.Content)
}

// parseResponse extracts the JSON array from the raw model output,
// tolerating reasoning tags and surrounding prose.
func parseResponse(raw string) ([]llmQuestion, error) {
	cleaned := strings.TrimSpace(raw)
	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd != -1 && thinkEnd > thinkStart {
			cleaned = strings.TrimSpace(cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):])
		}
	}

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end <= start {
		return nil, fmt.Errorf("no JSON array found in LLM response")
	}

	var parsed []llmQuestion
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}
	return parsed, nil
}
