package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"quizcraft/internal/config"
	"quizcraft/internal/dto"
	"quizcraft/internal/generator"
	"quizcraft/internal/middleware"
	"quizcraft/internal/service"
)

func newTestApp() *fiber.App {
	cfg := &config.Config{}
	engine := generator.NewEngine(cfg.Generation, generator.NewRNG(42), zap.NewNop())
	svc := service.NewGenerationService(engine, nil, cfg)
	h := NewGenerationHandler(svc)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	api := app.Group("/api")
	api.Post("/questions/generate", h.GenerateQuestions)
	api.Post("/keywords/extract", h.ExtractKeywords)
	api.Post("/sentences/segment", h.SegmentSentences)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	return resp
}

func TestGenerateQuestionsEndpoint(t *testing.T) {
	app := newTestApp()

	t.Run("Success", func(t *testing.T) {
		resp := postJSON(t, app, "/api/questions/generate", dto.GenerateRequest{
			Title: "Photosynthesis",
			Content: "Photosynthesis is the process by which green plants convert light energy into chemical energy. " +
				"The chlorophyll pigment absorbs sunlight inside the chloroplast of the cell. " +
				"Water and carbon dioxide are consumed while oxygen and glucose are produced.",
			Count: 3,
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var out dto.GenerateResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.Equal(t, len(out.Questions), out.Count)
		assert.LessOrEqual(t, out.Count, 3)
		assert.NotEmpty(t, out.Questions)
	})

	t.Run("UnknownQuestionTypeReturns400", func(t *testing.T) {
		resp := postJSON(t, app, "/api/questions/generate", dto.GenerateRequest{
			Content:       "some study material",
			QuestionTypes: []string{"essay"},
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("MalformedBodyReturns400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/questions/generate", bytes.NewReader([]byte("{not json")))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestExtractKeywordsEndpoint(t *testing.T) {
	app := newTestApp()

	t.Run("Success", func(t *testing.T) {
		resp := postJSON(t, app, "/api/keywords/extract", dto.ExtractKeywordsRequest{
			Content: "Photosynthesis is the process by which plants convert light energy. " +
				"Photosynthesis occurs inside the chloroplast of the plant cell.",
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var out dto.ExtractKeywordsResponse
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		assert.NotEmpty(t, out.Keywords)
	})

	t.Run("EmptyContentReturns400", func(t *testing.T) {
		resp := postJSON(t, app, "/api/keywords/extract", dto.ExtractKeywordsRequest{Content: "  "})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)
		assert.Contains(t, string(body), "content")
	})
}

func TestSegmentSentencesEndpoint(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/sentences/segment", dto.SegmentRequest{
		Content: "Photosynthesis is the process by which plants convert light energy.",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.SegmentResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out.Sentences, 1)
}
