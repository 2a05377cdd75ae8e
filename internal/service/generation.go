package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"quizcraft/internal/cache"
	"quizcraft/internal/config"
	"quizcraft/internal/domain"
	"quizcraft/internal/dto"
	"quizcraft/internal/keyword"
	"quizcraft/internal/logger"
	"quizcraft/internal/textproc"
	"quizcraft/internal/util"
)

// maxQuestionCount caps a single request.
const maxQuestionCount = 50

// GenerationService defines the question generation operations exposed to
// handlers and CLIs.
type GenerationService interface {
	GenerateQuestions(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error)
	ExtractKeywords(ctx context.Context, req *dto.ExtractKeywordsRequest) (*dto.ExtractKeywordsResponse, error)
	SegmentSentences(content string) (*dto.SegmentResponse, error)
}

// generationService implements GenerationService
type generationService struct {
	generator domain.QuestionGenerator
	cache     domain.Cache
	cfg       *config.Config
}

// NewGenerationService creates a new instance of generationService.
// cache may be nil, in which case every request is computed fresh.
func NewGenerationService(generator domain.QuestionGenerator, cacheAdapter domain.Cache, cfg *config.Config) GenerationService {
	return &generationService{
		generator: generator,
		cache:     cacheAdapter,
		cfg:       cfg,
	}
}

// GenerateQuestions implements GenerationService
func (s *generationService) GenerateQuestions(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	opts, err := s.buildOptions(req)
	if err != nil {
		return nil, err
	}

	cacheKey := s.cacheKeyFor(req)
	if s.cache != nil {
		cached, errGet := s.cache.Get(ctx, cacheKey)
		if errGet == nil {
			var resp dto.GenerateResponse
			if errUnmarshal := json.Unmarshal([]byte(cached), &resp); errUnmarshal == nil {
				logger.Get().Info("GenerationService: cache hit", zap.String("cacheKey", cacheKey))
				return &resp, nil
			}
			logger.Get().Warn("GenerationService: failed to decode cached response, regenerating",
				zap.String("cacheKey", cacheKey))
		} else if errGet != domain.ErrCacheMiss {
			logger.Get().Error("GenerationService: cache read failed", zap.Error(errGet))
		}
	}

	doc := &domain.Document{
		ID:      util.NewULID(),
		Title:   req.Title,
		Content: req.Content,
	}
	questions, err := s.generator.Generate(ctx, doc, opts)
	if err != nil {
		return nil, domain.NewInternalError("Failed to generate questions", err)
	}

	resp := &dto.GenerateResponse{
		Questions: make([]dto.QuestionResponse, 0, len(questions)),
		Count:     len(questions),
	}
	for _, q := range questions {
		resp.Questions = append(resp.Questions, dto.QuestionResponse{
			ID:              q.ID,
			Type:            string(q.Type),
			Question:        q.Question,
			Answer:          q.Answer,
			Options:         q.Options,
			Difficulty:      q.Difficulty,
			Explanation:     q.Explanation,
			RelatedKeywords: q.RelatedKeywords,
			SourceSection:   q.SourceSection,
			Context:         q.Context,
		})
	}

	if s.cache != nil {
		if payload, errMarshal := json.Marshal(resp); errMarshal == nil {
			if errSet := s.cache.Set(ctx, cacheKey, string(payload), s.cfg.Generation.CacheTTL); errSet != nil {
				// Cache write failures are logged, never surfaced.
				logger.Get().Error("GenerationService: cache write failed", zap.Error(errSet))
			}
		}
	}

	return resp, nil
}

// ExtractKeywords implements GenerationService
func (s *generationService) ExtractKeywords(_ context.Context, req *dto.ExtractKeywordsRequest) (*dto.ExtractKeywordsResponse, error) {
	sentences := textproc.Segment(req.Content)

	var keywords []domain.Keyword
	switch strings.ToLower(strings.TrimSpace(req.Method)) {
	case "", "frequency":
		extractor := keyword.NewExtractor(keyword.Config{
			LengthBonus:      s.cfg.Generation.LengthBonus,
			CapitalBonus:     s.cfg.Generation.CapitalBonus,
			TermPatternBonus: s.cfg.Generation.TermPatternBonus,
			MaxKeywords:      s.cfg.Generation.MaxKeywords,
			ContextSentences: s.cfg.Generation.ContextSentences,
		})
		keywords = extractor.Extract(sentences)
	case "tfidf":
		extractor := keyword.NewTFIDFExtractor(
			s.cfg.Generation.ImportanceThreshold, 0, s.cfg.Generation.ContextSentences)
		keywords = extractor.Extract(req.Content, sentences)
	default:
		return nil, domain.ValidationErrors{domain.NewInvalidFormatError("method", req.Method)}
	}

	resp := &dto.ExtractKeywordsResponse{
		Keywords: make([]dto.KeywordResponse, 0, len(keywords)),
	}
	for _, kw := range keywords {
		resp.Keywords = append(resp.Keywords, dto.KeywordResponse{
			Word:       kw.Word,
			Importance: kw.Importance,
			Frequency:  kw.Frequency,
			Context:    kw.Context,
		})
	}
	return resp, nil
}

// SegmentSentences implements GenerationService
func (s *generationService) SegmentSentences(content string) (*dto.SegmentResponse, error) {
	return &dto.SegmentResponse{Sentences: textproc.Segment(content)}, nil
}

func (s *generationService) buildOptions(req *dto.GenerateRequest) (domain.GenerationOptions, error) {
	count := req.Count
	if count <= 0 {
		count = 10
	}
	if count > maxQuestionCount {
		count = maxQuestionCount
	}

	types := make([]domain.QuestionType, 0, len(req.QuestionTypes))
	for _, raw := range req.QuestionTypes {
		qt, err := domain.ParseQuestionType(raw)
		if err != nil {
			return domain.GenerationOptions{}, err
		}
		types = append(types, qt)
	}

	return domain.GenerationOptions{
		QuestionTypes:     types,
		MinDifficulty:     req.MinDifficulty,
		MaxDifficulty:     req.MaxDifficulty,
		Count:             count,
		PreferredSections: req.PreferredSections,
		ExcludedKeywords:  req.ExcludedKeywords,
	}.Normalize(), nil
}

// cacheKeyFor derives a deterministic key from the full request payload,
// so any change in content or options misses the cache.
func (s *generationService) cacheKeyFor(req *dto.GenerateRequest) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%s|%d|%f|%f|%s|%s|%s",
		req.Title,
		req.Content,
		req.Count,
		req.MinDifficulty,
		req.MaxDifficulty,
		strings.Join(req.QuestionTypes, ","),
		strings.Join(req.PreferredSections, ","),
		strings.Join(req.ExcludedKeywords, ","),
	)
	digest := hex.EncodeToString(h.Sum(nil))
	return cache.GenerateCacheKey("generation", "questions", digest)
}
