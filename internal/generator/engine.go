// Package generator turns raw learner text into graded, keyword-grounded
// assessment questions. The Engine is a pure in-memory transformation: no
// I/O, no persistence, no network. It is safe for concurrent use because
// each call builds and discards its own intermediate structures.
package generator

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"quizcraft/internal/config"
	"quizcraft/internal/distractor"
	"quizcraft/internal/domain"
	"quizcraft/internal/keyword"
	"quizcraft/internal/textproc"
)

// minSentenceSignal is the number of meaningful sentences below which the
// corpus is considered too sparse for content-grounded generation.
const minSentenceSignal = 3

// excludedSimilarityThreshold removes keywords that are lexical
// near-duplicates of an excluded term.
const excludedSimilarityThreshold = 0.8

// Engine is the offline statistical question generator.
type Engine struct {
	cfg config.GenerationConfig
	rng RNG
	log *zap.Logger
}

var _ domain.QuestionGenerator = (*Engine)(nil)

// NewEngine creates an engine. A nil rng selects the system PRNG; a nil
// logger disables logging. Zero-valued tunables are filled with defaults.
func NewEngine(cfg config.GenerationConfig, rng RNG, log *zap.Logger) *Engine {
	if rng == nil {
		rng = NewSystemRNG()
	}
	if log == nil {
		log = zap.NewNop()
	}
	if cfg.BlankPlaceholder == "" {
		cfg.BlankPlaceholder = "____"
	}
	if cfg.MaxKeywords <= 0 {
		cfg.MaxKeywords = 20
	}
	if cfg.ContextSentences <= 0 {
		cfg.ContextSentences = 3
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = textproc.DefaultChunkSize
	}
	return &Engine{cfg: cfg, rng: rng, log: log}
}

// Generate implements domain.QuestionGenerator. It never fails on
// malformed or low-quality input: per-item problems are skipped, sparse
// input degrades to the fallback generator, and only a truly empty
// document yields an empty list.
func (e *Engine) Generate(ctx context.Context, doc *domain.Document, opts domain.GenerationOptions) ([]*domain.GeneratedQuestion, error) {
	if doc == nil {
		return nil, domain.NewInvalidInputError("document is required")
	}
	opts = opts.Normalize()

	sections := doc.Sections
	if len(sections) == 0 {
		var err error
		sections, err = textproc.SplitSectionsChunked(ctx, doc.Content, e.cfg.ChunkSize)
		if err != nil {
			return nil, domain.NewInternalError("failed to split sections", err)
		}
	}

	hadPreference := len(opts.PreferredSections) > 0
	sections = filterSections(sections, opts.PreferredSections)
	if hadPreference && len(sections) == 0 {
		return []*domain.GeneratedQuestion{}, nil
	}

	if len(sections) == 0 {
		// Whitespace-only content: a title can still seed fallback output.
		if strings.TrimSpace(doc.Title) == "" {
			return []*domain.GeneratedQuestion{}, nil
		}
		return e.fallback(doc.Title, doc.Title, opts), nil
	}

	perSection := ceilDiv(opts.Count, len(sections))
	perType := ceilDiv(perSection, len(opts.QuestionTypes))

	extractor := keyword.NewExtractor(keyword.Config{
		LengthBonus:      e.cfg.LengthBonus,
		CapitalBonus:     e.cfg.CapitalBonus,
		TermPatternBonus: e.cfg.TermPatternBonus,
		MaxKeywords:      e.cfg.MaxKeywords,
		ContextSentences: e.cfg.ContextSentences,
	})

	var candidates []*domain.GeneratedQuestion
	totalSentences := 0
	for _, sec := range sections {
		sentences := textproc.Segment(sec.Content)
		totalSentences += len(sentences)
		if len(sentences) == 0 {
			continue
		}

		keywords := filterExcluded(extractor.Extract(sentences), opts.ExcludedKeywords)
		sec.Keywords = keywords
		pool := keywordWords(keywords)

		for _, qt := range opts.QuestionTypes {
			built := 0
			for rank, kw := range keywords {
				if built == perType {
					break
				}
				q := e.synthesize(qt, synthInput{
					keyword:   kw,
					rank:      rank,
					total:     len(keywords),
					section:   sec.Title,
					sentences: sentences,
					pool:      poolWithout(pool, kw.Word),
				}, opts)
				if q == nil {
					continue
				}
				if err := q.Validate(); err != nil {
					e.log.Debug("skipping invalid candidate question",
						zap.String("type", string(qt)),
						zap.String("keyword", kw.Word),
						zap.Error(err))
					continue
				}
				candidates = append(candidates, q)
				built++
			}
		}
	}

	candidates = dedupeQuestions(candidates)

	// Content-insufficiency policy: top up from the fallback generator
	// instead of returning an under-filled set.
	if totalSentences < minSentenceSignal || len(candidates) < min(minSentenceSignal, opts.Count) {
		e.log.Debug("insufficient signal, engaging fallback generator",
			zap.Int("sentences", totalSentences),
			zap.Int("candidates", len(candidates)))
		for _, q := range e.fallback(doc.Content, doc.Title, opts) {
			if len(candidates) >= opts.Count {
				break
			}
			candidates = append(candidates, q)
		}
		candidates = dedupeQuestions(candidates)
	}

	e.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > opts.Count {
		candidates = candidates[:opts.Count]
	}
	return candidates, nil
}

// ExtractKeywords exposes the engine's keyword extraction as a standalone
// utility over raw text.
func (e *Engine) ExtractKeywords(text string) []domain.Keyword {
	extractor := keyword.NewExtractor(keyword.Config{
		LengthBonus:      e.cfg.LengthBonus,
		CapitalBonus:     e.cfg.CapitalBonus,
		TermPatternBonus: e.cfg.TermPatternBonus,
		MaxKeywords:      e.cfg.MaxKeywords,
		ContextSentences: e.cfg.ContextSentences,
	})
	return extractor.Extract(textproc.Segment(text))
}

func filterSections(sections []*domain.Section, preferred []string) []*domain.Section {
	if len(preferred) == 0 {
		return sections
	}
	var out []*domain.Section
	for _, sec := range sections {
		for _, want := range preferred {
			if strings.EqualFold(strings.TrimSpace(want), sec.Title) {
				out = append(out, sec)
				break
			}
		}
	}
	return out
}

func filterExcluded(keywords []domain.Keyword, excluded []string) []domain.Keyword {
	if len(excluded) == 0 {
		return keywords
	}
	out := keywords[:0:0]
	for _, kw := range keywords {
		drop := false
		for _, ex := range excluded {
			if strings.EqualFold(kw.Word, ex) || distractor.SimilarTo(kw.Word, ex, excludedSimilarityThreshold) {
				drop = true
				break
			}
		}
		if !drop {
			out = append(out, kw)
		}
	}
	return out
}

func keywordWords(keywords []domain.Keyword) []string {
	words := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		words = append(words, kw.Word)
	}
	return words
}

func poolWithout(pool []string, word string) []string {
	out := make([]string, 0, len(pool))
	for _, w := range pool {
		if !strings.EqualFold(w, word) {
			out = append(out, w)
		}
	}
	return out
}

func dedupeQuestions(questions []*domain.GeneratedQuestion) []*domain.GeneratedQuestion {
	seen := make(map[string]struct{}, len(questions))
	out := questions[:0:0]
	for _, q := range questions {
		key := string(q.Type) + "|" + strings.ToLower(q.Question)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, q)
	}
	return out
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
