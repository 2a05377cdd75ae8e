// Package keyword derives weighted terms from segmented text. Two
// extractors are provided: a frequency extractor with heuristic bonuses,
// and an independent TF-IDF extractor over paragraphs. Both are fully
// deterministic for identical input.
package keyword

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"quizcraft/internal/domain"
	"quizcraft/internal/textproc"
)

const minTokenLen = 2

// Config carries the heuristic weights of the frequency extractor. The
// default multipliers are empirically chosen and deliberately tunable.
type Config struct {
	LengthBonus      float64 // applied when a token is >= 4 runes
	CapitalBonus     float64 // applied when a token starts with uppercase Latin or Hangul
	TermPatternBonus float64 // applied when a token looks like an acronym/identifier
	MaxKeywords      int
	ContextSentences int
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		LengthBonus:      1.5,
		CapitalBonus:     1.2,
		TermPatternBonus: 1.3,
		MaxKeywords:      20,
		ContextSentences: 3,
	}
}

// Extractor scores tokens by frequency with multiplicative bonuses.
type Extractor struct {
	cfg Config
}

// NewExtractor creates an extractor, filling unset config fields with
// defaults.
func NewExtractor(cfg Config) *Extractor {
	def := DefaultConfig()
	if cfg.LengthBonus <= 0 {
		cfg.LengthBonus = def.LengthBonus
	}
	if cfg.CapitalBonus <= 0 {
		cfg.CapitalBonus = def.CapitalBonus
	}
	if cfg.TermPatternBonus <= 0 {
		cfg.TermPatternBonus = def.TermPatternBonus
	}
	if cfg.MaxKeywords <= 0 {
		cfg.MaxKeywords = def.MaxKeywords
	}
	if cfg.ContextSentences <= 0 {
		cfg.ContextSentences = def.ContextSentences
	}
	return &Extractor{cfg: cfg}
}

// Extract tokenizes the surviving sentences and returns the top keywords
// sorted by descending importance. Importance is normalized to (0,1];
// ties break lexicographically so the ordering is stable across calls.
func (e *Extractor) Extract(sentences []string) []domain.Keyword {
	if len(sentences) == 0 {
		return nil
	}

	freq := make(map[string]int)
	var order []string
	for _, tok := range textproc.Tokenize(strings.Join(sentences, " ")) {
		if !usableToken(tok) {
			continue
		}
		if _, seen := freq[tok]; !seen {
			order = append(order, tok)
		}
		freq[tok]++
	}
	if len(freq) == 0 {
		return nil
	}

	scores := make(map[string]float64, len(freq))
	maxScore := 0.0
	for tok, n := range freq {
		s := float64(n)
		if utf8.RuneCountInString(tok) >= 4 {
			s *= e.cfg.LengthBonus
		}
		if startsCapitalized(tok) {
			s *= e.cfg.CapitalBonus
		}
		if textproc.IsTermLike(tok) {
			s *= e.cfg.TermPatternBonus
		}
		scores[tok] = s
		if s > maxScore {
			maxScore = s
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		if scores[order[i]] != scores[order[j]] {
			return scores[order[i]] > scores[order[j]]
		}
		return order[i] < order[j]
	})
	if len(order) > e.cfg.MaxKeywords {
		order = order[:e.cfg.MaxKeywords]
	}

	keywords := make([]domain.Keyword, 0, len(order))
	for _, tok := range order {
		keywords = append(keywords, domain.Keyword{
			Word:       tok,
			Importance: scores[tok] / maxScore,
			Frequency:  freq[tok],
			Context:    contextFor(tok, sentences, e.cfg.ContextSentences),
		})
	}
	return keywords
}

// usableToken applies the shared token filter: minimum length, not a
// stop-word (compared lower-cased), not purely numeric.
func usableToken(tok string) bool {
	return utf8.RuneCountInString(tok) >= minTokenLen &&
		!textproc.IsStopWord(tok) &&
		!textproc.IsPureDigits(tok)
}

// startsCapitalized reports whether the token starts with an uppercase
// Latin letter or a Hangul syllable.
func startsCapitalized(tok string) bool {
	r, _ := utf8.DecodeRuneInString(tok)
	return (r <= unicode.MaxLatin1 && unicode.IsUpper(r)) || textproc.IsHangulSyllable(r)
}

// contextFor collects up to limit sentences containing the word
// (case-insensitive), in segmenter order.
func contextFor(word string, sentences []string, limit int) []string {
	lower := strings.ToLower(word)
	var ctx []string
	for _, s := range sentences {
		if strings.Contains(strings.ToLower(s), lower) {
			ctx = append(ctx, s)
			if len(ctx) == limit {
				break
			}
		}
	}
	return ctx
}
