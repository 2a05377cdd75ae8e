package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractor_Extract(t *testing.T) {
	sentences := []string{
		"photosynthesis converts light energy into chemical energy",
		"photosynthesis occurs inside chloroplast structures",
		"photosynthesis requires sunlight and water",
	}

	t.Run("EmptyInput", func(t *testing.T) {
		e := NewExtractor(DefaultConfig())
		assert.Nil(t, e.Extract(nil))
		assert.Nil(t, e.Extract([]string{"the and of"}))
	})

	t.Run("MostFrequentTermRanksFirst", func(t *testing.T) {
		e := NewExtractor(DefaultConfig())
		keywords := e.Extract(sentences)
		assert.NotEmpty(t, keywords)
		assert.Equal(t, "photosynthesis", keywords[0].Word)
		assert.Equal(t, 3, keywords[0].Frequency)
		assert.InDelta(t, 1.0, keywords[0].Importance, 1e-9)
	})

	t.Run("Deterministic", func(t *testing.T) {
		e := NewExtractor(DefaultConfig())
		assert.Equal(t, e.Extract(sentences), e.Extract(sentences))
	})

	t.Run("ImportanceNormalizedAndDescending", func(t *testing.T) {
		e := NewExtractor(DefaultConfig())
		keywords := e.Extract(sentences)
		for i, kw := range keywords {
			assert.Greater(t, kw.Importance, 0.0)
			assert.LessOrEqual(t, kw.Importance, 1.0)
			if i > 0 {
				assert.GreaterOrEqual(t, keywords[i-1].Importance, kw.Importance)
			}
		}
	})

	t.Run("StopWordsAndDigitsFiltered", func(t *testing.T) {
		e := NewExtractor(DefaultConfig())
		keywords := e.Extract([]string{"the plant absorbed 1234 units of light"})
		for _, kw := range keywords {
			assert.NotEqual(t, "the", kw.Word)
			assert.NotEqual(t, "of", kw.Word)
			assert.NotEqual(t, "1234", kw.Word)
		}
	})

	t.Run("CapitalBonusBreaksFrequencyTie", func(t *testing.T) {
		e := NewExtractor(DefaultConfig())
		keywords := e.Extract([]string{"Paris resembles paris strangely tonight"})
		assert.GreaterOrEqual(t, len(keywords), 2)
		assert.Equal(t, "Paris", keywords[0].Word)
		assert.Equal(t, "paris", keywords[1].Word)
	})

	t.Run("LexicographicTieBreak", func(t *testing.T) {
		e := NewExtractor(DefaultConfig())
		keywords := e.Extract([]string{"zebra mango apple tiger lemon"})
		words := make([]string, 0, len(keywords))
		for _, kw := range keywords {
			words = append(words, kw.Word)
		}
		assert.Equal(t, []string{"apple", "lemon", "mango", "tiger", "zebra"}, words)
	})

	t.Run("MaxKeywordsCap", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.MaxKeywords = 3
		e := NewExtractor(cfg)
		keywords := e.Extract(sentences)
		assert.Len(t, keywords, 3)
	})

	t.Run("ContextSentencesContainWord", func(t *testing.T) {
		e := NewExtractor(DefaultConfig())
		keywords := e.Extract(sentences)
		assert.Len(t, keywords[0].Context, 3)
		for _, kw := range keywords {
			assert.True(t, kw.ContextContainsWord(), "keyword %q", kw.Word)
		}
	})
}

func TestNewExtractor_FillsDefaults(t *testing.T) {
	e := NewExtractor(Config{})
	assert.Equal(t, DefaultConfig(), e.cfg)
}
