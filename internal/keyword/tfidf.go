package keyword

import (
	"math"
	"sort"
	"strings"

	"quizcraft/internal/domain"
	"quizcraft/internal/textproc"
)

// DefaultImportanceThreshold is the minimum tf-idf score a term must
// reach to be retained.
const DefaultImportanceThreshold = 0.1

// TFIDFExtractor computes classic term-frequency / inverse-document-
// frequency scores, treating each paragraph of the source content as a
// document.
type TFIDFExtractor struct {
	threshold        float64
	maxKeywords      int
	contextSentences int
}

// NewTFIDFExtractor creates an extractor. Non-positive arguments fall
// back to defaults (threshold 0.1, top 30 keywords, 3 context sentences).
func NewTFIDFExtractor(threshold float64, maxKeywords, contextSentences int) *TFIDFExtractor {
	if threshold <= 0 {
		threshold = DefaultImportanceThreshold
	}
	if maxKeywords <= 0 {
		maxKeywords = 30
	}
	if contextSentences <= 0 {
		contextSentences = 3
	}
	return &TFIDFExtractor{
		threshold:        threshold,
		maxKeywords:      maxKeywords,
		contextSentences: contextSentences,
	}
}

// Extract scores every usable token of content by tf x idf, where
// tf = count/totalTokens and idf = ln(paragraphs / (1 + paragraphs
// containing the term)). Only terms scoring above the threshold survive.
func (e *TFIDFExtractor) Extract(content string, sentences []string) []domain.Keyword {
	paragraphs := textproc.SplitParagraphs(content)
	if len(paragraphs) == 0 {
		return nil
	}

	freq := make(map[string]int)
	var order []string
	total := 0
	for _, tok := range textproc.Tokenize(content) {
		if !usableToken(tok) {
			continue
		}
		if _, seen := freq[tok]; !seen {
			order = append(order, tok)
		}
		freq[tok]++
		total++
	}
	if total == 0 {
		return nil
	}

	// Lower-cased token sets per paragraph for containment checks.
	paraTokens := make([]map[string]struct{}, len(paragraphs))
	for i, p := range paragraphs {
		set := make(map[string]struct{})
		for _, tok := range textproc.Tokenize(p) {
			set[strings.ToLower(tok)] = struct{}{}
		}
		paraTokens[i] = set
	}

	scores := make(map[string]float64, len(freq))
	maxScore := 0.0
	for tok, n := range freq {
		df := 0
		lower := strings.ToLower(tok)
		for _, set := range paraTokens {
			if _, ok := set[lower]; ok {
				df++
			}
		}
		tf := float64(n) / float64(total)
		idf := math.Log(float64(len(paragraphs)) / float64(1+df))
		scores[tok] = tf * idf
		if scores[tok] > maxScore {
			maxScore = scores[tok]
		}
	}

	var retained []string
	for _, tok := range order {
		if scores[tok] > e.threshold {
			retained = append(retained, tok)
		}
	}
	sort.SliceStable(retained, func(i, j int) bool {
		if scores[retained[i]] != scores[retained[j]] {
			return scores[retained[i]] > scores[retained[j]]
		}
		return retained[i] < retained[j]
	})
	if len(retained) > e.maxKeywords {
		retained = retained[:e.maxKeywords]
	}

	keywords := make([]domain.Keyword, 0, len(retained))
	for _, tok := range retained {
		keywords = append(keywords, domain.Keyword{
			Word:       tok,
			Importance: scores[tok] / maxScore,
			Frequency:  freq[tok],
			Context:    contextFor(tok, sentences, e.contextSentences),
		})
	}
	return keywords
}
