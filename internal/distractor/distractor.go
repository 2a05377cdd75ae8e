// Package distractor synthesizes plausible wrong options for a correct
// term, drawing on lexically similar terms, frequency-matched corpus
// terms, and a character-transposition fallback.
package distractor

import (
	"strings"
	"unicode/utf8"

	"quizcraft/internal/util"
)

// lengthWindow is the rune-length tolerance for the "similar length"
// candidate.
const lengthWindow = 2

// maxCorpusTerms bounds how many plain corpus terms are pulled in before
// the structural fallback.
const maxCorpusTerms = 3

// Generate produces up to count distractors for the correct term from the
// candidate pool. The result is deduplicated, never contains the correct
// term, and may be shorter than count when the pool is thin; callers must
// treat a short result as insufficient signal and skip the question.
// Generate is deterministic with respect to pool order and never fails.
func Generate(correct string, pool []string, count int) []string {
	if count <= 0 {
		return nil
	}

	picked := make([]string, 0, count)
	seen := map[string]struct{}{strings.ToLower(correct): {}}
	add := func(term string) bool {
		key := strings.ToLower(term)
		if term == "" {
			return false
		}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
		picked = append(picked, term)
		return len(picked) == count
	}

	// 1. One term of similar length reads as the most plausible confusion.
	correctLen := utf8.RuneCountInString(correct)
	for _, term := range pool {
		d := utf8.RuneCountInString(term) - correctLen
		if d >= -lengthWindow && d <= lengthWindow && !strings.EqualFold(term, correct) {
			if add(term) {
				return picked
			}
			break
		}
	}

	// 2. Frequency-ordered corpus terms, up to three.
	taken := 0
	for _, term := range pool {
		if taken == maxCorpusTerms {
			break
		}
		if strings.EqualFold(term, correct) {
			continue
		}
		before := len(picked)
		if add(term) {
			return picked
		}
		if len(picked) > before {
			taken++
		}
	}

	// 3. Structural variant: swap the first and last character.
	if correctLen > 3 {
		if variant := swapEnds(correct); !strings.EqualFold(variant, correct) {
			add(variant)
		}
	}

	return picked
}

// SimilarTo reports whether two terms are lexical near-duplicates,
// using the given similarity threshold in [0,1].
func SimilarTo(a, b string, threshold float64) bool {
	return util.Similarity(a, b) > threshold
}

func swapEnds(s string) string {
	runes := []rune(s)
	if len(runes) < 2 {
		return s
	}
	runes[0], runes[len(runes)-1] = runes[len(runes)-1], runes[0]
	return string(runes)
}
