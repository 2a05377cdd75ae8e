package textproc

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// MaxSentences bounds the combinatorial work done downstream.
	MaxSentences = 30

	minSentenceLen  = 15
	maxSentenceLen  = 200
	minWordCount    = 5
	maxSpecialRatio = 0.30
)

// definitionCues mark sentences that define or exemplify a term.
// Matched case-insensitively.
var definitionCues = []string{
	" is a ", " is the ", " is an ", " are ", " means ", " refers to ",
	" defined as ", " known as ", "for example", "such as", "e.g.",
	"란 ", "이란 ", "라는 ", "를 의미", "을 의미", "예를 들어", "정의",
}

// importanceMarkers mark sentences the author flagged as essential.
var importanceMarkers = []string{
	"important", "essential", "must ", "critical", "key ",
	"중요", "핵심", "필수", "반드시",
}

// Segment splits raw text into candidate sentences, filters them by the
// meaningfulness predicate, and returns the survivors sorted by descending
// quality score. The result is deduplicated and capped at MaxSentences.
// Segment never fails: unusable input yields an empty slice.
func Segment(text string) []string {
	raw := splitSentences(text)

	kept := make([]string, 0, len(raw))
	for _, s := range raw {
		if IsMeaningful(s) {
			kept = append(kept, s)
		}
	}

	// Stable sort keeps source order among equal scores, so identical
	// input always produces identical output.
	sort.SliceStable(kept, func(i, j int) bool {
		return scoreSentence(kept[i]) > scoreSentence(kept[j])
	})

	seen := make(map[string]struct{}, len(kept))
	out := make([]string, 0, len(kept))
	for _, s := range kept {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
		if len(out) == MaxSentences {
			break
		}
	}
	return out
}

// splitSentences cuts text on sentence-final punctuation and newlines,
// keeping the terminator attached to its sentence.
func splitSentences(text string) []string {
	var out []string
	var b strings.Builder
	flush := func() {
		s := strings.TrimSpace(b.String())
		b.Reset()
		if s != "" {
			out = append(out, s)
		}
	}
	for _, r := range text {
		switch r {
		case '.', '!', '?', '。':
			b.WriteRune(r)
			flush()
		case '\n':
			flush()
		default:
			b.WriteRune(r)
		}
	}
	flush()
	return out
}

// IsMeaningful is the sentence quality predicate: 15-200 runes, at least
// five whitespace-delimited tokens, and no more than 30% special
// characters.
func IsMeaningful(s string) bool {
	n := utf8.RuneCountInString(s)
	if n < minSentenceLen || n > maxSentenceLen {
		return false
	}
	if len(strings.Fields(s)) < minWordCount {
		return false
	}
	special := 0
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			special++
		}
	}
	return float64(special)/float64(n) <= maxSpecialRatio
}

// scoreSentence ranks a sentence's usefulness as question material.
func scoreSentence(s string) int {
	score := 0
	n := utf8.RuneCountInString(s)
	if n >= 30 && n <= 120 {
		score += 3
	} else if n > 120 {
		score++
	}

	lower := strings.ToLower(s)
	for _, cue := range definitionCues {
		if strings.Contains(lower, cue) {
			score += 2
			break
		}
	}
	if HasDigit(s) {
		score++
	}
	for _, m := range importanceMarkers {
		if strings.Contains(lower, m) {
			score += 2
			break
		}
	}
	return score
}
