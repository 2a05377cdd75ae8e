package util

import (
	"strings"

	"github.com/agext/levenshtein"
)

var similarityParams = levenshtein.NewParams()

// Similarity returns the lexical similarity of two terms in [0,1], where 1
// means identical. Comparison is case-insensitive; the underlying measure
// is a normalized Levenshtein distance.
func Similarity(a, b string) float64 {
	return levenshtein.Similarity(strings.ToLower(a), strings.ToLower(b), similarityParams)
}
