package textproc

import "strings"

// stopWords is a fixed bilingual (English/Korean) stop-word set. Tokens
// are lower-cased before lookup; the Korean entries are particles and
// high-frequency function words that carry no topical signal.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range []string{
		// English
		"a", "an", "the", "and", "or", "but", "if", "then", "else",
		"of", "in", "on", "at", "to", "for", "with", "by", "from",
		"as", "is", "are", "was", "were", "be", "been", "being",
		"it", "its", "this", "that", "these", "those", "there",
		"he", "she", "they", "we", "you", "i", "his", "her", "their",
		"our", "your", "my", "me", "him", "them", "us",
		"do", "does", "did", "done", "have", "has", "had",
		"will", "would", "can", "could", "shall", "should", "may",
		"might", "must", "not", "no", "nor", "so", "too", "very",
		"also", "than", "into", "about", "between", "through",
		"during", "before", "after", "above", "below", "up", "down",
		"out", "over", "under", "again", "further", "once", "here",
		"when", "where", "why", "how", "all", "any", "both", "each",
		"few", "more", "most", "other", "some", "such", "only", "own",
		"same", "what", "which", "who", "whom", "while", "because",
		// Korean
		"그리고", "그러나", "하지만", "또한", "또는", "즉", "및", "등",
		"이", "그", "저", "것", "수", "때", "곳", "더", "덜",
		"있다", "없다", "하다", "되다", "않다", "같다", "이다",
		"있는", "없는", "하는", "되는", "대한", "위한", "통해",
		"경우", "때문", "위해", "대해", "부터", "까지", "에서",
		"으로", "에게", "하면", "해서", "따라", "관한",
	} {
		stopWords[w] = struct{}{}
	}
}

// IsStopWord reports whether the token is in the stop-word set.
// Comparison is case-insensitive; the original token is not modified.
func IsStopWord(token string) bool {
	_, ok := stopWords[strings.ToLower(token)]
	return ok
}
