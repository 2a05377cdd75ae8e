package textproc

import (
	"strings"
	"unicode"
)

// Tokenize splits text into word tokens. Letters and digits are kept;
// every other rune is a boundary, which strips punctuation without a
// regexp pass. Works for both Latin and Hangul input.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// IsHangulSyllable reports whether r falls in the precomposed Hangul
// syllable block.
func IsHangulSyllable(r rune) bool {
	return r >= 0xAC00 && r <= 0xD7A3
}

// IsPureDigits reports whether the token consists only of digits.
func IsPureDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// HasDigit reports whether the string contains at least one digit.
func HasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// IsTermLike reports whether a token looks like a technical term: an
// all-uppercase acronym of two or more letters, or a mixed
// letter-and-digit identifier such as "IPv4" or "UTF8".
func IsTermLike(token string) bool {
	if len(token) < 2 {
		return false
	}
	upper := 0
	letters := 0
	digits := 0
	for _, r := range token {
		switch {
		case unicode.IsUpper(r):
			upper++
			letters++
		case unicode.IsLetter(r):
			letters++
		case unicode.IsDigit(r):
			digits++
		}
	}
	if letters >= 2 && upper == letters && digits == 0 {
		return true // acronym
	}
	return letters > 0 && digits > 0
}
