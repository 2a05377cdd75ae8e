package domain

import (
	"fmt"
	"strings"
)

// QuestionType identifies one of the four supported question formats.
// The set is closed; consumers switch exhaustively over it and treat any
// other value as a validation failure.
type QuestionType string

const (
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeFillInBlank    QuestionType = "fill-in-blank"
	TypeTrueFalse      QuestionType = "true-false"
	TypeShortAnswer    QuestionType = "short-answer"
)

// AllQuestionTypes lists every supported type in a stable order.
func AllQuestionTypes() []QuestionType {
	return []QuestionType{TypeMultipleChoice, TypeFillInBlank, TypeTrueFalse, TypeShortAnswer}
}

// ParseQuestionType converts a wire string into a QuestionType.
func ParseQuestionType(s string) (QuestionType, error) {
	switch QuestionType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeMultipleChoice:
		return TypeMultipleChoice, nil
	case TypeFillInBlank:
		return TypeFillInBlank, nil
	case TypeTrueFalse:
		return TypeTrueFalse, nil
	case TypeShortAnswer:
		return TypeShortAnswer, nil
	}
	return "", NewInvalidInputError(fmt.Sprintf("unknown question type: %q", s))
}

// Document is the caller-owned input to question generation. It is
// constructed once per generation call and never mutated by the core.
type Document struct {
	ID       string
	Title    string
	Content  string
	Sections []*Section
}

// Section is a titled subdivision of a document. Its Keywords are derived
// strictly from its own Content; sections never share keyword values.
type Section struct {
	ID         string
	Title      string
	Content    string
	Level      int
	Paragraphs []string
	Keywords   []Keyword
}

// Keyword is a corpus-derived term with an importance score and the
// sentences it was observed in. Every context sentence contains Word
// (case-insensitively).
type Keyword struct {
	Word       string
	Importance float64
	Frequency  int
	Context    []string
}

// HasContext reports whether the keyword carries at least one usable
// context sentence. Keywords without context are skipped by every
// synthesizer.
func (k Keyword) HasContext() bool {
	return len(k.Context) > 0
}

// ContextContainsWord verifies the context invariant: each context sentence
// must literally contain the keyword, case-insensitively. A keyword that
// fails this check is malformed and must be skipped per-item.
func (k Keyword) ContextContainsWord() bool {
	if k.Word == "" {
		return false
	}
	lower := strings.ToLower(k.Word)
	for _, s := range k.Context {
		if !strings.Contains(strings.ToLower(s), lower) {
			return false
		}
	}
	return true
}

// GeneratedQuestion is a single assessment item handed back to the caller.
// Options is populated only for the multiple-choice variant.
type GeneratedQuestion struct {
	ID              string       `json:"id"`
	Type            QuestionType `json:"type"`
	Question        string       `json:"question"`
	Answer          string       `json:"answer"`
	Options         []string     `json:"options,omitempty"`
	Difficulty      float64      `json:"difficulty"`
	Explanation     string       `json:"explanation,omitempty"`
	RelatedKeywords []string     `json:"related_keywords"`
	SourceSection   string       `json:"source_section"`
	Context         string       `json:"context"`
}

// Validate checks the structural invariants of the question record.
func (q *GeneratedQuestion) Validate() error {
	if q.Question == "" {
		return NewValidationError("question text is required")
	}
	if q.Answer == "" {
		return NewValidationError("answer is required")
	}
	if q.Difficulty < 0 || q.Difficulty > 1 {
		return NewValidationError(fmt.Sprintf("difficulty %f out of range [0,1]", q.Difficulty))
	}

	switch q.Type {
	case TypeMultipleChoice:
		return q.validateOptions()
	case TypeFillInBlank, TypeShortAnswer, TypeTrueFalse:
		if len(q.Options) != 0 {
			return NewValidationError(fmt.Sprintf("%s questions must not carry options", q.Type))
		}
		return nil
	default:
		return NewValidationError(fmt.Sprintf("unknown question type: %q", q.Type))
	}
}

func (q *GeneratedQuestion) validateOptions() error {
	if len(q.Options) != 4 {
		return NewValidationError(fmt.Sprintf("multiple-choice requires exactly 4 options, got %d", len(q.Options)))
	}
	seen := make(map[string]bool, len(q.Options))
	answerCount := 0
	for _, opt := range q.Options {
		key := strings.ToLower(opt)
		if seen[key] {
			return NewValidationError(fmt.Sprintf("duplicate option: %q", opt))
		}
		seen[key] = true
		if strings.EqualFold(opt, q.Answer) {
			answerCount++
		}
	}
	if answerCount != 1 {
		return NewValidationError("options must contain the answer exactly once")
	}
	return nil
}
