package domain

import "context"

// GenerationOptions controls a single generation call.
type GenerationOptions struct {
	// QuestionTypes restricts output to the listed types. Empty means all
	// four types.
	QuestionTypes []QuestionType

	// MinDifficulty and MaxDifficulty bound the difficulty assigned to
	// generated questions. Difficulty is interpolated across keyword rank:
	// less important keywords receive values closer to MaxDifficulty.
	MinDifficulty float64
	MaxDifficulty float64

	// Count is the requested number of questions. The result never exceeds
	// it; the fallback generator guarantees at least min(Count, 3) items
	// whenever the source text contains a token.
	Count int

	// PreferredSections, when non-empty, limits generation to sections
	// whose titles match (case-insensitive).
	PreferredSections []string

	// ExcludedKeywords removes candidate keywords that match, or are
	// lexically near-duplicates of (similarity > 0.8), any listed term.
	ExcludedKeywords []string
}

// Normalize fills defaults so every generator sees a well-formed option set.
func (o GenerationOptions) Normalize() GenerationOptions {
	if len(o.QuestionTypes) == 0 {
		o.QuestionTypes = AllQuestionTypes()
	}
	if o.Count <= 0 {
		o.Count = 10
	}
	if o.MaxDifficulty <= 0 {
		o.MaxDifficulty = 1
	}
	if o.MinDifficulty < 0 {
		o.MinDifficulty = 0
	}
	if o.MinDifficulty > o.MaxDifficulty {
		o.MinDifficulty, o.MaxDifficulty = o.MaxDifficulty, o.MinDifficulty
	}
	return o
}

// QuestionGenerator produces a graded question set from a document. The
// offline statistical engine is the default implementation; an LLM-backed
// adapter implements the same contract and is selected by the caller, never
// inside the core.
type QuestionGenerator interface {
	Generate(ctx context.Context, doc *Document, opts GenerationOptions) ([]*GeneratedQuestion, error)
}
