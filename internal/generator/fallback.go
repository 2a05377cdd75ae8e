package generator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"quizcraft/internal/domain"
	"quizcraft/internal/textproc"
	"quizcraft/internal/util"
)

// fallbackSection labels questions produced without extracted signal.
const fallbackSection = "General Review"

// genericOptions pad multiple-choice fallback questions when the
// vocabulary is too small to supply four real options.
var genericOptions = []string{
	"None of the above",
	"All of the above",
	"Not mentioned in the material",
}

// fallback synthesizes placeholder questions from the raw token
// vocabulary of the document. It is engaged when extraction finds too
// little signal, and guarantees the caller still receives up to
// opts.Count questions for any non-empty text. The output is
// deterministic: no randomness is consumed here.
func (e *Engine) fallback(content, title string, opts domain.GenerationOptions) []*domain.GeneratedQuestion {
	vocab := fallbackVocabulary(content)
	if len(vocab) == 0 {
		vocab = fallbackVocabulary(title)
	}
	if len(vocab) == 0 {
		return nil
	}

	difficulty := (opts.MinDifficulty + opts.MaxDifficulty) / 2

	var out []*domain.GeneratedQuestion
	// Each (token, type) pair yields at most one question, so the set is
	// duplicate-free by construction.
	for i, tok := range vocab {
		for _, qt := range opts.QuestionTypes {
			if len(out) == opts.Count {
				return out
			}
			q := e.fallbackQuestion(qt, tok, i, vocab, difficulty)
			if q == nil {
				continue
			}
			if err := q.Validate(); err != nil {
				e.log.Debug("skipping invalid fallback question",
					zap.String("type", string(qt)),
					zap.String("token", tok),
					zap.Error(err))
				continue
			}
			out = append(out, q)
		}
	}
	return out
}

func (e *Engine) fallbackQuestion(qt domain.QuestionType, tok string, index int, vocab []string, difficulty float64) *domain.GeneratedQuestion {
	base := &domain.GeneratedQuestion{
		ID:              util.NewULID(),
		Type:            qt,
		Answer:          tok,
		Difficulty:      difficulty,
		RelatedKeywords: []string{tok},
		SourceSection:   fallbackSection,
	}

	switch qt {
	case domain.TypeFillInBlank, domain.TypeShortAnswer:
		sentence := fmt.Sprintf("Vocabulary entry %d of this material is the term %s.", index+1, tok)
		blanked, ok := blankTerm(sentence, tok, e.cfg.BlankPlaceholder)
		if !ok {
			return nil
		}
		base.Question = blanked
		base.Context = sentence
		return base

	case domain.TypeMultipleChoice:
		options := []string{tok}
		seen := map[string]struct{}{strings.ToLower(tok): {}}
		addOption := func(s string) {
			key := strings.ToLower(s)
			if _, dup := seen[key]; dup || len(options) == 4 {
				return
			}
			seen[key] = struct{}{}
			options = append(options, s)
		}
		for _, other := range vocab {
			addOption(other)
		}
		for _, g := range genericOptions {
			addOption(g)
		}
		if len(options) != 4 {
			return nil
		}
		base.Question = fmt.Sprintf("Which of the following is vocabulary entry %d of this material?", index+1)
		base.Options = options
		base.Context = fmt.Sprintf("The material's vocabulary includes the term %s.", tok)
		return base

	case domain.TypeTrueFalse:
		base.Question = fmt.Sprintf("The term %q appears in the source material.", tok)
		base.Answer = "True"
		base.Explanation = fmt.Sprintf("The vocabulary of the material contains %q.", tok)
		base.Context = fmt.Sprintf("The material's vocabulary includes the term %s.", tok)
		return base
	}
	return nil
}

// fallbackVocabulary collects unique tokens of at least three runes from
// the text, in order of first appearance. Uniqueness is case-insensitive
// so a capitalized and a lower-cased spelling of the same term cannot
// both reach one options array. When nothing qualifies it degrades to
// all tokens, so any text with a single token still yields fallback
// material.
func fallbackVocabulary(text string) []string {
	tokens := textproc.Tokenize(text)

	collect := func(minLen int) []string {
		seen := make(map[string]struct{})
		var vocab []string
		for _, tok := range tokens {
			if utf8.RuneCountInString(tok) < minLen {
				continue
			}
			key := strings.ToLower(tok)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			vocab = append(vocab, tok)
		}
		return vocab
	}

	if vocab := collect(3); len(vocab) > 0 {
		return vocab
	}
	return collect(1)
}
