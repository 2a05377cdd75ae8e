package generator

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"quizcraft/internal/distractor"
	"quizcraft/internal/domain"
	"quizcraft/internal/util"
)

// blankFillProbability selects the blank-fill branch of multiple-choice
// generation; the remainder uses paraphrase-choice.
const blankFillProbability = 0.7

// summaryLength is the truncation length for paraphrase-choice answers.
const summaryLength = 50

// synthInput carries everything a synthesizer needs for one
// (sentence, keyword) pair.
type synthInput struct {
	keyword   domain.Keyword
	rank      int
	total     int
	section   string
	sentences []string // all meaningful sentences of the section
	pool      []string // other keyword words, importance-ordered
}

// synthesize dispatches to the per-type synthesizer. A nil result means
// the keyword could not support this question type and was skipped.
func (e *Engine) synthesize(qt domain.QuestionType, in synthInput, opts domain.GenerationOptions) *domain.GeneratedQuestion {
	kw := in.keyword
	if !kw.HasContext() {
		return nil
	}
	if !kw.ContextContainsWord() {
		e.log.Warn("skipping malformed keyword", zap.String("keyword", kw.Word))
		return nil
	}

	switch qt {
	case domain.TypeMultipleChoice:
		return e.synthMultipleChoice(in, opts)
	case domain.TypeFillInBlank, domain.TypeShortAnswer:
		return e.synthBlank(qt, in, opts)
	case domain.TypeTrueFalse:
		return e.synthTrueFalse(in, opts)
	default:
		return nil
	}
}

func (e *Engine) synthMultipleChoice(in synthInput, opts domain.GenerationOptions) *domain.GeneratedQuestion {
	if e.rng.Float64() < blankFillProbability {
		return e.synthBlankChoice(in, opts)
	}
	return e.synthParaphraseChoice(in, opts)
}

// synthBlankChoice blanks the keyword out of its context sentence and
// offers the original term among three distractors.
func (e *Engine) synthBlankChoice(in synthInput, opts domain.GenerationOptions) *domain.GeneratedQuestion {
	kw := in.keyword
	sentence := kw.Context[0]

	blanked, ok := blankTerm(sentence, kw.Word, e.cfg.BlankPlaceholder)
	if !ok {
		return nil
	}
	distractors := distractor.Generate(kw.Word, in.pool, 3)
	if len(distractors) < 3 {
		return nil // insufficient signal for a 4-option question
	}

	options := append([]string{kw.Word}, distractors...)
	e.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &domain.GeneratedQuestion{
		ID:              util.NewULID(),
		Type:            domain.TypeMultipleChoice,
		Question:        blanked,
		Answer:          kw.Word,
		Options:         options,
		Difficulty:      difficultyFor(in.rank, in.total, opts),
		RelatedKeywords: []string{kw.Word},
		SourceSection:   in.section,
		Context:         sentence,
	}
}

// synthParaphraseChoice asks which statement appears in the material; the
// answer is a summary of the context sentence and the distractors are
// summaries of other sentences.
func (e *Engine) synthParaphraseChoice(in synthInput, opts domain.GenerationOptions) *domain.GeneratedQuestion {
	kw := in.keyword
	sentence := kw.Context[0]
	answer := truncateSummary(sentence, summaryLength)

	var distractors []string
	addUnique := func(s string) {
		if len(distractors) == 3 || s == "" || strings.EqualFold(s, answer) {
			return
		}
		for _, d := range distractors {
			if strings.EqualFold(d, s) {
				return
			}
		}
		distractors = append(distractors, s)
	}
	for _, other := range in.sentences {
		if other == sentence {
			continue
		}
		addUnique(truncateSummary(other, summaryLength))
	}
	// Too few other sentences: fill from the remaining keyword words.
	for _, w := range in.pool {
		addUnique(w)
	}
	if len(distractors) < 3 {
		return nil
	}

	options := append([]string{answer}, distractors...)
	e.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &domain.GeneratedQuestion{
		ID:              util.NewULID(),
		Type:            domain.TypeMultipleChoice,
		Question:        fmt.Sprintf("Which statement about %q appears in the source material?", kw.Word),
		Answer:          answer,
		Options:         options,
		Difficulty:      difficultyFor(in.rank, in.total, opts),
		RelatedKeywords: []string{kw.Word},
		SourceSection:   in.section,
		Context:         sentence,
	}
}

// synthBlank builds fill-in-blank and short-answer questions. Both use
// the blanking logic of the multiple-choice blank branch with no options
// array; the answer is the exact blanked term.
func (e *Engine) synthBlank(qt domain.QuestionType, in synthInput, opts domain.GenerationOptions) *domain.GeneratedQuestion {
	kw := in.keyword
	sentence := kw.Context[0]

	blanked, ok := blankTerm(sentence, kw.Word, e.cfg.BlankPlaceholder)
	if !ok {
		return nil
	}

	explanation := ""
	if qt == domain.TypeShortAnswer {
		explanation = fmt.Sprintf("The term %q completes the sentence from the source material.", kw.Word)
	}

	return &domain.GeneratedQuestion{
		ID:              util.NewULID(),
		Type:            qt,
		Question:        blanked,
		Answer:          kw.Word,
		Difficulty:      difficultyFor(in.rank, in.total, opts),
		Explanation:     explanation,
		RelatedKeywords: []string{kw.Word},
		SourceSection:   in.section,
		Context:         sentence,
	}
}

// synthTrueFalse emits the unmodified context sentence as a true
// statement half of the time; otherwise it substitutes the keyword with a
// distractor and emits a false statement naming the substitution.
func (e *Engine) synthTrueFalse(in synthInput, opts domain.GenerationOptions) *domain.GeneratedQuestion {
	kw := in.keyword
	sentence := kw.Context[0]

	if e.rng.Float64() < 0.5 {
		return &domain.GeneratedQuestion{
			ID:              util.NewULID(),
			Type:            domain.TypeTrueFalse,
			Question:        sentence,
			Answer:          "True",
			Difficulty:      difficultyFor(in.rank, in.total, opts),
			Explanation:     "The statement appears unchanged in the source material.",
			RelatedKeywords: []string{kw.Word},
			SourceSection:   in.section,
			Context:         sentence,
		}
	}

	distractors := distractor.Generate(kw.Word, in.pool, 1)
	if len(distractors) == 0 {
		return nil // silent skip, not an error
	}
	falsified, ok := blankTerm(sentence, kw.Word, distractors[0])
	if !ok {
		return nil
	}

	return &domain.GeneratedQuestion{
		ID:              util.NewULID(),
		Type:            domain.TypeTrueFalse,
		Question:        falsified,
		Answer:          "False",
		Difficulty:      difficultyFor(in.rank, in.total, opts),
		Explanation:     fmt.Sprintf("The source material uses %q here, not %q.", kw.Word, distractors[0]),
		RelatedKeywords: []string{kw.Word},
		SourceSection:   in.section,
		Context:         sentence,
	}
}

// difficultyFor interpolates linearly across the requested range by
// keyword rank: less important keywords yield harder questions.
func difficultyFor(rank, total int, opts domain.GenerationOptions) float64 {
	if total <= 0 {
		return opts.MinDifficulty
	}
	return opts.MinDifficulty + (opts.MaxDifficulty-opts.MinDifficulty)*float64(rank)/float64(total)
}

// blankTerm replaces every word-boundary occurrence of term in sentence
// (case-insensitive) with replacement. It reports false when no
// occurrence was replaced or when the term still appears as a substring
// afterwards, e.g. embedded inside a longer word; callers skip the
// question in that case.
func blankTerm(sentence, term, replacement string) (string, bool) {
	src := []rune(sentence)
	want := []rune(strings.ToLower(term))
	if len(want) == 0 {
		return sentence, false
	}

	var out []rune
	replaced := false
	for i := 0; i < len(src); {
		if matchesAt(src, want, i) && isBoundary(src, i, i+len(want)) {
			out = append(out, []rune(replacement)...)
			i += len(want)
			replaced = true
			continue
		}
		out = append(out, src[i])
		i++
	}

	result := string(out)
	if !replaced || strings.Contains(strings.ToLower(result), strings.ToLower(term)) {
		return sentence, false
	}
	return result, true
}

func matchesAt(src, want []rune, i int) bool {
	if i+len(want) > len(src) {
		return false
	}
	for j, r := range want {
		if unicode.ToLower(src[i+j]) != r {
			return false
		}
	}
	return true
}

func isBoundary(src []rune, start, end int) bool {
	if start > 0 && isWordRune(src[start-1]) {
		return false
	}
	if end < len(src) && isWordRune(src[end]) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// truncateSummary shortens a sentence to at most max runes, appending an
// ellipsis when it was cut.
func truncateSummary(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:max])) + "..."
}
