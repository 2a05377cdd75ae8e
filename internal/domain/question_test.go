package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQuestionType(t *testing.T) {
	tests := []struct {
		input   string
		want    QuestionType
		wantErr bool
	}{
		{"multiple-choice", TypeMultipleChoice, false},
		{"fill-in-blank", TypeFillInBlank, false},
		{"true-false", TypeTrueFalse, false},
		{"short-answer", TypeShortAnswer, false},
		{" Multiple-Choice ", TypeMultipleChoice, false},
		{"TRUE-FALSE", TypeTrueFalse, false},
		{"essay", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseQuestionType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllQuestionTypes(t *testing.T) {
	assert.Len(t, AllQuestionTypes(), 4)
}

func TestGeneratedQuestion_Validate(t *testing.T) {
	valid := func() *GeneratedQuestion {
		return &GeneratedQuestion{
			ID:         "01HTEST",
			Type:       TypeMultipleChoice,
			Question:   "Which pigment absorbs sunlight?",
			Answer:     "chlorophyll",
			Options:    []string{"chlorophyll", "keratin", "melanin", "insulin"},
			Difficulty: 0.5,
		}
	}

	t.Run("ValidMultipleChoice", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("EmptyQuestion", func(t *testing.T) {
		q := valid()
		q.Question = ""
		assert.Error(t, q.Validate())
	})

	t.Run("EmptyAnswer", func(t *testing.T) {
		q := valid()
		q.Answer = ""
		assert.Error(t, q.Validate())
	})

	t.Run("DifficultyOutOfRange", func(t *testing.T) {
		q := valid()
		q.Difficulty = 1.5
		assert.Error(t, q.Validate())

		q.Difficulty = -0.1
		assert.Error(t, q.Validate())
	})

	t.Run("WrongOptionCount", func(t *testing.T) {
		q := valid()
		q.Options = q.Options[:3]
		assert.Error(t, q.Validate())
	})

	t.Run("DuplicateOptions", func(t *testing.T) {
		q := valid()
		q.Options = []string{"chlorophyll", "keratin", "Keratin", "insulin"}
		assert.Error(t, q.Validate())
	})

	t.Run("AnswerMissingFromOptions", func(t *testing.T) {
		q := valid()
		q.Options = []string{"keratin", "melanin", "insulin", "collagen"}
		assert.Error(t, q.Validate())
	})

	t.Run("NonChoiceTypesMustNotCarryOptions", func(t *testing.T) {
		for _, qt := range []QuestionType{TypeFillInBlank, TypeShortAnswer, TypeTrueFalse} {
			q := valid()
			q.Type = qt
			assert.Error(t, q.Validate(), "type %s", qt)

			q.Options = nil
			if qt == TypeTrueFalse {
				q.Answer = "True"
			}
			assert.NoError(t, q.Validate(), "type %s", qt)
		}
	})

	t.Run("UnknownType", func(t *testing.T) {
		q := valid()
		q.Type = "essay"
		q.Options = nil
		assert.Error(t, q.Validate())
	})
}

func TestKeyword_ContextChecks(t *testing.T) {
	t.Run("HasContext", func(t *testing.T) {
		assert.False(t, Keyword{Word: "energy"}.HasContext())
		assert.True(t, Keyword{Word: "energy", Context: []string{"stored energy"}}.HasContext())
	})

	t.Run("ContextContainsWord", func(t *testing.T) {
		assert.True(t, Keyword{
			Word:    "energy",
			Context: []string{"Plants store Energy as sugar"},
		}.ContextContainsWord())

		assert.False(t, Keyword{
			Word:    "energy",
			Context: []string{"water flows downhill"},
		}.ContextContainsWord())

		assert.False(t, Keyword{Context: []string{"anything"}}.ContextContainsWord())
	})
}

func TestGenerationOptions_Normalize(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		opts := GenerationOptions{}.Normalize()
		assert.Equal(t, AllQuestionTypes(), opts.QuestionTypes)
		assert.Equal(t, 10, opts.Count)
		assert.Equal(t, 0.0, opts.MinDifficulty)
		assert.Equal(t, 1.0, opts.MaxDifficulty)
	})

	t.Run("SwapsInvertedDifficulty", func(t *testing.T) {
		opts := GenerationOptions{MinDifficulty: 0.9, MaxDifficulty: 0.3}.Normalize()
		assert.Equal(t, 0.3, opts.MinDifficulty)
		assert.Equal(t, 0.9, opts.MaxDifficulty)
	})

	t.Run("KeepsExplicitValues", func(t *testing.T) {
		opts := GenerationOptions{
			QuestionTypes: []QuestionType{TypeTrueFalse},
			Count:         5,
			MinDifficulty: 0.1,
			MaxDifficulty: 0.6,
		}.Normalize()
		assert.Equal(t, []QuestionType{TypeTrueFalse}, opts.QuestionTypes)
		assert.Equal(t, 5, opts.Count)
	})
}
