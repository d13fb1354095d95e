package aiquiz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

var (
	ErrWrongQuestionCount = errors.New("wrong number of questions")
	ErrWrongOptionCount   = errors.New("question must have exactly 4 options")
	ErrEmptyQuestion      = errors.New("question text is empty")
	ErrEmptyOption        = errors.New("option text is empty")
	ErrDuplicateOption    = errors.New("options must be distinct")
	ErrAnswerNotInOptions = errors.New("correct answer is not one of the options")
)

// Validate enforces what the response schema cannot: exactly QuestionCount
// questions of OptionCount distinct options, with the correct answer among them.
func Validate(questions []Question) error {
	if len(questions) != QuestionCount {
		return fmt.Errorf("%w: got %d, want %d", ErrWrongQuestionCount, len(questions), QuestionCount)
	}
	for i, q := range questions {
		if err := validateQuestion(q); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

func validateQuestion(q Question) error {
	if strings.TrimSpace(q.Question) == "" {
		return ErrEmptyQuestion
	}
	if len(q.Options) != OptionCount {
		return fmt.Errorf("%w: got %d", ErrWrongOptionCount, len(q.Options))
	}
	if lo.SomeBy(q.Options, func(o string) bool { return strings.TrimSpace(o) == "" }) {
		return ErrEmptyOption
	}
	if len(lo.Uniq(q.Options)) != len(q.Options) {
		return ErrDuplicateOption
	}
	if !lo.Contains(q.Options, q.CorrectAnswer) {
		return ErrAnswerNotInOptions
	}
	return nil
}
