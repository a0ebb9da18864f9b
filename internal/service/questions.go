package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var ErrInvalidQuestion = errors.New("invalid question")

// ValidateQuestions checks every question before a quiz is built from the list.
func ValidateQuestions(questions []QuizQuestion, minOptions int) error {
	if minOptions < 2 {
		minOptions = 2
	}

	for i, q := range questions {
		if err := validateQuestion(q, minOptions); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

func validateQuestion(q QuizQuestion, minOptions int) error {
	if utf8.RuneCountInString(strings.TrimSpace(q.Question)) == 0 {
		return fmt.Errorf("%w: question cannot be empty", ErrInvalidQuestion)
	}

	if len(q.Options) < minOptions {
		return fmt.Errorf("%w: need at least %d options, got %d", ErrInvalidQuestion, minOptions, len(q.Options))
	}

	for i, option := range q.Options {
		if strings.TrimSpace(option) == "" {
			return fmt.Errorf("%w: option %d is empty", ErrInvalidQuestion, i+1)
		}
	}

	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return fmt.Errorf("%w: correct answer %d out of range 0-%d", ErrInvalidQuestion, q.Correct, len(q.Options)-1)
	}

	return nil
}

// DefaultQuizQuestions возвращает встроенный набор вопросов
func DefaultQuizQuestions() []QuizQuestion {
	return []QuizQuestion{
		{
			Question: "Which keyword starts a new goroutine?",
			Options:  []string{"async", "go", "spawn", "thread"},
			Correct:  1,
		},
		{
			Question: "What is the zero value of a map declared with var m map[string]int?",
			Options:  []string{"An empty map", "A map with one zero entry", "nil", "It does not compile"},
			Correct:  2,
		},
		{
			Question: "Which command creates a new module?",
			Options:  []string{"go new", "go mod init", "go init", "go build -mod"},
			Correct:  1,
		},
		{
			Question: "Which statement runs a call when the surrounding function returns?",
			Options:  []string{"finally", "defer", "after", "ensure"},
			Correct:  1,
		},
		{
			Question: "How does a function usually report failure in Go?",
			Options:  []string{"By throwing an exception", "By returning an error value", "By calling exit", "By setting errno"},
			Correct:  1,
		},
	}
}
