package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	ErrInvalidAnswer  = errors.New("invalid answer")
	ErrSessionStarted = errors.New("session already started")
)

const banner = "================================="

// Channel is the line-based I/O the session talks to.
// Close must be safe to call more than once.
type Channel interface {
	WriteLine(text string) error
	ReadLine(ctx context.Context, prompt string) (string, error)
	Close() error
}

type SessionState int

const (
	StateIdle SessionState = iota
	StateAwaitingAnswer
	StateComplete
	StateInterrupted
)

func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingAnswer:
		return "awaiting_answer"
	case StateComplete:
		return "complete"
	case StateInterrupted:
		return "interrupted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// QuizSession drives one pass through a quiz over a Channel.
type QuizSession struct {
	quiz    *Quiz
	channel Channel
	printer *message.Printer
	state   SessionState

	// first write error; later writes are skipped once set
	err error
}

func NewQuizSession(quiz *Quiz, channel Channel, printer *message.Printer) *QuizSession {
	if printer == nil {
		printer = message.NewPrinter(language.English)
	}
	return &QuizSession{
		quiz:    quiz,
		channel: channel,
		printer: printer,
		state:   StateIdle,
	}
}

func (s *QuizSession) State() SessionState {
	return s.state
}

func (s *QuizSession) Quiz() *Quiz {
	return s.quiz
}

// Run shows every question, collects answers and prints the results.
// The channel is closed exactly once when Run returns.
func (s *QuizSession) Run(ctx context.Context) (err error) {
	if s.state != StateIdle {
		return ErrSessionStarted
	}

	defer func() {
		if cerr := s.channel.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close channel: %w", cerr)
		}
	}()

	s.start()
	if s.err != nil {
		return s.err
	}

	for !s.quiz.IsComplete() {
		s.state = StateAwaitingAnswer
		question, _ := s.quiz.CurrentQuestion()

		s.sendQuestion(question)
		if s.err != nil {
			return s.err
		}

		prompt := s.printer.Sprintf("Your answer (1-%s): ", itoa(len(question.Options)))
		line, err := s.channel.ReadLine(ctx, prompt)
		if err != nil {
			return s.abort(err)
		}

		s.handleAnswer(question, line)
		if s.err != nil {
			return s.err
		}
	}

	s.state = StateComplete
	s.showResults()
	return s.err
}

func (s *QuizSession) start() {
	s.writeLine("")
	s.writeLine(banner)
	s.writeLine(s.printer.Sprintf("Welcome to the Go Quiz!"))
	s.writeLine(banner)
	s.writeLine("")
	s.writeLine(s.printer.Sprintf("Total Questions: %s", itoa(s.quiz.TotalQuestions())))
}

func (s *QuizSession) sendQuestion(question QuizQuestion) {
	s.writeLine("")
	s.writeLine(s.printer.Sprintf("Question %s/%s", itoa(s.quiz.CurrentIndex()+1), itoa(s.quiz.TotalQuestions())))
	s.writeLine(question.Question)
	s.writeLine("")
	for i, option := range question.Options {
		s.writeLine(fmt.Sprintf("%d. %s", i+1, option))
	}
}

// handleAnswer validates raw input against the current question; invalid input leaves the quiz untouched.
func (s *QuizSession) handleAnswer(question QuizQuestion, raw string) {
	answer, err := parseAnswer(raw, len(question.Options))
	if err != nil {
		s.writeLine("")
		s.writeLine(s.printer.Sprintf("Invalid input! Please enter a number between 1 and %s.", itoa(len(question.Options))))
		return
	}

	isCorrect, err := s.quiz.SubmitAnswer(answer)
	if err != nil {
		// the loop only submits while a question is pending
		s.err = fmt.Errorf("submit answer: %w", err)
		return
	}

	if isCorrect {
		s.writeLine(s.printer.Sprintf("✓ Correct!"))
	} else {
		s.writeLine(s.printer.Sprintf("✗ Incorrect. The correct answer was: %s", question.CorrectOption()))
	}
}

func (s *QuizSession) showResults() {
	score := s.quiz.Score()

	s.writeLine("")
	s.writeLine(banner)
	s.writeLine(s.printer.Sprintf("Quiz Complete!"))
	s.writeLine(banner)
	s.writeLine("")
	s.writeLine(s.printer.Sprintf("Your Score: %s/%s", itoa(score.Correct), itoa(score.Total)))
	s.writeLine(s.printer.Sprintf("Percentage: %s%%", itoa(score.Percentage)))
	s.writeLine("")
	s.writeLine(TierFor(score.Percentage).Message(s.printer))
}

func (s *QuizSession) abort(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.state = StateInterrupted
		s.writeLine("")
		s.writeLine(s.printer.Sprintf("Quiz interrupted."))
		return err
	case errors.Is(err, io.EOF):
		s.writeLine("")
		s.writeLine(s.printer.Sprintf("Input ended unexpectedly."))
	}
	return fmt.Errorf("read answer: %w", err)
}

func (s *QuizSession) writeLine(text string) {
	if s.err != nil {
		return
	}
	if err := s.channel.WriteLine(text); err != nil {
		s.err = fmt.Errorf("write line: %w", err)
	}
}

// itoa keeps counts free of locale digit grouping.
func itoa(n int) string {
	return strconv.Itoa(n)
}

// parseAnswer turns a 1-based answer into an option index. Like a lenient
// integer parse, it reads an optional sign and the leading digits and ignores
// whatever follows them, so "2abc" and "2.5" both mean 2.
func parseAnswer(raw string, options int) (int, error) {
	text := strings.TrimSpace(raw)

	end := 0
	if end < len(text) && (text[end] == '+' || text[end] == '-') {
		end++
	}
	digits := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAnswer, raw)
	}

	n, err := strconv.Atoi(text[:end])
	if err != nil {
		// too many digits for an int, so no option can match
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidAnswer, raw)
	}

	answer := n - 1
	if answer < 0 || answer >= options {
		return 0, fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidAnswer, n, options)
	}
	return answer, nil
}
