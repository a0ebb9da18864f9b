package service

import "errors"

// ErrNoQuestion is returned by SubmitAnswer once every question has been answered.
var ErrNoQuestion = errors.New("no question available")

type QuizQuestion struct {
	Question string
	Options  []string
	Correct  int
}

// CorrectOption returns the text of the correct option.
func (q QuizQuestion) CorrectOption() string {
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return ""
	}
	return q.Options[q.Correct]
}

type AnswerRecord struct {
	QuestionIndex int
	Answer        int
	IsCorrect     bool
}

type Score struct {
	Correct    int
	Total      int
	Percentage int
}

// Quiz tracks progress through a fixed list of questions.
type Quiz struct {
	questions       []QuizQuestion
	currentQuestion int
	score           int
	answers         []AnswerRecord
}

func NewQuiz(questions []QuizQuestion) *Quiz {
	qs := make([]QuizQuestion, len(questions))
	copy(qs, questions)

	return &Quiz{
		questions: qs,
		answers:   make([]AnswerRecord, 0, len(qs)),
	}
}

// CurrentQuestion returns the question at the cursor, or false if the quiz is complete.
func (q *Quiz) CurrentQuestion() (QuizQuestion, bool) {
	if q.currentQuestion >= len(q.questions) {
		return QuizQuestion{}, false
	}
	return q.questions[q.currentQuestion], true
}

func (q *Quiz) CurrentIndex() int {
	return q.currentQuestion
}

// SubmitAnswer records an answer for the current question and advances the cursor.
// Any index is accepted; one that doesn't match the correct option counts as wrong.
func (q *Quiz) SubmitAnswer(answer int) (bool, error) {
	question, ok := q.CurrentQuestion()
	if !ok {
		return false, ErrNoQuestion
	}

	isCorrect := answer == question.Correct
	if isCorrect {
		q.score++
	}

	q.answers = append(q.answers, AnswerRecord{
		QuestionIndex: q.currentQuestion,
		Answer:        answer,
		IsCorrect:     isCorrect,
	})
	q.currentQuestion++

	return isCorrect, nil
}

func (q *Quiz) IsComplete() bool {
	return q.currentQuestion >= len(q.questions)
}

// Score reports the result so far. Percentage rounds half up and is 0 for an empty quiz.
func (q *Quiz) Score() Score {
	total := len(q.questions)
	s := Score{Correct: q.score, Total: total}
	if total > 0 {
		s.Percentage = (q.score*200 + total) / (2 * total)
	}
	return s
}

func (q *Quiz) Reset() {
	q.currentQuestion = 0
	q.score = 0
	q.answers = make([]AnswerRecord, 0, len(q.questions))
}

func (q *Quiz) TotalQuestions() int {
	return len(q.questions)
}

// Answers returns a copy of the answer history in submission order.
func (q *Quiz) Answers() []AnswerRecord {
	out := make([]AnswerRecord, len(q.answers))
	copy(out, q.answers)
	return out
}
