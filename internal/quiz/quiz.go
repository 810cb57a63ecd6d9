// Package quiz holds the quiz document model, payload validation and the
// single-attempt quiz engine.
package quiz

import (
	"fmt"

	app_errors "quiz-widget/backend/internal/errors"
)

// OptionCount is the number of choices every question carries.
const OptionCount = 4

// UnansweredLabel is shown in a review for questions the user skipped.
const UnansweredLabel = "unanswered"

var (
	ErrInvalidQuiz     = fmt.Errorf("%w: invalid quiz", app_errors.ErrValidation)
	ErrEmptyQuiz       = fmt.Errorf("%w: quiz has no questions", app_errors.ErrValidation)
	ErrOptionRange     = fmt.Errorf("%w: option index out of range", app_errors.ErrValidation)
	ErrUnanswered      = fmt.Errorf("%w: current question has no answer", app_errors.ErrValidation)
	ErrAtFirstQuestion = fmt.Errorf("%w: already at the first question", app_errors.ErrValidation)
	ErrNotAnswering    = fmt.Errorf("%w: quiz is not accepting answers", app_errors.ErrConflict)
)

// Question is a single multiple choice question. CorrectAnswer holds the
// option text, not its index.
type Question struct {
	Text          string   `json:"question"`
	Options       []string `json:"options" validate:"len=4"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// Document is a quiz as produced by the quiz generation tool.
type Document struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions" validate:"min=1,dive"`
}

// Payload is the envelope the tool output arrives in.
type Payload struct {
	Quiz Document `json:"quiz" validate:"required"`
}

// Clone returns a deep copy so the caller and the copy evolve independently.
func (d *Document) Clone() *Document {
	out := &Document{Title: d.Title, Questions: make([]Question, len(d.Questions))}
	for i, q := range d.Questions {
		out.Questions[i] = Question{
			Text:          q.Text,
			Options:       append([]string(nil), q.Options...),
			CorrectAnswer: q.CorrectAnswer,
		}
	}
	return out
}

// Summary is what the chat shows for a quiz before it is opened.
type Summary struct {
	Title         string `json:"title"`
	QuestionCount int    `json:"question_count"`
}

func (d *Document) Summary() Summary {
	return Summary{Title: d.Title, QuestionCount: len(d.Questions)}
}
