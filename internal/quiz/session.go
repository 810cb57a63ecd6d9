package quiz

import (
	"fmt"
	"math"
)

// Phase is the top-level mode of a quiz attempt.
type Phase string

const (
	PhaseAnswering Phase = "answering"
	PhaseReviewing Phase = "reviewing"
)

// Session drives one attempt at a quiz. The zero value is not usable; create
// sessions with NewSession. A Session is not safe for concurrent use.
type Session struct {
	doc      *Document
	index    int
	selected map[int]int
	phase    Phase
}

// NewSession starts an attempt over a private copy of doc.
func NewSession(doc *Document) (*Session, error) {
	if doc == nil || len(doc.Questions) == 0 {
		return nil, ErrEmptyQuiz
	}
	return &Session{
		doc:      doc.Clone(),
		selected: make(map[int]int),
		phase:    PhaseAnswering,
	}, nil
}

func (s *Session) Title() string        { return s.doc.Title }
func (s *Session) Len() int             { return len(s.doc.Questions) }
func (s *Session) CurrentIndex() int    { return s.index }
func (s *Session) Phase() Phase         { return s.phase }
func (s *Session) Current() Question    { return s.doc.Questions[s.index] }
func (s *Session) IsLastQuestion() bool { return s.index == len(s.doc.Questions)-1 }

// Selected reports the option chosen for question i, if any.
func (s *Session) Selected(i int) (int, bool) {
	opt, ok := s.selected[i]
	return opt, ok
}

// SelectAnswer records option for the current question, replacing any
// earlier choice.
func (s *Session) SelectAnswer(option int) error {
	if s.phase != PhaseAnswering {
		return ErrNotAnswering
	}
	if option < 0 || option >= len(s.Current().Options) {
		return fmt.Errorf("%w: %d", ErrOptionRange, option)
	}
	s.selected[s.index] = option
	return nil
}

// Advance moves to the next question, or to review after the last one.
// The current question must be answered.
func (s *Session) Advance() error {
	if s.phase != PhaseAnswering {
		return ErrNotAnswering
	}
	if _, ok := s.selected[s.index]; !ok {
		return ErrUnanswered
	}
	if s.IsLastQuestion() {
		s.phase = PhaseReviewing
		return nil
	}
	s.index++
	return nil
}

// Retreat moves back one question.
func (s *Session) Retreat() error {
	if s.phase != PhaseAnswering {
		return ErrNotAnswering
	}
	if s.index == 0 {
		return ErrAtFirstQuestion
	}
	s.index--
	return nil
}

// Reset starts the attempt over.
func (s *Session) Reset() {
	s.index = 0
	s.selected = make(map[int]int)
	s.phase = PhaseAnswering
}

// Progress is the percentage shown while answering, counting the current
// question as reached.
func (s *Session) Progress() int {
	return percent(s.index+1, len(s.doc.Questions))
}

// Score counts questions whose chosen option text equals the correct answer.
func (s *Session) Score() int {
	score := 0
	for i := range s.doc.Questions {
		if s.isCorrect(i) {
			score++
		}
	}
	return score
}

func (s *Session) Percentage() int {
	return percent(s.Score(), len(s.doc.Questions))
}

func (s *Session) isCorrect(i int) bool {
	opt, ok := s.selected[i]
	if !ok {
		return false
	}
	q := s.doc.Questions[i]
	return q.Options[opt] == q.CorrectAnswer
}

// ReviewItem is one line of the results listing.
type ReviewItem struct {
	Question      string `json:"question"`
	YourAnswer    string `json:"your_answer"`
	Answered      bool   `json:"answered"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correct_answer,omitempty"`
}

// Review lists every question with the user's answer. The correct answer is
// only filled in for questions answered wrongly or left unanswered.
func (s *Session) Review() []ReviewItem {
	items := make([]ReviewItem, len(s.doc.Questions))
	for i, q := range s.doc.Questions {
		item := ReviewItem{Question: q.Text, YourAnswer: UnansweredLabel}
		if opt, ok := s.selected[i]; ok {
			item.YourAnswer = q.Options[opt]
			item.Answered = true
		}
		item.Correct = s.isCorrect(i)
		if !item.Correct {
			item.CorrectAnswer = q.CorrectAnswer
		}
		items[i] = item
	}
	return items
}

// Result is the score card shown once the attempt is in review.
type Result struct {
	Score      int          `json:"score"`
	Total      int          `json:"total"`
	Percentage int          `json:"percentage"`
	Items      []ReviewItem `json:"items"`
}

func (s *Session) Result() Result {
	return Result{
		Score:      s.Score(),
		Total:      len(s.doc.Questions),
		Percentage: s.Percentage(),
		Items:      s.Review(),
	}
}

// State is a serializable view of the session.
type State struct {
	Title         string      `json:"title"`
	Phase         Phase       `json:"phase"`
	CurrentIndex  int         `json:"current_index"`
	QuestionCount int         `json:"question_count"`
	Progress      int         `json:"progress"`
	Question      *Question   `json:"question,omitempty"`
	Selected      *int        `json:"selected,omitempty"`
	Answers       map[int]int `json:"answers"`
	IsLast        bool        `json:"is_last"`
	Result        *Result     `json:"result,omitempty"`
}

// Snapshot copies the session into a State. The correct answer is withheld
// from the current question while answering.
func (s *Session) Snapshot() State {
	st := State{
		Title:         s.doc.Title,
		Phase:         s.phase,
		CurrentIndex:  s.index,
		QuestionCount: len(s.doc.Questions),
		Progress:      s.Progress(),
		Answers:       make(map[int]int, len(s.selected)),
		IsLast:        s.IsLastQuestion(),
	}
	for k, v := range s.selected {
		st.Answers[k] = v
	}

	switch s.phase {
	case PhaseAnswering:
		q := s.Current()
		st.Question = &Question{Text: q.Text, Options: append([]string(nil), q.Options...)}
		if opt, ok := s.selected[s.index]; ok {
			st.Selected = &opt
		}
	case PhaseReviewing:
		r := s.Result()
		st.Result = &r
	}
	return st
}

func percent(n, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(n) / float64(total) * 100))
}
