package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	app_errors "quiz-widget/backend/internal/errors"
	"quiz-widget/backend/internal/quiz"
)

// ErrNoQuizSession is returned when a quiz operation targets a widget with no
// open quiz.
var ErrNoQuizSession = fmt.Errorf("%w: no quiz is open", app_errors.ErrNotFound)

// QuizSource resolves quiz documents from a widget's conversation and carries
// quiz state to the widget's subscribers.
type QuizSource interface {
	QuizDocument(ctx context.Context, widgetID, messageID string, partIndex int) (*quiz.Document, error)
	LatestQuiz(ctx context.Context, widgetID string) (*quiz.Document, error)
	Publish(widgetID string, ev WidgetEvent)
}

// OpenQuizRequest points at the quiz part whose call-to-action was clicked.
// A nil request opens the most recent quiz in the conversation.
type OpenQuizRequest struct {
	MessageID string `json:"message_id" validate:"required"`
	PartIndex *int   `json:"part_index" validate:"required,min=0"`
}

// QuizService runs at most one quiz session per widget.
type QuizService struct {
	source QuizSource
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*quiz.Session
}

func NewQuizService(source QuizSource, logger *slog.Logger) *QuizService {
	if logger == nil {
		logger = slog.Default()
	}
	return &QuizService{source: source, logger: logger, sessions: make(map[string]*quiz.Session)}
}

// Open starts a quiz from the conversation, replacing any open one.
func (s *QuizService) Open(ctx context.Context, widgetID string, req *OpenQuizRequest) (*quiz.State, error) {
	var doc *quiz.Document
	var err error
	if req == nil {
		doc, err = s.source.LatestQuiz(ctx, widgetID)
	} else {
		doc, err = s.source.QuizDocument(ctx, widgetID, req.MessageID, *req.PartIndex)
	}
	if err != nil {
		return nil, err
	}
	return s.Start(widgetID, doc)
}

// Start opens doc as the widget's quiz. It is also the hook for quizzes
// pushed by the backend.
func (s *QuizService) Start(widgetID string, doc *quiz.Document) (*quiz.State, error) {
	session, err := quiz.NewSession(doc)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.sessions[widgetID] = session
	st := session.Snapshot()
	s.mu.Unlock()

	s.logger.Info("Opened quiz", "widget_id", widgetID, "title", doc.Title, "questions", session.Len())
	s.source.Publish(widgetID, WidgetEvent{Kind: EventQuiz, Quiz: &st})
	return &st, nil
}

func (s *QuizService) State(ctx context.Context, widgetID string) (*quiz.State, error) {
	return s.update(widgetID, false, func(*quiz.Session) error { return nil })
}

func (s *QuizService) Answer(ctx context.Context, widgetID string, option int) (*quiz.State, error) {
	return s.update(widgetID, true, func(session *quiz.Session) error { return session.SelectAnswer(option) })
}

func (s *QuizService) Next(ctx context.Context, widgetID string) (*quiz.State, error) {
	return s.update(widgetID, true, func(session *quiz.Session) error { return session.Advance() })
}

func (s *QuizService) Previous(ctx context.Context, widgetID string) (*quiz.State, error) {
	return s.update(widgetID, true, func(session *quiz.Session) error { return session.Retreat() })
}

func (s *QuizService) Reset(ctx context.Context, widgetID string) (*quiz.State, error) {
	return s.update(widgetID, true, func(session *quiz.Session) error {
		session.Reset()
		return nil
	})
}

// Close discards the widget's quiz. Answers are not kept.
func (s *QuizService) Close(ctx context.Context, widgetID string) error {
	s.mu.Lock()
	_, ok := s.sessions[widgetID]
	delete(s.sessions, widgetID)
	s.mu.Unlock()
	if !ok {
		return ErrNoQuizSession
	}
	s.source.Publish(widgetID, WidgetEvent{Kind: EventQuiz})
	return nil
}

// Forget drops the widget's quiz without notifying anyone. Used when the
// widget itself goes away.
func (s *QuizService) Forget(widgetID string) {
	s.mu.Lock()
	delete(s.sessions, widgetID)
	s.mu.Unlock()
}

func (s *QuizService) update(widgetID string, publish bool, fn func(*quiz.Session) error) (*quiz.State, error) {
	s.mu.Lock()
	session, ok := s.sessions[widgetID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNoQuizSession
	}
	err := fn(session)
	st := session.Snapshot()
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if publish {
		s.source.Publish(widgetID, WidgetEvent{Kind: EventQuiz, Quiz: &st})
	}
	return &st, nil
}
