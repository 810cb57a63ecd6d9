package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"quiz-widget/backend/internal/chat"
	app_errors "quiz-widget/backend/internal/errors"
	"quiz-widget/backend/internal/model"
	"quiz-widget/backend/internal/quiz"
	"quiz-widget/backend/internal/repository"
)

const saveTimeout = 5 * time.Second

// ErrNoError is returned by ClearError when the widget is not in the error state.
var ErrNoError = fmt.Errorf("%w: widget is not in the error state", app_errors.ErrConflict)

// ChatConfig holds the widget settings shared by every conversation.
type ChatConfig struct {
	Greeting string
	QuizTool string
	// IdleTimeout is how long a widget may go untouched before it is evicted
	// from memory. Zero disables eviction.
	IdleTimeout time.Duration
}

type widgetSession struct {
	id       string
	adapter  *chat.Adapter
	saveMu   sync.Mutex
	lastSeen atomic.Int64
	closed   atomic.Bool
}

func (w *widgetSession) touch(now time.Time) { w.lastSeen.Store(now.UnixNano()) }

// ChatService owns the live widgets. Each widget wraps one chat.Adapter; its
// transcript is saved to the repository whenever a reply settles so the
// widget can be rebuilt after eviction.
type ChatService struct {
	repo      repository.Repository
	transport chat.Transport
	cfg       ChatConfig
	logger    *slog.Logger
	hub       *hub

	mu      sync.Mutex
	widgets map[string]*widgetSession

	hookMu     sync.RWMutex
	quizHooks  []func(widgetID string, doc *quiz.Document)
	closeHooks []func(widgetID string)
}

func NewChatService(repo repository.Repository, transport chat.Transport, cfg ChatConfig, logger *slog.Logger) *ChatService {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.QuizTool == "" {
		cfg.QuizTool = chat.DefaultQuizTool
	}
	return &ChatService{
		repo:      repo,
		transport: transport,
		cfg:       cfg,
		logger:    logger,
		hub:       newHub(logger),
		widgets:   make(map[string]*widgetSession),
	}
}

// OnQuiz registers fn to receive quizzes pushed as data parts.
func (s *ChatService) OnQuiz(fn func(widgetID string, doc *quiz.Document)) {
	s.hookMu.Lock()
	defer s.hookMu.Unlock()
	s.quizHooks = append(s.quizHooks, fn)
}

// OnClose registers fn to run when a widget is deleted or evicted.
func (s *ChatService) OnClose(fn func(widgetID string)) {
	s.hookMu.Lock()
	defer s.hookMu.Unlock()
	s.closeHooks = append(s.closeHooks, fn)
}

// Create starts a new widget seeded with the greeting.
func (s *ChatService) Create(ctx context.Context) (*chat.Snapshot, error) {
	now := time.Now().UTC()
	widget := &model.Widget{ID: uuid.NewString(), CreatedAt: now, UpdatedAt: now}
	if err := s.repo.CreateWidget(ctx, widget); err != nil {
		return nil, fmt.Errorf("could not create widget: %w", err)
	}

	ws := s.newSession(widget.ID, nil)
	if err := s.repo.SaveMessages(ctx, widget.ID, ws.adapter.Messages()); err != nil {
		return nil, fmt.Errorf("could not save greeting: %w", err)
	}

	s.mu.Lock()
	s.widgets[widget.ID] = ws
	s.mu.Unlock()

	s.logger.Info("Created widget", "widget_id", widget.ID)
	snap := ws.adapter.View()
	return &snap, nil
}

func (s *ChatService) Get(ctx context.Context, widgetID string) (*chat.Snapshot, error) {
	ws, err := s.session(ctx, widgetID)
	if err != nil {
		return nil, err
	}
	snap := ws.adapter.View()
	return &snap, nil
}

// Exists reports app_errors.ErrNotFound for unknown widgets.
func (s *ChatService) Exists(ctx context.Context, widgetID string) error {
	_, err := s.session(ctx, widgetID)
	return err
}

// Delete closes the widget and discards its transcript, quiz and uploads.
func (s *ChatService) Delete(ctx context.Context, widgetID string) error {
	s.mu.Lock()
	ws := s.widgets[widgetID]
	delete(s.widgets, widgetID)
	s.mu.Unlock()

	if ws == nil {
		if _, err := s.repo.GetWidget(ctx, widgetID); err != nil {
			return s.translate(widgetID, err)
		}
	} else {
		s.shutdown(ws)
	}
	s.runCloseHooks(widgetID)

	if err := s.repo.DeleteWidget(ctx, widgetID); err != nil {
		return fmt.Errorf("could not delete transcript: %w", err)
	}
	s.logger.Info("Deleted widget", "widget_id", widgetID)
	return nil
}

// SendMessage submits a user message. The reply streams in the background and
// is observable through Subscribe.
func (s *ChatService) SendMessage(ctx context.Context, widgetID, text string) error {
	ws, err := s.session(ctx, widgetID)
	if err != nil {
		return err
	}
	return ws.adapter.Submit(text)
}

func (s *ChatService) ClearError(ctx context.Context, widgetID string) error {
	ws, err := s.session(ctx, widgetID)
	if err != nil {
		return err
	}
	if !ws.adapter.ClearError() {
		return ErrNoError
	}
	return nil
}

func (s *ChatService) QuizDocument(ctx context.Context, widgetID, messageID string, partIndex int) (*quiz.Document, error) {
	ws, err := s.session(ctx, widgetID)
	if err != nil {
		return nil, err
	}
	return ws.adapter.QuizDocument(messageID, partIndex)
}

func (s *ChatService) LatestQuiz(ctx context.Context, widgetID string) (*quiz.Document, error) {
	ws, err := s.session(ctx, widgetID)
	if err != nil {
		return nil, err
	}
	return ws.adapter.LatestQuiz()
}

// Subscribe streams the widget's events, starting with the current chat
// snapshot. The returned func ends the subscription.
func (s *ChatService) Subscribe(ctx context.Context, widgetID string) (<-chan WidgetEvent, func(), error) {
	ws, err := s.session(ctx, widgetID)
	if err != nil {
		return nil, nil, err
	}
	snap := ws.adapter.View()
	ch, cancel := s.hub.subscribe(widgetID, WidgetEvent{Kind: EventChat, Chat: &snap})
	return ch, cancel, nil
}

// Publish sends ev to the widget's subscribers.
func (s *ChatService) Publish(widgetID string, ev WidgetEvent) {
	s.hub.publish(widgetID, ev)
}

// EvictIdle drops widgets untouched since before now-IdleTimeout from memory.
// Widgets with a reply in flight are kept. Their transcripts stay in the
// repository and are restored on next access.
func (s *ChatService) EvictIdle(now time.Time) []string {
	if s.cfg.IdleTimeout <= 0 {
		return nil
	}
	cutoff := now.Add(-s.cfg.IdleTimeout).UnixNano()

	var evicted []*widgetSession
	s.mu.Lock()
	for id, ws := range s.widgets {
		if ws.lastSeen.Load() > cutoff {
			continue
		}
		if status := ws.adapter.Status(); status != model.StatusReady && status != model.StatusError {
			continue
		}
		delete(s.widgets, id)
		evicted = append(evicted, ws)
	}
	s.mu.Unlock()

	ids := make([]string, 0, len(evicted))
	for _, ws := range evicted {
		s.shutdown(ws)
		s.runCloseHooks(ws.id)
		ids = append(ids, ws.id)
		s.logger.Info("Evicted idle widget", "widget_id", ws.id)
	}
	return ids
}

// RunJanitor evicts idle widgets every interval until ctx is done.
func (s *ChatService) RunJanitor(ctx context.Context, interval time.Duration) {
	if s.cfg.IdleTimeout <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.EvictIdle(now)
		}
	}
}

// Close shuts every live widget down. Transcripts are kept.
func (s *ChatService) Close() {
	s.mu.Lock()
	widgets := s.widgets
	s.widgets = make(map[string]*widgetSession)
	s.mu.Unlock()

	for _, ws := range widgets {
		s.shutdown(ws)
	}
}

// session returns the live widget, restoring it from the repository when it
// is not in memory.
func (s *ChatService) session(ctx context.Context, widgetID string) (*widgetSession, error) {
	now := time.Now()

	s.mu.Lock()
	ws, ok := s.widgets[widgetID]
	s.mu.Unlock()
	if ok {
		ws.touch(now)
		return ws, nil
	}

	if _, err := s.repo.GetWidget(ctx, widgetID); err != nil {
		return nil, s.translate(widgetID, err)
	}
	history, err := s.repo.GetMessages(ctx, widgetID)
	if err != nil {
		return nil, fmt.Errorf("could not load transcript: %w", err)
	}

	restored := s.newSession(widgetID, history)
	s.mu.Lock()
	if existing, ok := s.widgets[widgetID]; ok {
		s.mu.Unlock()
		restored.adapter.Close()
		existing.touch(now)
		return existing, nil
	}
	s.widgets[widgetID] = restored
	s.mu.Unlock()

	s.logger.Info("Restored widget from transcript", "widget_id", widgetID, "messages", len(history))
	return restored, nil
}

func (s *ChatService) newSession(widgetID string, history []model.ChatMessage) *widgetSession {
	ws := &widgetSession{id: widgetID}
	ws.touch(time.Now())
	ws.adapter = chat.NewAdapter(s.transport, chat.Options{
		ID:       widgetID,
		Greeting: s.cfg.Greeting,
		History:  history,
		QuizTool: s.cfg.QuizTool,
		Logger:   s.logger,
		OnUpdate: func() { s.onUpdate(ws) },
		OnError: func(err error) {
			s.hub.publish(widgetID, WidgetEvent{Kind: EventError, Error: err.Error()})
		},
		OnQuiz: func(doc *quiz.Document) { s.runQuizHooks(widgetID, doc) },
	})
	return ws
}

func (s *ChatService) onUpdate(ws *widgetSession) {
	snap := ws.adapter.View()
	s.hub.publish(ws.id, WidgetEvent{Kind: EventChat, Chat: &snap})

	if snap.Status == model.StatusReady || snap.Status == model.StatusError {
		s.persist(ws)
	}
}

// persist saves the current transcript. Saves are serialized per widget and
// read the messages under the save lock, so the last save always wins with
// the latest state.
func (s *ChatService) persist(ws *widgetSession) {
	ws.saveMu.Lock()
	defer ws.saveMu.Unlock()
	if ws.closed.Load() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	messages := ws.adapter.Messages()
	err := s.repo.SaveMessages(ctx, ws.id, messages)
	if errors.Is(err, repository.ErrNotFound) {
		// The stored record expired while the widget was live.
		now := time.Now().UTC()
		if err = s.repo.CreateWidget(ctx, &model.Widget{ID: ws.id, CreatedAt: now, UpdatedAt: now}); err == nil {
			err = s.repo.SaveMessages(ctx, ws.id, messages)
		}
	}
	if err != nil {
		s.logger.Error("Failed to save transcript", "widget_id", ws.id, "error", err)
	}
}

func (s *ChatService) shutdown(ws *widgetSession) {
	ws.saveMu.Lock()
	ws.closed.Store(true)
	ws.saveMu.Unlock()
	ws.adapter.Close()
	s.hub.closeWidget(ws.id)
}

func (s *ChatService) runQuizHooks(widgetID string, doc *quiz.Document) {
	s.hookMu.RLock()
	defer s.hookMu.RUnlock()
	for _, fn := range s.quizHooks {
		fn(widgetID, doc)
	}
}

func (s *ChatService) runCloseHooks(widgetID string) {
	s.hookMu.RLock()
	defer s.hookMu.RUnlock()
	for _, fn := range s.closeHooks {
		fn(widgetID)
	}
}

func (s *ChatService) translate(widgetID string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: widget %s", app_errors.ErrNotFound, widgetID)
	}
	return fmt.Errorf("could not load widget: %w", err)
}
