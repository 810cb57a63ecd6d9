package service

import (
	"log/slog"
	"sync"

	"quiz-widget/backend/internal/chat"
	"quiz-widget/backend/internal/quiz"
	"quiz-widget/backend/internal/upload"
)

// EventKind names what changed in a widget.
type EventKind string

const (
	EventChat    EventKind = "chat"
	EventQuiz    EventKind = "quiz"
	EventUploads EventKind = "uploads"
	EventError   EventKind = "error"
)

// WidgetEvent is one frame of a widget's event stream. Only the field that
// matches Kind is set; a quiz event with a nil Quiz means the quiz closed.
type WidgetEvent struct {
	Kind    EventKind      `json:"kind"`
	Chat    *chat.Snapshot `json:"chat,omitempty"`
	Quiz    *quiz.State    `json:"quiz,omitempty"`
	Uploads []upload.File  `json:"uploads,omitempty"`
	Error   string         `json:"error,omitempty"`
}

const subscriberBuffer = 32

// hub fans widget events out to the subscribers of each widget. Slow
// subscribers lose frames rather than stall the publisher.
type hub struct {
	mu     sync.Mutex
	subs   map[string]map[chan WidgetEvent]struct{}
	logger *slog.Logger
}

func newHub(logger *slog.Logger) *hub {
	return &hub{subs: make(map[string]map[chan WidgetEvent]struct{}), logger: logger}
}

// subscribe registers a new subscriber. initial events are queued before any
// published ones.
func (h *hub) subscribe(widgetID string, initial ...WidgetEvent) (<-chan WidgetEvent, func()) {
	ch := make(chan WidgetEvent, subscriberBuffer)
	for _, ev := range initial {
		ch <- ev
	}

	h.mu.Lock()
	if h.subs[widgetID] == nil {
		h.subs[widgetID] = make(map[chan WidgetEvent]struct{})
	}
	h.subs[widgetID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if set, ok := h.subs[widgetID]; ok {
				if _, ok := set[ch]; ok {
					delete(set, ch)
					close(ch)
				}
				if len(set) == 0 {
					delete(h.subs, widgetID)
				}
			}
		})
	}
}

func (h *hub) publish(widgetID string, ev WidgetEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[widgetID] {
		select {
		case ch <- ev:
		default:
			h.logger.Debug("Dropping event for slow subscriber", "widget_id", widgetID, "kind", ev.Kind)
		}
	}
}

// closeWidget ends every subscription of a widget.
func (h *hub) closeWidget(widgetID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs[widgetID] {
		close(ch)
	}
	delete(h.subs, widgetID)
}
