// Package tui is a terminal rendition of the chat widget: a message list, an
// input line and a quiz modal, driven by a chat.Adapter.
package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"quiz-widget/backend/internal/quiz"
)

// adapterUpdateMsg tells the model the adapter changed. The model re-reads
// the adapter rather than trusting a payload, so coalesced signals lose
// nothing.
type adapterUpdateMsg struct{}

// bridge carries adapter callbacks, which run on the adapter's goroutine,
// into the Bubble Tea loop.
type bridge struct {
	signal chan struct{}

	mu      sync.Mutex
	lastErr error
	pushed  *quiz.Document
}

func newBridge() *bridge {
	return &bridge{signal: make(chan struct{}, 1)}
}

func (b *bridge) notify() {
	select {
	case b.signal <- struct{}{}:
	default:
	}
}

func (b *bridge) onError(err error) {
	b.mu.Lock()
	b.lastErr = err
	b.mu.Unlock()
	b.notify()
}

func (b *bridge) onQuiz(doc *quiz.Document) {
	b.mu.Lock()
	b.pushed = doc
	b.mu.Unlock()
	b.notify()
}

// take returns and clears the pending error and pushed quiz.
func (b *bridge) take() (*quiz.Document, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	doc, err := b.pushed, b.lastErr
	b.pushed, b.lastErr = nil, nil
	return doc, err
}

// waitForUpdate blocks until the adapter signals a change.
func waitForUpdate(signal <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-signal; !ok {
			return nil
		}
		return adapterUpdateMsg{}
	}
}
