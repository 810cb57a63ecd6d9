// Package chat folds the chat backend's message stream into an ordered list
// of renderable messages and gates user input on the stream status.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	app_errors "quiz-widget/backend/internal/errors"
	"quiz-widget/backend/internal/model"
	"quiz-widget/backend/internal/quiz"
)

// GreetingID is the id of the assistant message a new conversation starts with.
const GreetingID = "greeting"

// DefaultQuizTool is the name of the backend tool whose output is a quiz.
const DefaultQuizTool = "generateQuiz"

var (
	ErrEmptyMessage = fmt.Errorf("%w: message is empty", app_errors.ErrValidation)
	ErrNotReady     = fmt.Errorf("%w: chat is not ready for input", app_errors.ErrConflict)
	ErrNoQuiz       = fmt.Errorf("%w: no quiz at that position", app_errors.ErrNotFound)
	ErrQuizPending  = fmt.Errorf("%w: quiz is still being generated", app_errors.ErrConflict)

	// ErrStream is reported through OnError when the transport or the backend
	// fails mid-reply.
	ErrStream = errors.New("chat stream failed")
	// ErrMalformedEvent is reported through OnError for events that cannot be
	// applied. The message list is left as it was.
	ErrMalformedEvent = errors.New("malformed stream event")
)

// Transport carries one submitted message to the chat backend and delivers
// the reply as events on ch. Implementations must close ch before returning.
type Transport interface {
	Stream(ctx context.Context, req *model.SendRequest, ch chan<- model.Event) error
}

// Options configures an Adapter. Callbacks run outside the adapter's lock and
// may call back into it.
type Options struct {
	// ID identifies the conversation to the backend. Generated when empty.
	ID string
	// Greeting seeds the conversation when History is empty. Empty disables it.
	Greeting string
	// History restores a previously saved conversation.
	History  []model.ChatMessage
	QuizTool string
	Logger   *slog.Logger

	OnUpdate func()
	OnError  func(error)
	// OnQuiz receives quizzes pushed as data parts, already validated.
	OnQuiz func(*quiz.Document)
}

type toolRef struct {
	message int
	part    int
}

// Adapter is the message stream adapter for one conversation.
type Adapter struct {
	id        string
	transport Transport
	opts      Options
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.Mutex
	messages  []model.ChatMessage
	status    model.Status
	current   int    // assistant message receiving events, -1 when none
	gen       uint64 // submission whose reply is live
	textParts map[string]int
	toolParts map[string]toolRef
}

// NewAdapter creates an adapter in the ready state.
func NewAdapter(transport Transport, opts Options) *Adapter {
	if opts.ID == "" {
		opts.ID = uuid.NewString()
	}
	if opts.QuizTool == "" {
		opts.QuizTool = DefaultQuizTool
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())

	a := &Adapter{
		id:        opts.ID,
		transport: transport,
		opts:      opts,
		logger:    logger.With("widget_id", opts.ID),
		ctx:       ctx,
		cancel:    cancel,
		status:    model.StatusReady,
		current:   -1,
		textParts: make(map[string]int),
		toolParts: make(map[string]toolRef),
	}

	switch {
	case len(opts.History) > 0:
		for _, msg := range opts.History {
			a.messages = append(a.messages, msg.Clone())
		}
		a.indexTools()
	case opts.Greeting != "":
		a.messages = append(a.messages, model.ChatMessage{
			ID:        GreetingID,
			Role:      model.RoleAssistant,
			Parts:     []model.Part{model.TextPart(opts.Greeting)},
			CreatedAt: time.Now().UTC(),
		})
	}
	return a
}

func (a *Adapter) indexTools() {
	for mi, msg := range a.messages {
		for pi, part := range msg.Parts {
			if part.Kind == model.PartTool && part.Tool != nil {
				a.toolParts[part.Tool.ToolCallID] = toolRef{message: mi, part: pi}
			}
		}
	}
}

func (a *Adapter) ID() string       { return a.id }
func (a *Adapter) QuizTool() string { return a.opts.QuizTool }

func (a *Adapter) Status() model.Status {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.status
}

// Messages returns a deep copy of the conversation.
func (a *Adapter) Messages() []model.ChatMessage {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cloneMessages()
}

func (a *Adapter) cloneMessages() []model.ChatMessage {
	out := make([]model.ChatMessage, len(a.messages))
	for i, msg := range a.messages {
		out[i] = msg.Clone()
	}
	return out
}

// Submit appends a user message and dispatches it to the transport. It
// returns as soon as the message is queued; the reply arrives through Apply.
func (a *Adapter) Submit(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}

	a.mu.Lock()
	if a.status != model.StatusReady {
		status := a.status
		a.mu.Unlock()
		return fmt.Errorf("%w (status %s)", ErrNotReady, status)
	}
	msg := model.ChatMessage{
		ID:        uuid.NewString(),
		Role:      model.RoleUser,
		Parts:     []model.Part{model.TextPart(text)},
		CreatedAt: time.Now().UTC(),
	}
	a.messages = append(a.messages, msg)
	a.status = model.StatusSubmitted
	a.current = -1
	a.gen++
	gen := a.gen
	req := &model.SendRequest{ID: a.id, Message: msg.Clone()}
	a.wg.Add(1)
	a.mu.Unlock()

	a.notify()
	a.logger.Debug("Submitted user message", "message_id", msg.ID)

	go a.run(gen, req)
	return nil
}

// run drives one submission. Once a newer submission exists, whatever is
// left of this reply is drained and dropped.
func (a *Adapter) run(gen uint64, req *model.SendRequest) {
	defer a.wg.Done()

	ch := make(chan model.Event)
	errCh := make(chan error, 1)
	go func() {
		errCh <- a.transport.Stream(a.ctx, req, ch)
	}()

	for ev := range ch {
		a.mu.Lock()
		if gen != a.gen {
			a.mu.Unlock()
			a.logger.Debug("Dropping event from a superseded reply", "type", ev.Type)
			continue
		}
		fx := a.apply(ev)
		a.mu.Unlock()
		a.runEffects(fx)
	}
	a.settle(gen, <-errCh)
}

// settle runs once the transport is done with a submission.
func (a *Adapter) settle(gen uint64, err error) {
	var fx effects
	a.mu.Lock()
	if gen != a.gen {
		a.mu.Unlock()
		if err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Warn("Superseded reply ended with an error", "error", err)
		}
		return
	}
	switch {
	case err != nil && !errors.Is(err, context.Canceled):
		a.status = model.StatusError
		fx.errs = append(fx.errs, fmt.Errorf("%w: %v", ErrStream, err))
	case a.status == model.StatusSubmitted || a.status == model.StatusStreaming:
		a.status = model.StatusReady
	}
	a.current = -1
	fx.changed = true
	a.mu.Unlock()

	a.runEffects(fx)
}

// ClearError reopens input after a failed reply. It reports whether the
// status was error.
func (a *Adapter) ClearError() bool {
	a.mu.Lock()
	if a.status != model.StatusError {
		a.mu.Unlock()
		return false
	}
	a.status = model.StatusReady
	a.mu.Unlock()
	a.notify()
	return true
}

// Wait blocks until every in-flight submission has settled.
func (a *Adapter) Wait() { a.wg.Wait() }

// Close stops any in-flight transport call and waits for it to return.
func (a *Adapter) Close() {
	a.cancel()
	a.wg.Wait()
}

type effects struct {
	changed bool
	errs    []error
	quiz    *quiz.Document
}

func (a *Adapter) runEffects(fx effects) {
	for _, err := range fx.errs {
		a.logger.Warn("Chat stream error", "error", err)
		if a.opts.OnError != nil {
			a.opts.OnError(err)
		}
	}
	if fx.quiz != nil && a.opts.OnQuiz != nil {
		a.opts.OnQuiz(fx.quiz)
	}
	if fx.changed {
		a.notify()
	}
}

func (a *Adapter) notify() {
	if a.opts.OnUpdate != nil {
		a.opts.OnUpdate()
	}
}

// Apply folds one stream event into the conversation as part of the live
// reply. Unknown event types are ignored. Only a submitted conversation
// moves to streaming; events applied while ready leave the status alone.
func (a *Adapter) Apply(ev model.Event) {
	a.mu.Lock()
	fx := a.apply(ev)
	a.mu.Unlock()
	a.runEffects(fx)
}

func (a *Adapter) apply(ev model.Event) effects {
	var fx effects

	switch ev.Type {
	case model.EventStart:
		a.markStreaming()
		if a.current >= 0 && ev.MessageID != "" && a.messages[a.current].ID == ev.MessageID {
			return fx
		}
		a.startMessage(ev.MessageID)
		fx.changed = true

	case model.EventTextStart:
		a.markStreaming()
		msg := a.assistant()
		msg.Parts = append(msg.Parts, model.TextPart(""))
		if ev.ID != "" {
			a.textParts[ev.ID] = len(msg.Parts) - 1
		}
		fx.changed = true

	case model.EventTextDelta:
		a.markStreaming()
		a.appendText(ev.ID, ev.Delta)
		fx.changed = true

	case model.EventTextEnd:
		delete(a.textParts, ev.ID)

	case model.EventToolInputStart, model.EventToolInputAvailable:
		a.markStreaming()
		state := model.ToolPending
		if ev.Type == model.EventToolInputAvailable {
			state = model.ToolInputAvailable
		}
		if ref, ok := a.toolParts[ev.ToolCallID]; ok {
			tool := a.messages[ref.message].Parts[ref.part].Tool
			if !tool.State.CanAdvanceTo(state) {
				a.logger.Debug("Ignoring tool state regression", "tool_call_id", ev.ToolCallID, "from", tool.State, "to", state)
				return fx
			}
			tool.State = state
			if len(ev.Input) > 0 {
				tool.Input = ev.Input
			}
			fx.changed = true
			return fx
		}
		msg := a.assistant()
		msg.Parts = append(msg.Parts, model.Part{Kind: model.PartTool, Tool: &model.ToolInvocation{
			ToolCallID: ev.ToolCallID,
			ToolName:   ev.ToolName,
			State:      state,
			Input:      ev.Input,
		}})
		a.toolParts[ev.ToolCallID] = toolRef{message: a.current, part: len(msg.Parts) - 1}
		fx.changed = true

	case model.EventToolOutputAvailable, model.EventToolOutputError:
		a.markStreaming()
		ref, ok := a.toolParts[ev.ToolCallID]
		if !ok {
			fx.errs = append(fx.errs, fmt.Errorf("%w: %s for unknown tool call %q", ErrMalformedEvent, ev.Type, ev.ToolCallID))
			return fx
		}
		tool := a.messages[ref.message].Parts[ref.part].Tool
		state := model.ToolOutputAvailable
		if ev.Type == model.EventToolOutputError {
			state = model.ToolOutputError
		}
		if !tool.State.CanAdvanceTo(state) {
			a.logger.Debug("Ignoring tool state regression", "tool_call_id", ev.ToolCallID, "from", tool.State, "to", state)
			return fx
		}
		tool.State = state
		tool.Output = ev.Output
		tool.ErrorText = ev.ErrorText
		fx.changed = true

	case model.EventDataQuiz:
		a.markStreaming()
		doc, err := quiz.Parse(ev.Data)
		if err != nil {
			a.logger.Warn("Discarding invalid quiz data part", "error", err)
			return fx
		}
		fx.quiz = doc

	case model.EventFinish:
		a.current = -1
		a.textParts = make(map[string]int)
		if a.status != model.StatusError {
			a.status = model.StatusReady
		}
		fx.changed = true

	case model.EventError:
		a.status = model.StatusError
		fx.errs = append(fx.errs, fmt.Errorf("%w: %s", ErrStream, ev.ErrorText))
		fx.changed = true

	case model.EventMalformed:
		fx.errs = append(fx.errs, fmt.Errorf("%w: %s", ErrMalformedEvent, ev.ErrorText))

	default:
		a.logger.Debug("Ignoring unknown stream event", "type", ev.Type)
	}
	return fx
}

func (a *Adapter) markStreaming() {
	if a.status == model.StatusSubmitted {
		a.status = model.StatusStreaming
	}
}

func (a *Adapter) startMessage(id string) {
	if id == "" {
		id = uuid.NewString()
	}
	a.messages = append(a.messages, model.ChatMessage{
		ID:        id,
		Role:      model.RoleAssistant,
		Parts:     []model.Part{},
		CreatedAt: time.Now().UTC(),
	})
	a.current = len(a.messages) - 1
	a.textParts = make(map[string]int)
}

// assistant returns the message receiving events, opening one if the
// backend skipped the start event.
func (a *Adapter) assistant() *model.ChatMessage {
	if a.current < 0 {
		a.startMessage("")
	}
	return &a.messages[a.current]
}

func (a *Adapter) appendText(id, delta string) {
	msg := a.assistant()
	if idx, ok := a.textParts[id]; ok && id != "" {
		msg.Parts[idx].Text += delta
		return
	}
	idx := len(msg.Parts) - 1
	if idx < 0 || msg.Parts[idx].Kind != model.PartText {
		msg.Parts = append(msg.Parts, model.TextPart(""))
		idx++
	}
	msg.Parts[idx].Text += delta
	if id != "" {
		a.textParts[id] = idx
	}
}
