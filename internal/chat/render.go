package chat

import (
	"fmt"

	"quiz-widget/backend/internal/model"
	"quiz-widget/backend/internal/quiz"
)

// ViewKind tells the view layer how to draw a part.
type ViewKind string

const (
	ViewText        ViewKind = "text"
	ViewQuizLoading ViewKind = "quiz-loading"
	ViewQuizReady   ViewKind = "quiz-ready"
	ViewQuizInvalid ViewKind = "quiz-invalid"
	ViewQuizError   ViewKind = "quiz-error"
)

// PartView is a rendered message part. Index points back at the source part
// so a quiz call-to-action can be resolved with Adapter.QuizDocument.
type PartView struct {
	Kind  ViewKind      `json:"kind"`
	Index int           `json:"index"`
	Text  string        `json:"text,omitempty"`
	Quiz  *quiz.Summary `json:"quiz,omitempty"`
	Error string        `json:"error,omitempty"`
}

type MessageView struct {
	ID    string     `json:"id"`
	Role  model.Role `json:"role"`
	Parts []PartView `json:"parts"`
}

// Snapshot is everything a view needs to redraw the conversation.
type Snapshot struct {
	ID       string        `json:"id"`
	Status   model.Status  `json:"status"`
	Messages []MessageView `json:"messages"`
}

// Render maps messages to views. Text is passed through verbatim; tool parts
// other than quizTool are not shown.
func Render(messages []model.ChatMessage, quizTool string) []MessageView {
	views := make([]MessageView, 0, len(messages))
	for _, msg := range messages {
		mv := MessageView{ID: msg.ID, Role: msg.Role, Parts: []PartView{}}
		for i, part := range msg.Parts {
			if pv, ok := renderPart(i, part, quizTool); ok {
				mv.Parts = append(mv.Parts, pv)
			}
		}
		views = append(views, mv)
	}
	return views
}

func renderPart(index int, part model.Part, quizTool string) (PartView, bool) {
	switch part.Kind {
	case model.PartText:
		if part.Text == "" {
			return PartView{}, false
		}
		return PartView{Kind: ViewText, Index: index, Text: part.Text}, true

	case model.PartTool:
		tool := part.Tool
		if tool == nil || tool.ToolName != quizTool {
			return PartView{}, false
		}
		switch tool.State {
		case model.ToolPending, model.ToolInputAvailable:
			return PartView{Kind: ViewQuizLoading, Index: index}, true
		case model.ToolOutputAvailable:
			doc, err := quiz.Parse(tool.Output)
			if err != nil {
				return PartView{Kind: ViewQuizInvalid, Index: index, Error: err.Error()}, true
			}
			summary := doc.Summary()
			return PartView{Kind: ViewQuizReady, Index: index, Quiz: &summary}, true
		case model.ToolOutputError:
			return PartView{Kind: ViewQuizError, Index: index, Error: tool.ErrorText}, true
		}
	}
	return PartView{}, false
}

// View renders the adapter's current state.
func (a *Adapter) View() Snapshot {
	a.mu.Lock()
	status := a.status
	messages := a.cloneMessages()
	a.mu.Unlock()
	return Snapshot{
		ID:       a.id,
		Status:   status,
		Messages: Render(messages, a.opts.QuizTool),
	}
}

// QuizDocument resolves a quiz call-to-action into a validated document. The
// returned document is freshly decoded and shares nothing with the adapter.
func (a *Adapter) QuizDocument(messageID string, partIndex int) (*quiz.Document, error) {
	a.mu.Lock()
	var tool *model.ToolInvocation
	for _, msg := range a.messages {
		if msg.ID != messageID {
			continue
		}
		if partIndex >= 0 && partIndex < len(msg.Parts) && msg.Parts[partIndex].Kind == model.PartTool {
			t := *msg.Parts[partIndex].Tool
			tool = &t
		}
		break
	}
	a.mu.Unlock()

	if tool == nil || tool.ToolName != a.opts.QuizTool {
		return nil, fmt.Errorf("%w: message %q part %d", ErrNoQuiz, messageID, partIndex)
	}
	switch tool.State {
	case model.ToolOutputAvailable:
		return quiz.Parse(tool.Output)
	case model.ToolOutputError:
		return nil, fmt.Errorf("%w: quiz generation failed: %s", ErrNoQuiz, tool.ErrorText)
	default:
		return nil, ErrQuizPending
	}
}

// LatestQuiz returns the most recent valid quiz in the conversation.
func (a *Adapter) LatestQuiz() (*quiz.Document, error) {
	messages := a.Messages()
	for mi := len(messages) - 1; mi >= 0; mi-- {
		parts := messages[mi].Parts
		for pi := len(parts) - 1; pi >= 0; pi-- {
			tool := parts[pi].Tool
			if parts[pi].Kind != model.PartTool || tool == nil || tool.ToolName != a.opts.QuizTool {
				continue
			}
			if tool.State != model.ToolOutputAvailable {
				continue
			}
			if doc, err := quiz.Parse(tool.Output); err == nil {
				return doc, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: conversation has no quiz", ErrNoQuiz)
}
