package model

import (
	"encoding/json"
	"time"
)

// Role identifies who authored a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Status gates input submission for a conversation.
type Status string

const (
	StatusReady     Status = "ready"
	StatusSubmitted Status = "submitted"
	StatusStreaming Status = "streaming"
	StatusError     Status = "error"
)

// PartKind discriminates the variants of Part.
type PartKind string

const (
	PartText PartKind = "text"
	PartTool PartKind = "tool"
)

// ToolState is the lifecycle of a tool invocation. States only move forward.
type ToolState string

const (
	ToolPending         ToolState = "input-streaming"
	ToolInputAvailable  ToolState = "input-available"
	ToolOutputAvailable ToolState = "output-available"
	ToolOutputError     ToolState = "output-error"
)

func (s ToolState) rank() int {
	switch s {
	case ToolPending:
		return 0
	case ToolInputAvailable:
		return 1
	case ToolOutputAvailable, ToolOutputError:
		return 2
	default:
		return -1
	}
}

// CanAdvanceTo reports whether moving from s to next keeps the lifecycle
// monotonic. Terminal states never move again.
func (s ToolState) CanAdvanceTo(next ToolState) bool {
	if next.rank() < 0 || s.rank() == 2 {
		return false
	}
	return next.rank() > s.rank()
}

// Done reports whether the invocation has a result or an error.
func (s ToolState) Done() bool { return s.rank() == 2 }

// ToolInvocation is a structured side-call the assistant made mid-reply.
type ToolInvocation struct {
	ToolCallID string          `json:"toolCallId"`
	ToolName   string          `json:"toolName"`
	State      ToolState       `json:"state"`
	Input      json.RawMessage `json:"input,omitempty"`
	Output     json.RawMessage `json:"output,omitempty"`
	ErrorText  string          `json:"errorText,omitempty"`
}

// Part is one renderable fragment of a message. Exactly one of Text (for
// PartText) or Tool (for PartTool) is meaningful.
type Part struct {
	Kind PartKind        `json:"type"`
	Text string          `json:"text,omitempty"`
	Tool *ToolInvocation `json:"tool,omitempty"`
}

func TextPart(text string) Part { return Part{Kind: PartText, Text: text} }

// ChatMessage is a single message in a conversation. Parts are in arrival
// order, which is also render order.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Parts     []Part    `json:"parts"`
	CreatedAt time.Time `json:"created_at"`
}

// Clone deep-copies the message so snapshots never alias live state.
func (m ChatMessage) Clone() ChatMessage {
	out := m
	out.Parts = make([]Part, len(m.Parts))
	for i, p := range m.Parts {
		out.Parts[i] = p
		if p.Tool != nil {
			tool := *p.Tool
			out.Parts[i].Tool = &tool
		}
	}
	return out
}

// Widget stores metadata about one widget session.
type Widget struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SendRequest is the outbound body posted to the chat backend: the widget id
// and the message that was just submitted.
type SendRequest struct {
	ID      string      `json:"id"`
	Message ChatMessage `json:"message"`
}

// EventType names an inbound stream event.
type EventType string

const (
	EventStart               EventType = "start"
	EventTextStart           EventType = "text-start"
	EventTextDelta           EventType = "text-delta"
	EventTextEnd             EventType = "text-end"
	EventToolInputStart      EventType = "tool-input-start"
	EventToolInputAvailable  EventType = "tool-input-available"
	EventToolOutputAvailable EventType = "tool-output-available"
	EventToolOutputError     EventType = "tool-output-error"
	EventDataQuiz            EventType = "data-quiz"
	EventFinish              EventType = "finish"
	EventError               EventType = "error"

	// EventMalformed is produced locally by transports for frames they could
	// not decode. It never appears on the wire.
	EventMalformed EventType = "malformed"
)

// Event is one chunk of the chat backend's message stream.
type Event struct {
	Type       EventType       `json:"type"`
	MessageID  string          `json:"messageId,omitempty"`
	ID         string          `json:"id,omitempty"`
	Delta      string          `json:"delta,omitempty"`
	ToolCallID string          `json:"toolCallId,omitempty"`
	ToolName   string          `json:"toolName,omitempty"`
	Input      json.RawMessage `json:"input,omitempty"`
	Output     json.RawMessage `json:"output,omitempty"`
	ErrorText  string          `json:"errorText,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
}
