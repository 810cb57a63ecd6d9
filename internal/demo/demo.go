// Package demo is a scripted stand-in for the chat backend. It speaks the same
// message stream as the real backend so the widget can run without one.
package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"quiz-widget/backend/internal/model"
	"quiz-widget/backend/internal/quiz"
)

const (
	exampleReply = "This is an example."
	quizIntro    = "Here is a quiz to test your knowledge."
)

// GeneralKnowledge is the quiz the demo backend hands out.
func GeneralKnowledge() quiz.Payload {
	return quiz.Payload{Quiz: quiz.Document{
		Title: "General Knowledge Quiz",
		Questions: []quiz.Question{
			{
				Text:          "What is the capital of Australia?",
				Options:       []string{"Sydney", "Melbourne", "Canberra", "Perth"},
				CorrectAnswer: "Canberra",
			},
			{
				Text:          "Which planet is known as the 'Red Planet'?",
				Options:       []string{"Venus", "Mars", "Jupiter", "Saturn"},
				CorrectAnswer: "Mars",
			},
			{
				Text:          "What is the chemical symbol for gold?",
				Options:       []string{"Au", "Ag", "Fe", "Cu"},
				CorrectAnswer: "Au",
			},
			{
				Text:          "Who painted the Mona Lisa?",
				Options:       []string{"Vincent van Gogh", "Leonardo da Vinci", "Pablo Picasso", "Michelangelo"},
				CorrectAnswer: "Leonardo da Vinci",
			},
			{
				Text:          "What is the largest ocean on Earth?",
				Options:       []string{"Atlantic Ocean", "Indian Ocean", "Arctic Ocean", "Pacific Ocean"},
				CorrectAnswer: "Pacific Ocean",
			},
		},
	}}
}

// Prompt joins the text parts of a message.
func Prompt(msg model.ChatMessage) string {
	var b strings.Builder
	for _, part := range msg.Parts {
		if part.Kind == model.PartText {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

// WantsQuiz reports whether the prompt asks for a quiz.
func WantsQuiz(prompt string) bool {
	return strings.Contains(strings.ToLower(prompt), "quiz")
}

// Reply scripts the full event sequence answering req. Text is streamed one
// word per delta. Prompts that mention a quiz also get a quizTool call whose
// output is GeneralKnowledge.
func Reply(req *model.SendRequest, quizTool string) ([]model.Event, error) {
	prompt := Prompt(req.Message)
	text := exampleReply
	if WantsQuiz(prompt) {
		text = quizIntro
	}

	events := []model.Event{
		{Type: model.EventStart, MessageID: "demo-" + uuid.NewString()},
		{Type: model.EventTextStart, ID: "text-1"},
	}
	for _, word := range strings.SplitAfter(text, " ") {
		events = append(events, model.Event{Type: model.EventTextDelta, ID: "text-1", Delta: word})
	}
	events = append(events, model.Event{Type: model.EventTextEnd, ID: "text-1"})

	if WantsQuiz(prompt) {
		input, err := json.Marshal(map[string]string{"topic": prompt})
		if err != nil {
			return nil, fmt.Errorf("could not marshal tool input: %w", err)
		}
		output, err := json.Marshal(GeneralKnowledge())
		if err != nil {
			return nil, fmt.Errorf("could not marshal quiz: %w", err)
		}
		callID := "call-" + uuid.NewString()
		events = append(events,
			model.Event{Type: model.EventToolInputStart, ToolCallID: callID, ToolName: quizTool},
			model.Event{Type: model.EventToolInputAvailable, ToolCallID: callID, ToolName: quizTool, Input: input},
			model.Event{Type: model.EventToolOutputAvailable, ToolCallID: callID, Output: output},
		)
	}

	return append(events, model.Event{Type: model.EventFinish}), nil
}

// Transport answers submissions in-process with Reply.
type Transport struct {
	quizTool string
	delay    time.Duration
}

// NewTransport returns a transport that pauses delay between events.
func NewTransport(quizTool string, delay time.Duration) *Transport {
	return &Transport{quizTool: quizTool, delay: delay}
}

func (t *Transport) Stream(ctx context.Context, req *model.SendRequest, ch chan<- model.Event) error {
	defer close(ch)

	events, err := Reply(req, t.quizTool)
	if err != nil {
		return err
	}
	for _, ev := range events {
		if t.delay > 0 {
			select {
			case <-time.After(t.delay):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		select {
		case ch <- ev:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
