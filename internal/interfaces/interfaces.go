package interfaces

import (
	"context"

	"quiz-widget/backend/internal/chat"
	"quiz-widget/backend/internal/quiz"
	"quiz-widget/backend/internal/service"
	"quiz-widget/backend/internal/upload"
)

// This file defines the interfaces the API layer depends on. Handlers take
// these instead of the concrete services so they can be tested with mocks.

// ChatService manages widget sessions and their conversations.
type ChatService interface {
	Create(ctx context.Context) (*chat.Snapshot, error)
	Get(ctx context.Context, widgetID string) (*chat.Snapshot, error)
	Delete(ctx context.Context, widgetID string) error
	SendMessage(ctx context.Context, widgetID, text string) error
	ClearError(ctx context.Context, widgetID string) error
	Subscribe(ctx context.Context, widgetID string) (<-chan service.WidgetEvent, func(), error)
}

// QuizService runs the quiz modal of each widget.
type QuizService interface {
	Open(ctx context.Context, widgetID string, req *service.OpenQuizRequest) (*quiz.State, error)
	State(ctx context.Context, widgetID string) (*quiz.State, error)
	Answer(ctx context.Context, widgetID string, option int) (*quiz.State, error)
	Next(ctx context.Context, widgetID string) (*quiz.State, error)
	Previous(ctx context.Context, widgetID string) (*quiz.State, error)
	Reset(ctx context.Context, widgetID string) (*quiz.State, error)
	Close(ctx context.Context, widgetID string) error
}

// UploadService tracks documents dropped onto a widget.
type UploadService interface {
	Upload(ctx context.Context, widgetID string, files []service.FileInput) (*service.UploadResult, error)
	List(ctx context.Context, widgetID string) ([]upload.File, error)
	Remove(ctx context.Context, widgetID, fileID string) error
}

var (
	_ ChatService   = (*service.ChatService)(nil)
	_ QuizService   = (*service.QuizService)(nil)
	_ UploadService = (*service.UploadService)(nil)
)
