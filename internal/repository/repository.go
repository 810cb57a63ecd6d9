package repository

import (
	"context"

	"quiz-widget/backend/internal/model"
)

// Repository stores widget transcripts so an evicted widget can be restored.
// Implementations must keep messages in the order they were saved.
type Repository interface {
	CreateWidget(ctx context.Context, widget *model.Widget) error
	GetWidget(ctx context.Context, widgetID string) (*model.Widget, error)
	DeleteWidget(ctx context.Context, widgetID string) error

	// SaveMessages replaces the stored transcript of a widget.
	SaveMessages(ctx context.Context, widgetID string, messages []model.ChatMessage) error
	GetMessages(ctx context.Context, widgetID string) ([]model.ChatMessage, error)
}
