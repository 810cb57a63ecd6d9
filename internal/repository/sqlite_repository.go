package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quiz-widget/backend/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateWidget(ctx context.Context, widget *model.Widget) error {
	query := "INSERT INTO widgets (id, created_at, updated_at) VALUES (?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query, widget.ID, widget.CreatedAt, widget.UpdatedAt)
	return err
}

func (r *sqliteRepository) GetWidget(ctx context.Context, widgetID string) (*model.Widget, error) {
	query := "SELECT id, created_at, updated_at FROM widgets WHERE id = ?"
	row := r.db.QueryRowContext(ctx, query, widgetID)
	var widget model.Widget
	if err := row.Scan(&widget.ID, &widget.CreatedAt, &widget.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &widget, nil
}

func (r *sqliteRepository) DeleteWidget(ctx context.Context, widgetID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM messages WHERE widget_id = ?", widgetID); err != nil {
		return fmt.Errorf("could not delete messages: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM widgets WHERE id = ?", widgetID); err != nil {
		return fmt.Errorf("could not delete widget: %w", err)
	}
	return tx.Commit()
}

// SaveMessages rewrites the whole transcript in one transaction, so a reader
// never sees half of an update.
func (r *sqliteRepository) SaveMessages(ctx context.Context, widgetID string, messages []model.ChatMessage) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM messages WHERE widget_id = ?", widgetID); err != nil {
		return fmt.Errorf("could not clear messages: %w", err)
	}

	insertMsgQuery := `
		INSERT INTO messages (id, widget_id, position, role, parts, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for i, msg := range messages {
		parts, err := json.Marshal(msg.Parts)
		if err != nil {
			return fmt.Errorf("could not marshal parts of message %s: %w", msg.ID, err)
		}
		if _, err := tx.ExecContext(ctx, insertMsgQuery, msg.ID, widgetID, i, msg.Role, string(parts), msg.CreatedAt); err != nil {
			return fmt.Errorf("could not insert message: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx, "UPDATE widgets SET updated_at = ? WHERE id = ?", time.Now().UTC(), widgetID)
	if err != nil {
		return fmt.Errorf("could not update widget timestamp: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}

	return tx.Commit()
}

func (r *sqliteRepository) GetMessages(ctx context.Context, widgetID string) ([]model.ChatMessage, error) {
	query := `
		SELECT id, role, parts, created_at
		FROM messages
		WHERE widget_id = ?
		ORDER BY position ASC
	`
	rows, err := r.db.QueryContext(ctx, query, widgetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []model.ChatMessage{}
	for rows.Next() {
		var msg model.ChatMessage
		var parts string
		if err := rows.Scan(&msg.ID, &msg.Role, &parts, &msg.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(parts), &msg.Parts); err != nil {
			return nil, fmt.Errorf("could not decode parts of message %s: %w", msg.ID, err)
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
