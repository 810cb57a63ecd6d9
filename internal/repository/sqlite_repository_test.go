package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-widget/backend/internal/model"
	"quiz-widget/backend/internal/repository"
)

func setupSQLite(t *testing.T) (repository.Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return repository.NewSQLiteRepository(db), mock
}

func TestSQLiteRepository_GetWidget(t *testing.T) {
	ctx := context.Background()
	query := regexp.QuoteMeta("SELECT id, created_at, updated_at FROM widgets WHERE id = ?")

	t.Run("Success", func(t *testing.T) {
		repo, mock := setupSQLite(t)
		created := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("w1", created, created)
		mock.ExpectQuery(query).WithArgs("w1").WillReturnRows(rows)

		widget, err := repo.GetWidget(ctx, "w1")
		require.NoError(t, err)
		assert.Equal(t, "w1", widget.ID)
		assert.Equal(t, created, widget.CreatedAt)
	})

	t.Run("Not found", func(t *testing.T) {
		repo, mock := setupSQLite(t)
		mock.ExpectQuery(query).WithArgs("missing").WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}))

		_, err := repo.GetWidget(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestSQLiteRepository_SaveMessages(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	messages := []model.ChatMessage{
		{ID: "m1", Role: model.RoleUser, Parts: []model.Part{model.TextPart("Hi")}, CreatedAt: created},
		{ID: "m2", Role: model.RoleAssistant, Parts: []model.Part{model.TextPart("Hello")}, CreatedAt: created},
	}
	deleteQuery := regexp.QuoteMeta("DELETE FROM messages WHERE widget_id = ?")
	insertQuery := regexp.QuoteMeta("INSERT INTO messages (id, widget_id, position, role, parts, created_at)")
	updateQuery := regexp.QuoteMeta("UPDATE widgets SET updated_at = ? WHERE id = ?")

	t.Run("Success", func(t *testing.T) {
		repo, mock := setupSQLite(t)
		mock.ExpectBegin()
		mock.ExpectExec(deleteQuery).WithArgs("w1").WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(insertQuery).
			WithArgs("m1", "w1", 0, "user", `[{"type":"text","text":"Hi"}]`, created).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec(insertQuery).
			WithArgs("m2", "w1", 1, "assistant", `[{"type":"text","text":"Hello"}]`, created).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectExec(updateQuery).WithArgs(sqlmock.AnyArg(), "w1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.SaveMessages(ctx, "w1", messages))
	})

	t.Run("Unknown widget rolls back", func(t *testing.T) {
		repo, mock := setupSQLite(t)
		mock.ExpectBegin()
		mock.ExpectExec(deleteQuery).WithArgs("w2").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(updateQuery).WithArgs(sqlmock.AnyArg(), "w2").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.SaveMessages(ctx, "w2", nil)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("Insert failure rolls back", func(t *testing.T) {
		repo, mock := setupSQLite(t)
		mock.ExpectBegin()
		mock.ExpectExec(deleteQuery).WithArgs("w1").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(insertQuery).WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := repo.SaveMessages(ctx, "w1", messages)
		assert.ErrorContains(t, err, "could not insert message")
	})
}

func TestSQLiteRepository_GetMessages(t *testing.T) {
	ctx := context.Background()
	repo, mock := setupSQLite(t)
	created := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "role", "parts", "created_at"}).
		AddRow("m1", "user", `[{"type":"text","text":"quiz me"}]`, created).
		AddRow("m2", "assistant", `[{"type":"tool","tool":{"toolCallId":"c1","toolName":"generateQuiz","state":"input-available"}}]`, created)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, role, parts, created_at")).WithArgs("w1").WillReturnRows(rows)

	messages, err := repo.GetMessages(ctx, "w1")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, model.RoleUser, messages[0].Role)
	assert.Equal(t, "quiz me", messages[0].Parts[0].Text)
	require.NotNil(t, messages[1].Parts[0].Tool)
	assert.Equal(t, model.ToolInputAvailable, messages[1].Parts[0].Tool.State)
}

func TestSQLiteRepository_DeleteWidget(t *testing.T) {
	repo, mock := setupSQLite(t)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM messages WHERE widget_id = ?")).WithArgs("w1").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM widgets WHERE id = ?")).WithArgs("w1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteWidget(context.Background(), "w1"))
}
