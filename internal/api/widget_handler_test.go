// Black-box tests: only the exported API of the package is exercised.
package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quiz-widget/backend/internal/api"
	"quiz-widget/backend/internal/chat"
	app_errors "quiz-widget/backend/internal/errors"
	"quiz-widget/backend/internal/interfaces/mocks"
	"quiz-widget/backend/internal/model"
	"quiz-widget/backend/internal/service"
)

// setupWidgetHandler builds a handler over a mocked chat service.
func setupWidgetHandler(t *testing.T) (*api.WidgetHandler, *mocks.MockChatService) {
	mockChatSvc := mocks.NewMockChatService(t)
	handler := api.NewWidgetHandler(mockChatSvc)
	return handler, mockChatSvc
}

// addChiURLParams simulates how the chi router injects URL parameters
// (e.g. `{widgetID}`) into the request's context.
func addChiURLParams(req *http.Request, params map[string]string) *http.Request {
	chiCtx := chi.NewRouteContext()
	for key, value := range params {
		chiCtx.URLParams.Add(key, value)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chiCtx))
}

func greetingSnapshot(id string) *chat.Snapshot {
	return &chat.Snapshot{
		ID:     id,
		Status: model.StatusReady,
		Messages: []chat.MessageView{{
			ID:    chat.GreetingID,
			Role:  model.RoleAssistant,
			Parts: []chat.PartView{{Kind: chat.ViewText, Text: "Hi! How can I help?"}},
		}},
	}
}

// TestWidgetHandler_HandleCreateWidget tests POST /v1/widgets.
//
// GOAL: Verify a new widget is returned with 201 and failures map to 500.
func TestWidgetHandler_HandleCreateWidget(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// ARRANGE
		handler, mockSvc := setupWidgetHandler(t)
		mockSvc.On("Create", mock.Anything).Return(greetingSnapshot("w1"), nil).Once()

		// ACT
		req := httptest.NewRequest(http.MethodPost, "/v1/widgets", nil)
		rr := httptest.NewRecorder()
		handler.HandleCreateWidget(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusCreated, rr.Code)
		var resp chat.Snapshot
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "w1", resp.ID)
		assert.Equal(t, model.StatusReady, resp.Status)
		require.Len(t, resp.Messages, 1)
		assert.Equal(t, chat.GreetingID, resp.Messages[0].ID)
	})

	t.Run("Failure - Store error", func(t *testing.T) {
		// ARRANGE
		handler, mockSvc := setupWidgetHandler(t)
		mockSvc.On("Create", mock.Anything).Return(nil, errors.New("disk full")).Once()

		// ACT
		req := httptest.NewRequest(http.MethodPost, "/v1/widgets", nil)
		rr := httptest.NewRecorder()
		handler.HandleCreateWidget(rr, req)

		// ASSERT: internal details are not leaked to the client.
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.NotContains(t, rr.Body.String(), "disk full")
	})
}

// TestWidgetHandler_HandleGetWidget tests GET /v1/widgets/{widgetID}.
func TestWidgetHandler_HandleGetWidget(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupWidgetHandler(t)
		mockSvc.On("Get", mock.Anything, "w1").Return(greetingSnapshot("w1"), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/widgets/w1", nil)
		req = addChiURLParams(req, map[string]string{"widgetID": "w1"})
		rr := httptest.NewRecorder()
		handler.HandleGetWidget(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"ready"`)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// ARRANGE: the service reports a sentinel error.
		handler, mockSvc := setupWidgetHandler(t)
		mockSvc.On("Get", mock.Anything, "missing").Return(nil, app_errors.ErrNotFound).Once()

		// ACT
		req := httptest.NewRequest(http.MethodGet, "/v1/widgets/missing", nil)
		req = addChiURLParams(req, map[string]string{"widgetID": "missing"})
		rr := httptest.NewRecorder()
		handler.HandleGetWidget(rr, req)

		// ASSERT: ErrNotFound maps to 404.
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestWidgetHandler_HandleDeleteWidget(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupWidgetHandler(t)
		mockSvc.On("Delete", mock.Anything, "w1").Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/v1/widgets/w1", nil)
		req = addChiURLParams(req, map[string]string{"widgetID": "w1"})
		rr := httptest.NewRecorder()
		handler.HandleDeleteWidget(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		handler, mockSvc := setupWidgetHandler(t)
		mockSvc.On("Delete", mock.Anything, "w1").Return(app_errors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodDelete, "/v1/widgets/w1", nil)
		req = addChiURLParams(req, map[string]string{"widgetID": "w1"})
		rr := httptest.NewRecorder()
		handler.HandleDeleteWidget(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

// TestWidgetHandler_HandleSendMessage tests POST /v1/widgets/{widgetID}/messages.
//
// GOAL: Verify JSON parsing, validation and the mapping of submission errors.
func TestWidgetHandler_HandleSendMessage(t *testing.T) {
	send := func(handler *api.WidgetHandler, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/widgets/w1/messages", strings.NewReader(body))
		req = addChiURLParams(req, map[string]string{"widgetID": "w1"})
		rr := httptest.NewRecorder()
		handler.HandleSendMessage(rr, req)
		return rr
	}

	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupWidgetHandler(t)
		mockSvc.On("SendMessage", mock.Anything, "w1", "quiz me").Return(nil).Once()

		rr := send(handler, `{"text": "quiz me"}`)

		assert.Equal(t, http.StatusAccepted, rr.Code)
		assert.JSONEq(t, `{"status":"accepted"}`, rr.Body.String())
	})

	t.Run("Failure - Invalid JSON", func(t *testing.T) {
		handler, _ := setupWidgetHandler(t)
		rr := send(handler, `{"text":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Empty body", func(t *testing.T) {
		handler, _ := setupWidgetHandler(t)
		rr := send(handler, ``)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Validation Error", func(t *testing.T) {
		// GOAL: valid JSON that fails the DTO's rules is rejected before the
		// service is called.
		handler, _ := setupWidgetHandler(t)
		rr := send(handler, `{"text": ""}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Field 'text' failed on the 'required' tag")
	})

	t.Run("Failure - Blank text", func(t *testing.T) {
		handler, mockSvc := setupWidgetHandler(t)
		mockSvc.On("SendMessage", mock.Anything, "w1", "   ").Return(chat.ErrEmptyMessage).Once()

		rr := send(handler, `{"text": "   "}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Failure - Reply in progress", func(t *testing.T) {
		handler, mockSvc := setupWidgetHandler(t)
		mockSvc.On("SendMessage", mock.Anything, "w1", "again").Return(chat.ErrNotReady).Once()

		rr := send(handler, `{"text": "again"}`)
		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), "not ready")
	})
}

func TestWidgetHandler_HandleClearError(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupWidgetHandler(t)
		mockSvc.On("ClearError", mock.Anything, "w1").Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/v1/widgets/w1/error", nil)
		req = addChiURLParams(req, map[string]string{"widgetID": "w1"})
		rr := httptest.NewRecorder()
		handler.HandleClearError(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Not in error state", func(t *testing.T) {
		handler, mockSvc := setupWidgetHandler(t)
		mockSvc.On("ClearError", mock.Anything, "w1").Return(service.ErrNoError).Once()

		req := httptest.NewRequest(http.MethodDelete, "/v1/widgets/w1/error", nil)
		req = addChiURLParams(req, map[string]string{"widgetID": "w1"})
		rr := httptest.NewRecorder()
		handler.HandleClearError(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

// TestWidgetHandler_HandleEvents tests the SSE endpoint GET /v1/widgets/{widgetID}/events.
//
// GOAL: Verify every published event is written as a data frame and the
// stream ends (and unsubscribes) when the widget's channel closes.
func TestWidgetHandler_HandleEvents(t *testing.T) {
	t.Run("Success - Streams until the widget closes", func(t *testing.T) {
		// ARRANGE: a pre-filled, closed channel stands in for the hub.
		handler, mockSvc := setupWidgetHandler(t)
		ch := make(chan service.WidgetEvent, 2)
		ch <- service.WidgetEvent{Kind: service.EventChat, Chat: greetingSnapshot("w1")}
		ch <- service.WidgetEvent{Kind: service.EventError, Error: "chat stream failed"}
		close(ch)
		unsubscribed := false
		mockSvc.On("Subscribe", mock.Anything, "w1").
			Return((<-chan service.WidgetEvent)(ch), func() { unsubscribed = true }, nil).Once()

		// ACT
		req := httptest.NewRequest(http.MethodGet, "/v1/widgets/w1/events", nil)
		req = addChiURLParams(req, map[string]string{"widgetID": "w1"})
		rr := httptest.NewRecorder()
		handler.HandleEvents(rr, req)

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
		frames := dataFrames(rr.Body.String())
		require.Len(t, frames, 2)

		var first service.WidgetEvent
		require.NoError(t, json.Unmarshal([]byte(frames[0]), &first))
		assert.Equal(t, service.EventChat, first.Kind)
		require.NotNil(t, first.Chat)
		assert.Equal(t, "w1", first.Chat.ID)
		assert.Contains(t, frames[1], `"kind":"error"`)
		assert.True(t, unsubscribed)
	})

	t.Run("Success - Client disconnects", func(t *testing.T) {
		handler, mockSvc := setupWidgetHandler(t)
		ch := make(chan service.WidgetEvent)
		mockSvc.On("Subscribe", mock.Anything, "w1").
			Return((<-chan service.WidgetEvent)(ch), func() {}, nil).Once()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := httptest.NewRequest(http.MethodGet, "/v1/widgets/w1/events", nil).WithContext(ctx)
		req = addChiURLParams(req, map[string]string{"widgetID": "w1"})
		rr := httptest.NewRecorder()
		handler.HandleEvents(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, dataFrames(rr.Body.String()))
	})

	t.Run("Failure - Unknown widget", func(t *testing.T) {
		handler, mockSvc := setupWidgetHandler(t)
		mockSvc.On("Subscribe", mock.Anything, "missing").Return(nil, nil, app_errors.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/v1/widgets/missing/events", nil)
		req = addChiURLParams(req, map[string]string{"widgetID": "missing"})
		rr := httptest.NewRecorder()
		handler.HandleEvents(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	})
}

// dataFrames returns the payload of every `data:` line in an SSE body.
func dataFrames(body string) []string {
	var frames []string
	for _, line := range strings.Split(body, "\n") {
		if payload, ok := strings.CutPrefix(line, "data: "); ok {
			frames = append(frames, payload)
		}
	}
	return frames
}
