package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"quiz-widget/backend/internal/interfaces"
)

// keepAliveInterval is how often an idle event stream gets a comment frame so
// proxies don't drop the connection.
const keepAliveInterval = 15 * time.Second

// WidgetHandler serves widget sessions and their conversation.
type WidgetHandler struct {
	chat interfaces.ChatService
}

func NewWidgetHandler(chatSvc interfaces.ChatService) *WidgetHandler {
	return &WidgetHandler{chat: chatSvc}
}

// HandleCreateWidget godoc
// @Summary      Open a widget
// @Description  Creates a widget session seeded with the assistant greeting.
// @Tags         Widgets
// @Produce      json
// @Success      201  {object}  chat.Snapshot
// @Failure      500  {object}  ErrorResponse
// @Router       /v1/widgets [post]
func (h *WidgetHandler) HandleCreateWidget(w http.ResponseWriter, r *http.Request) {
	snap, err := h.chat.Create(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, snap)
}

// HandleGetWidget godoc
// @Summary      Get a widget
// @Description  Returns the widget's status and its rendered messages.
// @Tags         Widgets
// @Produce      json
// @Param        widgetID  path      string  true  "Widget ID"
// @Success      200       {object}  chat.Snapshot
// @Failure      404       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /v1/widgets/{widgetID} [get]
func (h *WidgetHandler) HandleGetWidget(w http.ResponseWriter, r *http.Request) {
	snap, err := h.chat.Get(r.Context(), chi.URLParam(r, "widgetID"))
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, snap)
}

// HandleDeleteWidget godoc
// @Summary      Close a widget
// @Description  Discards the widget with its transcript, open quiz and uploads.
// @Tags         Widgets
// @Produce      json
// @Param        widgetID  path      string  true  "Widget ID"
// @Success      200       {object}  StatusResponse
// @Failure      404       {object}  ErrorResponse
// @Failure      500       {object}  ErrorResponse
// @Router       /v1/widgets/{widgetID} [delete]
func (h *WidgetHandler) HandleDeleteWidget(w http.ResponseWriter, r *http.Request) {
	if err := h.chat.Delete(r.Context(), chi.URLParam(r, "widgetID")); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleSendMessage godoc
// @Summary      Send a message
// @Description  Submits a user message. The reply arrives on the widget's event stream.
// @Tags         Widgets
// @Accept       json
// @Produce      json
// @Param        widgetID  path      string              true  "Widget ID"
// @Param        message   body      SendMessageRequest  true  "Message"
// @Success      202       {object}  StatusResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Failure      409       {object}  ErrorResponse "A reply is still in progress"
// @Router       /v1/widgets/{widgetID}/messages [post]
func (h *WidgetHandler) HandleSendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := h.chat.SendMessage(r.Context(), chi.URLParam(r, "widgetID"), req.Text); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusAccepted, StatusResponse{Status: "accepted"})
}

// HandleClearError godoc
// @Summary      Dismiss an error
// @Description  Returns a widget in the error state to ready.
// @Tags         Widgets
// @Produce      json
// @Param        widgetID  path      string  true  "Widget ID"
// @Success      200       {object}  StatusResponse
// @Failure      404       {object}  ErrorResponse
// @Failure      409       {object}  ErrorResponse "Widget is not in the error state"
// @Router       /v1/widgets/{widgetID}/error [delete]
func (h *WidgetHandler) HandleClearError(w http.ResponseWriter, r *http.Request) {
	if err := h.chat.ClearError(r.Context(), chi.URLParam(r, "widgetID")); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// HandleEvents godoc
// @Summary      Widget event stream
// @Description  Streams chat snapshots, quiz state and upload progress. The first frame is the current chat snapshot.
// @Tags         Widgets
// @Produce      text/event-stream
// @Param        widgetID  path      string  true  "Widget ID"
// @Success      200       {object}  service.WidgetEvent "Stream of widget events"
// @Failure      404       {object}  ErrorResponse
// @Router       /v1/widgets/{widgetID}/events [get]
func (h *WidgetHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	widgetID := chi.URLParam(r, "widgetID")
	events, unsubscribe, err := h.chat.Subscribe(r.Context(), widgetID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	defer unsubscribe()

	setStreamHeaders(w)
	w.WriteHeader(http.StatusOK)
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			slog.Info("Client disconnected from widget events.", "widget_id", widgetID)
			return
		case <-keepAlive.C:
			if _, err := w.Write([]byte(": keep-alive\n\n")); err != nil {
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}
		case ev, ok := <-events:
			if !ok {
				slog.Info("Widget closed, ending event stream.", "widget_id", widgetID)
				return
			}
			if err := writeStreamEvent(w, ev); err != nil {
				slog.Warn("Could not write to widget event stream, client likely disconnected.", "widget_id", widgetID, "error", err)
				return
			}
		}
	}
}
