package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"quiz-widget/backend/internal/chat"
	"quiz-widget/backend/internal/model"
)

// ChatTestHandler exposes a chat.Transport over HTTP using the message stream
// protocol the widget consumes. It lets the widget run against the scripted
// demo backend without a real model.
type ChatTestHandler struct {
	transport chat.Transport
}

func NewChatTestHandler(transport chat.Transport) *ChatTestHandler {
	return &ChatTestHandler{transport: transport}
}

// HandleChat godoc
// @Summary      Demo chat backend
// @Description  Answers a widget submission with a scripted reply. Prompts mentioning "quiz" also get a quiz tool call.
// @Tags         Demo
// @Accept       json
// @Produce      text/event-stream
// @Param        request  body      model.SendRequest  true  "Widget submission"
// @Success      200      {object}  model.Event "Stream of message events terminated by [DONE]"
// @Failure      400      {object}  ErrorResponse "Sent as a stream error event"
// @Router       /chat/test [post]
func (h *ChatTestHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	setStreamHeaders(w)

	var req model.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Error decoding request body for demo chat", "error", err)
		sendStreamError(w, "Invalid request body")
		return
	}

	events := make(chan model.Event)
	errCh := make(chan error, 1)
	go func() {
		errCh <- h.transport.Stream(r.Context(), &req, events)
	}()

	for ev := range events {
		if err := writeStreamEvent(w, ev); err != nil {
			slog.Warn("Could not write to demo chat stream, client likely disconnected.", "error", err)
			return
		}
	}

	if err := <-errCh; err != nil {
		slog.Error("Demo chat stream failed", "widget_id", req.ID, "error", err)
		sendStreamError(w, "Chat stream failed")
		return
	}
	if err := writeStreamData(w, "[DONE]"); err != nil {
		slog.Warn("Could not terminate demo chat stream", "error", err)
	}
}
