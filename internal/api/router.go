package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "quiz-widget/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Handlers groups everything NewRouter mounts. ChatTest is optional; when nil
// the demo chat backend is not served.
type Handlers struct {
	Widgets  *WidgetHandler
	Quiz     *QuizHandler
	Uploads  *UploadHandler
	ChatTest *ChatTestHandler
}

// NewRouter creates and configures a new chi router with all the application's routes.
func NewRouter(h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// --- Public Routes ---
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if h.ChatTest != nil {
		r.Post("/api/chat/test", h.ChatTest.HandleChat)
	}

	// --- API Version 1 Routes ---
	r.Route("/api/v1", func(r chi.Router) {

		// Standard JSON routes get a request timeout.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			// --- Widgets ---
			r.Post("/widgets", h.Widgets.HandleCreateWidget)
			r.Get("/widgets/{widgetID}", h.Widgets.HandleGetWidget)
			r.Delete("/widgets/{widgetID}", h.Widgets.HandleDeleteWidget)
			r.Post("/widgets/{widgetID}/messages", h.Widgets.HandleSendMessage)
			r.Delete("/widgets/{widgetID}/error", h.Widgets.HandleClearError)

			// --- Quiz ---
			r.Post("/widgets/{widgetID}/quiz", h.Quiz.HandleOpenQuiz)
			r.Get("/widgets/{widgetID}/quiz", h.Quiz.HandleGetQuiz)
			r.Delete("/widgets/{widgetID}/quiz", h.Quiz.HandleCloseQuiz)
			r.Post("/widgets/{widgetID}/quiz/answer", h.Quiz.HandleAnswer)
			r.Post("/widgets/{widgetID}/quiz/next", h.Quiz.HandleNext)
			r.Post("/widgets/{widgetID}/quiz/previous", h.Quiz.HandlePrevious)
			r.Post("/widgets/{widgetID}/quiz/reset", h.Quiz.HandleReset)

			// --- Uploads ---
			r.Post("/widgets/{widgetID}/uploads", h.Uploads.HandleUpload)
			r.Get("/widgets/{widgetID}/uploads", h.Uploads.HandleListUploads)
			r.Delete("/widgets/{widgetID}/uploads/{fileID}", h.Uploads.HandleRemoveUpload)
		})

		// The event stream stays open for the life of the widget, so it must
		// not have a timeout.
		r.Group(func(r chi.Router) {
			r.Get("/widgets/{widgetID}/events", h.Widgets.HandleEvents)
		})
	})

	return r
}
