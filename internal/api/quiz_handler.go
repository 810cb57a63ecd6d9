package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"quiz-widget/backend/internal/interfaces"
	"quiz-widget/backend/internal/quiz"
	"quiz-widget/backend/internal/service"
)

// QuizHandler drives the quiz modal of a widget.
type QuizHandler struct {
	quiz interfaces.QuizService
}

func NewQuizHandler(quizSvc interfaces.QuizService) *QuizHandler {
	return &QuizHandler{quiz: quizSvc}
}

// HandleOpenQuiz godoc
// @Summary      Open a quiz
// @Description  Opens the quiz behind a call-to-action. With an empty body the most recent quiz in the conversation is opened.
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        widgetID  path      string                   true   "Widget ID"
// @Param        request   body      service.OpenQuizRequest  false  "Quiz part to open"
// @Success      200       {object}  quiz.State
// @Failure      400       {object}  ErrorResponse "Invalid request or invalid quiz"
// @Failure      404       {object}  ErrorResponse
// @Failure      409       {object}  ErrorResponse "Quiz is still being generated"
// @Router       /v1/widgets/{widgetID}/quiz [post]
func (h *QuizHandler) HandleOpenQuiz(w http.ResponseWriter, r *http.Request) {
	var req service.OpenQuizRequest
	var target *service.OpenQuizRequest
	switch err := decodeJSON(r, &req); {
	case err == nil:
		target = &req
	case errors.Is(err, io.EOF):
		// No call-to-action given: open the latest quiz.
	default:
		respondWithError(w, err)
		return
	}

	st, err := h.quiz.Open(r.Context(), chi.URLParam(r, "widgetID"), target)
	h.respondWithState(w, st, err)
}

// HandleGetQuiz godoc
// @Summary      Get quiz state
// @Description  Returns the current question, progress and selection, or the result once reviewing.
// @Tags         Quiz
// @Produce      json
// @Param        widgetID  path      string  true  "Widget ID"
// @Success      200       {object}  quiz.State
// @Failure      404       {object}  ErrorResponse "No quiz is open"
// @Router       /v1/widgets/{widgetID}/quiz [get]
func (h *QuizHandler) HandleGetQuiz(w http.ResponseWriter, r *http.Request) {
	st, err := h.quiz.State(r.Context(), chi.URLParam(r, "widgetID"))
	h.respondWithState(w, st, err)
}

// HandleAnswer godoc
// @Summary      Select an answer
// @Description  Records the option for the current question, replacing any earlier choice.
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        widgetID  path      string         true  "Widget ID"
// @Param        answer    body      AnswerRequest  true  "Option index"
// @Success      200       {object}  quiz.State
// @Failure      400       {object}  ErrorResponse
// @Failure      404       {object}  ErrorResponse
// @Failure      409       {object}  ErrorResponse "Quiz is being reviewed"
// @Router       /v1/widgets/{widgetID}/quiz/answer [post]
func (h *QuizHandler) HandleAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	st, err := h.quiz.Answer(r.Context(), chi.URLParam(r, "widgetID"), *req.Option)
	h.respondWithState(w, st, err)
}

// HandleNext godoc
// @Summary      Next question
// @Description  Advances to the next question, or to the review after the last one. The current question must be answered.
// @Tags         Quiz
// @Produce      json
// @Param        widgetID  path      string  true  "Widget ID"
// @Success      200       {object}  quiz.State
// @Failure      400       {object}  ErrorResponse "Current question has no answer"
// @Failure      404       {object}  ErrorResponse
// @Router       /v1/widgets/{widgetID}/quiz/next [post]
func (h *QuizHandler) HandleNext(w http.ResponseWriter, r *http.Request) {
	st, err := h.quiz.Next(r.Context(), chi.URLParam(r, "widgetID"))
	h.respondWithState(w, st, err)
}

// HandlePrevious godoc
// @Summary      Previous question
// @Tags         Quiz
// @Produce      json
// @Param        widgetID  path      string  true  "Widget ID"
// @Success      200       {object}  quiz.State
// @Failure      400       {object}  ErrorResponse "Already at the first question"
// @Failure      404       {object}  ErrorResponse
// @Router       /v1/widgets/{widgetID}/quiz/previous [post]
func (h *QuizHandler) HandlePrevious(w http.ResponseWriter, r *http.Request) {
	st, err := h.quiz.Previous(r.Context(), chi.URLParam(r, "widgetID"))
	h.respondWithState(w, st, err)
}

// HandleReset godoc
// @Summary      Retake the quiz
// @Description  Clears all answers and returns to the first question.
// @Tags         Quiz
// @Produce      json
// @Param        widgetID  path      string  true  "Widget ID"
// @Success      200       {object}  quiz.State
// @Failure      404       {object}  ErrorResponse
// @Router       /v1/widgets/{widgetID}/quiz/reset [post]
func (h *QuizHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	st, err := h.quiz.Reset(r.Context(), chi.URLParam(r, "widgetID"))
	h.respondWithState(w, st, err)
}

// HandleCloseQuiz godoc
// @Summary      Close the quiz
// @Description  Discards the quiz session and returns the widget to the chat.
// @Tags         Quiz
// @Produce      json
// @Param        widgetID  path      string  true  "Widget ID"
// @Success      200       {object}  StatusResponse
// @Failure      404       {object}  ErrorResponse
// @Router       /v1/widgets/{widgetID}/quiz [delete]
func (h *QuizHandler) HandleCloseQuiz(w http.ResponseWriter, r *http.Request) {
	if err := h.quiz.Close(r.Context(), chi.URLParam(r, "widgetID")); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

func (h *QuizHandler) respondWithState(w http.ResponseWriter, st *quiz.State, err error) {
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, st)
}
