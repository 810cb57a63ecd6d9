package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"quiz-widget/backend/internal/api"
	"quiz-widget/backend/internal/chat"
	"quiz-widget/backend/internal/interfaces/mocks"
	"quiz-widget/backend/internal/quiz"
	"quiz-widget/backend/internal/service"
)

func setupQuizHandler(t *testing.T) (*api.QuizHandler, *mocks.MockQuizService) {
	mockQuizSvc := mocks.NewMockQuizService(t)
	return api.NewQuizHandler(mockQuizSvc), mockQuizSvc
}

func answeringState(index int) *quiz.State {
	return &quiz.State{
		Title:         "Capitals",
		Phase:         quiz.PhaseAnswering,
		CurrentIndex:  index,
		QuestionCount: 2,
		Progress:      (index + 1) * 50,
		Question:      &quiz.Question{Text: "What is the capital of Australia?", Options: []string{"Sydney", "Melbourne", "Canberra", "Perth"}},
		Answers:       map[int]int{},
	}
}

func quizRequest(method, path, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	return addChiURLParams(req, map[string]string{"widgetID": "w1"})
}

// TestQuizHandler_HandleOpenQuiz tests POST /v1/widgets/{widgetID}/quiz.
//
// GOAL: Verify a call-to-action opens that quiz part, an empty body opens
// the latest quiz, and resolution failures map to the right status codes.
func TestQuizHandler_HandleOpenQuiz(t *testing.T) {
	t.Run("Success - Call-to-action", func(t *testing.T) {
		// ARRANGE
		handler, mockSvc := setupQuizHandler(t)
		mockSvc.On("Open", mock.Anything, "w1", mock.MatchedBy(func(r *service.OpenQuizRequest) bool {
			return r != nil && r.MessageID == "a1" && r.PartIndex != nil && *r.PartIndex == 0
		})).Return(answeringState(0), nil).Once()

		// ACT
		rr := httptest.NewRecorder()
		handler.HandleOpenQuiz(rr, quizRequest(http.MethodPost, "/v1/widgets/w1/quiz", `{"message_id":"a1","part_index":0}`))

		// ASSERT
		assert.Equal(t, http.StatusOK, rr.Code)
		var st quiz.State
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &st))
		assert.Equal(t, quiz.PhaseAnswering, st.Phase)
		assert.Equal(t, 50, st.Progress)
		assert.NotContains(t, rr.Body.String(), "correctAnswer")
	})

	t.Run("Success - Empty body opens the latest quiz", func(t *testing.T) {
		handler, mockSvc := setupQuizHandler(t)
		mockSvc.On("Open", mock.Anything, "w1", (*service.OpenQuizRequest)(nil)).Return(answeringState(0), nil).Once()

		rr := httptest.NewRecorder()
		handler.HandleOpenQuiz(rr, quizRequest(http.MethodPost, "/v1/widgets/w1/quiz", ""))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Missing part index", func(t *testing.T) {
		handler, _ := setupQuizHandler(t)

		rr := httptest.NewRecorder()
		handler.HandleOpenQuiz(rr, quizRequest(http.MethodPost, "/v1/widgets/w1/quiz", `{"message_id":"a1"}`))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "part_index")
	})

	t.Run("Failure - Quiz still generating", func(t *testing.T) {
		handler, mockSvc := setupQuizHandler(t)
		mockSvc.On("Open", mock.Anything, "w1", mock.Anything).Return(nil, chat.ErrQuizPending).Once()

		rr := httptest.NewRecorder()
		handler.HandleOpenQuiz(rr, quizRequest(http.MethodPost, "/v1/widgets/w1/quiz", `{"message_id":"a1","part_index":1}`))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("Failure - Invalid quiz", func(t *testing.T) {
		handler, mockSvc := setupQuizHandler(t)
		mockSvc.On("Open", mock.Anything, "w1", mock.Anything).Return(nil, quiz.ErrEmptyQuiz).Once()

		rr := httptest.NewRecorder()
		handler.HandleOpenQuiz(rr, quizRequest(http.MethodPost, "/v1/widgets/w1/quiz", ""))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "no questions")
	})

	t.Run("Failure - No quiz in conversation", func(t *testing.T) {
		handler, mockSvc := setupQuizHandler(t)
		mockSvc.On("Open", mock.Anything, "w1", mock.Anything).Return(nil, chat.ErrNoQuiz).Once()

		rr := httptest.NewRecorder()
		handler.HandleOpenQuiz(rr, quizRequest(http.MethodPost, "/v1/widgets/w1/quiz", ""))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

// TestQuizHandler_HandleAnswer tests POST /v1/widgets/{widgetID}/quiz/answer.
func TestQuizHandler_HandleAnswer(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupQuizHandler(t)
		selected := 2
		st := answeringState(0)
		st.Selected = &selected
		st.Answers = map[int]int{0: 2}
		mockSvc.On("Answer", mock.Anything, "w1", 2).Return(st, nil).Once()

		rr := httptest.NewRecorder()
		handler.HandleAnswer(rr, quizRequest(http.MethodPost, "/v1/widgets/w1/quiz/answer", `{"option":2}`))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"selected":2`)
	})

	t.Run("Success - Option zero is a valid answer", func(t *testing.T) {
		handler, mockSvc := setupQuizHandler(t)
		mockSvc.On("Answer", mock.Anything, "w1", 0).Return(answeringState(0), nil).Once()

		rr := httptest.NewRecorder()
		handler.HandleAnswer(rr, quizRequest(http.MethodPost, "/v1/widgets/w1/quiz/answer", `{"option":0}`))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - Validation Error", func(t *testing.T) {
		handler, _ := setupQuizHandler(t)

		for _, body := range []string{`{}`, `{"option":4}`, `{"option":-1}`} {
			rr := httptest.NewRecorder()
			handler.HandleAnswer(rr, quizRequest(http.MethodPost, "/v1/widgets/w1/quiz/answer", body))
			assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		}
	})

	t.Run("Failure - Reviewing", func(t *testing.T) {
		handler, mockSvc := setupQuizHandler(t)
		mockSvc.On("Answer", mock.Anything, "w1", 1).Return(nil, quiz.ErrNotAnswering).Once()

		rr := httptest.NewRecorder()
		handler.HandleAnswer(rr, quizRequest(http.MethodPost, "/v1/widgets/w1/quiz/answer", `{"option":1}`))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

// TestQuizHandler_Navigation tests next, previous, reset and state.
//
// GOAL: Verify each navigation route calls its service method and maps the
// guard errors (unanswered, first question, no quiz) to client errors.
func TestQuizHandler_Navigation(t *testing.T) {
	reviewing := &quiz.State{
		Title:         "Capitals",
		Phase:         quiz.PhaseReviewing,
		QuestionCount: 2,
		Answers:       map[int]int{0: 2, 1: 1},
		Result:        &quiz.Result{Score: 2, Total: 2, Percentage: 100},
	}

	t.Run("Next finishes the quiz", func(t *testing.T) {
		handler, mockSvc := setupQuizHandler(t)
		mockSvc.On("Next", mock.Anything, "w1").Return(reviewing, nil).Once()

		rr := httptest.NewRecorder()
		handler.HandleNext(rr, quizRequest(http.MethodPost, "/v1/widgets/w1/quiz/next", ""))

		assert.Equal(t, http.StatusOK, rr.Code)
		var st quiz.State
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &st))
		assert.Equal(t, quiz.PhaseReviewing, st.Phase)
		require.NotNil(t, st.Result)
		assert.Equal(t, 100, st.Result.Percentage)
	})

	t.Run("Next without an answer", func(t *testing.T) {
		handler, mockSvc := setupQuizHandler(t)
		mockSvc.On("Next", mock.Anything, "w1").Return(nil, quiz.ErrUnanswered).Once()

		rr := httptest.NewRecorder()
		handler.HandleNext(rr, quizRequest(http.MethodPost, "/v1/widgets/w1/quiz/next", ""))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Previous at the first question", func(t *testing.T) {
		handler, mockSvc := setupQuizHandler(t)
		mockSvc.On("Previous", mock.Anything, "w1").Return(nil, quiz.ErrAtFirstQuestion).Once()

		rr := httptest.NewRecorder()
		handler.HandlePrevious(rr, quizRequest(http.MethodPost, "/v1/widgets/w1/quiz/previous", ""))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Reset", func(t *testing.T) {
		handler, mockSvc := setupQuizHandler(t)
		mockSvc.On("Reset", mock.Anything, "w1").Return(answeringState(0), nil).Once()

		rr := httptest.NewRecorder()
		handler.HandleReset(rr, quizRequest(http.MethodPost, "/v1/widgets/w1/quiz/reset", ""))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"phase":"answering"`)
	})

	t.Run("State without an open quiz", func(t *testing.T) {
		handler, mockSvc := setupQuizHandler(t)
		mockSvc.On("State", mock.Anything, "w1").Return(nil, service.ErrNoQuizSession).Once()

		rr := httptest.NewRecorder()
		handler.HandleGetQuiz(rr, quizRequest(http.MethodGet, "/v1/widgets/w1/quiz", ""))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestQuizHandler_HandleCloseQuiz(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockSvc := setupQuizHandler(t)
		mockSvc.On("Close", mock.Anything, "w1").Return(nil).Once()

		rr := httptest.NewRecorder()
		handler.HandleCloseQuiz(rr, quizRequest(http.MethodDelete, "/v1/widgets/w1/quiz", ""))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Failure - No quiz open", func(t *testing.T) {
		handler, mockSvc := setupQuizHandler(t)
		mockSvc.On("Close", mock.Anything, "w1").Return(service.ErrNoQuizSession).Once()

		rr := httptest.NewRecorder()
		handler.HandleCloseQuiz(rr, quizRequest(http.MethodDelete, "/v1/widgets/w1/quiz", ""))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
