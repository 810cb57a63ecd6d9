package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-widget/backend/internal/chat"
	"quiz-widget/backend/internal/config"
	"quiz-widget/backend/internal/demo"
	"quiz-widget/backend/internal/model"
	"quiz-widget/backend/internal/quiz"
	"quiz-widget/backend/internal/transport"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		AppPort:         8000,
		LogLevel:        "DEBUG",
		WidgetTransport: "demo",
		QuizToolName:    chat.DefaultQuizTool,
		Greeting:        config.DefaultGreeting,
		IdleTimeout:     time.Minute,
		StoreDriver:     "sqlite",
		DatabasePath:    filepath.Join(t.TempDir(), "widgets.db"),
		UploadMaxBytes:  1 << 20,
	}
}

func TestNewApp(t *testing.T) {
	t.Run("SQLite store", func(t *testing.T) {
		app, err := NewApp(testConfig(t))
		require.NoError(t, err)
		t.Cleanup(app.Close)

		assert.NotNil(t, app.DB)
		assert.Nil(t, app.Redis)
		assert.Equal(t, ":8000", app.Server.Addr)
		assert.Equal(t, 15*time.Second, app.janitorInterval)
	})

	t.Run("Redis store", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cfg := testConfig(t)
		cfg.StoreDriver = "redis"
		cfg.RedisAddr = mr.Addr()
		cfg.RedisTTL = time.Hour

		app, err := NewApp(cfg)
		require.NoError(t, err)
		t.Cleanup(app.Close)

		assert.Nil(t, app.DB)
		assert.NotNil(t, app.Redis)
	})

	t.Run("Unknown store driver", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.StoreDriver = "postgres"

		_, err := NewApp(cfg)
		assert.Error(t, err)
	})
}

func TestNewTransport(t *testing.T) {
	cfg := testConfig(t)
	assert.IsType(t, &demo.Transport{}, NewTransport(cfg))

	cfg.WidgetTransport = "http"
	cfg.ChatAPIURL = "http://localhost:8000/api/chat/test"
	assert.IsType(t, &transport.HTTPTransport{}, NewTransport(cfg))
}

// TestApp_QuizFlow drives a widget through the HTTP API: ask for a quiz,
// open it from the conversation and answer it to the review screen.
func TestApp_QuizFlow(t *testing.T) {
	app, err := NewApp(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(app.Close)

	srv := httptest.NewServer(app.Server.Handler)
	t.Cleanup(srv.Close)

	call := func(method, path, body string, out any) int {
		t.Helper()
		req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		if out != nil {
			require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
		}
		return resp.StatusCode
	}

	var widget chat.Snapshot
	require.Equal(t, http.StatusCreated, call(http.MethodPost, "/api/v1/widgets", "", &widget))
	require.NotEmpty(t, widget.ID)
	base := "/api/v1/widgets/" + widget.ID

	require.Equal(t, http.StatusAccepted, call(http.MethodPost, base+"/messages", `{"text":"Give me a quiz"}`, nil))

	require.Eventually(t, func() bool {
		var snap chat.Snapshot
		call(http.MethodGet, base, "", &snap)
		return snap.Status == model.StatusReady && len(snap.Messages) == 3
	}, 5*time.Second, 20*time.Millisecond)

	var st quiz.State
	require.Equal(t, http.StatusOK, call(http.MethodPost, base+"/quiz", "", &st))
	assert.Equal(t, "General Knowledge Quiz", st.Title)
	assert.Equal(t, 5, st.QuestionCount)

	// Canberra, Mars, Au, Leonardo da Vinci, then a wrong ocean.
	for _, option := range []int{2, 1, 0, 1, 0} {
		require.Equal(t, http.StatusOK, call(http.MethodPost, base+"/quiz/answer", fmt.Sprintf(`{"option":%d}`, option), nil))
		require.Equal(t, http.StatusOK, call(http.MethodPost, base+"/quiz/next", "", &st))
	}
	assert.Equal(t, quiz.PhaseReviewing, st.Phase)
	require.NotNil(t, st.Result)
	assert.Equal(t, 4, st.Result.Score)
	assert.Equal(t, 80, st.Result.Percentage)

	require.Equal(t, http.StatusOK, call(http.MethodDelete, base, "", nil))
	assert.Equal(t, http.StatusNotFound, call(http.MethodGet, base, "", nil))
}

func TestSetupLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "widget.log")

	closeLog, err := SetupLogger("debug", logFile)
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = SetupLogger("INFO", "") })

	slog.Debug("logger check")
	closeLog()

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"logger check"`)
	assert.Contains(t, string(data), `"level":"DEBUG"`)
}
