package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"quiz-widget/backend/internal/api"
	"quiz-widget/backend/internal/chat"
	"quiz-widget/backend/internal/config"
	"quiz-widget/backend/internal/database"
	"quiz-widget/backend/internal/demo"
	"quiz-widget/backend/internal/quiz"
	"quiz-widget/backend/internal/repository"
	"quiz-widget/backend/internal/service"
	"quiz-widget/backend/internal/transport"
)

// demoDelay paces the in-process demo backend so replies visibly stream.
const demoDelay = 40 * time.Millisecond

// App is the assembled widget server.
type App struct {
	Server *http.Server
	// Exactly one of DB and Redis is set, depending on STORE_DRIVER.
	DB    *sql.DB
	Redis *redis.Client

	Chat    *service.ChatService
	Quiz    *service.QuizService
	Uploads *service.UploadService

	janitorInterval time.Duration
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	closeLog, err := SetupLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		slog.Error("Failed to open log file", "file", cfg.LogFile, "error", err)
		return 1
	}
	defer closeLog()

	logConfigSource()

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go app.Chat.RunJanitor(ctx, app.janitorInterval)

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Starting server", "port", cfg.AppPort, "store", cfg.StoreDriver, "transport", cfg.WidgetTransport)
		serveErr <- app.Server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			return 1
		}
	case <-ctx.Done():
		slog.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.Server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Graceful shutdown failed", "error", err)
			return 1
		}
	}

	return 0
}

// NewApp opens the transcript store and wires services, handlers and the
// HTTP server. Call Close to release them.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{janitorInterval: janitorInterval(cfg.IdleTimeout)}

	repo, err := app.openStore(cfg)
	if err != nil {
		return nil, err
	}

	logger := slog.Default()
	chatSvc := service.NewChatService(repo, NewTransport(cfg), service.ChatConfig{
		Greeting:    cfg.Greeting,
		QuizTool:    cfg.QuizToolName,
		IdleTimeout: cfg.IdleTimeout,
	}, logger)
	quizSvc := service.NewQuizService(chatSvc, logger)
	uploadSvc := service.NewUploadService(chatSvc, service.UploadConfig{MaxBytes: cfg.UploadMaxBytes}, logger)

	// A quiz pushed by the backend opens straight away.
	chatSvc.OnQuiz(func(widgetID string, doc *quiz.Document) {
		if _, err := quizSvc.Start(widgetID, doc); err != nil {
			slog.Warn("Could not open pushed quiz", "widget_id", widgetID, "error", err)
		}
	})
	chatSvc.OnClose(quizSvc.Forget)
	chatSvc.OnClose(uploadSvc.Forget)

	app.Chat, app.Quiz, app.Uploads = chatSvc, quizSvc, uploadSvc

	// Multipart overhead on top of the per-file limit.
	maxRequest := int64(0)
	if cfg.UploadMaxBytes > 0 {
		maxRequest = 4*cfg.UploadMaxBytes + 1<<20
	}
	router := api.NewRouter(api.Handlers{
		Widgets:  api.NewWidgetHandler(chatSvc),
		Quiz:     api.NewQuizHandler(quizSvc),
		Uploads:  api.NewUploadHandler(uploadSvc, maxRequest),
		ChatTest: api.NewChatTestHandler(demo.NewTransport(cfg.QuizToolName, demoDelay)),
	})

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled for streaming endpoints
		IdleTimeout:       120 * time.Second,
	}
	return app, nil
}

// NewTransport returns the chat backend selected by WIDGET_TRANSPORT.
func NewTransport(cfg *config.Config) chat.Transport {
	if cfg.WidgetTransport == "demo" {
		return demo.NewTransport(cfg.QuizToolName, demoDelay)
	}
	// No client timeout: replies stream for as long as the model talks.
	return transport.NewHTTPTransport(cfg.ChatAPIURL, &http.Client{})
}

func (a *App) openStore(cfg *config.Config) (repository.Repository, error) {
	switch cfg.StoreDriver {
	case "redis":
		a.Redis = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := waitForRedis(a.Redis, 5, time.Second); err != nil {
			_ = a.Redis.Close()
			return nil, fmt.Errorf("could not reach redis at %s: %w", cfg.RedisAddr, err)
		}
		slog.Info("Successfully connected to Redis.", "addr", cfg.RedisAddr, "ttl", cfg.RedisTTL)
		return repository.NewRedisRepository(a.Redis, cfg.RedisTTL), nil
	case "sqlite", "":
		db, err := database.InitDB(cfg.DatabasePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.DB = db
		slog.Info("Successfully connected to SQLite database.")
		return repository.NewSQLiteRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

// Close stops every widget and upload, then closes the store.
func (a *App) Close() {
	if a.Uploads != nil {
		a.Uploads.Close()
	}
	if a.Chat != nil {
		a.Chat.Close()
	}
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			slog.Error("Failed to close redis connection", "error", err)
		}
	}
}

func janitorInterval(idle time.Duration) time.Duration {
	if idle <= 0 {
		return 0
	}
	return max(idle/4, time.Second)
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

// SetupLogger installs a JSON slog logger as the default. Logs go to logFile
// when it is set, stdout otherwise. The returned func closes the file.
func SetupLogger(logLevel, logFile string) (func(), error) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var out io.Writer = os.Stdout
	closeFn := func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		out = f
		closeFn = func() { _ = f.Close() }
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return closeFn, nil
}

func waitForRedis(rdb *redis.Client, attempts int, backoff time.Duration) error {
	slog.Info("Waiting for Redis to be ready...")
	var err error
	for i := 0; i < attempts; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err = rdb.Ping(ctx).Err()
		cancel()
		if err == nil {
			return nil
		}
		slog.Debug("Redis not ready yet, retrying...", "attempt", i+1, "error", err)
		if i < attempts-1 {
			time.Sleep(backoff)
		}
	}
	return err
}
