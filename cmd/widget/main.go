// Command widget runs the chat widget in the terminal against the configured
// chat backend, or the built-in demo with WIDGET_TRANSPORT=demo.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"quiz-widget/backend/internal/app"
	"quiz-widget/backend/internal/config"
	"quiz-widget/backend/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		return 1
	}

	// Logging to stdout would tear the UI.
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = "widget.log"
	}
	closeLog, err := app.SetupLogger(cfg.LogLevel, logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to open log file:", err)
		return 1
	}
	defer closeLog()

	widgetID := uuid.NewString()
	slog.Info("Starting terminal widget", "widget_id", widgetID, "transport", cfg.WidgetTransport)

	err = tui.Run(app.NewTransport(cfg), tui.Options{
		ID:       widgetID,
		Greeting: cfg.Greeting,
		QuizTool: cfg.QuizToolName,
		Logger:   slog.Default(),
	})
	if err != nil {
		slog.Error("Widget exited with error", "error", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
