package main

import (
	"os"

	"quiz-widget/backend/internal/app"
)

// @title           Quiz Widget API
// @version         1.0
// @description     Chat widget backend: widget sessions, message streaming, quizzes and uploads.
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}
