package quiz

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/kaptinlin/jsonschema"
)

//go:embed quiz.schema.json
var schemaJSON []byte

var (
	schemaOnce  sync.Once
	schema      *jsonschema.Schema
	schemaErr   error
	validate    *validator.Validate
	validateOne sync.Once
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.NewCompiler().Compile(schemaJSON)
	})
	return schema, schemaErr
}

func structValidator() *validator.Validate {
	validateOne.Do(func() {
		validate = validator.New()
		validate.RegisterStructValidation(correctAnswerInOptions, Question{})
	})
	return validate
}

// correctAnswerInOptions requires the correct answer to match exactly one option.
func correctAnswerInOptions(sl validator.StructLevel) {
	q := sl.Current().Interface().(Question)
	matches := 0
	for _, opt := range q.Options {
		if opt == q.CorrectAnswer {
			matches++
		}
	}
	if matches != 1 {
		sl.ReportError(q.CorrectAnswer, "CorrectAnswer", "correctAnswer", "oneofoptions", "")
	}
}

// Parse validates a raw tool output against the quiz payload schema and
// returns the quiz it carries. Every failure wraps ErrInvalidQuiz.
func Parse(raw []byte) (*Document, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrInvalidQuiz)
	}

	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuiz, err)
	}
	sch, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile quiz schema: %w", err)
	}
	if result := sch.Validate(generic); !result.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuiz, result.Error())
	}

	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuiz, err)
	}
	if err := structValidator().Struct(payload); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuiz, describe(err))
	}
	return &payload.Quiz, nil
}

func describe(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed on the '%s' tag", fieldErr.Namespace(), fieldErr.Tag()))
	}
	return strings.Join(msgs, "; ")
}
