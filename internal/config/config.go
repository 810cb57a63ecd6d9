package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	app_errors "quiz-widget/backend/internal/errors"
)

const DefaultGreeting = "Hello! I'm your AI assistant. How can I help you today?"

type Config struct {
	AppPort  int    `mapstructure:"APP_PORT" validate:"min=1,max=65535"`
	LogLevel string `mapstructure:"LOG_LEVEL"`
	// LogFile redirects logs away from stdout. The terminal widget needs this
	// so log lines don't tear the UI.
	LogFile string `mapstructure:"LOG_FILE"`

	ChatAPIURL      string        `mapstructure:"CHAT_API_URL" validate:"required_if=WidgetTransport http"`
	WidgetTransport string        `mapstructure:"WIDGET_TRANSPORT" validate:"oneof=http demo"`
	QuizToolName    string        `mapstructure:"QUIZ_TOOL_NAME" validate:"required"`
	Greeting        string        `mapstructure:"GREETING"`
	IdleTimeout     time.Duration `mapstructure:"WIDGET_IDLE_TIMEOUT"`

	StoreDriver  string        `mapstructure:"STORE_DRIVER" validate:"oneof=sqlite redis"`
	DatabasePath string        `mapstructure:"DATABASE_PATH" validate:"required_if=StoreDriver sqlite"`
	RedisAddr    string        `mapstructure:"REDIS_ADDR" validate:"required_if=StoreDriver redis"`
	RedisTTL     time.Duration `mapstructure:"REDIS_TTL"`

	UploadMaxBytes int64 `mapstructure:"UPLOAD_MAX_BYTES" validate:"min=0"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("LOG_FILE", "")
	viper.SetDefault("CHAT_API_URL", "http://localhost:8000/api/chat/test")
	viper.SetDefault("WIDGET_TRANSPORT", "http")
	viper.SetDefault("QUIZ_TOOL_NAME", "generateQuiz")
	viper.SetDefault("GREETING", DefaultGreeting)
	viper.SetDefault("WIDGET_IDLE_TIMEOUT", "30m")
	viper.SetDefault("STORE_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_PATH", "file:widgets?mode=memory&cache=shared")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_TTL", "24h")
	viper.SetDefault("UPLOAD_MAX_BYTES", 10<<20)

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./backend")

	viper.AutomaticEnv()
	// GREETING= must be able to switch the greeting off.
	viper.AllowEmptyEnv(true)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.StoreDriver = strings.ToLower(cfg.StoreDriver)
	cfg.WidgetTransport = strings.ToLower(cfg.WidgetTransport)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that would otherwise fail late, at the first
// request.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: invalid configuration: %s", app_errors.ErrValidation, err.Error())
	}
	return nil
}
