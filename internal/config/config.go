package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Config struct {
	Server ServerConfig `envPrefix:"SERVER_"`
	CORS   CORSConfig   `envPrefix:"CORS_"`
}

type ServerConfig struct {
	Port            string        `env:"PORT"             envDefault:"8080" validate:"required,numeric"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT"     envDefault:"15s"  validate:"gt=0"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT"    envDefault:"15s"  validate:"gt=0"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT"     envDefault:"60s"  validate:"gt=0"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"   validate:"gt=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:"," validate:"min=1,dive,required"`
}

// LoadConfig reads the configuration from the process environment.
// Callers that want .env support load it before calling this.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %s", ValidationError(err))
	}

	return &cfg, nil
}

// ValidationError turns validator.ValidationErrors into a readable message.
func ValidationError(err error) string {
	if err == nil {
		return ""
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	var errorMsgs []string
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			errorMsgs = append(errorMsgs, fmt.Sprintf("Field '%s' is required", e.Namespace()))
		case "numeric":
			errorMsgs = append(errorMsgs, fmt.Sprintf("Field '%s' must be numeric", e.Namespace()))
		case "gt":
			errorMsgs = append(errorMsgs, fmt.Sprintf("Field '%s' must be greater than %s", e.Namespace(), e.Param()))
		case "min":
			errorMsgs = append(errorMsgs, fmt.Sprintf("Field '%s' must have at least %s entries", e.Namespace(), e.Param()))
		default:
			errorMsgs = append(errorMsgs, fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Namespace(), e.Tag()))
		}
	}

	return strings.Join(errorMsgs, ", ")
}
