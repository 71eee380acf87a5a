// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var validate = validator.New()

// ConfigFile is the optional .env file read on startup.
var ConfigFile = "config/.env"

// Config holds the application's configuration, loaded from .env and the environment.
type Config struct {
	APIHost        string        `validate:"required"`
	Port           int           `validate:"required,min=1,max=65535"`
	LLMBaseURL     string        `validate:"required,url"`
	LLMModel       string        `validate:"required"`
	LLMTemperature float64       `validate:"min=0,max=2"`
	LLMMaxTokens   int           `validate:"required,min=1"`
	LLMTimeout     time.Duration `validate:"required"`
}

// Load loads and validates the application configuration.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(ConfigFile)
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetDefault("API_HOST", DefaultAPIHost)
	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("LLM_BASE_URL", DefaultLLMBaseURL)
	v.SetDefault("LLM_MODEL", DefaultLLMModel)
	v.SetDefault("LLM_TEMPERATURE", DefaultLLMTemperature)
	v.SetDefault("LLM_MAX_TOKENS", DefaultLLMMaxTokens)
	v.SetDefault("LLM_TIMEOUT", DefaultLLMTimeout)

	if err := v.ReadInConfig(); err != nil {
		var cfgErr viper.ConfigFileNotFoundError
		if !errors.As(err, &cfgErr) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	appConfig := &Config{
		APIHost:        v.GetString("API_HOST"),
		Port:           v.GetInt("PORT"),
		LLMBaseURL:     v.GetString("LLM_BASE_URL"),
		LLMModel:       v.GetString("LLM_MODEL"),
		LLMTemperature: v.GetFloat64("LLM_TEMPERATURE"),
		LLMMaxTokens:   v.GetInt("LLM_MAX_TOKENS"),
		LLMTimeout:     v.GetDuration("LLM_TIMEOUT"),
	}

	if err := validate.Struct(appConfig); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return appConfig, nil
}
