// Package service implements idea validation against a chat-completion provider.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anmicius0/idea-validator/internal/client"
	"github.com/anmicius0/idea-validator/internal/config"
	"github.com/anmicius0/idea-validator/internal/utils"
	"go.uber.org/zap"
)

// IdeaValidator sends one idea to the provider per call and classifies the outcome.
// It keeps no state between calls.
type IdeaValidator struct {
	chat        client.ChatClient
	model       string
	temperature float64
	maxTokens   int
	log         *zap.Logger
}

// NewIdeaValidator constructs an IdeaValidator using the model parameters from cfg.
func NewIdeaValidator(cfg *config.Config, chat client.ChatClient) *IdeaValidator {
	return &IdeaValidator{
		chat:        chat,
		model:       cfg.LLMModel,
		temperature: cfg.LLMTemperature,
		maxTokens:   cfg.LLMMaxTokens,
		log:         utils.WithComponent("idea_validator"),
	}
}

// BuildRequest assembles the chat-completion body for an idea.
func (v *IdeaValidator) BuildRequest(idea string) client.ChatCompletionRequest {
	return client.ChatCompletionRequest{
		Model: v.model,
		Messages: []client.ChatMessage{
			{Role: "system", Content: config.SystemPrompt},
			{Role: "user", Content: config.IdeaLabel + idea},
		},
		Temperature: v.temperature,
		MaxTokens:   v.maxTokens,
	}
}

// Validate performs exactly one provider call. Inputs are not checked here;
// callers go through ValidateRequest or CheckRequest first.
func (v *IdeaValidator) Validate(ctx context.Context, credential, idea string) config.ValidationResult {
	start := time.Now()
	assessment, err := v.chat.Complete(ctx, credential, v.BuildRequest(idea))
	if err != nil {
		result := classify(err)
		v.log.Info("Idea validation failed",
			zap.String(utils.FieldModel, v.model),
			zap.String(utils.FieldErrorKind, string(result.Kind)),
			zap.Duration(utils.FieldDuration, time.Since(start)),
			zap.Error(err))
		return result
	}

	v.log.Info("Idea validated",
		zap.String(utils.FieldModel, v.model),
		zap.Int(utils.FieldIdeaLength, len(idea)),
		zap.Duration(utils.FieldDuration, time.Since(start)))
	return config.Succeeded(assessment)
}

// ValidateRequest rejects missing inputs without any network call, then validates.
func (v *IdeaValidator) ValidateRequest(ctx context.Context, req config.ValidationRequest) config.ValidationResult {
	if failure, ok := CheckRequest(req); !ok {
		v.log.Debug("Validation request rejected",
			zap.String(utils.FieldErrorKind, string(failure.Kind)))
		return failure
	}
	return v.Validate(ctx, req.Credential, req.IdeaText)
}

// classify maps a client error to ApiError or TransportError.
func classify(err error) config.ValidationResult {
	var httpErr *client.HTTPError
	if errors.As(err, &httpErr) {
		return config.Failed(config.ErrorKindAPI,
			fmt.Sprintf("API Error: %d - %s", httpErr.StatusCode, httpErr.Body))
	}
	return config.Failed(config.ErrorKindTransport, err.Error())
}
