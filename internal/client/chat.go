package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ChatCompletionsPath is appended to the provider base URL.
const ChatCompletionsPath = "/chat/completions"

var (
	// ErrMalformedResponse is returned when a 2xx body is not a chat-completion object.
	ErrMalformedResponse = errors.New("malformed chat completion response")
	// ErrEmptyCompletion is returned when the reply has no choices or no content.
	ErrEmptyCompletion = errors.New("chat completion response has no content")
)

// chatClient is the unexported ChatClient implementation.
type chatClient struct {
	*HTTPClient
}

// NewChatClient returns a ChatClient that posts to ChatCompletionsPath on the given HTTPClient.
func NewChatClient(httpClient *HTTPClient) ChatClient {
	return &chatClient{HTTPClient: httpClient}
}

func (c *chatClient) Complete(ctx context.Context, credential string, req ChatCompletionRequest) (string, error) {
	resp, err := c.DoReq(ctx, http.MethodPost, ChatCompletionsPath, credential, req)
	if err != nil {
		return "", fmt.Errorf("chat completion with model '%s': %w", req.Model, err)
	}

	var completion ChatCompletionResponse
	if err := json.Unmarshal(resp.Bytes(), &completion); err != nil {
		return "", fmt.Errorf("chat completion with model '%s': %w: %v", req.Model, ErrMalformedResponse, err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("chat completion with model '%s': %w", req.Model, ErrEmptyCompletion)
	}
	return completion.Choices[0].Message.Content, nil
}
