package client

import "context"

// ChatClient defines the single operation we perform against a chat-completion provider.
// Use NewChatClient to obtain the resty-backed implementation.
type ChatClient interface {
	// Complete sends one request authenticated with credential and returns
	// the first choice's message content.
	Complete(ctx context.Context, credential string, req ChatCompletionRequest) (string, error)
}
