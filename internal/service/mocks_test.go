package service

import (
	"context"

	"github.com/anmicius0/idea-validator/internal/client"
	"github.com/stretchr/testify/mock"
)

type MockChatClient struct {
	mock.Mock
}

func (m *MockChatClient) Complete(ctx context.Context, credential string, req client.ChatCompletionRequest) (string, error) {
	args := m.Called(ctx, credential, req)
	return args.String(0), args.Error(1)
}
