package server

import (
	"context"

	"github.com/anmicius0/idea-validator/internal/config"
	"github.com/stretchr/testify/mock"
)

type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) ValidateRequest(ctx context.Context, req config.ValidationRequest) config.ValidationResult {
	args := m.Called(req)
	return args.Get(0).(config.ValidationResult)
}
