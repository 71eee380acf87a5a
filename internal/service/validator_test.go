package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/anmicius0/idea-validator/internal/client"
	"github.com/anmicius0/idea-validator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		LLMBaseURL:     baseURL,
		LLMModel:       config.DefaultLLMModel,
		LLMTemperature: config.DefaultLLMTemperature,
		LLMMaxTokens:   config.DefaultLLMMaxTokens,
		LLMTimeout:     5 * time.Second,
	}
}

// newProvider starts a fake provider and counts the calls it receives.
func newProvider(t *testing.T, status int, body string) (*IdeaValidator, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	cfg := testConfig(srv.URL)
	httpClient := client.NewHTTPClient(cfg.LLMBaseURL, cfg.LLMTimeout)
	t.Cleanup(func() { httpClient.Close() })
	return NewIdeaValidator(cfg, client.NewChatClient(httpClient)), &calls
}

func TestBuildRequest(t *testing.T) {
	v := NewIdeaValidator(testConfig("http://unused"), new(MockChatClient))

	req := v.BuildRequest("A ride-sharing app for dog walkers")

	assert.Equal(t, "llama-3.3-70b-versatile", req.Model)
	assert.Equal(t, 0.7, req.Temperature)
	assert.Equal(t, 2000, req.MaxTokens)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, "system", req.Messages[0].Role)
	assert.Contains(t, req.Messages[0].Content, "experienced startup advisor")
	assert.Contains(t, req.Messages[0].Content, "rating out of 10")
	assert.Equal(t, "user", req.Messages[1].Role)
	assert.Equal(t, "Idea to validate: A ride-sharing app for dog walkers", req.Messages[1].Content)
}

func TestValidate_Success(t *testing.T) {
	v, calls := newProvider(t, http.StatusOK,
		`{"choices":[{"index":0,"message":{"role":"assistant","content":"Strong niche idea..."}}]}`)

	result := v.ValidateRequest(context.Background(), config.ValidationRequest{
		Credential: "sk-test",
		IdeaText:   "A ride-sharing app for dog walkers",
	})

	assert.True(t, result.OK())
	assert.Equal(t, "Strong niche idea...", result.AssessmentText)
	assert.Empty(t, result.Detail)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestValidate_ContentUnmodified(t *testing.T) {
	content := "  ## Strengths\n\n- **Niche**: yes\n\nRating: 7/10  \n"
	mockChat := new(MockChatClient)
	mockChat.On("Complete", mock.Anything, "sk-test", mock.Anything).Return(content, nil)
	v := NewIdeaValidator(testConfig("http://unused"), mockChat)

	result := v.Validate(context.Background(), "sk-test", "idea")

	assert.True(t, result.OK())
	assert.Equal(t, content, result.AssessmentText)
	mockChat.AssertExpectations(t)
}

func TestValidate_APIError(t *testing.T) {
	v, calls := newProvider(t, http.StatusUnauthorized, `{"error":"invalid_api_key"}`)

	result := v.Validate(context.Background(), "bad-key", "any idea")

	assert.False(t, result.OK())
	assert.Equal(t, config.ErrorKindAPI, result.Kind)
	assert.Contains(t, result.Detail, "401")
	assert.Contains(t, result.Detail, "invalid_api_key")
	assert.Empty(t, result.AssessmentText)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestValidate_NonSuccessStatusCodes(t *testing.T) {
	for _, status := range []int{400, 402, 404, 429, 500, 503} {
		t.Run(fmt.Sprint(status), func(t *testing.T) {
			v, calls := newProvider(t, status, `{"error":"nope"}`)

			result := v.Validate(context.Background(), "sk-test", "idea")

			assert.Equal(t, config.ErrorKindAPI, result.Kind)
			assert.Contains(t, result.Detail, fmt.Sprint(status))
			assert.Equal(t, int32(1), atomic.LoadInt32(calls), "no retries")
		})
	}
}

func TestValidate_MalformedResponse(t *testing.T) {
	v, _ := newProvider(t, http.StatusOK, `not json`)

	result := v.Validate(context.Background(), "sk-test", "idea")

	assert.Equal(t, config.ErrorKindTransport, result.Kind)
	assert.Contains(t, result.Detail, client.ErrMalformedResponse.Error())
}

func TestValidate_TransportError(t *testing.T) {
	mockChat := new(MockChatClient)
	mockChat.On("Complete", mock.Anything, "sk-test", mock.Anything).
		Return("", fmt.Errorf("dial tcp: connection refused"))
	v := NewIdeaValidator(testConfig("http://unused"), mockChat)

	result := v.Validate(context.Background(), "sk-test", "idea")

	assert.Equal(t, config.ErrorKindTransport, result.Kind)
	assert.Contains(t, result.Detail, "connection refused")
	assert.Empty(t, result.AssessmentText)
}

func TestValidateRequest_MissingInputs(t *testing.T) {
	tests := []struct {
		name     string
		req      config.ValidationRequest
		expected config.ErrorKind
	}{
		{"Empty Credential", config.ValidationRequest{Credential: "", IdeaText: "idea"}, config.ErrorKindMissingCredential},
		{"Whitespace Idea", config.ValidationRequest{Credential: "sk-test", IdeaText: "   "}, config.ErrorKindMissingIdea},
		{"Empty Idea", config.ValidationRequest{Credential: "sk-test", IdeaText: ""}, config.ErrorKindMissingIdea},
		{"Newlines Only", config.ValidationRequest{Credential: "sk-test", IdeaText: "\n\t\n"}, config.ErrorKindMissingIdea},
		{"Both Missing", config.ValidationRequest{}, config.ErrorKindMissingCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, calls := newProvider(t, http.StatusOK, `{}`)

			result := v.ValidateRequest(context.Background(), tt.req)

			assert.Equal(t, tt.expected, result.Kind)
			assert.NotEmpty(t, result.Detail)
			assert.Equal(t, int32(0), atomic.LoadInt32(calls))
		})
	}
}

func TestCheckRequest_Valid(t *testing.T) {
	_, ok := CheckRequest(config.ValidationRequest{Credential: "sk-test", IdeaText: " idea "})
	assert.True(t, ok)
}
