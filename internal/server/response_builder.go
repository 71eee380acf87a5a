// internal/server/response_builder.go
package server

import (
	"net/http"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/anmicius0/idea-validator/internal/config"
	"github.com/anmicius0/idea-validator/internal/service"
)

// ResponseBuilder provides utilities for constructing consistent API responses.
type ResponseBuilder struct{}

// newResponseBuilder creates a new response builder instance.
func newResponseBuilder() *ResponseBuilder { return &ResponseBuilder{} }

// ValidationResponse is the payload returned for a successful validation.
type ValidationResponse struct {
	Success    bool
	Message    string
	RequestID  string
	Assessment string
}

// ErrorResponse standardizes error responses.
type ErrorResponse struct {
	Success bool
	Error   string
	Message string
	Details any
}

// ValidationErrorDetails explains a failed validation to API callers.
type ValidationErrorDetails struct {
	RequestID string
	Detail    string
	Hint      string
}

// StatusFor maps a result to the HTTP status the web surface answers with.
func StatusFor(result config.ValidationResult) int {
	switch result.Kind {
	case "":
		return http.StatusOK
	case config.ErrorKindMissingCredential, config.ErrorKindMissingIdea:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadGateway
	}
}

// BuildValidationResponse constructs the success or error payload for a result, converting keys to camelCase.
func (rb *ResponseBuilder) BuildValidationResponse(result config.ValidationResult, requestID string) any {
	if result.OK() {
		return toCamelCaseMap(ValidationResponse{
			Success:    true,
			Message:    MessageValidationComplete,
			RequestID:  requestID,
			Assessment: result.AssessmentText,
		})
	}

	details := ValidationErrorDetails{
		RequestID: requestID,
		Detail:    result.Detail,
	}
	if service.NeedsHint(result) {
		details.Hint = service.MessageRemediationHint
	}
	return rb.BuildErrorResponse(string(result.Kind), service.UserMessage(result), details)
}

// BuildErrorResponse constructs a standardized error response, converting keys to camelCase.
func (rb *ResponseBuilder) BuildErrorResponse(errorCode, errorMessage string, details any) any {
	response := ErrorResponse{
		Success: false,
		Error:   errorCode,
		Message: errorMessage,
		Details: details,
	}
	return toCamelCaseMap(response)
}

func toCamelCaseMap(data any) any {
	val := reflect.ValueOf(data)
	if !val.IsValid() {
		return nil
	}

	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}

	if val.Kind() == reflect.Slice || val.Kind() == reflect.Array {
		out := make([]any, val.Len())
		for i := 0; i < val.Len(); i++ {
			out[i] = toCamelCaseMap(val.Index(i).Interface())
		}
		return out
	}

	if val.Kind() == reflect.Struct {
		out := make(map[string]any)
		typ := val.Type()
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			// Skip unexported fields
			if field.PkgPath != "" {
				continue
			}
			out[camelKey(field.Name)] = toCamelCaseMap(val.Field(i).Interface())
		}
		return out
	}

	return data
}

// camelKey lowers a Go field name, keeping ID and URL suffixes readable ("RequestID" -> "requestId").
func camelKey(name string) string {
	for _, acronym := range []string{"ID", "URL"} {
		if name == acronym {
			return strings.ToLower(acronym)
		}
		if prefix, ok := strings.CutSuffix(name, acronym); ok {
			return lowerFirst(prefix) + acronym[:1] + strings.ToLower(acronym[1:])
		}
	}
	return lowerFirst(name)
}

// lowerFirst lowers the first rune of a string
func lowerFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
