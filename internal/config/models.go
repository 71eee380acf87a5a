// internal/config/models.go
// Package config provides configuration loading, validation, and data models.
package config

// ErrorKind classifies why a validation did not produce an assessment.
type ErrorKind string

const (
	ErrorKindMissingCredential ErrorKind = "missing_credential"
	ErrorKindMissingIdea       ErrorKind = "missing_idea"
	ErrorKindAPI               ErrorKind = "api_error"
	ErrorKindTransport         ErrorKind = "transport_error"
)

// ValidationRequest is the pair of inputs collected from the user for one validation.
type ValidationRequest struct {
	// Credential is the bearer token for the inference provider
	Credential string `validate:"required"`
	// IdeaText is the free-form idea description, sent verbatim
	IdeaText string `validate:"notblank"`
}

// ValidationResult is either a success carrying AssessmentText or a failure carrying Kind and Detail.
// Build it with Succeeded or Failed so exactly one side is populated.
type ValidationResult struct {
	AssessmentText string
	Kind           ErrorKind
	Detail         string
}

// Succeeded returns a successful result for the given assessment.
func Succeeded(assessment string) ValidationResult {
	return ValidationResult{AssessmentText: assessment}
}

// Failed returns a failure result of the given kind.
func Failed(kind ErrorKind, detail string) ValidationResult {
	return ValidationResult{Kind: kind, Detail: detail}
}

// OK reports whether the result carries an assessment.
func (r ValidationResult) OK() bool {
	return r.Kind == ""
}
