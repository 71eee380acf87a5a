package service

import "github.com/anmicius0/idea-validator/internal/config"

const (
	MessageMissingCredential = "Please enter your Groq API key"
	MessageMissingIdea       = "Please describe your idea before validating"
	MessageRemediationHint   = "Make sure your API key is valid and you have credits available."
)

// UserMessage renders a failed result as the text shown to the user.
func UserMessage(result config.ValidationResult) string {
	switch result.Kind {
	case "":
		return ""
	case config.ErrorKindMissingCredential, config.ErrorKindMissingIdea:
		return result.Detail
	default:
		return "An error occurred: " + result.Detail
	}
}

// NeedsHint reports whether the remediation hint applies to the result.
func NeedsHint(result config.ValidationResult) bool {
	return result.Kind == config.ErrorKindAPI || result.Kind == config.ErrorKindTransport
}
