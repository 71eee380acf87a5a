package service

import (
	"errors"
	"strings"

	"github.com/anmicius0/idea-validator/internal/config"
	"github.com/go-playground/validator/v10"
)

var requestValidate = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New()
	// notblank: non-empty after trimming whitespace
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// CheckRequest returns a MissingCredential or MissingIdea failure and false when the
// request must not reach the provider. The credential is checked first.
func CheckRequest(req config.ValidationRequest) (config.ValidationResult, bool) {
	err := requestValidate.Struct(req)
	if err == nil {
		return config.ValidationResult{}, true
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 && fieldErrs[0].Field() == "IdeaText" {
		return config.Failed(config.ErrorKindMissingIdea, MessageMissingIdea), false
	}
	return config.Failed(config.ErrorKindMissingCredential, MessageMissingCredential), false
}
