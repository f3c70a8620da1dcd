package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"deepgram-transcriber/internal/api/errors"
)

// Validator is implemented by request bodies with rules beyond struct tags
type Validator interface {
	Validate() error
}

var tagMessages = map[string]string{
	"required": "is required",
	"min":      "is too short",
	"max":      "is too long",
	"oneof":    "must be one of the allowed values",
}

// ValidateRequest binds the JSON body into req and checks its binding tags,
// then its Validate method. Tag failures become a 422 with one message per
// field.
func ValidateRequest(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return errors.NewValidationError("Validation failed", fieldErrors(err))
	}

	if v, ok := req.(Validator); ok {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func fieldErrors(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if !stderrors.As(err, &validationErrs) {
		return map[string]string{"request": "invalid JSON format"}
	}

	details := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		msg, ok := tagMessages[fe.Tag()]
		if !ok {
			msg = "is invalid"
		}
		details[strings.ToLower(fe.Field())] = msg
	}
	return details
}
