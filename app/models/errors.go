package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation matches every ValidationError through errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError reports a rejected input field. It is recoverable: the
// caller can fix the input and try again.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// fromValidator converts the first failure reported by the validator into a
// ValidationError. Other errors pass through unchanged.
func fromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return &ValidationError{Field: fieldPath(fe.Namespace()), Reason: reason(fe)}
}

// fieldPath drops the top-level struct name: "Post.author.role" -> "author.role".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "category", "visibility", "role", "daterange", "sortkey":
		return fmt.Sprintf("unknown %s %q", fe.Tag(), fe.Value())
	}
	if strings.Contains(fe.Tag(), "|") {
		return fmt.Sprintf("unknown value %q", fe.Value())
	}
	return "failed " + fe.Tag() + " check"
}
