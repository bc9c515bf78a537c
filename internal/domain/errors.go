package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrModelNotFound        = errors.New("no model for session")
	ErrDiagramNotFound      = errors.New("diagram not found")
	ErrFeedbackNotFound     = errors.New("feedback not found")
	ErrInvalidView          = errors.New("invalid diagram view")
	ErrUnsupportedView      = errors.New("diagram view not supported")
	ErrTemplateMissing      = errors.New("view template missing")
	ErrValidation           = errors.New("model validation failed")
	ErrReferentialIntegrity = errors.New("model references do not resolve")
	ErrUnknownModelField    = errors.New("unknown model field")
	ErrInvalidJudgment      = errors.New("invalid feedback judgment")
	ErrGeneration           = errors.New("model generation failed")
	ErrStoreUnavailable     = errors.New("store unavailable")
	ErrArtifactUnavailable  = errors.New("artifact renderer unavailable")
	ErrSecretNotFound       = errors.New("secret not found")
)

// ValidationError reports why raw generator output could not become a model.
// Raw keeps the offending text for diagnostics.
type ValidationError struct {
	Raw      string
	Problems []string
	Err      error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if len(e.Problems) > 0 {
		fmt.Fprintf(&b, ": %s", strings.Join(e.Problems, "; "))
	}
	return b.String()
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
