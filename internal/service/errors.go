package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

var (
	ErrValidation           = errors.New("validation failed")
	ErrDuplicateUsername    = errors.New("username is already taken")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("access to a different user's data")
	ErrNoCategoriesExist    = errors.New("no categories exist")
	ErrUnavailable          = errors.New("storage is unavailable")

	ErrInvalidSession        = errors.New("session is expired or invalid")
	ErrSessionCreationFailed = errors.New("session creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// ValidationError carries per-field messages. It matches [ErrValidation]
// with errors.Is.
type ValidationError struct {
	Errors models.FormErrors
}

func newValidationError(errs models.FormErrors) *ValidationError {
	return &ValidationError{Errors: errs}
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for field := range e.Errors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
