// Package specerr defines the sentinel errors and the structured error type
// raised at the document boundary, so callers can match failure classes with
// errors.Is without parsing messages.
package specerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDocument marks input rejected by the structural boundary
	// check: unparseable text, missing identity section, or missing paths.
	ErrInvalidDocument = errors.New("invalid api document")

	// ErrUnsupportedVersion marks documents whose version marker is neither
	// OpenAPI 3.x nor Swagger 2.0.
	ErrUnsupportedVersion = errors.New("unsupported document version")

	// ErrUnknownLanguage marks DTO generation requests for a language the
	// generator has no emitter for.
	ErrUnknownLanguage = errors.New("unknown target language")
)

// DocumentError says why a document was rejected.
type DocumentError struct {
	Reason string
	Err    error
}

func (e *DocumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid api document: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid api document: %s", e.Reason)
}

func (e *DocumentError) Unwrap() error { return e.Err }

func (e *DocumentError) Is(target error) bool { return target == ErrInvalidDocument }

// Invalid builds a DocumentError from a formatted reason.
func Invalid(format string, args ...any) *DocumentError {
	return &DocumentError{Reason: fmt.Sprintf(format, args...)}
}
