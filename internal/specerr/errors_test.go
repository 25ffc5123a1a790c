package specerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocumentErrorMatchesSentinel(t *testing.T) {
	err := Invalid("missing info.title")
	require.ErrorIs(t, err, ErrInvalidDocument)
	require.Equal(t, "invalid api document: missing info.title", err.Error())
}

func TestDocumentErrorWrapsCause(t *testing.T) {
	cause := errors.New("yaml: line 3: mapping values are not allowed")
	err := &DocumentError{Reason: "parsing failed", Err: cause}
	require.ErrorIs(t, err, ErrInvalidDocument)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "parsing failed")
	require.Contains(t, err.Error(), cause.Error())
}

func TestWrappedSentinelSurvivesErrorf(t *testing.T) {
	err := fmt.Errorf("generating dtos: %w", ErrUnknownLanguage)
	require.ErrorIs(t, err, ErrUnknownLanguage)
}
