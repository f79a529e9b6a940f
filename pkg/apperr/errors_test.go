package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDuplicateMessageFormat(t *testing.T) {
	err := Duplicate("email", "user@example.com")

	require.Equal(t, `The input field "email", with the value "user@example.com", already exist.`, err.Error())
	require.Equal(t, "email", err.Field)
	require.Equal(t, "user@example.com", err.Value)
}

func TestKindOfClassifiesWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("handler: %w", NotFound("No card found."))
	require.Equal(t, KindNotFound, KindOf(wrapped))

	// Unclassified errors default to internal
	require.Equal(t, KindInternal, KindOf(errors.New("pg connection refused")))
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Internal(cause)

	require.Equal(t, KindInternal, err.Kind)
	require.Equal(t, "Something went wrong.", err.Message)
	require.ErrorIs(t, err, cause)
}
