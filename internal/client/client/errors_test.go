package client

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IsMatchesByKind(t *testing.T) {
	err := networkError(errors.New("dial tcp: connection refused"))

	assert.True(t, errors.Is(err, ErrNetwork))
	assert.False(t, errors.Is(err, ErrServer))
	assert.False(t, errors.Is(err, ErrSessionExpired))
}

func TestError_WrappingSurvivesFmtErrorf(t *testing.T) {
	wrapped := fmt.Errorf("list books: %w", rateLimitError())

	require.ErrorIs(t, wrapped, ErrRateLimit)

	var apiErr *Error
	require.ErrorAs(t, wrapped, &apiErr)
	assert.Equal(t, KindRateLimit, apiErr.Kind)
}

func TestError_UnwrapExposesCause(t *testing.T) {
	cause := errors.New("read tcp: i/o timeout")
	err := networkError(cause)

	assert.ErrorIs(t, err, cause)
}

func TestGenericError_EmptyMessageFallsBack(t *testing.T) {
	assert.EqualError(t, genericError(""), "An error occurred")
	assert.EqualError(t, genericError("isbn already exists"), "isbn already exists")
}
