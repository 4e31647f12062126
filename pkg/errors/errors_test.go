package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewError(t *testing.T) {
	err := New(ErrThemeInvalid, "missing style entry")
	assert.Equal(t, ErrThemeInvalid, err.Code)
	assert.Contains(t, err.Error(), "THEME_INVALID")
	assert.Contains(t, err.Error(), "missing style entry")
}

func TestNewf(t *testing.T) {
	err := Newf(ErrPromptAttempts, "no valid input after %d attempts", 3)
	assert.Contains(t, err.Error(), "after 3 attempts")
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(cause, ErrWriteFailed, "writing component")

	assert.Equal(t, ErrWriteFailed, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrWriteFailed, "nothing"))
	assert.Nil(t, Wrapf(nil, ErrWriteFailed, "nothing %d", 1))
}

func TestIsMatchesByCode(t *testing.T) {
	a := New(ErrTransientActive, "one")
	b := New(ErrTransientActive, "different message")
	c := New(ErrTransientDone, "other code")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrThemeLoad, "bad file")
	assert.True(t, IsErrorCode(err, ErrThemeLoad))
	assert.False(t, IsErrorCode(err, ErrThemeInvalid))

	// Codes survive wrapping in plain errors
	wrapped := fmt.Errorf("loading theme: %w", err)
	assert.True(t, IsErrorCode(wrapped, ErrThemeLoad))

	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrThemeLoad))
	assert.False(t, IsErrorCode(nil, ErrThemeLoad))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrWriteFailed, GetErrorCode(New(ErrWriteFailed, "x")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrThemeLoad, "bad file").
		WithDetail("path", "/tmp/theme.yaml").
		WithDetail("line", 4)

	require.NotNil(t, err.Details)
	assert.Equal(t, "/tmp/theme.yaml", err.Details["path"])
	assert.Equal(t, 4, err.Details["line"])
}

func TestIsCancelled(t *testing.T) {
	assert.True(t, IsCancelled(New(ErrPromptCancelled, "eof")))
	assert.True(t, IsCancelled(New(ErrPromptAttempts, "too many")))
	assert.False(t, IsCancelled(New(ErrWriteFailed, "io")))
	assert.False(t, IsCancelled(nil))
}
