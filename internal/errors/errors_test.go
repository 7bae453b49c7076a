package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorError(t *testing.T) {
	plain := Unauthenticated("Invalid email or password")
	assert.Equal(t, "Invalid email or password", plain.Error())

	wrapped := Wrap(errors.New("dial tcp: refused"), ErrCodeUnavailable, "session store unreachable")
	assert.Equal(t, "session store unreachable: dial tcp: refused", wrapped.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(cause, ErrCodeInternal, "wrapped")

	require.ErrorIs(t, err, cause)

	var appErr *AppError
	require.ErrorAs(t, fmt.Errorf("outer: %w", err), &appErr)
	assert.Equal(t, ErrCodeInternal, appErr.Code)
}

func TestCodePredicates(t *testing.T) {
	assert.True(t, IsUnauthenticated(Unauthenticated("no session")))
	assert.True(t, IsUnauthorized(Unauthorized("wrong role")))
	assert.True(t, IsConflict(Conflict("email taken")))
	assert.True(t, IsUnavailable(Unavailable("redis down")))
	assert.False(t, IsUnauthenticated(Unauthorized("wrong role")))
	assert.False(t, IsConflict(errors.New("plain")))
}

func TestGetCodeAndField(t *testing.T) {
	assert.Equal(t, ErrCodeValidation, GetCode(ValidationField("email", "required")))
	assert.Equal(t, "email", GetField(ValidationField("email", "required")))
	assert.Equal(t, ErrorCode(""), GetCode(errors.New("plain")))
	assert.Equal(t, "", GetField(errors.New("plain")))
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "Invalid email or password", UserMessage(Unauthenticated("Invalid email or password")))
	// Raw errors must never leak internals to the UI.
	assert.Equal(t, "Something went wrong. Please try again.", UserMessage(errors.New("pq: connection reset")))
	assert.Equal(t, "Something went wrong. Please try again.", UserMessage(nil))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrCodeInternal, "ignored %d", 1))
}
