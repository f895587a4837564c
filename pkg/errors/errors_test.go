package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodeMapping(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
	}{
		{NewValidationError("bad input"), http.StatusBadRequest},
		{NewUnauthorizedError(""), http.StatusUnauthorized},
		{NewNotFoundError(""), http.StatusNotFound},
		{NewConflictError("taken"), http.StatusConflict},
		{NewInternalError(""), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.StatusCode(), string(tc.err.Code))
	}
}

func TestInvalidCredentialsError(t *testing.T) {
	err := NewInvalidCredentialsError()
	assert.Equal(t, CodeUnauthorized, err.Code)
	assert.Equal(t, "Invalid credentials", err.Message)
	assert.Equal(t, http.StatusUnauthorized, err.StatusCode())
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))

	cause := stderrors.New("driver exploded")
	wrapped := Wrap(cause, "Failed to query")
	assert.Equal(t, CodeInternal, wrapped.Code)
	assert.ErrorIs(t, wrapped, cause)

	// An AppError passes through untouched.
	conflict := NewConflictError("taken")
	assert.Same(t, conflict, Wrap(conflict, "ignored"))
}

func TestIsAndGetCode(t *testing.T) {
	err := NewNotFoundError("gone")
	assert.True(t, Is(err, CodeNotFound))
	assert.False(t, Is(err, CodeConflict))
	assert.Equal(t, CodeNotFound, GetCode(err))

	plain := stderrors.New("plain")
	assert.False(t, Is(plain, CodeNotFound))
	assert.Equal(t, CodeInternal, GetCode(plain))
}

func TestErrorStringIncludesCause(t *testing.T) {
	err := NewInternalError("Failed to save").WithCause(stderrors.New("disk full"))
	assert.Contains(t, err.Error(), "INTERNAL_ERROR")
	assert.Contains(t, err.Error(), "Failed to save")
	assert.Contains(t, err.Error(), "disk full")
}
