package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteErrorError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewIOError("EXPORT_WRITE", "failed to write page", cause).WithComponent("export")

	msg := err.Error()
	assert.Contains(t, msg, "[EXPORT_WRITE]")
	assert.Contains(t, msg, "component:export")
	assert.Contains(t, msg, "failed to write page")
	assert.Contains(t, msg, "disk full")
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestSiteErrorIs(t *testing.T) {
	a := NewValidationError("WIZARD_FIELD", "unknown field")
	b := NewValidationError("WIZARD_FIELD", "another message")
	c := NewValidationError("WIZARD_STEP", "unknown field")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))

	wrapped := fmt.Errorf("handler: %w", a)
	assert.True(t, errors.Is(wrapped, b))
}

func TestWithContext(t *testing.T) {
	err := NewConfigError("CONFIG_PORT", "bad port").WithContext("port", 70000)

	require.NotNil(t, err.Context)
	assert.Equal(t, 70000, err.Context["port"])
}

func TestStatusCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", NewValidationError("X", "x"), http.StatusBadRequest},
		{"security", NewSecurityError("X", "x"), http.StatusForbidden},
		{"not found", NewNotFoundError("X", "x"), http.StatusNotFound},
		{"network", NewNetworkError("X", "x", nil), http.StatusBadGateway},
		{"internal", NewInternalError("X", "x", nil), http.StatusInternalServerError},
		{"plain", errors.New("plain"), http.StatusInternalServerError},
		{"wrapped", fmt.Errorf("outer: %w", NewValidationError("X", "x")), http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StatusCode(tc.err))
		})
	}
}

func TestClassification(t *testing.T) {
	assert.True(t, IsRecoverable(NewValidationError("X", "x")))
	assert.False(t, IsRecoverable(NewIOError("X", "x", nil)))
	assert.False(t, IsRecoverable(errors.New("plain")))

	assert.True(t, IsType(NewSecurityError("X", "x"), ErrorTypeSecurity))
	assert.False(t, IsType(NewSecurityError("X", "x"), ErrorTypeConfig))
}

func TestWrapIO(t *testing.T) {
	assert.NoError(t, WrapIO(nil, "X", "x"))

	err := WrapIO(errors.New("boom"), "X", "x")
	require.Error(t, err)
	assert.True(t, IsType(err, ErrorTypeIO))
}
