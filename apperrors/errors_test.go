package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, NewInputError("x").Status())
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("x").Status())
	assert.Equal(t, http.StatusInternalServerError, NewConfigurationError("x").Status())
	assert.Equal(t, http.StatusInternalServerError, NewInternalError("x").Status())
}

func TestFromErrorUnwrapsAppError(t *testing.T) {
	wrapped := fmt.Errorf("pipeline failed: %w", NewNotFoundError("User not found"))

	got := FromError(wrapped)
	assert.Equal(t, CodeUserNotFound, got.Code)
	assert.Equal(t, "User not found", got.Message)
}

func TestFromErrorWrapsUnknown(t *testing.T) {
	got := FromError(errors.New("connection refused"))
	assert.Equal(t, CodeInternal, got.Code)
	assert.Equal(t, "Internal server error", got.Message)
}
