package stepreport

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeError(t *testing.T) {
	base := errors.New("no such file")
	err := NewRuntimeError(base)

	assert.True(t, IsRuntimeError(err))
	assert.False(t, IsRunFailureError(err))
	assert.ErrorIs(t, err, base)
	assert.Contains(t, err.Error(), "runtime error")

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsRuntimeError(wrapped))
}

func TestRunFailureError(t *testing.T) {
	err := NewRunFailureError("2 of 5 steps failed")

	assert.True(t, IsRunFailureError(err))
	assert.False(t, IsRuntimeError(err))
	assert.Contains(t, err.Error(), "2 of 5 steps failed")

	wrapped := fmt.Errorf("outer: %w", err)
	assert.True(t, IsRunFailureError(wrapped))
}

func TestErrorPredicates_Nil(t *testing.T) {
	assert.False(t, IsRuntimeError(nil))
	assert.False(t, IsRunFailureError(nil))
}
