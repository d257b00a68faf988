package svm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrapDescriptions(t *testing.T) {
	tests := []struct {
		trap Trap
		want string
	}{
		{Ok, "Ok"},
		{StackOverflow, "Stack overflow"},
		{StackUnderflow, "Stack underflow"},
		{DivideByZero, "Division by zero"},
		{IllegalInstructionAccess, "Illegal instruction access"},
		{Trap(42), "trap 42"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.trap.Error())
		assert.Equal(t, tt.want, tt.trap.String())
	}
}

func TestTrapOf(t *testing.T) {
	trap, ok := TrapOf(nil)
	assert.True(t, ok)
	assert.Equal(t, Ok, trap)

	wrapped := fmt.Errorf("run: %w", &ExecError{Trap: StackUnderflow})
	trap, ok = TrapOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, StackUnderflow, trap)

	trap, ok = TrapOf(DivideByZero)
	assert.True(t, ok)
	assert.Equal(t, DivideByZero, trap)

	_, ok = TrapOf(errors.New("boom"))
	assert.False(t, ok)
}
