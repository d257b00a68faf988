package svm

import (
	"errors"
	"fmt"

	"github.com/entropyio/go-svm/common"
)

// List of VM traps. Ok is the absence of a trap.
const (
	Ok = Trap(iota)
	StackOverflow
	StackUnderflow
	DivideByZero
	IllegalInstructionAccess
)

var trapDescriptions = []string{
	"Ok",
	"Stack overflow",
	"Stack underflow",
	"Division by zero",
	"Illegal instruction access",
}

// Trap describes the reason a run was aborted.
type Trap uint8

func (t Trap) Error() string {
	if int(t) < len(trapDescriptions) {
		return trapDescriptions[t]
	}
	return fmt.Sprintf("trap %d", int(t))
}

func (t Trap) String() string {
	return t.Error()
}

// ExecError describes the cause and the context of a VM trap.
type ExecError struct {
	Trap    Trap          // nature of the trap
	IP      common.Word   // instruction pointer at the fault
	Instr   Instruction   // instruction that raised the trap
	Fetched bool          // false when the fetch itself failed and Instr is unset
	Stack   []common.Word // operand stack at the fault, bottom first
}

func (e *ExecError) Error() string {
	msg := fmt.Sprintf("svm: %v at 0x%04x", e.Trap, uint64(e.IP))
	if e.Fetched {
		msg += " (" + e.Instr.String() + ")"
	}
	return msg
}

// Unwrap returns the trap so errors.Is(err, DivideByZero) holds.
func (e *ExecError) Unwrap() error {
	return e.Trap
}

// TrapOf extracts the trap from an error returned by the machine. A nil
// error is Ok. The boolean is false for errors that carry no trap.
func TrapOf(err error) (Trap, bool) {
	if err == nil {
		return Ok, true
	}
	var t Trap
	if errors.As(err, &t) {
		return t, true
	}
	return Ok, false
}
