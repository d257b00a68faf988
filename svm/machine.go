package svm

import (
	"io"
	"os"

	"github.com/entropyio/go-svm/common"
)

// Machine is the whole mutable state of one run: the operand stack, the
// program, the instruction pointer and the halt flag. A Machine is not
// safe for concurrent use.
type Machine struct {
	stack   *Stack
	program *Program

	ip      common.Word
	halted  bool
	jumped  bool // last executed instruction set ip itself
	started bool
	steps   uint64
	// exhausted is set when Run stopped on the step budget
	exhausted bool
	err       error // trap that ended the run, sticky until Reset

	out   io.Writer
	trace bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithOutput sets where DUMPSTACK and PRINTTOP write. Defaults to stdout.
func WithOutput(w io.Writer) Option {
	return func(m *Machine) {
		if w != nil {
			m.out = w
		}
	}
}

// WithTrace logs every executed instruction at DEBUG level.
func WithTrace(on bool) Option {
	return func(m *Machine) {
		m.trace = on
	}
}

// NewMachine returns a machine loaded with a private copy of program.
// A nil program gives an empty machine that is filled with Append.
func NewMachine(program *Program, opts ...Option) *Machine {
	m := &Machine{
		stack:   newstack(),
		program: program.clone(),
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Append adds inst to the machine's program. The program is frozen once
// the first instruction has been executed.
func (m *Machine) Append(inst Instruction) error {
	if m.started {
		return ErrProgramSealed
	}
	return m.program.Append(inst)
}

// Reset rewinds the machine to its initial state, keeping the program.
func (m *Machine) Reset() {
	m.stack.reset()
	m.ip = 0
	m.halted = false
	m.jumped = false
	m.started = false
	m.steps = 0
	m.exhausted = false
	m.err = nil
}

func (m *Machine) IP() common.Word { return m.ip }
func (m *Machine) Halted() bool    { return m.halted }
func (m *Machine) Steps() uint64   { return m.steps }
func (m *Machine) Err() error      { return m.err }

// BudgetExhausted reports whether the last Run stopped on its step budget.
func (m *Machine) BudgetExhausted() bool { return m.exhausted }

// Stack returns a copy of the operand stack, bottom first.
func (m *Machine) Stack() []common.Word { return m.stack.Data() }

// Program returns a copy of the loaded program.
func (m *Machine) Program() *Program { return m.program.clone() }

// Done reports whether the machine has nothing more to execute: it either
// halted or ran off the end of the program in sequence.
func (m *Machine) Done() bool {
	return m.halted || (!m.jumped && m.ip == common.Word(m.program.Len()))
}
