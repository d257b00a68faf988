package svm

import (
	"github.com/entropyio/go-svm/common"
	"github.com/entropyio/go-svm/logger"
)

var log = logger.NewLogger("[svm]")

// Run executes the program until it halts, runs off its end, traps, or
// budget instructions have been executed in total. A zero budget means no
// limit. Running out of budget is not an error; BudgetExhausted reports it.
func (m *Machine) Run(budget uint64) error {
	m.exhausted = false
	if m.err != nil {
		return m.err
	}
	for !m.Done() {
		if budget > 0 && m.steps >= budget {
			m.exhausted = true
			log.Infof("step budget exhausted, steps:%d, ip:%d", m.steps, m.ip)
			return nil
		}
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Step fetches and executes a single instruction. It is a no-op once the
// machine is Done, and keeps returning the same error after a trap.
func (m *Machine) Step() error {
	if m.err != nil {
		return m.err
	}
	if m.Done() {
		return nil
	}
	m.started = true
	inst, ok := m.program.At(m.ip)
	if !ok {
		return m.fault(IllegalInstructionAccess, Instruction{}, false)
	}
	m.steps++

	if m.trace {
		log.Debugf("ip:%04d op:%-12v depth:%d", m.ip, inst, m.stack.Len())
	}

	// validate stack
	if !inst.op.IsDefined() {
		return m.fault(IllegalInstructionAccess, inst, true)
	}
	operation := stackTable[inst.op]
	if sLen := m.stack.Len(); sLen < operation.minStack {
		return m.fault(StackUnderflow, inst, true)
	} else if sLen > operation.maxStack {
		return m.fault(StackOverflow, inst, true)
	}

	jumped, trap := m.execute(inst)
	if trap != Ok {
		return m.fault(trap, inst, true)
	}
	m.jumped = jumped
	if !jumped {
		m.ip++
	}
	return nil
}

// execute applies inst to the machine. It reports whether inst set the
// instruction pointer itself. The arity table has already been checked, so
// handlers only test operand-dependent conditions and must not mutate the
// stack before those tests pass.
func (m *Machine) execute(inst Instruction) (bool, Trap) {
	st := m.stack
	switch inst.op {
	case PUSH:
		if err := st.Push(inst.arg); err != nil {
			return false, StackOverflow
		}
	case ADD:
		b, a := st.Pop(), st.Pop()
		st.push(a + b)
	case SUB:
		b, a := st.Pop(), st.Pop()
		st.push(a - b)
	case MUL:
		b, a := st.Pop(), st.Pop()
		st.push(a * b)
	case DIV:
		if st.Peek() == 0 {
			return false, DivideByZero
		}
		b, a := st.Pop(), st.Pop()
		st.push(a / b)
	case DUP:
		v, ok := st.Get(inst.arg)
		if !ok {
			return false, IllegalInstructionAccess
		}
		st.push(v)
	case EQ:
		b, a := st.Pop(), st.Pop()
		st.push(common.BoolToWord(a == b))
	case JMP:
		m.ip = inst.arg
		return true, Ok
	case JMPIF:
		cond := st.Pop()
		if cond == 1 {
			m.ip = inst.arg
			return true, Ok
		}
		// not taken: the condition stays where it was
		st.push(cond)
	case HALT:
		m.halted = true
	case DUMPSTACK:
		st.Dump(m.out)
	case PRINTTOP:
		st.Dump(m.out)
		st.Pop()
	default:
		return false, IllegalInstructionAccess
	}
	return false, Ok
}

func (m *Machine) fault(trap Trap, inst Instruction, fetched bool) error {
	log.Debugf("trap %v at ip:%d", trap, m.ip)
	m.err = &ExecError{
		Trap:    trap,
		IP:      m.ip,
		Instr:   inst,
		Fetched: fetched,
		Stack:   m.stack.Data(),
	}
	return m.err
}
