package svm

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/entropyio/go-svm/common"
	"github.com/entropyio/go-svm/config"
	"golang.org/x/crypto/sha3"
)

var (
	// ErrProgramFull is returned when appending to a program that already
	// holds config.ProgramCapacity instructions.
	ErrProgramFull = errors.New("svm: program store is full")

	// ErrProgramSealed is returned when appending to a machine that has
	// started executing.
	ErrProgramSealed = errors.New("svm: program is read-only once execution starts")
)

// instructionLength is the encoded size of one instruction.
const instructionLength = 1 + common.WordLength

// Program is an ordered, bounded sequence of instructions. It only grows
// by Append.
type Program struct {
	code []Instruction
}

// NewProgram builds a program from insts.
func NewProgram(insts ...Instruction) (*Program, error) {
	p := new(Program)
	for _, inst := range insts {
		if err := p.Append(inst); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Append adds inst at the end of the program.
func (p *Program) Append(inst Instruction) error {
	if len(p.code) >= config.ProgramCapacity {
		return ErrProgramFull
	}
	p.code = append(p.code, inst)
	return nil
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	return len(p.code)
}

// At fetches the instruction at ip. It reports false when ip is outside
// the program.
func (p *Program) At(ip common.Word) (Instruction, bool) {
	if ip >= common.Word(len(p.code)) {
		return Instruction{}, false
	}
	return p.code[ip], true
}

// Instructions returns a copy of the program text.
func (p *Program) Instructions() []Instruction {
	return append([]Instruction(nil), p.code...)
}

func (p *Program) clone() *Program {
	if p == nil {
		return new(Program)
	}
	return &Program{code: p.Instructions()}
}

// Encode serialises the program as fixed width records: one opcode byte
// followed by the big endian operand.
func (p *Program) Encode() []byte {
	buf := make([]byte, 0, len(p.code)*instructionLength)
	for _, inst := range p.code {
		arg := inst.arg.Bytes()
		buf = append(buf, byte(inst.op))
		buf = append(buf, arg[:]...)
	}
	return buf
}

// Hash returns the Keccak256 hash of the encoded program.
func (p *Program) Hash() common.Hash {
	w := sha3.NewLegacyKeccak256()
	w.Write(p.Encode())
	return common.BytesToHash(w.Sum(nil))
}

// String returns a listing with one instruction per line.
func (p *Program) String() string {
	var buffer bytes.Buffer
	for i, inst := range p.code {
		buffer.WriteString(fmt.Sprintf("0x%04x: %v\n", i, inst))
	}
	return buffer.String()
}
