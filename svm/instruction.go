package svm

import (
	"fmt"

	"github.com/entropyio/go-svm/common"
)

// Instruction is an opcode and its single operand. The zero operand is
// used by opcodes that take none. Instructions are values and cannot be
// changed once built.
type Instruction struct {
	op  OpCode
	arg common.Word
}

// NewInstruction builds an instruction from its parts.
func NewInstruction(op OpCode, arg common.Word) Instruction {
	return Instruction{op: op, arg: arg}
}

func (i Instruction) Op() OpCode       { return i.op }
func (i Instruction) Arg() common.Word { return i.arg }

func (i Instruction) String() string {
	if i.op.HasArgument() {
		return fmt.Sprintf("%v %d", i.op, i.arg)
	}
	return i.op.String()
}

func Push(v common.Word) Instruction       { return Instruction{op: PUSH, arg: v} }
func Add() Instruction                     { return Instruction{op: ADD} }
func Sub() Instruction                     { return Instruction{op: SUB} }
func Mul() Instruction                     { return Instruction{op: MUL} }
func Div() Instruction                     { return Instruction{op: DIV} }
func Dup(n common.Word) Instruction        { return Instruction{op: DUP, arg: n} }
func Eq() Instruction                      { return Instruction{op: EQ} }
func Jmp(target common.Word) Instruction   { return Instruction{op: JMP, arg: target} }
func JmpIf(target common.Word) Instruction { return Instruction{op: JMPIF, arg: target} }
func Halt() Instruction                    { return Instruction{op: HALT} }
func DumpStack() Instruction               { return Instruction{op: DUMPSTACK} }
func PrintTop() Instruction                { return Instruction{op: PRINTTOP} }
