package svm

import "fmt"

// OpCode is an instruction opcode.
type OpCode byte

const (
	PUSH OpCode = iota
	ADD
	SUB
	MUL
	DIV
	DUP
	EQ
	JMP
	JMPIF
	HALT
	DUMPSTACK
	PRINTTOP
)

var opCodeToString = map[OpCode]string{
	PUSH:      "PUSH",
	ADD:       "ADD",
	SUB:       "SUB",
	MUL:       "MUL",
	DIV:       "DIV",
	DUP:       "DUP",
	EQ:        "EQ",
	JMP:       "JMP",
	JMPIF:     "JMPIF",
	HALT:      "HALT",
	DUMPSTACK: "DUMPSTACK",
	PRINTTOP:  "PRINTTOP",
}

func (op OpCode) String() string {
	str := opCodeToString[op]
	if len(str) == 0 {
		return fmt.Sprintf("opcode 0x%x not defined", int(op))
	}
	return str
}

// IsDefined reports whether op is part of the instruction set.
func (op OpCode) IsDefined() bool {
	return op <= PRINTTOP
}

// HasArgument reports whether the operand of op is meaningful.
func (op OpCode) HasArgument() bool {
	switch op {
	case PUSH, DUP, JMP, JMPIF:
		return true
	}
	return false
}
