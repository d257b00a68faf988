package svm

import (
	"github.com/entropyio/go-svm/config"
)

// operation holds the stack depth bounds an opcode needs before it runs.
type operation struct {
	minStack int
	maxStack int
}

var stackTable = [...]operation{
	PUSH:      {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
	ADD:       {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
	SUB:       {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
	MUL:       {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
	DIV:       {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
	DUP:       {minStack: minDupStack(1), maxStack: maxDupStack(1)},
	EQ:        {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
	JMP:       {minStack: minStack(0, 0), maxStack: maxStack(0, 0)},
	JMPIF:     {minStack: minStack(1, 0), maxStack: maxStack(1, 0)},
	HALT:      {minStack: minStack(0, 0), maxStack: maxStack(0, 0)},
	DUMPSTACK: {minStack: minStack(0, 0), maxStack: maxStack(0, 0)},
	PRINTTOP:  {minStack: minStack(1, 0), maxStack: maxStack(1, 0)},
}

// DUP reads one word and leaves it plus its copy.
func minDupStack(n int) int {
	return minStack(n, n+1)
}
func maxDupStack(n int) int {
	return maxStack(n, n+1)
}

func maxStack(pop, push int) int {
	return int(config.StackCapacity) + pop - push
}
func minStack(pops, _ int) int {
	return pops
}
