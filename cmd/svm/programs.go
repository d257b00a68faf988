package main

import (
	"sort"

	"github.com/entropyio/go-svm/svm"
)

// fixture is a built-in demonstration program.
type fixture struct {
	about  string
	code   []svm.Instruction
	budget uint64 // default step budget, zero for none
}

var fixtures = map[string]fixture{
	"arith": {
		about: "(69 + 5) / 6",
		code:  []svm.Instruction{svm.Push(69), svm.Push(5), svm.Add(), svm.Push(6), svm.Div(), svm.DumpStack()},
	},
	"divzero": {
		about: "5 / 0 traps",
		code:  []svm.Instruction{svm.Push(5), svm.Push(0), svm.Div()},
	},
	"jump": {
		about: "jump over a push, then halt",
		code:  []svm.Instruction{svm.Push(0), svm.Jmp(3), svm.Push(99), svm.Halt(), svm.PrintTop()},
	},
	"dupbounds": {
		about: "duplicate past the top of the stack",
		code:  []svm.Instruction{svm.Push(10), svm.Dup(5)},
	},
	"countdown": {
		about: "count 10 down to 0 with EQ and JMPIF",
		code: []svm.Instruction{
			svm.Push(10),
			svm.Push(1),
			svm.Sub(),
			svm.Dup(0),
			svm.Push(0),
			svm.Eq(),
			svm.JmpIf(9),
			svm.Add(),
			svm.Jmp(1),
			svm.Halt(),
		},
	},
	"fib": {
		about:  "endless accumulation loop, stopped by the step budget",
		code:   []svm.Instruction{svm.Push(0), svm.Push(1), svm.Dup(1), svm.Dup(0), svm.Add(), svm.Jmp(2)},
		budget: 64,
	},
}

func fixtureNames() []string {
	names := make([]string, 0, len(fixtures))
	for name := range fixtures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
