/*
Package svm implements a small stack-based bytecode virtual machine.

A Machine owns one bounded operand stack and one bounded program of
instructions. The interpreter loop fetches the instruction under the
instruction pointer, executes it against the stack and then advances the
pointer, unless the instruction was a taken jump. A run ends when HALT is
executed, when execution falls off the end of the program, when a trap is
raised, or when an external step budget runs out.

Every trap is fatal to the run. Traps are reported as *ExecError values
that wrap the Trap and carry a snapshot of the stack at the fault.
*/
package svm
