package svm

import (
	"fmt"
	"io"

	"github.com/entropyio/go-svm/common"
	"github.com/entropyio/go-svm/config"
)

// Stack is the operand stack. Its size is always the length of the
// backing slice.
type Stack struct {
	data []common.Word
}

func newstack() *Stack {
	return &Stack{data: make([]common.Word, 0, config.StackCapacity)}
}

// Push places v on top of the stack. It fails with StackOverflow when the
// stack is at capacity and leaves the stack unchanged.
func (st *Stack) Push(v common.Word) error {
	if len(st.data) >= config.StackCapacity {
		return StackOverflow
	}
	st.data = append(st.data, v)
	return nil
}

// push is the unchecked variant used once the arity table has vouched for
// the room.
func (st *Stack) push(v common.Word) {
	st.data = append(st.data, v)
}

// Pop removes and returns the top word. Callers check the depth first.
func (st *Stack) Pop() (ret common.Word) {
	ret = st.data[len(st.data)-1]
	st.data = st.data[:len(st.data)-1]
	return
}

// Peek returns the top word without removing it.
func (st *Stack) Peek() common.Word {
	return st.data[len(st.data)-1]
}

// Get returns the word at offset n from the bottom.
func (st *Stack) Get(n common.Word) (common.Word, bool) {
	if n >= common.Word(len(st.data)) {
		return 0, false
	}
	return st.data[n], true
}

func (st *Stack) Len() int {
	return len(st.data)
}

// Data returns a copy of the stack contents, bottom first.
func (st *Stack) Data() []common.Word {
	return append([]common.Word(nil), st.data...)
}

func (st *Stack) reset() {
	st.data = st.data[:0]
}

// Dump writes the stack contents to w.
func (st *Stack) Dump(w io.Writer) {
	WriteStack(w, st.data)
}

// WriteStack writes words as a stack dump, bottom first:
//
//	Stack:
//	   69
//	   5
//
// An empty stack is written as "Stack: [empty]".
func WriteStack(w io.Writer, words []common.Word) {
	if len(words) == 0 {
		fmt.Fprintln(w, "Stack: [empty]")
		return
	}
	fmt.Fprintln(w, "Stack:")
	for _, v := range words {
		fmt.Fprintf(w, "   %s\n", v)
	}
}
