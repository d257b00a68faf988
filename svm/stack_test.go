package svm

import (
	"bytes"
	"testing"

	"github.com/entropyio/go-svm/common"
	"github.com/entropyio/go-svm/config"
	"github.com/stretchr/testify/assert"
)

func TestStackFunctional(t *testing.T) {
	s := newstack()
	vals := []common.Word{0, 2, 4}
	for i, v := range vals {
		assert.NoError(t, s.Push(v))
		assert.Equal(t, i+1, s.Len())
	}
	assert.Equal(t, common.Word(4), s.Peek())

	// pop all
	for i := range vals {
		l := s.Len()
		assert.Equal(t, len(vals)-i, l)
		assert.Equal(t, vals[l-1], s.Pop())
	}
	assert.Equal(t, 0, s.Len())

	// reuse
	assert.NoError(t, s.Push(9))
	assert.Equal(t, []common.Word{9}, s.Data())
}

func TestStackOverflow(t *testing.T) {
	s := newstack()
	for i := 0; i < config.StackCapacity; i++ {
		assert.NoError(t, s.Push(common.Word(i)))
	}
	assert.Equal(t, StackOverflow, s.Push(1))
	assert.Equal(t, config.StackCapacity, s.Len())
	assert.Equal(t, common.Word(config.StackCapacity-1), s.Peek())
}

func TestStackGet(t *testing.T) {
	s := newstack()
	s.push(10)
	s.push(20)

	tests := []struct {
		name   string
		n      common.Word
		want   common.Word
		wantOk bool
	}{
		{name: "bottom", n: 0, want: 10, wantOk: true},
		{name: "top", n: 1, want: 20, wantOk: true},
		{name: "one past top", n: 2},
		{name: "far out", n: ^common.Word(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.Get(tt.n)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStackDataIsCopy(t *testing.T) {
	s := newstack()
	s.push(1)
	data := s.Data()
	data[0] = 42
	assert.Equal(t, common.Word(1), s.Peek())
}

func TestWriteStack(t *testing.T) {
	tests := []struct {
		name  string
		words []common.Word
		want  string
	}{
		{name: "empty", want: "Stack: [empty]\n"},
		{name: "one", words: []common.Word{12}, want: "Stack:\n   12\n"},
		{name: "bottom first", words: []common.Word{69, 5}, want: "Stack:\n   69\n   5\n"},
		{name: "max word", words: []common.Word{^common.Word(0)}, want: "Stack:\n   18446744073709551615\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			WriteStack(&buf, tt.words)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestStackTableBounds(t *testing.T) {
	assert.Equal(t, config.StackCapacity-1, stackTable[PUSH].maxStack)
	assert.Equal(t, 2, stackTable[ADD].minStack)
	assert.Equal(t, 1, stackTable[DUP].minStack)
	assert.Equal(t, config.StackCapacity-1, stackTable[DUP].maxStack)
	assert.Equal(t, 1, stackTable[JMPIF].minStack)
	assert.Equal(t, 0, stackTable[HALT].minStack)
	assert.Len(t, stackTable, int(PRINTTOP)+1)
}
