package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordBytes(t *testing.T) {
	w := Word(0x0102030405060708)
	b := w.Bytes()
	assert.Equal(t, [WordLength]byte{1, 2, 3, 4, 5, 6, 7, 8}, b)
	assert.Equal(t, w, BytesToWord(b[:]))
}

func TestBytesToWordPadding(t *testing.T) {
	assert.Equal(t, Word(0x0102), BytesToWord([]byte{1, 2}))
	assert.Equal(t, Word(0), BytesToWord(nil))
	// only the low eight bytes survive
	assert.Equal(t, Word(0x0203040506070809), BytesToWord([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9}))
}

func TestWordString(t *testing.T) {
	assert.Equal(t, "12", Word(12).String())
	assert.Equal(t, "18446744073709551615", (^Word(0)).String())
}

func TestBoolToWord(t *testing.T) {
	assert.Equal(t, Word(1), BoolToWord(true))
	assert.Equal(t, Word(0), BoolToWord(false))
}

func TestBytesToHash(t *testing.T) {
	h := BytesToHash([]byte{0xab})
	assert.Equal(t, byte(0xab), h[HashLength-1])
	assert.Equal(t, "0x00000000000000000000000000000000000000000000000000000000000000ab", h.Hex())
}
