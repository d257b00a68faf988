package common

import (
	"encoding/binary"
	"strconv"
)

// WordLength is the encoded size of a Word in bytes.
const WordLength = 8

// Word is the only value type known to the machine: one unsigned machine
// word. Arithmetic on words wraps modulo 2^64.
type Word uint64

// BoolToWord maps true to 1 and false to 0.
func BoolToWord(b bool) Word {
	if b {
		return 1
	}
	return 0
}

// Bytes returns the big endian encoding of w.
func (w Word) Bytes() [WordLength]byte {
	var b [WordLength]byte
	binary.BigEndian.PutUint64(b[:], uint64(w))
	return b
}

// BytesToWord decodes a big endian word. Short input is left padded with zeros.
func BytesToWord(b []byte) Word {
	if len(b) > WordLength {
		b = b[len(b)-WordLength:]
	}
	var buf [WordLength]byte
	copy(buf[WordLength-len(b):], b)
	return Word(binary.BigEndian.Uint64(buf[:]))
}

// String renders the word in decimal.
func (w Word) String() string {
	return strconv.FormatUint(uint64(w), 10)
}
