//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd
// +build !linux,!darwin,!freebsd,!netbsd,!openbsd

package logger

func isTerminal(fd uintptr) bool {
	return false
}
