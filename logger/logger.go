// Package logger hands out module loggers sharing one go-logging backend.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/op/go-logging"
)

var (
	colorFormat = logging.MustStringFormatter(
		`%{color}%{time:15:04:05.000} %{module} ▶ %{level:.4s}%{color:reset} %{message}`,
	)
	plainFormat = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`,
	)

	mu      sync.Mutex
	backend logging.LeveledBackend
)

func init() {
	Init(os.Stderr, isTerminal(os.Stderr.Fd()))
}

// Init routes every logger to out. Colour escapes are only emitted when
// color is set. The level is reset to WARNING.
func Init(out io.Writer, color bool) {
	format := plainFormat
	if color {
		format = colorFormat
	}
	mu.Lock()
	defer mu.Unlock()

	formatted := logging.NewBackendFormatter(logging.NewLogBackend(out, "", 0), format)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(logging.WARNING, "")
	logging.SetBackend(backend)
}

// NewLogger returns the logger for module.
func NewLogger(module string) *logging.Logger {
	return logging.MustGetLogger(module)
}

// SetLevel sets the level of all modules from a go-logging level name
// such as "DEBUG" or "warning".
func SetLevel(name string) error {
	lvl, err := logging.LogLevel(name)
	if err != nil {
		return err
	}
	mu.Lock()
	backend.SetLevel(lvl, "")
	mu.Unlock()
	return nil
}
