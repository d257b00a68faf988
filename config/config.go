package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	StackCapacity   = 1024 // Maximum number of words held by the operand stack
	ProgramCapacity = 1024 // Maximum number of instructions in a program

	DefaultLogLevel = "WARNING"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid vm config")

var logLevels = []string{"CRITICAL", "ERROR", "WARNING", "NOTICE", "INFO", "DEBUG"}

// DefaultVMConfig runs programs to completion without tracing.
var DefaultVMConfig = VMConfig{
	StepBudget: 0,
	Trace:      false,
	LogLevel:   DefaultLogLevel,
}

// VMConfig holds the knobs an external driver may set on a run. The
// capacities are fixed and not part of it.
type VMConfig struct {
	// StepBudget caps the number of executed instructions. Zero means
	// unbounded. Exhausting the budget stops the run without a trap.
	StepBudget uint64 `toml:"step_budget"`

	Trace    bool   `toml:"trace"`     // log every executed instruction at DEBUG
	LogLevel string `toml:"log_level"` // go-logging level name
}

// Validate checks that the config can drive a run.
func (c *VMConfig) Validate() error {
	if c.LogLevel == "" {
		return nil
	}
	for _, lvl := range logLevels {
		if strings.EqualFold(lvl, c.LogLevel) {
			return nil
		}
	}
	return fmt.Errorf("%w: unknown log level %q (want one of %s)",
		ErrInvalidConfig, c.LogLevel, strings.Join(logLevels, ", "))
}

// String implements the fmt.Stringer interface.
func (c *VMConfig) String() string {
	var banner string

	banner += fmt.Sprintf("Stack capacity:   %d words\n", StackCapacity)
	banner += fmt.Sprintf("Program capacity: %d instructions\n", ProgramCapacity)
	if c.StepBudget == 0 {
		banner += "Step budget:      unbounded\n"
	} else {
		banner += fmt.Sprintf("Step budget:      %d\n", c.StepBudget)
	}
	banner += fmt.Sprintf("Trace:            %v\n", c.Trace)
	banner += fmt.Sprintf("Log level:        %s", c.LogLevel)
	return banner
}

// LoadFile reads a TOML file into a copy of DefaultVMConfig. Keys absent
// from the file keep their default values.
func LoadFile(path string) (*VMConfig, error) {
	cfg := DefaultVMConfig
	if err := DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DecodeFile overlays the keys present in a TOML file on cfg. cfg is left
// untouched when an error is returned.
func DecodeFile(path string, cfg *VMConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}

	decoded := *cfg
	md, err := toml.Decode(string(data), &decoded)
	if err != nil {
		return fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q in %s", ErrInvalidConfig, undecoded[0].String(), path)
	}
	if err := decoded.Validate(); err != nil {
		return err
	}
	*cfg = decoded
	return nil
}
