package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "svm.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "empty", level: ""},
		{name: "default", level: DefaultLogLevel},
		{name: "lower case", level: "debug"},
		{name: "unknown", level: "LOUD", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := VMConfig{LogLevel: tt.level}
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "step_budget = 120\ntrace = true\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(120), cfg.StepBudget)
	assert.True(t, cfg.Trace)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)

	// the package default must not be touched by loading
	assert.Equal(t, uint64(0), DefaultVMConfig.StepBudget)
}

func TestLoadFileErrors(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = LoadFile(writeConfig(t, "step_budget = \n"))
	assert.Error(t, err)

	_, err = LoadFile(writeConfig(t, "stack_capacity = 9\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadFile(writeConfig(t, "log_level = \"chatty\"\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestString(t *testing.T) {
	cfg := DefaultVMConfig
	assert.Contains(t, cfg.String(), "Step budget:      unbounded")

	cfg.StepBudget = 7
	assert.Contains(t, cfg.String(), "Step budget:      7")
}

func TestDecodeFileOverlays(t *testing.T) {
	cfg := VMConfig{StepBudget: 64, LogLevel: DefaultLogLevel}
	require.NoError(t, DecodeFile(writeConfig(t, "trace = true\n"), &cfg))
	assert.Equal(t, uint64(64), cfg.StepBudget)
	assert.True(t, cfg.Trace)

	require.NoError(t, DecodeFile(writeConfig(t, "step_budget = 8\n"), &cfg))
	assert.Equal(t, uint64(8), cfg.StepBudget)

	// a rejected file leaves the config as it was
	err := DecodeFile(writeConfig(t, "step_budget = 1\nlog_level = \"chatty\"\n"), &cfg)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, uint64(8), cfg.StepBudget)
}
