package runtime

import (
	"io"
	"os"

	"github.com/entropyio/go-svm/common"
	"github.com/entropyio/go-svm/config"
	"github.com/entropyio/go-svm/logger"
	"github.com/entropyio/go-svm/svm"
)

var log = logger.NewLogger("[runtime]")

// Config is a basic type specifying certain configuration flags for running
// a program.
type Config struct {
	VMConfig config.VMConfig
	Out      io.Writer // receives stack dumps and the termination report
}

// sets defaults on the config
func setDefaults(cfg *Config) {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.VMConfig.LogLevel == "" {
		cfg.VMConfig.LogLevel = config.DefaultLogLevel
	}
}

// Result summarises a finished run.
type Result struct {
	Hash            common.Hash   // hash of the executed program
	Halted          bool          // HALT was executed
	BudgetExhausted bool          // the step budget stopped the run
	Steps           uint64        // instructions executed
	Trap            svm.Trap      // Ok unless the run faulted
	Stack           []common.Word // operand stack at the end of the run
}

// Failed reports whether the run ended on a trap.
func (r *Result) Failed() bool {
	return r.Trap != svm.Ok
}

// Execute runs program on a fresh machine. It returns the result of the
// run and, when the run trapped, the *svm.ExecError describing the trap.
// The result is nil only when the config is invalid. The config's log
// level is applied to all loggers, and tracing raises it to DEBUG.
func Execute(program *svm.Program, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = new(Config)
	}
	setDefaults(cfg)
	if err := cfg.VMConfig.Validate(); err != nil {
		return nil, err
	}
	level := cfg.VMConfig.LogLevel
	if cfg.VMConfig.Trace {
		level = "DEBUG"
	}
	if err := logger.SetLevel(level); err != nil {
		return nil, err
	}

	vmenv := NewEnv(program, cfg)
	hash := vmenv.Program().Hash()
	log.Debugf("execute program:%x, len:%d, budget:%d", hash[:8], vmenv.Program().Len(), cfg.VMConfig.StepBudget)

	err := vmenv.Run(cfg.VMConfig.StepBudget)
	res := &Result{
		Hash:            hash,
		Halted:          vmenv.Halted(),
		BudgetExhausted: vmenv.BudgetExhausted(),
		Steps:           vmenv.Steps(),
		Stack:           vmenv.Stack(),
	}
	res.Trap, _ = svm.TrapOf(err)
	return res, err
}
