package runtime

import (
	"github.com/entropyio/go-svm/svm"
)

func NewEnv(program *svm.Program, cfg *Config) *svm.Machine {
	return svm.NewMachine(program,
		svm.WithOutput(cfg.Out),
		svm.WithTrace(cfg.VMConfig.Trace),
	)
}
