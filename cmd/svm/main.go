// svm runs the built-in demonstration programs on the stack machine.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/entropyio/go-svm/config"
	"github.com/entropyio/go-svm/runtime"
	"github.com/entropyio/go-svm/svm"
)

func main() {
	programName := flag.String("program", "arith", "Built-in program to run")
	configPath := flag.String("config", "", "TOML file with step_budget, trace and log_level")
	budget := flag.Uint64("budget", 0, "Maximum number of executed instructions (0 = program default)")
	trace := flag.Bool("trace", false, "Log every executed instruction")
	list := flag.Bool("list", false, "Print the program listing before running it")
	verbose := flag.Bool("v", false, "Verbose output (log level DEBUG)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: svm [options]\n\n")
		fmt.Fprintf(os.Stderr, "Runs one of the built-in programs on the stack machine.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nPrograms:\n")
		for _, name := range fixtureNames() {
			fmt.Fprintf(os.Stderr, "  %-10s %s\n", name, fixtures[name].about)
		}
	}
	flag.Parse()

	fx, ok := fixtures[*programName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown program %q\n\n", *programName)
		flag.Usage()
		os.Exit(2)
	}

	vmcfg, err := buildConfig(fx, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(2)
	}
	// explicit flags win over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "budget":
			vmcfg.StepBudget = *budget
		case "trace":
			vmcfg.Trace = *trace
		case "v":
			if *verbose {
				vmcfg.LogLevel = "DEBUG"
			}
		}
	})

	program, err := svm.NewProgram(fx.code...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building program: %v\n", err)
		os.Exit(2)
	}
	if *list {
		fmt.Print(program)
		fmt.Println()
	}

	res, err := runtime.Execute(program, &runtime.Config{VMConfig: vmcfg, Out: os.Stdout})
	if res != nil && res.BudgetExhausted {
		svm.WriteStack(os.Stdout, res.Stack)
	}
	if !runtime.Report(os.Stdout, res, err) {
		os.Exit(1)
	}
}

// buildConfig seeds the defaults with the fixture's budget, then overlays
// the config file if one is given.
func buildConfig(fx fixture, path string) (config.VMConfig, error) {
	vmcfg := config.DefaultVMConfig
	vmcfg.StepBudget = fx.budget
	if path == "" {
		return vmcfg, nil
	}
	err := config.DecodeFile(path, &vmcfg)
	return vmcfg, err
}
