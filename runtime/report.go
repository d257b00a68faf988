package runtime

import (
	"errors"
	"fmt"
	"io"

	"github.com/entropyio/go-svm/svm"
)

// Report writes the outcome of a run to w. A trapped run prints the trap
// description followed by a stack dump. It returns true when the run
// completed without a trap.
func Report(w io.Writer, res *Result, err error) bool {
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", describe(err))

		var execErr *svm.ExecError
		switch {
		case errors.As(err, &execErr):
			log.Errorf("%v", execErr)
			svm.WriteStack(w, execErr.Stack)
		case res != nil:
			svm.WriteStack(w, res.Stack)
		}
		return false
	}

	fmt.Fprintln(w, "\nProgram executed successfully")
	if res != nil && res.BudgetExhausted {
		fmt.Fprintf(w, "Stopped after %d steps: step budget exhausted\n", res.Steps)
	}
	return true
}

// describe prefers the bare trap description over the wrapped message.
func describe(err error) string {
	if trap, ok := svm.TrapOf(err); ok {
		return trap.Error()
	}
	return err.Error()
}
