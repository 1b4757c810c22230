package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/Jawbreaker1/nthprime/internal/config"
	"github.com/Jawbreaker1/nthprime/internal/sieve"
)

var ErrNoIndex = errors.New("no index given")

type Runner struct {
	Finder  sieve.Finder
	Verbose bool
	out     *consoleWriter
}

// NewRunner builds a runner from cfg. logf receives sieve attempts when
// output is verbose; nil keeps the finder quiet.
func NewRunner(cfg config.Config, out io.Writer, logf func(format string, args ...any)) (*Runner, error) {
	strategy, err := cfg.Strategy()
	if err != nil {
		return nil, err
	}
	r := &Runner{
		Finder:  sieve.Finder{Strategy: strategy},
		Verbose: cfg.Output.Verbose,
		out:     newConsoleWriter(out),
	}
	if r.Verbose {
		r.Finder.Logf = logf
	}
	return r, nil
}

// Run resolves each argument in order and stops at the first invalid one.
func (r *Runner) Run(args []string) error {
	if len(args) == 0 {
		return ErrNoIndex
	}
	for _, arg := range args {
		n, err := sieve.ParseIndex(arg)
		if err != nil {
			return err
		}
		prime, err := r.Finder.Nth(n)
		if err != nil {
			return err
		}
		if err := r.out.WriteString(r.format(n, prime)); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	return nil
}

func (r *Runner) format(n, prime int) string {
	if r.Verbose {
		return fmt.Sprintf("prime[%d] = %d\n", n, prime)
	}
	return fmt.Sprintf("%d\n", prime)
}
