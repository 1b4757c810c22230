package cli

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/Jawbreaker1/nthprime/internal/config"
	"github.com/Jawbreaker1/nthprime/internal/sieve"
)

func TestRunPrintsOnePrimePerLine(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRunner(config.Config{}, &buf, nil)
	if err != nil {
		t.Fatalf("NewRunner error: %v", err)
	}
	if err := r.Run([]string{"0", "19", "99"}); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if got, want := buf.String(), "2\n71\n541\n"; got != want {
		t.Fatalf("output mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestRunVerboseFormat(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRunner(config.Config{}, &buf, nil)
	if err != nil {
		t.Fatalf("NewRunner error: %v", err)
	}
	r.Verbose = true
	r.Finder.Strategy = sieve.StrategyEstimate
	if err := r.Run([]string{"986"}); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if got, want := buf.String(), "prime[986] = 7793\n"; got != want {
		t.Fatalf("output mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestRunStopsAtInvalidIndex(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRunner(config.Config{}, &buf, nil)
	if err != nil {
		t.Fatalf("NewRunner error: %v", err)
	}
	err = r.Run([]string{"2", "1.5", "3"})
	if !errors.Is(err, sieve.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err.Error() != "Invalid input: 1.5 is not a whole number." {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if buf.String() != "5\n" {
		t.Fatalf("expected only the first result, got %q", buf.String())
	}
}

func TestRunRequiresIndex(t *testing.T) {
	r, err := NewRunner(config.Config{}, nil, nil)
	if err != nil {
		t.Fatalf("NewRunner error: %v", err)
	}
	if err := r.Run(nil); !errors.Is(err, ErrNoIndex) {
		t.Fatalf("expected ErrNoIndex, got %v", err)
	}
}

func TestNewRunnerRejectsUnknownStrategy(t *testing.T) {
	var cfg config.Config
	cfg.Sieve.Strategy = "guess"
	if _, err := NewRunner(cfg, nil, nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewRunnerWiresLoggerOnlyWhenVerbose(t *testing.T) {
	var lines []string
	logf := func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}

	quiet, err := NewRunner(config.Config{}, nil, logf)
	if err != nil {
		t.Fatalf("NewRunner error: %v", err)
	}
	if err := quiet.Run([]string{"5"}); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no log lines, got %v", lines)
	}

	var cfg config.Config
	cfg.Output.Verbose = true
	var buf bytes.Buffer
	loud, err := NewRunner(cfg, &buf, logf)
	if err != nil {
		t.Fatalf("NewRunner error: %v", err)
	}
	if err := loud.Run([]string{"5"}); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if len(lines) == 0 {
		t.Fatal("expected sieve attempts to be logged")
	}
	if buf.String() != "prime[5] = 13\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
