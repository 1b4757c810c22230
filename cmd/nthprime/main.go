package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Jawbreaker1/nthprime/internal/cli"
	"github.com/Jawbreaker1/nthprime/internal/config"
	"github.com/Jawbreaker1/nthprime/internal/sieve"
)

const version = "0.0.0-dev"

// Exit codes. Invalid input has its own code so scripts can tell it apart
// from a malformed command line (64, EX_USAGE in sysexits).
const (
	exitOK           = 0
	exitFailure      = 1
	exitInvalidInput = 2
	exitUsage        = 64
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var (
		showVersion bool
		verbose     bool
		configPath  string
		profileName string
		strategy    string
		writeConfig string
	)

	logger := log.New(stderr, "", log.LstdFlags)
	fs := flag.NewFlagSet("nthprime", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&showVersion, "version", false, "Print version")
	fs.BoolVar(&verbose, "verbose", false, "Label results and log each sieve attempt")
	fs.StringVar(&configPath, "config", "", "Path to default config JSON")
	fs.StringVar(&profileName, "profile", "", "Profile name under config/profiles/")
	fs.StringVar(&strategy, "strategy", "", "Sieve sizing strategy: multiplier or estimate")
	fs.StringVar(&writeConfig, "write-config", "", "Save the effective config to this path and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if showVersion {
		fmt.Fprintf(stdout, "nthprime %s\n", version)
		return exitOK
	}

	profilePath := ""
	if profileName != "" {
		profilePath = config.ProfilePath(profileName)
	}
	cfg, paths, err := config.Load(configPath, profilePath)
	if err != nil {
		logger.Printf("Config load failed: %v", err)
		return exitFailure
	}
	if strategy != "" {
		cfg.Sieve.Strategy = strategy
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if cfg.Output.Verbose {
		logger.Printf("Loaded config: %v", paths)
	}

	if writeConfig != "" {
		if err := config.Save(writeConfig, cfg); err != nil {
			logger.Printf("Config save failed: %v", err)
			return exitFailure
		}
		if cfg.Output.Verbose {
			logger.Printf("Saved config: %s", writeConfig)
		}
		return exitOK
	}

	runner, err := cli.NewRunner(cfg, stdout, logger.Printf)
	if err != nil {
		logger.Printf("Invalid options: %v", err)
		return exitFailure
	}
	if err := runner.Run(fs.Args()); err != nil {
		logger.Printf("nthprime: %v", err)
		switch {
		case errors.Is(err, sieve.ErrInvalidInput):
			return exitInvalidInput
		case errors.Is(err, cli.ErrNoIndex):
			fs.Usage()
			return exitUsage
		default:
			return exitFailure
		}
	}
	return exitOK
}
