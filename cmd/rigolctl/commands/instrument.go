package commands

import (
	"flag"
	"fmt"
	"io"
)

// RunIDN queries and prints the instrument identity string.
func RunIDN(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("idn", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cf := addConnFlags(fs)
	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}

	cfg, err := cf.resolve()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	s, cleanup, err := openScope(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	defer cleanup()

	id, err := s.ID()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitInstrument
	}

	fmt.Fprintln(stdout, id)
	return exitSuccess
}

// RunControl runs one of the argument-free instrument commands: run,
// stop, autoscale, reset, clear.
func RunControl(action string, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(action, flag.ContinueOnError)
	fs.SetOutput(stderr)
	cf := addConnFlags(fs)
	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}

	cfg, err := cf.resolve()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	s, cleanup, err := openScope(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}
	defer cleanup()

	switch action {
	case "run":
		err = s.Run()
	case "stop":
		err = s.Stop()
	case "autoscale":
		err = s.Autoscale()
	case "reset":
		err = s.Reset()
	case "clear":
		err = s.Clear()
	default:
		fmt.Fprintf(stderr, "Error: unknown control action %q\n", action)
		return exitCommandError
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitInstrument
	}

	fmt.Fprintf(stdout, "OK: %s\n", action)
	return exitSuccess
}
