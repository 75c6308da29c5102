package commands

import (
	"flag"
	"fmt"
	"io"
	"strconv"
)

// RunScale gets or sets a channel's vertical scale. With a positional
// value the scale is set; without one it is queried.
func RunScale(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("scale", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cf := addConnFlags(fs)
	channel := fs.Int("chan", 1, "Channel number")
	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}

	var value float64
	setting := false
	if rest := fs.Args(); len(rest) > 0 {
		v, err := strconv.ParseFloat(rest[0], 64)
		if err != nil {
			fmt.Fprintf(stderr, "Error: invalid scale value %q\n", rest[0])
			return exitCommandError
		}
		value = v
		setting = true
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

	ch, err := s.Channel(*channel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if setting {
		if err := ch.SetScale(value); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitInstrument
		}
		fmt.Fprintf(stdout, "CHAN%d scale set to %g V/div\n", *channel, value)
		return exitSuccess
	}

	v, err := ch.Scale()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitInstrument
	}
	fmt.Fprintf(stdout, "%g\n", v)
	return exitSuccess
}
