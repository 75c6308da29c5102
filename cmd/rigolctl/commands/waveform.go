package commands

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/rigol-scpi/rigol-go/pkg/scope"
)

// RunWaveform retrieves waveform samples from a channel and writes them
// as a two-column time,voltage CSV file.
func RunWaveform(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("waveform", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cf := addConnFlags(fs)
	channel := fs.Int("chan", 1, "Channel number")
	modeName := fs.String("mode", "norm", "Retrieval mode (norm, max, raw)")
	output := fs.String("o", "", "Output file (default waveform-chan<N>-<timestamp>.csv)")
	quiet := fs.Bool("q", false, "Suppress the progress bar")
	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}

	mode, err := scope.ParseWaveformMode(*modeName)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	path := *output
	if path == "" {
		path = fmt.Sprintf("waveform-chan%d-%s.csv",
			*channel, time.Now().Format("20060102-150405"))
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

	progress := scope.ProgressFunc(nil)
	if !*quiet {
		var bar *progressbar.ProgressBar
		progress = func(done, total int) {
			if bar == nil {
				bar = progressbar.NewOptions(total,
					progressbar.OptionSetWriter(stderr),
					progressbar.OptionSetDescription(fmt.Sprintf("CHAN%d", *channel)),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
			}
			_ = bar.Set(done)
		}
	}

	w, err := ch.WaveformWithProgress(mode, progress)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitInstrument
	}

	if err := w.WriteFile(path); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	fmt.Fprintf(stdout, "%d samples written to %s\n", len(w.Samples), path)
	return exitSuccess
}
