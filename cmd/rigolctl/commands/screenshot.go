package commands

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/rigol-scpi/rigol-go/pkg/scope"
)

// RunScreenshot captures the instrument display to an image file.
func RunScreenshot(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("screenshot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cf := addConnFlags(fs)
	formatName := fs.String("format", "png", "Image format (png, bmp8, bmp24, jpeg, tiff)")
	output := fs.String("o", "", "Output file (default screenshot-<timestamp>.<format>)")
	if err := fs.Parse(args); err != nil {
		return exitCommandError
	}

	format, err := scope.ParseImageFormat(*formatName)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	path := *output
	if path == "" {
		path = fmt.Sprintf("screenshot-%s.%s",
			time.Now().Format("20060102-150405"), format)
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

	if err := s.Screenshot(path, format); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitInstrument
	}

	fmt.Fprintf(stdout, "Screenshot saved to %s\n", path)
	return exitSuccess
}
