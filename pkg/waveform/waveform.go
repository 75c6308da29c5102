package waveform

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Waveform is one captured sample set with its scaling metadata.
type Waveform struct {
	// Preamble is the scaling metadata the samples were decoded with.
	Preamble Preamble

	// Samples holds the decoded voltages, one per raw code.
	Samples []float64
}

// Decode converts raw 8-bit sample codes to volts:
//
//	v = (code - yreference) * yincrement + yorigin
func Decode(raw []byte, pre Preamble) []float64 {
	samples := make([]float64, len(raw))
	for i, code := range raw {
		samples[i] = (float64(code)-pre.YReference)*pre.YIncrement + pre.YOrigin
	}
	return samples
}

// New decodes raw sample codes into a Waveform.
func New(raw []byte, pre Preamble) *Waveform {
	return &Waveform{Preamble: pre, Samples: Decode(raw, pre)}
}

// TimeAxis returns the sample times in seconds.
func (w *Waveform) TimeAxis() []float64 {
	t := make([]float64, len(w.Samples))
	for i := range t {
		t[i] = w.Preamble.Time(i)
	}
	return t
}

// WriteTable writes the waveform as a two-column (time, voltage) CSV, one
// sample per row.
func (w *Waveform) WriteTable(out io.Writer) error {
	bw := bufio.NewWriter(out)
	for i, v := range w.Samples {
		if _, err := fmt.Fprintf(bw, "%.9e,%.6e\n", w.Preamble.Time(i), v); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the two-column table to path, replacing any existing
// file.
func (w *Waveform) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := w.WriteTable(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
