package scope

import (
	"fmt"
	"strings"

	"github.com/rigol-scpi/rigol-go/pkg/waveform"
)

// WaveformMode selects which sample record a data request reads.
type WaveformMode string

// Waveform retrieval modes.
const (
	// ModeNormal reads the displayed waveform.
	ModeNormal WaveformMode = "NORM"

	// ModeMaximum reads the displayed waveform while running and the
	// acquisition memory while stopped.
	ModeMaximum WaveformMode = "MAX"

	// ModeRaw reads the full acquisition memory.
	ModeRaw WaveformMode = "RAW"
)

// ParseWaveformMode parses a mode name as found in flags.
func ParseWaveformMode(s string) (WaveformMode, error) {
	switch WaveformMode(strings.ToUpper(strings.TrimSpace(s))) {
	case ModeNormal:
		return ModeNormal, nil
	case ModeMaximum:
		return ModeMaximum, nil
	case ModeRaw:
		return ModeRaw, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
	}
}

// ProgressFunc reports transfer progress as samples retrieved out of the
// declared total. Called once per chunk.
type ProgressFunc func(done, total int)

// Waveform captures this channel's sample record in the given mode.
func (c *Channel) Waveform(mode WaveformMode) (*waveform.Waveform, error) {
	return c.WaveformWithProgress(mode, nil)
}

// WaveformWithProgress captures the sample record, reporting chunk
// progress to the callback. Long records are retrieved in slices of the
// family's maximum transfer size, looping over start/stop offsets until
// the preamble's declared sample count is obtained.
func (c *Channel) WaveformWithProgress(mode WaveformMode, progress ProgressFunc) (*waveform.Waveform, error) {
	switch mode {
	case ModeNormal, ModeMaximum, ModeRaw:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
	}

	s := c.scope

	// Reading acquisition memory requires a stopped scope; stopping is
	// harmless for display reads and matches the instrument manuals.
	if err := s.write("stop"); err != nil {
		return nil, err
	}
	if err := s.write("wav_source_set", c.index); err != nil {
		return nil, err
	}
	if err := s.write("wav_mode_set", string(mode)); err != nil {
		return nil, err
	}
	if err := s.write("wav_format_set"); err != nil {
		return nil, err
	}

	resp, err := s.ask("wav_preamble_query")
	if err != nil {
		return nil, err
	}
	pre, err := waveform.ParsePreamble(resp)
	if err != nil {
		return nil, err
	}

	dataCmd, err := s.vocab.Render("wav_data_query")
	if err != nil {
		return nil, err
	}

	raw := make([]byte, 0, pre.Points)
	maxPts := s.maxReadPoints
	for start := 1; start <= pre.Points; start += maxPts {
		stop := start + maxPts - 1
		if stop > pre.Points {
			stop = pre.Points
		}

		if err := s.write("wav_start_set", start); err != nil {
			return nil, err
		}
		if err := s.write("wav_stop_set", stop); err != nil {
			return nil, err
		}

		chunk, err := s.askBlock(dataCmd)
		if err != nil {
			return nil, err
		}
		if len(chunk) != stop-start+1 {
			return nil, fmt.Errorf("%w: slice %d..%d returned %d samples", ErrShortTransfer, start, stop, len(chunk))
		}

		raw = append(raw, chunk...)
		if progress != nil {
			progress(len(raw), pre.Points)
		}
	}

	if len(raw) != pre.Points {
		return nil, fmt.Errorf("%w: got %d of %d samples", ErrShortTransfer, len(raw), pre.Points)
	}

	return waveform.New(raw, pre), nil
}

// Data captures the sample record and writes it to path as a two-column
// (time, voltage) table.
func (c *Channel) Data(mode WaveformMode, path string) error {
	w, err := c.Waveform(mode)
	if err != nil {
		return err
	}
	return w.WriteFile(path)
}
