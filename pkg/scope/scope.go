package scope

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/rigol-scpi/rigol-go/pkg/log"
	"github.com/rigol-scpi/rigol-go/pkg/scpi"
	"github.com/rigol-scpi/rigol-go/pkg/transport"
	"github.com/rigol-scpi/rigol-go/pkg/vocab"
)

// Scope represents one oscilloscope behind an open transport session.
type Scope struct {
	t       transport.Transport
	br      *bufio.Reader
	vocab   *vocab.Set
	logger  log.Logger
	session string

	channels      []*Channel
	trigger       *Trigger
	timebase      *Timebase
	maxReadPoints int
}

// Option configures a Scope at construction.
type Option func(*Scope)

// WithLogger attaches a session capture logger.
func WithLogger(l log.Logger) Option {
	return func(s *Scope) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMaxReadPoints overrides the family's waveform transfer chunk size.
// Smaller chunks trade throughput for more frequent progress updates.
func WithMaxReadPoints(n int) Option {
	return func(s *Scope) {
		if n > 0 {
			s.maxReadPoints = n
		}
	}
}

// New creates a Scope over an already-open transport. The command
// vocabulary for the family is loaded and validated up front; channel
// handles are constructed eagerly, one per analog channel.
func New(t transport.Transport, family vocab.Family, opts ...Option) (*Scope, error) {
	set, err := vocab.Load(family)
	if err != nil {
		return nil, err
	}

	s := &Scope{
		t:             t,
		br:            bufio.NewReaderSize(t, responseBufSize),
		vocab:         set,
		logger:        log.NoopLogger{},
		session:       uuid.NewString(),
		maxReadPoints: set.MaxReadPoints,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.channels = make([]*Channel, set.Channels)
	for i := range s.channels {
		s.channels[i] = &Channel{index: i + 1, scope: s}
	}
	s.trigger = &Trigger{scope: s}
	s.timebase = &Timebase{scope: s}

	return s, nil
}

// Family returns the instrument family this scope speaks.
func (s *Scope) Family() vocab.Family {
	return s.vocab.Family
}

// SessionID returns the capture-log session identifier.
func (s *Scope) SessionID() string {
	return s.session
}

// NumChannels returns the number of analog channels.
func (s *Scope) NumChannels() int {
	return len(s.channels)
}

// Channel returns the handle for channel n (1-based). An out-of-range
// index fails before any transport I/O.
func (s *Scope) Channel(n int) (*Channel, error) {
	if n < 1 || n > len(s.channels) {
		return nil, fmt.Errorf("%w: %d (valid: 1..%d)", ErrInvalidChannel, n, len(s.channels))
	}
	return s.channels[n-1], nil
}

// Trigger returns the trigger subsystem handle.
func (s *Scope) Trigger() *Trigger {
	return s.trigger
}

// Timebase returns the timebase subsystem handle.
func (s *Scope) Timebase() *Timebase {
	return s.timebase
}

// ID queries the instrument identity string (*IDN?).
func (s *Scope) ID() (string, error) {
	return s.ask("idn")
}

// Run starts acquisition.
func (s *Scope) Run() error {
	return s.write("run")
}

// Stop stops acquisition.
func (s *Scope) Stop() error {
	return s.write("stop")
}

// Reset restores the instrument to factory defaults (*RST).
func (s *Scope) Reset() error {
	return s.write("reset")
}

// Autoscale adjusts vertical, horizontal and trigger settings to the
// applied signals.
func (s *Scope) Autoscale() error {
	return s.write("autoscale")
}

// Clear clears all waveforms on the display.
func (s *Scope) Clear() error {
	return s.write("clear")
}

// SamplingRate queries the current sample rate in Sa/s.
func (s *Scope) SamplingRate() (float64, error) {
	return s.askFloat("acq_srate_query")
}

// MemoryDepth queries the memory depth. The instrument answers either a
// point count or "AUTO"; auto is true in the latter case.
func (s *Scope) MemoryDepth() (points int, auto bool, err error) {
	resp, err := s.ask("acq_mdepth_query")
	if err != nil {
		return 0, false, err
	}
	if strings.EqualFold(strings.TrimSpace(resp), "AUTO") {
		return 0, true, nil
	}
	points, err = scpi.ParseInt(resp)
	return points, false, err
}

// SetMemoryDepth sets the memory depth in points.
func (s *Scope) SetMemoryDepth(points int) error {
	if points < 1 {
		return fmt.Errorf("invalid memory depth: %d points", points)
	}
	return s.write("acq_mdepth_set", points)
}

// Averaging queries the acquisition average count.
func (s *Scope) Averaging() (int, error) {
	resp, err := s.ask("acq_average_query")
	if err != nil {
		return 0, err
	}
	return scpi.ParseInt(resp)
}

// SetAveraging sets the acquisition average count. The instrument only
// accepts powers of two from 2 to 1024.
func (s *Scope) SetAveraging(count int) error {
	if count < 2 || count > 1024 || count&(count-1) != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAveraging, count)
	}
	return s.write("acq_average_set", count)
}

// AcqType is an acquisition mode.
type AcqType string

// Acquisition modes.
const (
	AcqNormal         AcqType = "NORM"
	AcqAverages       AcqType = "AVER"
	AcqPeak           AcqType = "PEAK"
	AcqHighResolution AcqType = "HRES"
)

// AcquisitionType queries the current acquisition mode.
func (s *Scope) AcquisitionType() (AcqType, error) {
	resp, err := s.ask("acq_type_query")
	if err != nil {
		return "", err
	}
	return AcqType(strings.ToUpper(strings.TrimSpace(resp))), nil
}

// SetAcquisitionType selects the acquisition mode.
func (s *Scope) SetAcquisitionType(t AcqType) error {
	switch t {
	case AcqNormal, AcqAverages, AcqPeak, AcqHighResolution:
	default:
		return fmt.Errorf("invalid acquisition type %q", t)
	}
	return s.write("acq_type_set", string(t))
}

// Close closes the transport session. Channel handles become invalid.
func (s *Scope) Close() error {
	return s.t.Close()
}
