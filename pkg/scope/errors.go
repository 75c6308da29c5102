package scope

import "errors"

// Validation and protocol errors. Validation errors are returned before
// any transport I/O is attempted.
var (
	// ErrInvalidChannel indicates a channel index outside 1..N.
	ErrInvalidChannel = errors.New("channel index out of range")

	// ErrInvalidScale indicates a non-positive volts-per-division value.
	ErrInvalidScale = errors.New("vertical scale must be positive")

	// ErrInvalidOffset indicates a vertical offset outside the
	// instrument's accepted range.
	ErrInvalidOffset = errors.New("vertical offset out of range")

	// ErrInvalidCoupling indicates a coupling other than AC, DC or GND.
	ErrInvalidCoupling = errors.New("invalid coupling")

	// ErrInvalidProbeRatio indicates a probe ratio the instrument does
	// not accept.
	ErrInvalidProbeRatio = errors.New("invalid probe ratio")

	// ErrInvalidUnits indicates an unknown vertical unit.
	ErrInvalidUnits = errors.New("invalid channel units")

	// ErrInvalidAveraging indicates an average count that is not a power
	// of two in 2..1024.
	ErrInvalidAveraging = errors.New("average count must be a power of two in 2..1024")

	// ErrInvalidTimebase indicates a timebase scale outside the
	// instrument's accepted range.
	ErrInvalidTimebase = errors.New("timebase scale out of range")

	// ErrInvalidTimebaseMode indicates a timebase mode other than main,
	// xy or roll.
	ErrInvalidTimebaseMode = errors.New("invalid timebase mode")

	// ErrUnsupportedMode indicates an unknown waveform retrieval mode.
	ErrUnsupportedMode = errors.New("unsupported waveform mode")

	// ErrUnsupportedFormat indicates a screenshot format the family does
	// not provide.
	ErrUnsupportedFormat = errors.New("unsupported screenshot format")

	// ErrShortTransfer indicates the instrument delivered fewer samples
	// than the preamble declared.
	ErrShortTransfer = errors.New("waveform transfer incomplete")
)
