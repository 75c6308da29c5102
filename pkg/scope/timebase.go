package scope

import (
	"fmt"
	"strings"
)

// Timebase is the handle for the horizontal subsystem.
type Timebase struct {
	scope *Scope
}

// Timebase scale limits in seconds per division.
const (
	minTimebaseScale = 50e-9
	maxTimebaseScale = 50
)

// Scale queries the timebase scale in seconds per division.
func (t *Timebase) Scale() (float64, error) {
	return t.scope.askFloat("tim_scale_query")
}

// SetScale sets the timebase scale in seconds per division.
func (t *Timebase) SetScale(secondsPerDiv float64) error {
	if secondsPerDiv < minTimebaseScale || secondsPerDiv > maxTimebaseScale {
		return fmt.Errorf("%w: %g s/div", ErrInvalidTimebase, secondsPerDiv)
	}
	return t.scope.write("tim_scale_set", secondsPerDiv)
}

// TimebaseMode is a horizontal display mode.
type TimebaseMode string

// Timebase modes.
const (
	TimebaseMain TimebaseMode = "MAIN"
	TimebaseXY   TimebaseMode = "XY"
	TimebaseRoll TimebaseMode = "ROLL"
)

// Mode queries the timebase mode.
func (t *Timebase) Mode() (TimebaseMode, error) {
	resp, err := t.scope.ask("tim_mode_query")
	if err != nil {
		return "", err
	}
	return TimebaseMode(strings.ToUpper(strings.TrimSpace(resp))), nil
}

// SetMode sets the timebase mode.
func (t *Timebase) SetMode(mode TimebaseMode) error {
	switch mode {
	case TimebaseMain, TimebaseXY, TimebaseRoll:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTimebaseMode, mode)
	}
	return t.scope.write("tim_mode_set", string(mode))
}

// Offset queries the timebase offset in seconds.
func (t *Timebase) Offset() (float64, error) {
	return t.scope.askFloat("tim_offset_query")
}

// SetOffset sets the timebase offset in seconds.
func (t *Timebase) SetOffset(seconds float64) error {
	return t.scope.write("tim_offset_set", seconds)
}
