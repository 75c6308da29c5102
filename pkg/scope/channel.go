package scope

import (
	"fmt"
	"strings"
)

// Channel is the handle for one analog channel. Its lifetime equals the
// owning Scope's; handles are obtained via Scope.Channel and never
// constructed directly.
type Channel struct {
	index int
	scope *Scope
}

// Index returns the 1-based channel number.
func (c *Channel) Index() int {
	return c.index
}

// Scale queries the vertical scale in volts per division.
func (c *Channel) Scale() (float64, error) {
	return c.scope.askFloat("chan_scale_query", c.index)
}

// SetScale sets the vertical scale in volts per division. Non-positive
// values fail before any transport I/O.
func (c *Channel) SetScale(voltsPerDiv float64) error {
	if voltsPerDiv <= 0 {
		return fmt.Errorf("%w: %g V/div", ErrInvalidScale, voltsPerDiv)
	}
	return c.scope.write("chan_scale_set", c.index, voltsPerDiv)
}

// Offset queries the vertical offset in volts.
func (c *Channel) Offset() (float64, error) {
	return c.scope.askFloat("chan_offset_query", c.index)
}

// SetOffset sets the vertical offset in volts. The instrument accepts
// -1000 V to +1000 V.
func (c *Channel) SetOffset(volts float64) error {
	if volts < -1000 || volts > 1000 {
		return fmt.Errorf("%w: %g V", ErrInvalidOffset, volts)
	}
	return c.scope.write("chan_offset_set", c.index, volts)
}

// Coupling is a channel input coupling.
type Coupling string

// Input couplings.
const (
	CouplingAC  Coupling = "AC"
	CouplingDC  Coupling = "DC"
	CouplingGND Coupling = "GND"
)

// Coupling queries the input coupling.
func (c *Channel) Coupling() (Coupling, error) {
	resp, err := c.scope.ask("chan_coupling_query", c.index)
	if err != nil {
		return "", err
	}
	return Coupling(strings.ToUpper(strings.TrimSpace(resp))), nil
}

// SetCoupling sets the input coupling.
func (c *Channel) SetCoupling(coupling Coupling) error {
	switch coupling {
	case CouplingAC, CouplingDC, CouplingGND:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCoupling, coupling)
	}
	return c.scope.write("chan_coupling_set", c.index, string(coupling))
}

// probeRatios is the fixed set of ratios the instrument accepts.
var probeRatios = map[float64]bool{
	0.01: true, 0.02: true, 0.05: true, 0.1: true, 0.2: true, 0.5: true,
	1: true, 2: true, 5: true, 10: true, 20: true, 50: true,
	100: true, 200: true, 500: true, 1000: true,
}

// ProbeRatio queries the probe attenuation ratio.
func (c *Channel) ProbeRatio() (float64, error) {
	return c.scope.askFloat("chan_probe_query", c.index)
}

// SetProbeRatio sets the probe attenuation ratio. Only the instrument's
// fixed set of ratios (0.01 .. 1000) is accepted.
func (c *Channel) SetProbeRatio(ratio float64) error {
	if !probeRatios[ratio] {
		return fmt.Errorf("%w: %g", ErrInvalidProbeRatio, ratio)
	}
	return c.scope.write("chan_probe_set", c.index, ratio)
}

// Enabled queries whether the channel is displayed.
func (c *Channel) Enabled() (bool, error) {
	return c.scope.askBool("chan_display_query", c.index)
}

// Enable turns the channel display on.
func (c *Channel) Enable() error {
	return c.scope.write("chan_display_set", c.index, 1)
}

// Disable turns the channel display off.
func (c *Channel) Disable() error {
	return c.scope.write("chan_display_set", c.index, 0)
}

// Units is a channel's vertical unit.
type Units string

// Vertical units.
const (
	UnitsVolt    Units = "VOLT"
	UnitsWatt    Units = "WATT"
	UnitsAmp     Units = "AMP"
	UnitsUnknown Units = "UNKN"
)

// Units queries the vertical unit.
func (c *Channel) Units() (Units, error) {
	resp, err := c.scope.ask("chan_units_query", c.index)
	if err != nil {
		return "", err
	}
	return Units(strings.ToUpper(strings.TrimSpace(resp))), nil
}

// SetUnits sets the vertical unit.
func (c *Channel) SetUnits(units Units) error {
	switch units {
	case UnitsVolt, UnitsWatt, UnitsAmp, UnitsUnknown:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidUnits, units)
	}
	return c.scope.write("chan_units_set", c.index, string(units))
}

// MeasureVrms queries the RMS voltage measurement for this channel.
func (c *Channel) MeasureVrms() (float64, error) {
	return c.scope.askFloat("meas_vrms_query", c.index)
}
