package waveform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// preambleFields is the field count of the waveform preamble response.
const preambleFields = 10

// ErrBadPreamble indicates the preamble response could not be parsed.
var ErrBadPreamble = errors.New("malformed waveform preamble")

// Preamble describes how to interpret a waveform data payload. Fields
// mirror the instrument's comma-separated preamble response:
//
//	<format>,<type>,<points>,<count>,<xinc>,<xorig>,<xref>,<yinc>,<yorig>,<yref>
type Preamble struct {
	// Format is the data format (0 = BYTE, 1 = WORD, 2 = ASCII).
	Format int

	// Type is the acquisition type the data came from.
	Type int

	// Points is the number of samples the instrument will transfer.
	Points int

	// Count is the number of averages for averaged acquisitions.
	Count int

	// XIncrement is the time between samples in seconds.
	XIncrement float64

	// XOrigin is the time of the first sample relative to the trigger.
	XOrigin float64

	// XReference is the reference sample index for the time axis.
	XReference float64

	// YIncrement is the voltage per raw code step.
	YIncrement float64

	// YOrigin is the voltage offset added after scaling.
	YOrigin float64

	// YReference is the raw code corresponding to zero volts.
	YReference float64
}

// ParsePreamble parses the comma-separated preamble response.
func ParsePreamble(resp string) (Preamble, error) {
	fields := strings.Split(strings.TrimSpace(resp), ",")
	if len(fields) != preambleFields {
		return Preamble{}, fmt.Errorf("%w: %d fields, want %d", ErrBadPreamble, len(fields), preambleFields)
	}

	ints := make([]int, 4)
	for i := range ints {
		v, err := strconv.Atoi(strings.TrimSpace(fields[i]))
		if err != nil {
			return Preamble{}, fmt.Errorf("%w: field %d: %q", ErrBadPreamble, i, fields[i])
		}
		ints[i] = v
	}

	floats := make([]float64, 6)
	for i := range floats {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[4+i]), 64)
		if err != nil {
			return Preamble{}, fmt.Errorf("%w: field %d: %q", ErrBadPreamble, 4+i, fields[4+i])
		}
		floats[i] = v
	}

	pre := Preamble{
		Format:     ints[0],
		Type:       ints[1],
		Points:     ints[2],
		Count:      ints[3],
		XIncrement: floats[0],
		XOrigin:    floats[1],
		XReference: floats[2],
		YIncrement: floats[3],
		YOrigin:    floats[4],
		YReference: floats[5],
	}

	if pre.Points < 1 {
		return Preamble{}, fmt.Errorf("%w: nonpositive point count %d", ErrBadPreamble, pre.Points)
	}
	if pre.XIncrement <= 0 {
		return Preamble{}, fmt.Errorf("%w: nonpositive x-increment %g", ErrBadPreamble, pre.XIncrement)
	}

	return pre, nil
}

// Time returns the time of sample i in seconds.
func (p Preamble) Time(i int) float64 {
	return p.XOrigin + float64(i)*p.XIncrement
}
