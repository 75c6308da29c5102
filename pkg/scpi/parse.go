package scpi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadResponse indicates an ASCII query response could not be parsed as
// the expected type.
var ErrBadResponse = errors.New("unparsable instrument response")

// ParseFloat parses a numeric query response. Instruments answer in
// scientific notation ("2.000000e-01"); surrounding whitespace and line
// terminators are tolerated.
func ParseFloat(resp string) (float64, error) {
	s := strings.TrimSpace(resp)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrBadResponse, s)
	}
	return v, nil
}

// ParseInt parses an integer query response.
func ParseInt(resp string) (int, error) {
	s := strings.TrimSpace(resp)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrBadResponse, s)
	}
	return v, nil
}

// ParseBool parses a 0/1 query response, as returned by display and state
// queries.
func ParseBool(resp string) (bool, error) {
	switch strings.TrimSpace(resp) {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("%w: %q is not a 0/1 flag", ErrBadResponse, strings.TrimSpace(resp))
	}
}
