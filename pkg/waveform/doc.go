// Package waveform interprets instrument waveform data.
//
// A capture is described by the preamble (the 10-field response to the
// waveform preamble query) and carried as raw 8-bit sample codes in one or
// more binary blocks. This package parses the preamble, converts raw codes
// to volts, derives the time axis, and writes (time, voltage) tables.
package waveform
