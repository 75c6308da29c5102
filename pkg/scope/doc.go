// Package scope is the oscilloscope driver facade.
//
// A Scope wraps an open transport session and exposes instrument-wide
// operations (run/stop/reset, autoscale, screenshot, acquisition
// settings). Per-channel configuration and waveform retrieval live on the
// Channel handles the Scope hands out; Trigger and Timebase group their
// respective subsystems the same way.
//
// Every operation is one synchronous, blocking round trip on the
// transport. Argument validation happens before any I/O: an out-of-range
// channel index or a non-positive scale never reaches the instrument. A
// Scope is not safe for concurrent use; callers owning one session
// serialize access themselves.
package scope
