package log

import (
	"time"
)

// MaxEventDataSize is the largest payload slice stored in an event.
// Longer payloads (screenshots, waveform blocks) are truncated; Size
// always records the full length.
const MaxEventDataSize = 4096

// Direction indicates which way bytes moved on the transport.
type Direction uint8

const (
	// DirectionWrite is a command sent to the instrument.
	DirectionWrite Direction = 0

	// DirectionRead is a response read from the instrument.
	DirectionRead Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionWrite:
		return "write"
	case DirectionRead:
		return "read"
	default:
		return "unknown"
	}
}

// Event is one transport round-trip half captured from a session.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the instrument session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Direction indicates write (command) or read (response).
	Direction Direction `cbor:"3,keyasint"`

	// Command is the ASCII command for writes, and the command the
	// response answers for reads.
	Command string `cbor:"4,keyasint,omitempty"`

	// Size is the full payload length in bytes.
	Size int `cbor:"5,keyasint"`

	// Data holds up to MaxEventDataSize payload bytes.
	Data []byte `cbor:"6,keyasint,omitempty"`

	// Truncated reports that Data holds less than Size bytes.
	Truncated bool `cbor:"7,keyasint,omitempty"`

	// Err records a transport or protocol error, if any.
	Err string `cbor:"8,keyasint,omitempty"`
}

// NewWriteEvent builds an event for a command sent to the instrument.
func NewWriteEvent(sessionID, cmd string) Event {
	return Event{
		Timestamp: time.Now(),
		SessionID: sessionID,
		Direction: DirectionWrite,
		Command:   cmd,
		Size:      len(cmd),
	}
}

// NewReadEvent builds an event for a response, truncating the stored
// payload at MaxEventDataSize.
func NewReadEvent(sessionID, cmd string, payload []byte) Event {
	e := Event{
		Timestamp: time.Now(),
		SessionID: sessionID,
		Direction: DirectionRead,
		Command:   cmd,
		Size:      len(payload),
	}
	if len(payload) > MaxEventDataSize {
		e.Data = append([]byte(nil), payload[:MaxEventDataSize]...)
		e.Truncated = true
	} else {
		e.Data = append([]byte(nil), payload...)
	}
	return e
}
