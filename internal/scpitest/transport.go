// Package scpitest provides a scripted in-memory transport for driver
// tests. Commands are recorded as written; responses are served from a
// per-command queue, so tests assert both the exact traffic and the
// absence of traffic.
package scpitest

import (
	"bytes"
	"errors"
	"strings"
)

// ErrNoResponse is returned by Read when no response is scripted. A test
// that reads without scripting simulates an instrument timeout.
var ErrNoResponse = errors.New("scpitest: no scripted response")

// Transport is a scripted Transport implementation.
type Transport struct {
	// Writes records every command written, in order, without the
	// trailing terminator.
	Writes []string

	// Closed reports whether Close was called.
	Closed bool

	// ChunkSize caps the bytes served per Read call. Zero serves
	// everything staged, mimicking a response arriving in one segment;
	// a small value mimics a response fragmented across segments.
	ChunkSize int

	// ReadCalls counts Read calls, segmented or not.
	ReadCalls int

	responses map[string][][]byte
	readBuf   bytes.Buffer
}

// New creates an empty scripted transport.
func New() *Transport {
	return &Transport{responses: make(map[string][][]byte)}
}

// Respond queues a response to be served after cmd is written. Multiple
// responses for the same command are served in FIFO order.
func (m *Transport) Respond(cmd string, resp []byte) {
	m.responses[cmd] = append(m.responses[cmd], resp)
}

// RespondString queues an ASCII response for cmd.
func (m *Transport) RespondString(cmd, resp string) {
	m.Respond(cmd, []byte(resp))
}

// WriteString records the command and stages its scripted response, if
// any. Unread bytes from the previous response (line terminators after a
// binary block) are discarded, as a new query does on the instrument.
func (m *Transport) WriteString(cmd string) error {
	cmd = strings.TrimSuffix(cmd, "\n")
	m.Writes = append(m.Writes, cmd)

	m.readBuf.Reset()
	if queue := m.responses[cmd]; len(queue) > 0 {
		m.readBuf.Write(queue[0])
		m.responses[cmd] = queue[1:]
	}
	return nil
}

// Read serves staged response bytes. Reading with nothing staged fails
// with ErrNoResponse.
func (m *Transport) Read(p []byte) (int, error) {
	m.ReadCalls++
	if m.readBuf.Len() == 0 {
		return 0, ErrNoResponse
	}
	if m.ChunkSize > 0 && len(p) > m.ChunkSize {
		p = p[:m.ChunkSize]
	}
	return m.readBuf.Read(p)
}

// Close marks the transport closed.
func (m *Transport) Close() error {
	m.Closed = true
	return nil
}

// WriteCount returns the number of commands written.
func (m *Transport) WriteCount() int {
	return len(m.Writes)
}
