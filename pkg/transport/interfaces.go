package transport

import "errors"

// ErrClosed indicates an operation on a closed transport.
var ErrClosed = errors.New("transport closed")

// Transport is the byte session every instrument operation rides on.
// Implementations are USBTMC, TCP, and test doubles.
type Transport interface {
	// WriteString sends one ASCII command. Implementations append the
	// message terminator if the command lacks one.
	WriteString(cmd string) error

	// Read fills p with response bytes from the instrument, blocking
	// until data arrives or the configured timeout elapses. Satisfies
	// io.Reader so binary blocks can be decoded in a streaming fashion.
	Read(p []byte) (int, error)

	// Close releases the session.
	Close() error
}
