// Package transport abstracts the byte session to an instrument.
//
// Two sessions are provided: USBTMC (USB Test & Measurement Class, via
// github.com/gotmc/usbtmc) and raw SCPI over TCP (port 5555, the socket
// service Rigol scopes expose on LAN). Higher layers depend only on the
// Transport interface, so tests substitute a scripted in-memory transport.
//
// All I/O is blocking and synchronous. A transport is an exclusive
// resource: concurrent use must be serialized by the caller. Timeouts are
// the transport's responsibility; nothing above it retries or cancels.
package transport
