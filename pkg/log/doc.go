// Package log provides session capture logging for instrument traffic.
//
// Every command written to and every response read from the transport can
// be recorded as an Event. Events are CBOR-encoded for compact on-disk
// capture files that survive binary payloads (screenshots, waveform
// blocks) without escaping. A capture can be replayed later with Reader,
// which is what `rigolctl log` does.
//
// Pass a Logger to scope.New via scope.WithLogger; pass nil or NoopLogger
// to disable capture.
package log
