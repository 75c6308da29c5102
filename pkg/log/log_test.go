package log

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCBORRoundTrip(t *testing.T) {
	ts := time.Date(2026, 8, 12, 9, 30, 15, 123456789, time.UTC)
	original := Event{
		Timestamp: ts,
		SessionID: "5f0c2b1a-9d2e-4f7c-8a3b-1c2d3e4f5a6b",
		Direction: DirectionRead,
		Command:   ":WAV:DATA?",
		Size:      250000,
		Data:      []byte{0x80, 0x8a, 0x76},
		Truncated: true,
	}

	data, err := EncodeEvent(original)
	require.NoError(t, err)

	decoded, err := DecodeEvent(data)
	require.NoError(t, err)

	assert.True(t, decoded.Timestamp.Equal(original.Timestamp))
	assert.Equal(t, original.SessionID, decoded.SessionID)
	assert.Equal(t, original.Direction, decoded.Direction)
	assert.Equal(t, original.Command, decoded.Command)
	assert.Equal(t, original.Size, decoded.Size)
	assert.Equal(t, original.Data, decoded.Data)
	assert.Equal(t, original.Truncated, decoded.Truncated)
}

func TestNewReadEventTruncates(t *testing.T) {
	payload := bytes.Repeat([]byte{0xAB}, MaxEventDataSize+100)

	e := NewReadEvent("s", ":DISP:DATA? ON,OFF,png", payload)
	assert.Equal(t, len(payload), e.Size)
	assert.Len(t, e.Data, MaxEventDataSize)
	assert.True(t, e.Truncated)

	small := NewReadEvent("s", ":CHAN1:SCAL?", []byte("1.0e0\n"))
	assert.False(t, small.Truncated)
	assert.Equal(t, []byte("1.0e0\n"), small.Data)
}

func TestFileLoggerWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.cbor")

	fl, err := NewFileLogger(path)
	require.NoError(t, err)

	fl.Log(NewWriteEvent("sess-1", ":STOP"))
	fl.Log(NewReadEvent("sess-1", "*IDN?", []byte("RIGOL TECHNOLOGIES,DS1054Z\n")))
	fl.Log(Event{
		Timestamp: time.Now(),
		SessionID: "sess-2",
		Direction: DirectionRead,
		Command:   ":WAV:PRE?",
		Err:       "malformed waveform preamble",
	})
	require.NoError(t, fl.Close())

	// Closed logger swallows further events.
	fl.Log(NewWriteEvent("sess-1", ":RUN"))

	r, err := NewReader(path)
	require.NoError(t, err)
	defer r.Close()

	events, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, ":STOP", events[0].Command)
	assert.Equal(t, DirectionWrite, events[0].Direction)
	assert.Equal(t, DirectionRead, events[1].Direction)
}

func TestFilteredReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.cbor")

	fl, err := NewFileLogger(path)
	require.NoError(t, err)
	fl.Log(NewWriteEvent("a", ":RUN"))
	fl.Log(NewWriteEvent("b", ":STOP"))
	ev := NewWriteEvent("b", ":WAV:DATA?")
	ev.Err = "binary block truncated"
	fl.Log(ev)
	require.NoError(t, fl.Close())

	r, err := NewFilteredReader(path, Filter{SessionID: "b"})
	require.NoError(t, err)
	events, err := r.ReadAll()
	require.NoError(t, err)
	r.Close()
	assert.Len(t, events, 2)

	r, err = NewFilteredReader(path, Filter{ErrorsOnly: true})
	require.NoError(t, err)
	events, err = r.ReadAll()
	require.NoError(t, err)
	r.Close()
	require.Len(t, events, 1)
	assert.Equal(t, ":WAV:DATA?", events[0].Command)
}

func TestMultiLogger(t *testing.T) {
	var a, b recordingLogger

	m := NewMultiLogger(&a, nil, &b)
	m.Log(NewWriteEvent("s", ":RUN"))

	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)
}

// recordingLogger collects events in memory.
type recordingLogger struct {
	events []Event
}

func (r *recordingLogger) Log(e Event) { r.events = append(r.events, e) }
