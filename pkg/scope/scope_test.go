package scope_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigol-scpi/rigol-go/internal/scpitest"
	"github.com/rigol-scpi/rigol-go/pkg/scope"
	"github.com/rigol-scpi/rigol-go/pkg/scpi"
	"github.com/rigol-scpi/rigol-go/pkg/vocab"
)

// newScope returns a DS1000Z scope over a fresh scripted transport.
func newScope(t *testing.T, opts ...scope.Option) (*scope.Scope, *scpitest.Transport) {
	t.Helper()

	tr := scpitest.New()
	s, err := scope.New(tr, vocab.FamilyDS1000Z, opts...)
	require.NoError(t, err)
	return s, tr
}

func TestChannelBoundsCheckedWithoutIO(t *testing.T) {
	s, tr := newScope(t)

	for _, n := range []int{-1, 0, 5, 100} {
		_, err := s.Channel(n)
		assert.ErrorIs(t, err, scope.ErrInvalidChannel, "channel %d", n)
	}
	assert.Zero(t, tr.WriteCount(), "out-of-range channel access must not touch the transport")

	for _, n := range []int{1, 2, 3, 4} {
		ch, err := s.Channel(n)
		require.NoError(t, err)
		assert.Equal(t, n, ch.Index())
	}
	assert.Zero(t, tr.WriteCount(), "channel handles are local objects")
}

func TestSetScaleRejectsNonPositiveWithoutIO(t *testing.T) {
	s, tr := newScope(t)

	ch, err := s.Channel(1)
	require.NoError(t, err)

	for _, v := range []float64{0, -0.5, -100} {
		assert.ErrorIs(t, ch.SetScale(v), scope.ErrInvalidScale, "scale %g", v)
	}
	assert.Zero(t, tr.WriteCount())

	require.NoError(t, ch.SetScale(0.5))
	assert.Equal(t, []string{":CHAN1:SCAL 5.0000e-01"}, tr.Writes)
}

func TestStopRunAreSingleWrites(t *testing.T) {
	s, tr := newScope(t)

	require.NoError(t, s.Stop())
	require.NoError(t, s.Run())

	// One write each, and no read: the mock errors on any unscripted
	// read, so a stray read would have failed the calls above.
	assert.Equal(t, []string{":STOP", ":RUN"}, tr.Writes)
}

func TestInstrumentCommands(t *testing.T) {
	s, tr := newScope(t)

	require.NoError(t, s.Reset())
	require.NoError(t, s.Autoscale())
	require.NoError(t, s.Clear())

	assert.Equal(t, []string{"*RST", ":AUT", ":CLE"}, tr.Writes)
}

func TestID(t *testing.T) {
	s, tr := newScope(t)
	tr.RespondString("*IDN?", "RIGOL TECHNOLOGIES,DS1054Z,DS1ZA000000001,00.04.04\n")

	id, err := s.ID()
	require.NoError(t, err)
	assert.Equal(t, "RIGOL TECHNOLOGIES,DS1054Z,DS1ZA000000001,00.04.04", id)
}

func TestScaleQueryParsesNumber(t *testing.T) {
	s, tr := newScope(t)
	tr.RespondString(":CHAN2:SCAL?", "2.000000e-01\n")

	ch, err := s.Channel(2)
	require.NoError(t, err)

	v, err := ch.Scale()
	require.NoError(t, err)
	assert.InDelta(t, 0.2, v, 1e-12)
}

func TestScaleQueryReassemblesSegmentedResponse(t *testing.T) {
	s, tr := newScope(t)
	// 3-byte segments: "2.000000e-01\n" arrives as "2.0", "000", ...
	// and the leading fragment alone would parse as 2.0 V/div.
	tr.ChunkSize = 3
	tr.RespondString(":CHAN1:SCAL?", "2.000000e-01\n")

	ch, err := s.Channel(1)
	require.NoError(t, err)

	v, err := ch.Scale()
	require.NoError(t, err)
	assert.InDelta(t, 0.2, v, 1e-12)
}

func TestScaleQueryUnterminatedResponseFails(t *testing.T) {
	s, tr := newScope(t)
	tr.RespondString(":CHAN1:SCAL?", "2.0")

	ch, err := s.Channel(1)
	require.NoError(t, err)

	_, err = ch.Scale()
	assert.ErrorIs(t, err, scpitest.ErrNoResponse)
}

func TestScaleQueryBadResponse(t *testing.T) {
	s, tr := newScope(t)
	tr.RespondString(":CHAN1:SCAL?", "garbage\n")

	ch, err := s.Channel(1)
	require.NoError(t, err)

	_, err = ch.Scale()
	assert.ErrorIs(t, err, scpi.ErrBadResponse)
}

func TestChannelValidationWithoutIO(t *testing.T) {
	s, tr := newScope(t)

	ch, err := s.Channel(1)
	require.NoError(t, err)

	assert.ErrorIs(t, ch.SetOffset(2000), scope.ErrInvalidOffset)
	assert.ErrorIs(t, ch.SetCoupling("ACDC"), scope.ErrInvalidCoupling)
	assert.ErrorIs(t, ch.SetProbeRatio(3), scope.ErrInvalidProbeRatio)
	assert.ErrorIs(t, ch.SetUnits("OHM"), scope.ErrInvalidUnits)
	assert.ErrorIs(t, s.SetAveraging(3), scope.ErrInvalidAveraging)
	assert.ErrorIs(t, s.SetAveraging(2048), scope.ErrInvalidAveraging)
	assert.Zero(t, tr.WriteCount())

	require.NoError(t, ch.SetCoupling(scope.CouplingAC))
	require.NoError(t, ch.SetProbeRatio(10))
	require.NoError(t, s.SetAveraging(16))
	assert.Equal(t, []string{":CHAN1:COUP AC", ":CHAN1:PROB 10", ":ACQ:AVER 16"}, tr.Writes)
}

func TestTimebaseValidation(t *testing.T) {
	s, tr := newScope(t)

	tb := s.Timebase()
	assert.ErrorIs(t, tb.SetScale(10e-9), scope.ErrInvalidTimebase)
	assert.ErrorIs(t, tb.SetScale(100), scope.ErrInvalidTimebase)
	assert.ErrorIs(t, tb.SetMode("SPIRAL"), scope.ErrInvalidTimebaseMode)
	assert.Zero(t, tr.WriteCount())

	require.NoError(t, tb.SetMode(scope.TimebaseRoll))
	assert.Equal(t, []string{":TIM:MODE ROLL"}, tr.Writes)
}

func TestScreenshotWritesPayloadVerbatim(t *testing.T) {
	s, tr := newScope(t)

	img := make([]byte, 1337)
	for i := range img {
		img[i] = byte(i * 7)
	}
	tr.Respond(":DISP:DATA? ON,OFF,png", append(scpi.EncodeBlock(img), '\n'))

	path := filepath.Join(t.TempDir(), "screen.png")
	require.NoError(t, s.Screenshot(path, scope.FormatPNG))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, img, got)

	// Header, payload and trailer all arrive through one buffered read.
	assert.Equal(t, 1, tr.ReadCalls)
}

func TestScreenshotRejectsUnsupportedFormatWithoutIO(t *testing.T) {
	tr := scpitest.New()
	s, err := scope.New(tr, vocab.FamilyDS2000A)
	require.NoError(t, err)

	err = s.Screenshot(filepath.Join(t.TempDir(), "screen.png"), scope.FormatPNG)
	assert.ErrorIs(t, err, scope.ErrUnsupportedFormat)
	assert.Zero(t, tr.WriteCount())
}

func TestScreenshotMalformedBlock(t *testing.T) {
	s, tr := newScope(t)
	tr.RespondString(":DISP:DATA? ON,OFF,png", "not a block")

	err := s.Screenshot(filepath.Join(t.TempDir(), "screen.png"), scope.FormatPNG)
	assert.ErrorIs(t, err, scpi.ErrMalformedBlock)
}

func TestMemoryDepthAuto(t *testing.T) {
	s, tr := newScope(t)
	tr.RespondString(":ACQ:MDEP?", "AUTO\n")

	_, auto, err := s.MemoryDepth()
	require.NoError(t, err)
	assert.True(t, auto)

	tr.RespondString(":ACQ:MDEP?", "12000000\n")
	points, auto, err := s.MemoryDepth()
	require.NoError(t, err)
	assert.False(t, auto)
	assert.Equal(t, 12000000, points)
}

func TestClose(t *testing.T) {
	s, tr := newScope(t)
	require.NoError(t, s.Close())
	assert.True(t, tr.Closed)
}
