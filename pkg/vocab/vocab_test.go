package vocab

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAllFamilies(t *testing.T) {
	tests := []struct {
		family   Family
		channels int
	}{
		{FamilyDS1000Z, 4},
		{FamilyDS2000A, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.family), func(t *testing.T) {
			set, err := Load(tt.family)
			require.NoError(t, err)

			assert.Equal(t, tt.family, set.Family)
			assert.Equal(t, tt.channels, set.Channels)
			assert.Positive(t, set.MaxReadPoints)
			assert.NotEmpty(t, set.ScreenshotFormats)

			// Load already enforces requiredOps; spot-check a few.
			for _, op := range []string{"idn", "run", "wav_data_query", "chan_scale_set"} {
				assert.Contains(t, set.Commands, op)
			}
		})
	}
}

func TestLoadUnknownFamily(t *testing.T) {
	_, err := Load(Family("ds9000x"))
	assert.ErrorIs(t, err, ErrUnknownFamily)
}

func TestParseFamily(t *testing.T) {
	f, err := ParseFamily(" DS1000Z ")
	require.NoError(t, err)
	assert.Equal(t, FamilyDS1000Z, f)

	_, err = ParseFamily("ds9000x")
	assert.ErrorIs(t, err, ErrUnknownFamily)
}

func TestRender(t *testing.T) {
	set, err := Load(FamilyDS1000Z)
	require.NoError(t, err)

	cmd, err := set.Render("chan_scale_set", 2, 0.5)
	require.NoError(t, err)
	assert.Equal(t, ":CHAN2:SCAL 5.0000e-01", cmd)

	cmd, err = set.Render("run")
	require.NoError(t, err)
	assert.Equal(t, ":RUN", cmd)

	_, err = set.Render("warp_drive_engage")
	assert.True(t, errors.Is(err, ErrUnknownCommand))
}

func TestScreenshotShape(t *testing.T) {
	z, err := Load(FamilyDS1000Z)
	require.NoError(t, err)
	assert.True(t, z.ScreenshotTakesFormat())
	assert.True(t, z.SupportsScreenshotFormat("png"))
	assert.True(t, z.SupportsScreenshotFormat("PNG"))
	assert.False(t, z.SupportsScreenshotFormat("gif"))

	a, err := Load(FamilyDS2000A)
	require.NoError(t, err)
	assert.False(t, a.ScreenshotTakesFormat())
	assert.True(t, a.SupportsScreenshotFormat("bmp24"))
	assert.False(t, a.SupportsScreenshotFormat("png"))
}
