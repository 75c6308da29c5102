package commands

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigol-scpi/rigol-go/pkg/log"
)

func TestResolveFlagOverridesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rigolctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"address: 10.0.0.5\nfamily: ds2000a\ntimeout_seconds: 3\n"), 0644))

	cf := &connFlags{configFile: path, address: "192.168.1.42"}
	cfg, err := cf.resolve()
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.42", cfg.Address, "flag wins over file")
	assert.Equal(t, "ds2000a", cfg.Family, "file value kept without flag")
	assert.Equal(t, 3, cfg.TimeoutSeconds)
}

func TestResolveDefaultsFamily(t *testing.T) {
	cf := &connFlags{address: "10.0.0.1"}
	cfg, err := cf.resolve()
	require.NoError(t, err)
	assert.Equal(t, "ds1000z", cfg.Family)
}

func TestLoadConfigBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("address: [unclosed"), 0644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestOpenScopeWithoutInstrument(t *testing.T) {
	_, _, err := openScope(Config{Family: "ds1000z"})
	assert.ErrorIs(t, err, errNoInstrument)
}

func TestRunScaleRejectsBadValue(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := RunScale([]string{"-addr", "10.0.0.1", "not-a-number"}, &stdout, &stderr)
	assert.Equal(t, exitCommandError, code)
	assert.Contains(t, stderr.String(), "invalid scale value")
}

func TestRunLogRequiresFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := RunLog(nil, &stdout, &stderr)
	assert.Equal(t, exitCommandError, code)
	assert.Contains(t, stderr.String(), "capture file")
}

func TestRunLogPrintsCapture(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.cbor")

	fl, err := log.NewFileLogger(path)
	require.NoError(t, err)
	fl.Log(log.NewWriteEvent("11112222-session", ":STOP"))
	fl.Log(log.NewReadEvent("11112222-session", "*IDN?", []byte("RIGOL TECHNOLOGIES,DS1054Z")))
	require.NoError(t, fl.Close())

	var stdout, stderr bytes.Buffer
	code := RunLog([]string{path}, &stdout, &stderr)
	require.Equal(t, exitSuccess, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, ":STOP")
	assert.Contains(t, out, "*IDN?")
	assert.Contains(t, out, "[sess:11112222]")
	assert.Contains(t, out, "Total: 2 events")
}

func TestRunLogDirectionFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.cbor")

	fl, err := log.NewFileLogger(path)
	require.NoError(t, err)
	fl.Log(log.NewWriteEvent("s", ":RUN"))
	fl.Log(log.NewReadEvent("s", ":CHAN1:SCAL?", []byte("2.0e-01")))
	require.NoError(t, fl.Close())

	var stdout, stderr bytes.Buffer
	code := RunLog([]string{"-dir", "read", path}, &stdout, &stderr)
	require.Equal(t, exitSuccess, code, stderr.String())

	out := stdout.String()
	assert.NotContains(t, out, ":RUN")
	assert.Contains(t, out, ":CHAN1:SCAL?")
	assert.Contains(t, out, "Total: 1 events")

	stdout.Reset()
	code = RunLog([]string{"-dir", "sideways", path}, &stdout, &stderr)
	assert.Equal(t, exitCommandError, code)
}

func TestFormatEventShowsErrorAndTruncation(t *testing.T) {
	event := log.NewReadEvent("abcd1234-5678", ":WAV:DATA?", make([]byte, log.MaxEventDataSize+100))
	event.Err = "connection reset"

	var buf bytes.Buffer
	formatEvent(&buf, event)
	out := buf.String()

	assert.Contains(t, out, "[truncated]")
	assert.Contains(t, out, "ERROR: connection reset")
	assert.Contains(t, out, "[sess:abcd1234]")
}

func TestReadReplyText(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("RIGOL TECHNOLOGIES,DS1054Z\n"))
	reply, binary, err := readReply(br)
	require.NoError(t, err)
	assert.False(t, binary)
	assert.Equal(t, "RIGOL TECHNOLOGIES,DS1054Z\n", string(reply))
}

func TestReadReplyReassemblesSegments(t *testing.T) {
	// One byte per read: the reply must still come back whole.
	src := iotest.OneByteReader(strings.NewReader("2.000000e-01\n"))
	reply, binary, err := readReply(bufio.NewReader(src))
	require.NoError(t, err)
	assert.False(t, binary)
	assert.Equal(t, "2.000000e-01\n", string(reply))
}

func TestReadReplyBinaryBlock(t *testing.T) {
	br := bufio.NewReader(strings.NewReader("\n#14\x89PNG\n"))
	reply, binary, err := readReply(br)
	require.NoError(t, err)
	assert.True(t, binary)
	assert.Equal(t, []byte("\x89PNG"), reply)
}
