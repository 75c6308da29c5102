package transport

import (
	"bufio"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoSCPIListener accepts one connection and answers "*IDN?" with a fixed
// identity string, mimicking the instrument's socket service.
func echoSCPIListener(t *testing.T) net.Listener {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		r := bufio.NewReader(conn)
		for {
			line, err := r.ReadString('\n')
			if err != nil {
				return
			}
			if line == "*IDN?\n" {
				conn.Write([]byte("RIGOL TECHNOLOGIES,DS1054Z,DS1ZA000000001,00.04.04\n"))
			}
		}
	}()

	return ln
}

func TestTCPQueryRoundTrip(t *testing.T) {
	ln := echoSCPIListener(t)
	defer ln.Close()

	tr, err := OpenTCP(ln.Addr().String(), time.Second)
	require.NoError(t, err)
	defer tr.Close()

	require.NoError(t, tr.WriteString("*IDN?"))

	buf := make([]byte, 256)
	n, err := tr.Read(buf)
	require.NoError(t, err)
	assert.Contains(t, string(buf[:n]), "DS1054Z")
}

func TestTCPReadTimeout(t *testing.T) {
	ln := echoSCPIListener(t)
	defer ln.Close()

	tr, err := OpenTCP(ln.Addr().String(), time.Second)
	require.NoError(t, err)
	defer tr.Close()

	tr.SetTimeout(50 * time.Millisecond)

	// No command written, so nothing will arrive.
	buf := make([]byte, 16)
	_, err = tr.Read(buf)
	require.Error(t, err)

	nerr, ok := err.(net.Error)
	require.True(t, ok, "expected a net.Error, got %T", err)
	assert.True(t, nerr.Timeout())
}

func TestOpenTCPConnectionRefused(t *testing.T) {
	// Grab a port and close it again so nothing is listening there.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	_, err = OpenTCP(addr, 200*time.Millisecond)
	assert.Error(t, err)
}
