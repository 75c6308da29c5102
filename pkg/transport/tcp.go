package transport

import (
	"fmt"
	"net"
	"strings"
	"time"
)

// DefaultSCPIPort is the raw SCPI socket port Rigol instruments listen on.
const DefaultSCPIPort = 5555

// DefaultTCPTimeout bounds each read when the caller does not configure one.
const DefaultTCPTimeout = 10 * time.Second

// TCP is a Transport over the raw SCPI socket service.
type TCP struct {
	conn    net.Conn
	timeout time.Duration
}

// OpenTCP connects to the instrument's SCPI socket. addr may omit the
// port, in which case DefaultSCPIPort is used.
func OpenTCP(addr string, timeout time.Duration) (*TCP, error) {
	if timeout <= 0 {
		timeout = DefaultTCPTimeout
	}
	if !strings.Contains(addr, ":") {
		addr = fmt.Sprintf("%s:%d", addr, DefaultSCPIPort)
	}

	conn, err := net.DialTimeout("tcp", addr, timeout)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", addr, err)
	}
	return &TCP{conn: conn, timeout: timeout}, nil
}

// SetTimeout changes the per-read deadline.
func (t *TCP) SetTimeout(d time.Duration) {
	if d > 0 {
		t.timeout = d
	}
}

// WriteString sends one ASCII command, terminating it with a newline if
// the caller did not.
func (t *TCP) WriteString(cmd string) error {
	if !strings.HasSuffix(cmd, "\n") {
		cmd += "\n"
	}
	if err := t.conn.SetWriteDeadline(time.Now().Add(t.timeout)); err != nil {
		return err
	}
	if _, err := t.conn.Write([]byte(cmd)); err != nil {
		return fmt.Errorf("writing %q: %w", strings.TrimSpace(cmd), err)
	}
	return nil
}

// Read fills p with response bytes, honoring the configured timeout.
func (t *TCP) Read(p []byte) (int, error) {
	if err := t.conn.SetReadDeadline(time.Now().Add(t.timeout)); err != nil {
		return 0, err
	}
	return t.conn.Read(p)
}

// Close closes the socket.
func (t *TCP) Close() error {
	return t.conn.Close()
}

// Compile-time interface satisfaction check.
var _ Transport = (*TCP)(nil)
