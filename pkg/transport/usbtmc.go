package transport

import (
	"fmt"
	"strings"

	"github.com/gotmc/usbtmc"
)

// USBTMC is a Transport over a USB Test & Measurement Class session.
// The session is owned by this value: Close releases both the device and
// the underlying USB context.
type USBTMC struct {
	ctx    *usbtmc.Context
	dev    *usbtmc.Device
	closed bool
}

// OpenUSB opens a USBTMC session to the instrument identified by a VISA
// resource string, e.g. "USB0::0x1AB1::0x04CE::INSTR" for a DS1000Z.
// Failure to find or claim the device surfaces as a connection error.
func OpenUSB(resource string) (*USBTMC, error) {
	ctx, err := usbtmc.NewContext()
	if err != nil {
		return nil, fmt.Errorf("creating USBTMC context: %w", err)
	}

	dev, err := ctx.NewDevice(resource)
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("opening %s: %w", resource, err)
	}

	return &USBTMC{ctx: ctx, dev: dev}, nil
}

// WriteString sends one ASCII command, terminating it with a newline if
// the caller did not.
func (u *USBTMC) WriteString(cmd string) error {
	if u.closed {
		return ErrClosed
	}
	if !strings.HasSuffix(cmd, "\n") {
		cmd += "\n"
	}
	if _, err := u.dev.WriteString(cmd); err != nil {
		return fmt.Errorf("writing %q: %w", strings.TrimSpace(cmd), err)
	}
	return nil
}

// Read fills p with response bytes from the device.
func (u *USBTMC) Read(p []byte) (int, error) {
	if u.closed {
		return 0, ErrClosed
	}
	return u.dev.Read(p)
}

// Close releases the device and the USB context.
func (u *USBTMC) Close() error {
	if u.closed {
		return nil
	}
	u.closed = true

	devErr := u.dev.Close()
	ctxErr := u.ctx.Close()
	if devErr != nil {
		return devErr
	}
	return ctxErr
}

// Compile-time interface satisfaction check.
var _ Transport = (*USBTMC)(nil)
