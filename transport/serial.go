/*
Package transport writes encoded messages to an LED matrix display.

The display is reached through a serial device, usually an RFCOMM tty bound
to the display's Bluetooth address. Chunks are written one at a time and can
be paced so the display's small receive buffer isn't overrun. Nothing is
retried; a failed write is returned to the caller.
*/
package transport

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// Config holds serial port configuration.
type Config struct {
	// Device path, e.g. "/dev/rfcomm0"
	Device string

	// Baud rate, ignored by RFCOMM
	Baud int

	// ReadTimeout, zero blocks
	ReadTimeout time.Duration
}

// DefaultConfig returns a default configuration for device.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100 * time.Millisecond,
	}
}

// Open opens the serial port described by cfg.
func Open(cfg *Config) (io.ReadWriteCloser, error) {
	if cfg == nil {
		return nil, errors.New("transport: config cannot be nil")
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("transport: failed to open serial port %s: %w", cfg.Device, err)
	}

	return port, nil
}
