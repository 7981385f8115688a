// Package conn manages the connection to a TMCL module: port selection,
// opening, and a firmware-version probe that confirms something TMCL-speaking
// is on the other end. The returned session owns the port for its lifetime;
// all register traffic to one module must go through one session.
package conn

import (
	"fmt"

	"github.com/edaniels/golog"

	"stepconf/host/serial"
	"stepconf/tmcl"
)

// Session is an open connection to one TMCL module.
type Session struct {
	Transport *tmcl.Transport

	port    serial.Port
	device  string
	version int32
	logger  golog.Logger
}

// Connect opens the named serial device. When device is empty the available
// USB serial ports are enumerated and probed in order until one answers the
// firmware-version request.
func Connect(device string, moduleAddress uint8, logger golog.Logger) (*Session, error) {
	if device != "" {
		return open(device, moduleAddress, logger)
	}

	candidates, err := serial.Enumerate()
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no USB serial ports found; specify the device explicitly")
	}

	var lastErr error
	for _, candidate := range candidates {
		s, err := open(candidate, moduleAddress, logger)
		if err == nil {
			return s, nil
		}
		logger.Debugf("probe of %s failed: %v", candidate, err)
		lastErr = err
	}
	return nil, fmt.Errorf("no TMCL module found on %d candidate port(s): %w", len(candidates), lastErr)
}

func open(device string, moduleAddress uint8, logger golog.Logger) (*Session, error) {
	port, err := serial.Open(serial.DefaultConfig(device))
	if err != nil {
		return nil, err
	}

	transport := tmcl.NewTransport(port, moduleAddress)
	reply, err := transport.Exchange(tmcl.Request{Command: tmcl.GetFirmwareVersion, Type: 1})
	if err != nil {
		port.Close()
		return nil, fmt.Errorf("firmware version probe on %s: %w", device, err)
	}

	logger.Infof("connected to TMCL module on %s (firmware 0x%08X)", device, reply.Value)
	return &Session{
		Transport: transport,
		port:      port,
		device:    device,
		version:   reply.Value,
		logger:    logger,
	}, nil
}

// Device returns the serial device path of the session.
func (s *Session) Device() string { return s.device }

// FirmwareVersion returns the raw version value from the connect probe.
func (s *Session) FirmwareVersion() int32 { return s.version }

// Close closes the transport and the underlying port.
func (s *Session) Close() error {
	return s.Transport.Close()
}
