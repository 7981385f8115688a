package tmc5160

import (
	"fmt"

	"github.com/edaniels/golog"

	"stepconf/units"
)

// RegisterBus is the blocking register access channel to one TMC5160. Every
// call completes (or fails) before the next proceeds. The bus is single
// owner state: callers must serialize all configuration calls to one device
// for the session's lifetime.
type RegisterBus interface {
	ReadRegister(addr uint8) (uint32, error)
	WriteRegister(addr uint8, value uint32) error
}

// Config holds the caller-supplied part of the motor profile. Microstep
// resolution is not configured here; it is read from the chip.
type Config struct {
	FullstepsPerTurn uint32 // defaults to 200
	ClockHz          uint32 // defaults to 12 MHz (internal oscillator)
}

// Device is one configuration session with a TMC5160. The motor profile is
// resolved once at construction (including a live CHOPCONF.MRES read) and
// cached; it is never re-queried afterward.
type Device struct {
	bus     RegisterBus
	profile units.MotorProfile
	logger  golog.Logger
}

// NewDevice reads the chip's microstep resolution and builds the session
// profile.
func NewDevice(bus RegisterBus, cfg Config, logger golog.Logger) (*Device, error) {
	if cfg.FullstepsPerTurn == 0 {
		cfg.FullstepsPerTurn = units.DefaultFullstepsPerTurn
	}
	if cfg.ClockHz == 0 {
		cfg.ClockHz = units.DefaultClockHz
	}

	d := &Device{bus: bus, logger: logger}

	mres, err := d.ReadField(FieldMRES)
	if err != nil {
		return nil, fmt.Errorf("reading microstep resolution: %w", err)
	}
	microsteps, err := units.MicrostepsFromMRES(mres)
	if err != nil {
		return nil, err
	}

	profile, err := units.NewMotorProfile(cfg.FullstepsPerTurn, microsteps, cfg.ClockHz)
	if err != nil {
		return nil, err
	}
	d.profile = profile

	logger.Debugf("device profile: %d fullsteps/turn, %d microsteps/fullstep (MRES=%d), clock %d Hz",
		profile.FullstepsPerTurn, profile.MicrostepsPerFullstep, mres, profile.ClockHz)
	return d, nil
}

// Profile returns the immutable session profile.
func (d *Device) Profile() units.MotorProfile { return d.profile }

// ReadField reads the register holding f and extracts the field value.
func (d *Device) ReadField(f Field) (uint32, error) {
	reg, err := d.bus.ReadRegister(f.Reg)
	if err != nil {
		return 0, fmt.Errorf("reading %s (register 0x%02X): %w", f.Name, f.Reg, err)
	}
	return f.Extract(reg), nil
}

// WriteField performs a read-modify-write of the register holding f. The
// value is validated against the field width before the read, so an invalid
// value performs no bus traffic.
func (d *Device) WriteField(f Field, value uint32) error {
	if err := f.Check(value); err != nil {
		return err
	}
	reg, err := d.bus.ReadRegister(f.Reg)
	if err != nil {
		return fmt.Errorf("reading %s (register 0x%02X): %w", f.Name, f.Reg, err)
	}
	if err := d.bus.WriteRegister(f.Reg, f.Insert(reg, value)); err != nil {
		return fmt.Errorf("writing %s (register 0x%02X): %w", f.Name, f.Reg, err)
	}
	return nil
}
