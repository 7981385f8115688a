// Package units converts physical motion parameters (rotations per second,
// rotations per second squared, encoder ticks per turn) into the fixed-point
// register encodings consumed by the TMC5160 ramp generator and encoder
// scaling unit.
//
// All conversions are pure computation over a MotorProfile; register I/O
// lives in the tmc5160 package.
package units

import "fmt"

// Common profile values for TMC5160 evaluation setups.
const (
	DefaultFullstepsPerTurn = 200      // typical 1.8 degree stepper
	DefaultClockHz          = 12000000 // internal oscillator
	DefaultMicrosteps       = 256      // CHOPCONF.MRES = 0
)

// MotorProfile is the per-session motor configuration. It is created once
// when a device session starts and never mutated afterwards; the microstep
// value is resolved from a live CHOPCONF.MRES read at that point and cached
// here for the profile's lifetime.
type MotorProfile struct {
	FullstepsPerTurn      uint32 // fullsteps per mechanical turn, usually 200 (400 on precision steppers)
	MicrostepsPerFullstep uint32 // from MicrostepsFromMRES
	ClockHz               uint32 // driver clock frequency in Hz
}

// NewMotorProfile validates and builds a MotorProfile.
func NewMotorProfile(fullstepsPerTurn, microstepsPerFullstep, clockHz uint32) (MotorProfile, error) {
	if fullstepsPerTurn == 0 {
		return MotorProfile{}, fmt.Errorf("fullsteps per turn must be positive, got %d", fullstepsPerTurn)
	}
	if microstepsPerFullstep == 0 || microstepsPerFullstep > 256 {
		return MotorProfile{}, fmt.Errorf("microsteps per fullstep must be 1-256, got %d", microstepsPerFullstep)
	}
	if clockHz == 0 {
		return MotorProfile{}, fmt.Errorf("clock frequency must be positive, got %d Hz", clockHz)
	}
	return MotorProfile{
		FullstepsPerTurn:      fullstepsPerTurn,
		MicrostepsPerFullstep: microstepsPerFullstep,
		ClockHz:               clockHz,
	}, nil
}

// MicrostepsPerTurn returns the composite resolution multiplier. Both the
// velocity and the acceleration conversion scale by this same product.
func (p MotorProfile) MicrostepsPerTurn() uint32 {
	return p.FullstepsPerTurn * p.MicrostepsPerFullstep
}
