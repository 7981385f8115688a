package units

import (
	"fmt"
	"math"
)

// Register ranges for converted values. The ramp generator's velocity
// registers hold 23-bit unsigned magnitudes, the acceleration registers
// 24-bit.
const (
	MaxInternalVelocity = 1<<23 - 1
	MaxInternalAccel    = 1<<24 - 1
)

// VelocityToInternal converts a velocity in rotations per second to the ramp
// generator's internal velocity unit (datasheet: v[Hz] = v_internal *
// (fCLK/2/2^23)). field names the destination register for error reporting.
func VelocityToInternal(p MotorProfile, field string, rps float64) (uint32, error) {
	if math.IsNaN(rps) || rps < 0 {
		return 0, fmt.Errorf("%s: velocity %g rps must be non-negative", field, rps)
	}
	microstepVelocity := rps * float64(p.MicrostepsPerTurn())
	internal := math.Floor(microstepVelocity / (float64(p.ClockHz) / 2 / (1 << 23)))
	if internal > MaxInternalVelocity {
		return 0, OverflowError{
			Field:    field,
			Value:    rps,
			Unit:     "rps",
			Internal: int64(internal),
			Max:      MaxInternalVelocity,
		}
	}
	return uint32(internal), nil
}

// AccelToInternal converts an acceleration in rotations per second squared
// to the internal acceleration unit (datasheet: a[Hz/s] = a_internal *
// fCLK^2 / (512*256) / 2^24). field names the destination register for error
// reporting.
func AccelToInternal(p MotorProfile, field string, rps2 float64) (uint32, error) {
	if math.IsNaN(rps2) || rps2 < 0 {
		return 0, fmt.Errorf("%s: acceleration %g rps^2 must be non-negative", field, rps2)
	}
	microstepAccel := rps2 * float64(p.MicrostepsPerTurn())
	clk := float64(p.ClockHz)
	internal := math.Floor(microstepAccel * (1 << 24) * 512 * 256 / (clk * clk))
	if internal > MaxInternalAccel {
		return 0, OverflowError{
			Field:    field,
			Value:    rps2,
			Unit:     "rps^2",
			Internal: int64(internal),
			Max:      MaxInternalAccel,
		}
	}
	return uint32(internal), nil
}
