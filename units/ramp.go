package units

import "fmt"

// RampProfile holds the eight physical parameters of one trapezoidal ramp:
// four threshold velocities in rotations per second and four acceleration /
// deceleration slopes in rotations per second squared. A profile is built
// per motion request, converted once, and discarded after the register
// writes.
type RampProfile struct {
	VStart float64 // start velocity, rps
	V1     float64 // first phase threshold velocity, rps
	VMax   float64 // maximum ramp velocity, rps
	VStop  float64 // stop velocity, rps

	A1   float64 // acceleration between VSTART and V1, rps^2
	AMax float64 // acceleration between V1 and VMAX, rps^2
	D1   float64 // deceleration between V1 and VSTOP, rps^2
	DMax float64 // deceleration between VMAX and V1, rps^2
}

// DefaultRamp returns a conservative profile suitable for first bring-up of
// a typical NEMA17 on the evaluation board.
func DefaultRamp() RampProfile {
	return RampProfile{
		VStart: 0.05,
		V1:     0.7,
		VMax:   1.5,
		VStop:  0.05,
		A1:     100.0,
		AMax:   70.0,
		D1:     90.0,
		DMax:   60.0,
	}
}

// Validate checks non-negativity of every field and the ramp generator's
// threshold ordering: VSTART <= V1 <= VMAX and VSTOP <= V1.
func (r RampProfile) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
		unit  string
	}{
		{"VSTART", r.VStart, "rps"},
		{"V1", r.V1, "rps"},
		{"VMAX", r.VMax, "rps"},
		{"VSTOP", r.VStop, "rps"},
		{"A1", r.A1, "rps^2"},
		{"AMAX", r.AMax, "rps^2"},
		{"D1", r.D1, "rps^2"},
		{"DMAX", r.DMax, "rps^2"},
	} {
		if f.value < 0 {
			return fmt.Errorf("%s must be non-negative, got %g %s", f.name, f.value, f.unit)
		}
	}
	if r.VStart > r.V1 {
		return fmt.Errorf("VSTART (%g rps) must not exceed V1 (%g rps)", r.VStart, r.V1)
	}
	if r.V1 > r.VMax {
		return fmt.Errorf("V1 (%g rps) must not exceed VMAX (%g rps)", r.V1, r.VMax)
	}
	if r.VStop > r.V1 {
		return fmt.Errorf("VSTOP (%g rps) must not exceed V1 (%g rps)", r.VStop, r.V1)
	}
	return nil
}

// InternalRamp is a RampProfile converted to register-ready integers.
type InternalRamp struct {
	VStart uint32
	V1     uint32
	VMax   uint32
	VStop  uint32
	A1     uint32
	AMax   uint32
	D1     uint32
	DMax   uint32
}

// ConvertRamp converts and range-checks all eight fields. Conversion errors
// are detected here, before any register write for the profile is attempted.
func ConvertRamp(p MotorProfile, r RampProfile) (InternalRamp, error) {
	if err := r.Validate(); err != nil {
		return InternalRamp{}, err
	}

	var (
		out InternalRamp
		err error
	)
	if out.VStart, err = VelocityToInternal(p, "VSTART", r.VStart); err != nil {
		return InternalRamp{}, err
	}
	if out.V1, err = VelocityToInternal(p, "V1", r.V1); err != nil {
		return InternalRamp{}, err
	}
	if out.VMax, err = VelocityToInternal(p, "VMAX", r.VMax); err != nil {
		return InternalRamp{}, err
	}
	if out.VStop, err = VelocityToInternal(p, "VSTOP", r.VStop); err != nil {
		return InternalRamp{}, err
	}
	if out.A1, err = AccelToInternal(p, "A1", r.A1); err != nil {
		return InternalRamp{}, err
	}
	if out.AMax, err = AccelToInternal(p, "AMAX", r.AMax); err != nil {
		return InternalRamp{}, err
	}
	if out.D1, err = AccelToInternal(p, "D1", r.D1); err != nil {
		return InternalRamp{}, err
	}
	if out.DMax, err = AccelToInternal(p, "DMAX", r.DMax); err != nil {
		return InternalRamp{}, err
	}
	return out, nil
}
