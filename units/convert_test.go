package units

import (
	"errors"
	"testing"
)

func evalProfile(t *testing.T) MotorProfile {
	t.Helper()
	p, err := NewMotorProfile(200, 256, 12000000)
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	return p
}

func TestVelocityToInternalGolden(t *testing.T) {
	// 1.5 rps * 51200 microsteps/turn = 76800 microsteps/s;
	// 76800 / (12MHz / 2 / 2^23) = 76800 * 2^24 / 12e6 = 107374.18 -> 107374
	p := evalProfile(t)
	got, err := VelocityToInternal(p, "VMAX", 1.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 107374 {
		t.Errorf("VMAX 1.5 rps = %d internal, expected 107374", got)
	}
}

func TestAccelToInternalGolden(t *testing.T) {
	// 100 rps^2 * 51200 = 5.12e6 microsteps/s^2;
	// 5.12e6 * 2^24 * 512 * 256 / (12e6)^2 = 78187.49 -> 78187
	p := evalProfile(t)
	got, err := AccelToInternal(p, "A1", 100.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 78187 {
		t.Errorf("A1 100 rps^2 = %d internal, expected 78187", got)
	}
}

func TestVelocityUsesCompositeMultiplier(t *testing.T) {
	// The multiplier is microsteps * fullsteps, not microsteps + fullsteps.
	p := evalProfile(t)
	got, err := VelocityToInternal(p, "VMAX", 1.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1 rps * 51200 / (12e6/2/2^23) = 71582.78 -> 71582
	if got != 71582 {
		t.Errorf("VMAX 1 rps = %d internal, expected 71582", got)
	}
	if p.MicrostepsPerTurn() != 51200 {
		t.Errorf("MicrostepsPerTurn = %d, expected 51200", p.MicrostepsPerTurn())
	}
}

func TestVelocityMonotonic(t *testing.T) {
	p := evalProfile(t)
	velocities := []float64{0, 0.001, 0.05, 0.1, 0.5, 0.7, 1.0, 1.5, 2.0, 10, 50, 100}
	prev := uint32(0)
	for i, v := range velocities {
		got, err := VelocityToInternal(p, "VMAX", v)
		if err != nil {
			t.Fatalf("velocity %g: %v", v, err)
		}
		if i > 0 && got < prev {
			t.Errorf("velocity %g -> %d internal, less than previous %d", v, got, prev)
		}
		prev = got
	}
}

func TestAccelMonotonic(t *testing.T) {
	p := evalProfile(t)
	accels := []float64{0, 1, 10, 60, 70, 90, 100, 500, 1000}
	prev := uint32(0)
	for i, a := range accels {
		got, err := AccelToInternal(p, "AMAX", a)
		if err != nil {
			t.Fatalf("accel %g: %v", a, err)
		}
		if i > 0 && got < prev {
			t.Errorf("accel %g -> %d internal, less than previous %d", a, got, prev)
		}
		prev = got
	}
}

func TestVelocityOverflow(t *testing.T) {
	p := evalProfile(t)
	_, err := VelocityToInternal(p, "VMAX", 200) // ~1.43e7 internal, over 2^23-1
	if err == nil {
		t.Fatal("expected overflow error, got none")
	}
	var of OverflowError
	if !errors.As(err, &of) {
		t.Fatalf("expected OverflowError, got %T (%v)", err, err)
	}
	if of.Field != "VMAX" || of.Value != 200 || of.Unit != "rps" {
		t.Errorf("overflow error missing context: %+v", of)
	}
	if of.Max != MaxInternalVelocity {
		t.Errorf("overflow max = %d, expected %d", of.Max, MaxInternalVelocity)
	}
}

func TestAccelOverflow(t *testing.T) {
	p := evalProfile(t)
	_, err := AccelToInternal(p, "DMAX", 30000)
	if err == nil {
		t.Fatal("expected overflow error, got none")
	}
	var of OverflowError
	if !errors.As(err, &of) {
		t.Fatalf("expected OverflowError, got %T (%v)", err, err)
	}
	if of.Field != "DMAX" || of.Unit != "rps^2" {
		t.Errorf("overflow error missing context: %+v", of)
	}
}

func TestNegativeInputsRejected(t *testing.T) {
	p := evalProfile(t)
	if _, err := VelocityToInternal(p, "VMAX", -1); err == nil {
		t.Error("negative velocity: expected error")
	}
	if _, err := AccelToInternal(p, "A1", -0.5); err == nil {
		t.Error("negative acceleration: expected error")
	}
}
