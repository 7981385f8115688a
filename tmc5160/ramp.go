package tmc5160

import (
	"fmt"

	"stepconf/units"
)

// ConfigureRamp converts the eight ramp parameters to internal units and
// writes the ramp generator registers. All eight conversions are checked
// before the first write; the chip latches ramp parameters independently
// per register, so there is no atomicity requirement across the writes and
// a failure simply names the register that did not take.
func (d *Device) ConfigureRamp(r units.RampProfile) error {
	ramp, err := units.ConvertRamp(d.profile, r)
	if err != nil {
		return err
	}

	writes := []struct {
		name     string
		reg      uint8
		value    uint32
		physical float64
		unit     string
	}{
		{"A1", A1, ramp.A1, r.A1, "rps^2"},
		{"V1", V1, ramp.V1, r.V1, "rps"},
		{"D1", D1, ramp.D1, r.D1, "rps^2"},
		{"DMAX", DMAX, ramp.DMax, r.DMax, "rps^2"},
		{"VSTART", VSTART, ramp.VStart, r.VStart, "rps"},
		{"VSTOP", VSTOP, ramp.VStop, r.VStop, "rps"},
		{"AMAX", AMAX, ramp.AMax, r.AMax, "rps^2"},
		{"VMAX", VMAX, ramp.VMax, r.VMax, "rps"},
	}
	for _, w := range writes {
		if err := d.bus.WriteRegister(w.reg, w.value); err != nil {
			return fmt.Errorf("writing %s (register 0x%02X): %w", w.name, w.reg, err)
		}
		d.logger.Infof("written %s to %d internal units (requested %g %s)",
			w.name, w.value, w.physical, w.unit)
	}
	return nil
}
