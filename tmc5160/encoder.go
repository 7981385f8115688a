package tmc5160

import "stepconf/units"

// ConfigureEncoder writes the ABN encoder scaling constant for an encoder
// with the given ticks-per-turn resolution (P/R on Trinamic encoder bodies).
//
// The scaling unit is one logical configuration spread over three field
// writes: the mode select flag (false selects Q16.16), the integer part and
// the fractional/decimal part. Validation and conversion happen before the
// first write; a transport failure after the first write leaves the device
// partially reconfigured and is reported as a *PartialConfigError.
func (d *Device) ConfigureEncoder(ticksPerTurn int, decimal bool) error {
	scale, err := units.NewEncoderScale(d.profile, ticksPerTurn)
	if err != nil {
		return err
	}

	var mode, integer, frac uint32
	if decimal {
		mode = 1
		integer, frac, err = scale.Decimal()
	} else {
		var q units.Q16
		q, err = scale.Q16()
		integer, frac = q.Int(), q.Frac()
	}
	if err != nil {
		return err
	}

	writes := []struct {
		field Field
		value uint32
	}{
		{FieldEncSelDecimal, mode},
		{FieldEncConstInteger, integer},
		{FieldEncConstFractional, frac},
	}
	for i, w := range writes {
		if err := d.WriteField(w.field, w.value); err != nil {
			if i == 0 {
				return err // nothing written yet, no partial state
			}
			return &PartialConfigError{
				Op:      "encoder scaling",
				Written: i,
				Total:   len(writes),
				Cause:   err,
			}
		}
	}

	d.logger.Infof("encoder scaling: %d microsteps, %d motor steps, %d ticks/turn",
		d.profile.MicrostepsPerFullstep, d.profile.FullstepsPerTurn, ticksPerTurn)
	if decimal {
		d.logger.Infof("decimal: %g -> %d.%d", scale.Ratio(), integer, frac)
	} else {
		d.logger.Infof("Q16.16: %g -> int 0x%04X, frac 0x%04X", scale.Ratio(), integer, frac)
	}
	return nil
}
