package units

// EncoderScale relates an ABN encoder's resolution to the motor's microstep
// resolution. The scale ratio is the number of microsteps represented by one
// encoder tick:
//
//	ratio = (fullsteps_per_turn * microsteps_per_fullstep) / ticks_per_turn
//
// and is written to ENC_CONST in one of two encodings selected by
// ENCMODE.ENC_SEL_DECIMAL.
type EncoderScale struct {
	TicksPerTurn      int
	microstepsPerTurn uint32
}

// NewEncoderScale validates ticksPerTurn (a division input) and captures the
// profile's composite microstep resolution.
func NewEncoderScale(p MotorProfile, ticksPerTurn int) (EncoderScale, error) {
	if ticksPerTurn <= 0 {
		return EncoderScale{}, EncoderResolutionError{TicksPerTurn: ticksPerTurn}
	}
	return EncoderScale{
		TicksPerTurn:      ticksPerTurn,
		microstepsPerTurn: p.MicrostepsPerTurn(),
	}, nil
}

// Ratio returns the real-valued (non-truncating) scale ratio.
func (s EncoderScale) Ratio() float64 {
	return float64(s.microstepsPerTurn) / float64(s.TicksPerTurn)
}

// Q16 encodes the ratio in the default Q16.16 mode. Ratios of 65536 or more
// do not fit the 16-bit integer field and are reported as an overflow of
// ENC_CONST.
func (s EncoderScale) Q16() (Q16, error) {
	ratio := s.Ratio()
	q, err := Q16FromFloat(ratio)
	if err != nil {
		return 0, OverflowError{
			Field:    "ENC_CONST",
			Value:    ratio,
			Unit:     "microsteps/tick",
			Internal: int64(ratio),
			Max:      1<<16 - 1,
		}
	}
	return q, nil
}

// Decimal encodes the ratio in the decimal scaling sub-mode: a 16-bit
// integer part and a single base-10 fractional digit (12.5 is written as
// integer 12, decimal 5). A ratio that is exactly integral yields digit 0.
func (s EncoderScale) Decimal() (integer, digit uint32, err error) {
	ratio := s.Ratio()
	if ratio >= 1<<16 {
		return 0, 0, OverflowError{
			Field:    "ENC_CONST",
			Value:    ratio,
			Unit:     "microsteps/tick",
			Internal: int64(ratio),
			Max:      1<<16 - 1,
		}
	}
	integer = uint32(ratio)
	digit = uint32((ratio - float64(integer)) * 10)
	return integer, digit, nil
}
