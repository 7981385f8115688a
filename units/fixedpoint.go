package units

import (
	"fmt"
	"math"
)

// Q16 is an unsigned fixed-point value with 16 integer bits and 16
// fractional bits, the encoding the TMC5160 uses for ENC_CONST when decimal
// scaling is off. One fractional unit is 1/65536.
type Q16 uint32

// Q16FromFloat encodes v, which must lie in [0, 65536). The fractional part
// is floor((v - floor(v)) * 65536), so the encoded value never exceeds the
// input and is exact within 1/65536.
func Q16FromFloat(v float64) (Q16, error) {
	if math.IsNaN(v) || v < 0 || v >= 1<<16 {
		return 0, fmt.Errorf("value %g out of Q16.16 range [0, 65536)", v)
	}
	integer := math.Floor(v)
	frac := math.Floor((v - integer) * (1 << 16))
	return Q16(uint32(integer)<<16 | uint32(frac)), nil
}

// Int returns the 16-bit integer part.
func (q Q16) Int() uint32 { return uint32(q >> 16) }

// Frac returns the 16-bit fractional part in units of 1/65536.
func (q Q16) Frac() uint32 { return uint32(q & 0xFFFF) }

// IsWhole reports whether the value has no fractional part.
func (q Q16) IsWhole() bool { return q&0xFFFF == 0 }

// Float64 decodes the fixed-point value back to a float.
func (q Q16) Float64() float64 {
	return float64(q) / (1 << 16)
}

// Bits returns the raw 32-bit register image, integer part in the upper
// half-word, fraction in the lower.
func (q Q16) Bits() uint32 { return uint32(q) }

func (q Q16) String() string {
	return fmt.Sprintf("0x%04X.%04X", q.Int(), q.Frac())
}
