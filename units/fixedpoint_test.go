package units

import (
	"math"
	"testing"
)

func TestQ16FromFloat(t *testing.T) {
	testCases := []struct {
		value   float64
		expInt  uint32
		expFrac uint32
	}{
		{5.12, 5, 0x1EB8}, // floor(0.12 * 65536) = 7864
		{12.5, 12, 0x8000},
		{0.0, 0, 0},
		{1.0, 1, 0},
		{256.0, 256, 0}, // exactly integral: fractional part present and zero
		{0.5, 0, 0x8000},
		{65535.5, 65535, 0x8000},
	}

	for _, tc := range testCases {
		q, err := Q16FromFloat(tc.value)
		if err != nil {
			t.Errorf("Q16FromFloat(%g): unexpected error: %v", tc.value, err)
			continue
		}
		if q.Int() != tc.expInt || q.Frac() != tc.expFrac {
			t.Errorf("Q16FromFloat(%g) = %d + 0x%04X/65536, expected %d + 0x%04X/65536",
				tc.value, q.Int(), q.Frac(), tc.expInt, tc.expFrac)
		}
	}
}

func TestQ16FromFloatOutOfRange(t *testing.T) {
	for _, v := range []float64{-0.001, -1, 65536, 70000, math.NaN()} {
		if _, err := Q16FromFloat(v); err == nil {
			t.Errorf("Q16FromFloat(%g): expected error, got none", v)
		}
	}
}

func TestQ16RoundTrip(t *testing.T) {
	// Decoding must reproduce the original ratio within 1/65536.
	values := []float64{
		0.0001, 0.12, 0.5, 1.0 / 3.0, 5.12, 12.5, 100.7,
		1023.999, 4096.25, 65535.9999,
	}
	for _, v := range values {
		q, err := Q16FromFloat(v)
		if err != nil {
			t.Fatalf("Q16FromFloat(%g): %v", v, err)
		}
		decoded := q.Float64()
		if diff := math.Abs(decoded - v); diff >= 1.0/65536 {
			t.Errorf("round trip %g -> %v -> %g: error %g exceeds 1/65536", v, q, decoded, diff)
		}
		if decoded > v {
			t.Errorf("round trip %g -> %g: encoding must floor, not round up", v, decoded)
		}
	}
}

func TestQ16Bits(t *testing.T) {
	q, err := Q16FromFloat(5.12)
	if err != nil {
		t.Fatal(err)
	}
	if q.Bits() != 5<<16|0x1EB8 {
		t.Errorf("Bits() = 0x%08X, expected 0x%08X", q.Bits(), uint32(5<<16|0x1EB8))
	}
	if q.IsWhole() {
		t.Error("5.12 reported as whole")
	}
	whole, err := Q16FromFloat(7)
	if err != nil {
		t.Fatal(err)
	}
	if !whole.IsWhole() {
		t.Error("7.0 not reported as whole")
	}
}
