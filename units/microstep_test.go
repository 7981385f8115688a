package units

import (
	"errors"
	"testing"
)

func TestMicrostepsFromMRES(t *testing.T) {
	testCases := []struct {
		mres     uint32
		expected uint32
	}{
		{0, 256},
		{1, 128},
		{2, 64},
		{3, 32},
		{4, 16},
		{5, 8},
		{6, 4},
		{7, 2},
		{8, 1},
	}

	for _, tc := range testCases {
		got, err := MicrostepsFromMRES(tc.mres)
		if err != nil {
			t.Errorf("MRES %d: unexpected error: %v", tc.mres, err)
			continue
		}
		if got != tc.expected {
			t.Errorf("MRES %d: got %d microsteps, expected %d", tc.mres, got, tc.expected)
		}
	}
}

func TestMicrostepsFromMRESOutOfRange(t *testing.T) {
	for _, mres := range []uint32{9, 10, 15, 0xFF, 0xFFFFFFFF} {
		_, err := MicrostepsFromMRES(mres)
		if err == nil {
			t.Errorf("MRES %d: expected error, got none", mres)
			continue
		}
		var rce ResolutionCodeError
		if !errors.As(err, &rce) {
			t.Errorf("MRES %d: expected ResolutionCodeError, got %T (%v)", mres, err, err)
			continue
		}
		if rce.Code != mres {
			t.Errorf("MRES %d: error carries code %d", mres, rce.Code)
		}
	}
}

func TestMicrostepsFromMRESDeterministic(t *testing.T) {
	for mres := uint32(0); mres <= 8; mres++ {
		first, err := MicrostepsFromMRES(mres)
		if err != nil {
			t.Fatalf("MRES %d: %v", mres, err)
		}
		second, err := MicrostepsFromMRES(mres)
		if err != nil {
			t.Fatalf("MRES %d: %v", mres, err)
		}
		if first != second {
			t.Errorf("MRES %d: not deterministic (%d != %d)", mres, first, second)
		}
	}
}
