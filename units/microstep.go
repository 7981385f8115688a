package units

// MicrostepsFromMRES resolves the active microsteps-per-fullstep multiplier
// from the raw CHOPCONF.MRES resolution code.
//
//	MRES 0 -> 256 (finest, chip default)
//	MRES 1 -> 128
//	MRES 2 ->  64
//	MRES 3 ->  32
//	MRES 4 ->  16
//	MRES 5 ->   8
//	MRES 6 ->   4
//	MRES 7 ->   2
//	MRES 8 ->   1 (fullstep mode)
func MicrostepsFromMRES(mres uint32) (uint32, error) {
	switch {
	case mres == 0:
		return 256, nil
	case mres == 8:
		return 1, nil
	case mres < 8:
		return 256 >> mres, nil
	default:
		return 0, ResolutionCodeError{Code: mres}
	}
}
