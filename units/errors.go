package units

import "fmt"

// ResolutionCodeError reports a CHOPCONF.MRES code outside the documented
// 0-8 range. The chip should never report one, but a resolver that silently
// produced a microstep count from a bad code would corrupt every conversion
// downstream of it.
type ResolutionCodeError struct {
	Code uint32
}

func (e ResolutionCodeError) Error() string {
	return fmt.Sprintf("invalid microstep resolution code %d (MRES must be 0-8)", e.Code)
}

// EncoderResolutionError reports a non-positive encoder ticks-per-turn
// value. Ticks per turn is a division input, so it is rejected before any
// register write is attempted.
type EncoderResolutionError struct {
	TicksPerTurn int
}

func (e EncoderResolutionError) Error() string {
	return fmt.Sprintf("invalid encoder resolution %d ticks/turn (must be a positive integer, see P/R on the encoder body)", e.TicksPerTurn)
}

// OverflowError reports a physical value that converts to an integer outside
// the destination register's range. The physical value and its unit are kept
// so the operator can correct the input; silent truncation would command a
// motion profile grossly different from the requested one.
type OverflowError struct {
	Field    string  // destination register or field name
	Value    float64 // requested physical value
	Unit     string  // physical unit the value was supplied in
	Internal int64   // converted internal value
	Max      int64   // register maximum
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("%s overflow: %g %s converts to %d internal units, register maximum is %d",
		e.Field, e.Value, e.Unit, e.Internal, e.Max)
}
