package tmc5160

import "fmt"

// Field describes a named sub-field of a TMC5160 register. Mask is the
// field width mask applied after shifting, so a field value v occupies bits
// (v & Mask) << Shift of the register.
type Field struct {
	Name  string
	Reg   uint8
	Mask  uint32
	Shift uint8
}

// Fields referenced by the configuration operations.
var (
	// CHOPCONF.MRES: microstep resolution code 0-8
	FieldMRES = Field{Name: "MRES", Reg: CHOPCONF, Mask: 0x0F, Shift: 24}

	// ENCMODE.ENC_SEL_DECIMAL: ENC_CONST scaling mode, false selects Q16.16
	FieldEncSelDecimal = Field{Name: "ENC_SEL_DECIMAL", Reg: ENCMODE, Mask: 0x01, Shift: 10}

	// ENC_CONST: integer part in the upper half-word
	FieldEncConstInteger = Field{Name: "ENC_CONST_INTEGER", Reg: ENC_CONST, Mask: 0xFFFF, Shift: 16}

	// ENC_CONST: fractional part (Q16.16 mode) or decimal digit (decimal
	// mode) in the lower half-word
	FieldEncConstFractional = Field{Name: "ENC_CONST_FRACTIONAL", Reg: ENC_CONST, Mask: 0xFFFF, Shift: 0}
)

// Registers maps register names to addresses for diagnostic tooling (the
// interactive console resolves operator input through it).
var Registers = map[string]uint8{
	"GCONF":         GCONF,
	"GSTAT":         GSTAT,
	"IFCNT":         IFCNT,
	"SLAVECONF":     SLAVECONF,
	"IOIN":          IOIN,
	"X_COMPARE":     X_COMPARE,
	"OTP_READ":      OTP_READ,
	"FACTORY_CONF":  FACTORY_CONF,
	"SHORT_CONF":    SHORT_CONF,
	"DRV_CONF":      DRV_CONF,
	"GLOBALSCALER":  GLOBALSCALER,
	"OFFSET_READ":   OFFSET_READ,
	"IHOLD_IRUN":    IHOLD_IRUN,
	"TPOWERDOWN":    TPOWERDOWN,
	"TSTEP":         TSTEP,
	"TPWMTHRS":      TPWMTHRS,
	"TCOOLTHRS":     TCOOLTHRS,
	"THIGH":         THIGH,
	"RAMPMODE":      RAMPMODE,
	"XACTUAL":       XACTUAL,
	"VACTUAL":       VACTUAL,
	"VSTART":        VSTART,
	"A1":            A1,
	"V1":            V1,
	"AMAX":          AMAX,
	"VMAX":          VMAX,
	"DMAX":          DMAX,
	"D1":            D1,
	"VSTOP":         VSTOP,
	"TZEROWAIT":     TZEROWAIT,
	"XTARGET":       XTARGET,
	"VDCMIN":        VDCMIN,
	"SW_MODE":       SW_MODE,
	"RAMP_STAT":     RAMP_STAT,
	"XLATCH":        XLATCH,
	"ENCMODE":       ENCMODE,
	"X_ENC":         X_ENC,
	"ENC_CONST":     ENC_CONST,
	"ENC_STATUS":    ENC_STATUS,
	"ENC_LATCH":     ENC_LATCH,
	"ENC_DEVIATION": ENC_DEVIATION,
	"MSCNT":         MSCNT,
	"MSCURACT":      MSCURACT,
	"CHOPCONF":      CHOPCONF,
	"COOLCONF":      COOLCONF,
	"DRV_STATUS":    DRV_STATUS,
	"PWMCONF":       PWMCONF,
	"PWM_SCALE":     PWM_SCALE,
	"PWM_AUTO":      PWM_AUTO,
	"LOST_STEPS":    LOST_STEPS,
}

// FieldsByName resolves the named sub-fields for diagnostic tooling.
var FieldsByName = map[string]Field{
	FieldMRES.Name:               FieldMRES,
	FieldEncSelDecimal.Name:      FieldEncSelDecimal,
	FieldEncConstInteger.Name:    FieldEncConstInteger,
	FieldEncConstFractional.Name: FieldEncConstFractional,
}

// Extract returns the field's value from a full register image.
func (f Field) Extract(reg uint32) uint32 {
	return (reg >> f.Shift) & f.Mask
}

// Insert returns reg with the field replaced by value.
func (f Field) Insert(reg, value uint32) uint32 {
	return (reg &^ (f.Mask << f.Shift)) | ((value & f.Mask) << f.Shift)
}

// Check reports whether value fits the field's width.
func (f Field) Check(value uint32) error {
	if value&^f.Mask != 0 {
		return fmt.Errorf("value 0x%X does not fit field %s (mask 0x%X)", value, f.Name, f.Mask)
	}
	return nil
}
