// Package tmc5160 implements register-level configuration of the TMC5160
// stepper driver: the motor profile (microstep resolution, clock), the ABN
// encoder scaling unit and the ramp generator. Unit conversion lives in the
// units package; this package owns the register map and the write sequences.
package tmc5160

// TMC5160 Register Addresses
// Based on TMC5160 datasheet Rev. 1.18
const (
	// General Configuration Registers (0x00-0x0F)
	GCONF        = 0x00 // Global configuration flags
	GSTAT        = 0x01 // Global status flags
	IFCNT        = 0x02 // Interface transmission counter
	SLAVECONF    = 0x03 // Slave configuration
	IOIN         = 0x04 // Reads the state of all input pins
	X_COMPARE    = 0x05 // Position comparison register
	OTP_READ     = 0x07 // OTP memory read access
	FACTORY_CONF = 0x08 // Factory configuration
	SHORT_CONF   = 0x09 // Short detector configuration
	DRV_CONF     = 0x0A // Driver configuration
	GLOBALSCALER = 0x0B // Global current scaler
	OFFSET_READ  = 0x0C // Phase offset calibration read back

	// Velocity Dependent Driver Feature Control (0x10-0x15)
	IHOLD_IRUN = 0x10 // Driver current control
	TPOWERDOWN = 0x11 // Delay after standstill
	TSTEP      = 0x12 // Measured time between two steps (read only)
	TPWMTHRS   = 0x13 // Upper velocity for StealthChop
	TCOOLTHRS  = 0x14 // Lower threshold velocity for CoolStep
	THIGH      = 0x15 // High velocity threshold

	// Ramp Generator Motion Control (0x20-0x2D)
	RAMPMODE  = 0x20 // Ramp mode (0=positioning, 1=velocity positive, 2=velocity negative, 3=hold)
	XACTUAL   = 0x21 // Actual motor position (signed, read/write)
	VACTUAL   = 0x22 // Actual motor velocity (read only)
	VSTART    = 0x23 // Motor start velocity
	A1        = 0x24 // First acceleration between VSTART and V1
	V1        = 0x25 // First acceleration/deceleration phase threshold velocity
	AMAX      = 0x26 // Second acceleration between V1 and VMAX
	VMAX      = 0x27 // Maximum velocity (motion ramp)
	DMAX      = 0x28 // Deceleration between VMAX and V1
	D1        = 0x2A // Deceleration between V1 and VSTOP
	VSTOP     = 0x2B // Motor stop velocity
	TZEROWAIT = 0x2C // Waiting time after ramping down to zero velocity
	XTARGET   = 0x2D // Target position (signed)

	// Ramp Generator Driver Feature Control (0x33-0x36)
	VDCMIN    = 0x33 // Automatic commutation dcStep minimum velocity
	SW_MODE   = 0x34 // Switch mode configuration
	RAMP_STAT = 0x35 // Ramp and reference switch status
	XLATCH    = 0x36 // Latched position for next interrupt

	// Encoder Registers (0x38-0x3D)
	ENCMODE       = 0x38 // Encoder configuration and use of N channel
	X_ENC         = 0x39 // Actual encoder position
	ENC_CONST     = 0x3A // Encoder scaling constant (Q16.16 or decimal)
	ENC_STATUS    = 0x3B // Encoder status information
	ENC_LATCH     = 0x3C // Encoder latch position
	ENC_DEVIATION = 0x3D // Maximum deviation between encoder and commanded position

	// Microstepping Control Registers (0x60-0x6B)
	MSLUT0     = 0x60 // Microstep table entry 0
	MSLUT1     = 0x61 // Microstep table entry 1
	MSLUT2     = 0x62 // Microstep table entry 2
	MSLUT3     = 0x63 // Microstep table entry 3
	MSLUT4     = 0x64 // Microstep table entry 4
	MSLUT5     = 0x65 // Microstep table entry 5
	MSLUT6     = 0x66 // Microstep table entry 6
	MSLUT7     = 0x67 // Microstep table entry 7
	MSLUTSEL   = 0x68 // Microstep table selector
	MSLUTSTART = 0x69 // Microstep table start offset
	MSCNT      = 0x6A // Microstep counter (read only)
	MSCURACT   = 0x6B // Actual microstep current (read only)

	// Driver Registers (0x6C-0x73)
	CHOPCONF   = 0x6C // Chopper configuration (holds MRES)
	COOLCONF   = 0x6D // CoolStep configuration
	DCCTRL     = 0x6E // dcStep automatic commutation
	DRV_STATUS = 0x6F // Driver status flags and current level read back
	PWMCONF    = 0x70 // StealthChop PWM configuration
	PWM_SCALE  = 0x71 // PWM scale value (read only)
	PWM_AUTO   = 0x72 // PWM automatic scale (read only)
	LOST_STEPS = 0x73 // Lost steps counter (dcStep)
)

// ENCMODE Register Bit Definitions
const (
	ENCMODE_POL_A           = 1 << 0  // A polarity
	ENCMODE_POL_B           = 1 << 1  // B polarity
	ENCMODE_POL_N           = 1 << 2  // N polarity
	ENCMODE_IGNORE_AB       = 1 << 3  // Ignore A and B for N event
	ENCMODE_CLR_CONT        = 1 << 4  // Continuously clear X_ENC on N event
	ENCMODE_CLR_ONCE        = 1 << 5  // Clear X_ENC on next N event only
	ENCMODE_POS_EDGE        = 1 << 6  // N event on positive edge
	ENCMODE_NEG_EDGE        = 1 << 7  // N event on negative edge
	ENCMODE_CLR_ENC_X       = 1 << 8  // Clear encoder counter on N event
	ENCMODE_LATCH_X_ACT     = 1 << 9  // Latch XACTUAL with X_ENC
	ENCMODE_ENC_SEL_DECIMAL = 1 << 10 // ENC_CONST decimal scaling (0 = Q16.16)
)

// Ramp Modes (RAMPMODE register)
const (
	MODE_POSITION     = 0 // Positioning mode (uses XTARGET)
	MODE_VELOCITY_POS = 1 // Velocity mode (positive VMAX)
	MODE_VELOCITY_NEG = 2 // Velocity mode (negative VMAX)
	MODE_HOLD         = 3 // Hold mode (velocity = 0)
)

// SPI Access
const (
	WRITE_BIT = 0x80 // Write access bit (set bit 7)
	READ_BIT  = 0x00 // Read access (bit 7 = 0)
)
