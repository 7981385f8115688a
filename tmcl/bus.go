package tmcl

import "fmt"

// Bus adapts a Transport to the register read/write contract the tmc5160
// package consumes, using the motion-controller channel register access
// commands. motor selects the axis on multi-axis evaluation boards.
type Bus struct {
	transport *Transport
	motor     uint8
}

// NewBus creates a register bus for one motor channel.
func NewBus(transport *Transport, motor uint8) *Bus {
	return &Bus{transport: transport, motor: motor}
}

// ReadRegister reads a full 32-bit register.
func (b *Bus) ReadRegister(addr uint8) (uint32, error) {
	reply, err := b.transport.Exchange(Request{
		Command: ReadMC,
		Type:    addr,
		Motor:   b.motor,
	})
	if err != nil {
		return 0, fmt.Errorf("register 0x%02X read: %w", addr, err)
	}
	return uint32(reply.Value), nil
}

// WriteRegister writes a full 32-bit register.
func (b *Bus) WriteRegister(addr uint8, value uint32) error {
	if _, err := b.transport.Exchange(Request{
		Command: WriteMC,
		Type:    addr,
		Motor:   b.motor,
		Value:   int32(value),
	}); err != nil {
		return fmt.Errorf("register 0x%02X write: %w", addr, err)
	}
	return nil
}
