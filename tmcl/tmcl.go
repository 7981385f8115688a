// Package tmcl implements the TMCL module protocol spoken by Trinamic
// evaluation boards over their USB serial bridge: fixed nine-byte request
// and reply datagrams with an additive checksum, strictly one reply per
// request.
package tmcl

import (
	"encoding/binary"
	"fmt"
)

// DatagramSize is the fixed size of every TMCL request and reply.
const DatagramSize = 9

// DefaultModuleAddress is the address evaluation boards answer on unless
// reconfigured.
const DefaultModuleAddress = 1

// DefaultHostAddress is the reply address used for the host.
const DefaultHostAddress = 2

// TMCL command opcodes. Register access on evaluation boards goes through
// the motion-controller / driver channel commands; the axis and global
// parameter commands are listed for the diagnostic console.
const (
	ROR  = 1  // rotate right
	ROL  = 2  // rotate left
	MST  = 3  // motor stop
	MVP  = 4  // move to position
	SAP  = 5  // set axis parameter
	GAP  = 6  // get axis parameter
	STAP = 7  // store axis parameter
	RSAP = 8  // restore axis parameter
	SGP  = 9  // set global parameter
	GGP  = 10 // get global parameter

	GetFirmwareVersion = 136 // firmware version probe

	WriteMC  = 146 // write motion controller register
	ReadMC   = 147 // read motion controller register
	WriteDRV = 148 // write driver register
	ReadDRV  = 149 // read driver register
)

// TMCL reply status codes.
const (
	StatusOK                  = 100
	StatusCommandLoaded       = 101
	StatusWrongChecksum       = 1
	StatusInvalidCommand      = 2
	StatusWrongType           = 3
	StatusInvalidValue        = 4
	StatusEEPROMLocked        = 5
	StatusCommandNotAvailable = 6
)

// Request is one host-to-module TMCL datagram.
type Request struct {
	ModuleAddress uint8
	Command       uint8
	Type          uint8 // command-specific: parameter number or register address
	Motor         uint8 // motor/bank number
	Value         int32
}

// Encode serializes the request: address, command, type, motor, a big-endian
// 32-bit value and the checksum byte.
func (r Request) Encode() [DatagramSize]byte {
	var buf [DatagramSize]byte
	buf[0] = r.ModuleAddress
	buf[1] = r.Command
	buf[2] = r.Type
	buf[3] = r.Motor
	binary.BigEndian.PutUint32(buf[4:8], uint32(r.Value))
	buf[8] = Checksum(buf[:8])
	return buf
}

// Reply is one module-to-host TMCL datagram.
type Reply struct {
	ReplyAddress  uint8
	ModuleAddress uint8
	Status        uint8
	Command       uint8
	Value         int32
}

// DecodeReply parses and checksum-verifies a reply datagram.
func DecodeReply(buf []byte) (Reply, error) {
	if len(buf) != DatagramSize {
		return Reply{}, fmt.Errorf("reply datagram is %d bytes, expected %d", len(buf), DatagramSize)
	}
	if sum := Checksum(buf[:8]); sum != buf[8] {
		return Reply{}, fmt.Errorf("reply checksum mismatch: computed 0x%02X, received 0x%02X", sum, buf[8])
	}
	return Reply{
		ReplyAddress:  buf[0],
		ModuleAddress: buf[1],
		Status:        buf[2],
		Command:       buf[3],
		Value:         int32(binary.BigEndian.Uint32(buf[4:8])),
	}, nil
}

// Err maps a non-success status to an error, nil otherwise.
func (r Reply) Err() error {
	switch r.Status {
	case StatusOK, StatusCommandLoaded:
		return nil
	case StatusWrongChecksum:
		return fmt.Errorf("module reported wrong checksum (command %d)", r.Command)
	case StatusInvalidCommand:
		return fmt.Errorf("module rejected command %d as invalid", r.Command)
	case StatusWrongType:
		return fmt.Errorf("module rejected type field of command %d", r.Command)
	case StatusInvalidValue:
		return fmt.Errorf("module rejected value of command %d", r.Command)
	case StatusEEPROMLocked:
		return fmt.Errorf("module EEPROM is locked (command %d)", r.Command)
	case StatusCommandNotAvailable:
		return fmt.Errorf("command %d not available on this module", r.Command)
	default:
		return fmt.Errorf("module returned status %d for command %d", r.Status, r.Command)
	}
}
