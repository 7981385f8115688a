package tmcl

import "testing"

func TestChecksum(t *testing.T) {
	testCases := []struct {
		data     []byte
		expected uint8
	}{
		{[]byte{}, 0},
		{[]byte{1}, 1},
		{[]byte{1, 2, 3}, 6},
		{[]byte{0xFF, 0x01}, 0}, // wraps mod 256
		{[]byte{0x01, 136, 1, 0, 0, 0, 0, 0}, 138},
	}
	for i, tc := range testCases {
		if got := Checksum(tc.data); got != tc.expected {
			t.Errorf("test case %d: Checksum(%v) = %d, expected %d", i, tc.data, got, tc.expected)
		}
	}
}

func TestRequestEncode(t *testing.T) {
	req := Request{
		ModuleAddress: 1,
		Command:       WriteMC,
		Type:          0x27, // VMAX
		Motor:         0,
		Value:         107374,
	}
	buf := req.Encode()

	if buf[0] != 1 || buf[1] != WriteMC || buf[2] != 0x27 || buf[3] != 0 {
		t.Errorf("header bytes wrong: % X", buf)
	}
	// 107374 = 0x0001A36E big-endian
	if buf[4] != 0x00 || buf[5] != 0x01 || buf[6] != 0xA3 || buf[7] != 0x6E {
		t.Errorf("value bytes wrong: % X", buf[4:8])
	}
	if buf[8] != Checksum(buf[:8]) {
		t.Errorf("checksum byte wrong: % X", buf)
	}
}

func TestReplyRoundTrip(t *testing.T) {
	testCases := []int32{0, 1, -1, 107374, -107374, 1<<31 - 1, -(1 << 31)}
	for _, value := range testCases {
		var buf [DatagramSize]byte
		buf[0] = DefaultHostAddress
		buf[1] = DefaultModuleAddress
		buf[2] = StatusOK
		buf[3] = ReadMC
		buf[4] = byte(uint32(value) >> 24)
		buf[5] = byte(uint32(value) >> 16)
		buf[6] = byte(uint32(value) >> 8)
		buf[7] = byte(uint32(value))
		buf[8] = Checksum(buf[:8])

		reply, err := DecodeReply(buf[:])
		if err != nil {
			t.Fatalf("value %d: %v", value, err)
		}
		if reply.Value != value {
			t.Errorf("value %d decoded as %d", value, reply.Value)
		}
		if err := reply.Err(); err != nil {
			t.Errorf("value %d: status OK mapped to error %v", value, err)
		}
	}
}

func TestDecodeReplyBadChecksum(t *testing.T) {
	var buf [DatagramSize]byte
	buf[2] = StatusOK
	buf[8] = Checksum(buf[:8]) + 1
	if _, err := DecodeReply(buf[:]); err == nil {
		t.Error("corrupted checksum accepted")
	}
}

func TestDecodeReplyWrongSize(t *testing.T) {
	if _, err := DecodeReply(make([]byte, 8)); err == nil {
		t.Error("short datagram accepted")
	}
	if _, err := DecodeReply(make([]byte, 10)); err == nil {
		t.Error("long datagram accepted")
	}
}

func TestReplyStatusErrors(t *testing.T) {
	for _, status := range []uint8{
		StatusWrongChecksum, StatusInvalidCommand, StatusWrongType,
		StatusInvalidValue, StatusEEPROMLocked, StatusCommandNotAvailable, 42,
	} {
		r := Reply{Status: status, Command: ReadMC}
		if r.Err() == nil {
			t.Errorf("status %d mapped to nil error", status)
		}
	}
	for _, status := range []uint8{StatusOK, StatusCommandLoaded} {
		r := Reply{Status: status}
		if err := r.Err(); err != nil {
			t.Errorf("status %d mapped to error %v", status, err)
		}
	}
}
