package tmcl

import (
	"fmt"
	"io"
	"sync"
)

// Transport exchanges TMCL datagrams over a serial connection. TMCL is
// strictly request/reply, so the transport is synchronous: Exchange blocks
// until the full nine-byte reply arrives or the port's read deadline
// expires. A mutex serializes concurrent callers, but the register set
// behind the transport is single-owner state and configuration calls should
// be serialized by the session owner anyway.
type Transport struct {
	port          io.ReadWriteCloser
	moduleAddress uint8

	mu sync.Mutex
}

// NewTransport wraps an open serial connection to a module.
func NewTransport(port io.ReadWriteCloser, moduleAddress uint8) *Transport {
	if moduleAddress == 0 {
		moduleAddress = DefaultModuleAddress
	}
	return &Transport{port: port, moduleAddress: moduleAddress}
}

// Exchange sends one request and reads its reply. The request's module
// address is filled in from the transport. A reply with a non-success
// status is returned along with the status error.
func (t *Transport) Exchange(req Request) (Reply, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	req.ModuleAddress = t.moduleAddress
	datagram := req.Encode()
	if _, err := t.port.Write(datagram[:]); err != nil {
		return Reply{}, fmt.Errorf("writing TMCL request (command %d): %w", req.Command, err)
	}

	var buf [DatagramSize]byte
	if _, err := io.ReadFull(t.port, buf[:]); err != nil {
		return Reply{}, fmt.Errorf("reading TMCL reply (command %d): %w", req.Command, err)
	}

	reply, err := DecodeReply(buf[:])
	if err != nil {
		return Reply{}, err
	}
	if reply.Command != req.Command {
		return reply, fmt.Errorf("reply for command %d received while waiting for command %d", reply.Command, req.Command)
	}
	return reply, reply.Err()
}

// Close closes the underlying serial connection.
func (t *Transport) Close() error {
	return t.port.Close()
}
