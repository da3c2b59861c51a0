package ssdp

import (
	"fmt"
	"net"
)

// MaxPacketLen is the maximum length for packets received on a
// PacketReceiver. 1500 bytes is sufficient for SSDP traffic, which never
// approaches a typical MTU.
const MaxPacketLen = 1500

// PacketReceiver reads one datagram at a time from a UDP socket into a
// bounded buffer and returns the received bytes alongside the sender's
// address.
type PacketReceiver struct {
	conn *net.UDPConn
}

// NewPacketReceiver wraps conn for datagram-at-a-time reads.
func NewPacketReceiver(conn *net.UDPConn) *PacketReceiver {
	return &PacketReceiver{conn: conn}
}

// ReceivePacket reads a single datagram. The returned slice is truncated
// to the number of bytes actually received; a socket reporting more
// bytes than the buffer holds is treated as a fatal I/O error since it
// should never occur in practice.
func (p *PacketReceiver) ReceivePacket() ([]byte, net.Addr, error) {
	buf := make([]byte, MaxPacketLen)

	n, addr, err := p.conn.ReadFrom(buf)
	if err != nil {
		return nil, nil, err
	}

	if n > len(buf) {
		return nil, nil, fmt.Errorf("ssdp: socket reported receive length %d greater than buffer %d", n, len(buf))
	}

	return buf[:n], addr, nil
}

// String implements fmt.Stringer, reporting the local address the
// receiver is bound to, or "<unbound>" when the socket has none.
func (p *PacketReceiver) String() string {
	addr := p.conn.LocalAddr()
	if addr == nil {
		return "<unbound>"
	}
	return addr.String()
}
