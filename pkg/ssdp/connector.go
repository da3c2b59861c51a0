package ssdp

import (
	"fmt"
	"net"

	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
)

// UdpConnector owns a bound UDP socket and hands out send-only streams
// to particular destinations. It plays the role the teacher's raw
// *net.UDPConn + WriteTo call does in SendLocation, generalized to
// support per-interface binding and multiple destinations.
type UdpConnector struct {
	conn *net.UDPConn
}

// NewUdpConnector binds a UDP socket on localAddr (an ephemeral port
// when the port is 0) to be used for sending.
func NewUdpConnector(localAddr *net.UDPAddr) (*UdpConnector, error) {
	conn, err := net.ListenUDP(udpNetwork(localAddr), localAddr)
	if err != nil {
		return nil, fmt.Errorf("ssdp: connector bind %s: %w", localAddr, err)
	}
	return &UdpConnector{conn: conn}, nil
}

func udpNetwork(addr *net.UDPAddr) string {
	if addr != nil && addr.IP != nil && addr.IP.To4() == nil {
		return "udp6"
	}
	return "udp4"
}

// SetMulticastTTL sets the outgoing multicast hop limit for subsequent
// sends on this connector's socket.
func (c *UdpConnector) SetMulticastTTL(ttl int) error {
	return setMulticastTTL(c.conn, ttl)
}

// setMulticastTTL sets the outgoing multicast hop limit on an
// already-bound UDP socket. Shared by UdpConnector.SetMulticastTTL and
// send paths that manage a *net.UDPConn directly instead of going
// through a UdpConnector (SearchRequest.Multicast's response-collecting
// sockets), so the configured TTL (spec §4.8: "build a connector ... with
// the configured multicast TTL") applies on every multicast send path.
func setMulticastTTL(conn *net.UDPConn, ttl int) error {
	if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok && addr.IP.To4() != nil {
		return ipv4.NewPacketConn(conn).SetMulticastTTL(ttl)
	}
	return ipv6.NewPacketConn(conn).SetMulticastHopLimit(ttl)
}

// LocalAddr returns the connector's bound local address.
func (c *UdpConnector) LocalAddr() net.Addr {
	return c.conn.LocalAddr()
}

// Connect returns a send-only stream bound to dst. Rust's
// NetworkConnector::connect has no Go equivalent; here the codec (§4.6)
// calls Connect directly instead of going through an http.RoundTripper,
// since net/http has no notion of a connector abstraction pluggable into
// request framing.
func (c *UdpConnector) Connect(dst *net.UDPAddr) (*udpSender, error) {
	return newUdpSender(c.conn, dst), nil
}

// Close releases the underlying socket.
func (c *UdpConnector) Close() error {
	return c.conn.Close()
}
