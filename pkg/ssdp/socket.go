package ssdp

import (
	"context"
	"fmt"
	"net"

	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
)

// BindReuse builds a UDP socket with SO_REUSEADDR (and, on non-Windows,
// SO_REUSEPORT) set before binding, so several listeners can share the
// same multicast port the way the teacher's single Listener could not.
func BindReuse(network, address string) (*net.UDPConn, error) {
	lc := net.ListenConfig{Control: controlReusePort}

	pc, err := lc.ListenPacket(context.Background(), network, address)
	if err != nil {
		return nil, fmt.Errorf("ssdp: bind reuse %s %s: %w", network, address, err)
	}

	conn, ok := pc.(*net.UDPConn)
	if !ok {
		pc.Close()
		return nil, fmt.Errorf("ssdp: bind reuse %s %s: not a UDP connection", network, address)
	}

	return conn, nil
}

// JoinMulticastV4 joins an IPv4 multicast group on the given interface.
// Grounded on the teacher's ipv4.NewPacketConn(conn).JoinGroup call in
// pkg/ssdp/listener.go, generalized to an arbitrary interface instead of
// a single hardcoded one.
func JoinMulticastV4(conn *net.UDPConn, iface *net.Interface, group net.IP) error {
	pconn := ipv4.NewPacketConn(conn)
	groupAddr := &net.UDPAddr{IP: group}
	if err := pconn.JoinGroup(iface, groupAddr); err != nil {
		return fmt.Errorf("ssdp: join ipv4 multicast group %s on %s: %w", group, ifaceName(iface), err)
	}
	return nil
}

// LeaveMulticastV4 leaves an IPv4 multicast group previously joined with
// JoinMulticastV4.
func LeaveMulticastV4(conn *net.UDPConn, iface *net.Interface, group net.IP) error {
	pconn := ipv4.NewPacketConn(conn)
	groupAddr := &net.UDPAddr{IP: group}
	if err := pconn.LeaveGroup(iface, groupAddr); err != nil {
		return fmt.Errorf("ssdp: leave ipv4 multicast group %s on %s: %w", group, ifaceName(iface), err)
	}
	return nil
}

// JoinMulticastV6 joins an IPv6 multicast group on the given interface,
// using the interface's scope id rather than an IP (spec §4.3: "IPv6
// uses interface scope id").
func JoinMulticastV6(conn *net.UDPConn, iface *net.Interface, group net.IP) error {
	pconn := ipv6.NewPacketConn(conn)
	groupAddr := &net.UDPAddr{IP: group}
	if err := pconn.JoinGroup(iface, groupAddr); err != nil {
		return fmt.Errorf("ssdp: join ipv6 multicast group %s on %s: %w", group, ifaceName(iface), err)
	}
	return nil
}

// LeaveMulticastV6 leaves an IPv6 multicast group previously joined with
// JoinMulticastV6.
func LeaveMulticastV6(conn *net.UDPConn, iface *net.Interface, group net.IP) error {
	pconn := ipv6.NewPacketConn(conn)
	groupAddr := &net.UDPAddr{IP: group}
	if err := pconn.LeaveGroup(iface, groupAddr); err != nil {
		return fmt.Errorf("ssdp: leave ipv6 multicast group %s on %s: %w", group, ifaceName(iface), err)
	}
	return nil
}

func ifaceName(iface *net.Interface) string {
	if iface == nil {
		return "<nil>"
	}
	return iface.Name
}
