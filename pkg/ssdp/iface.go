package ssdp

import (
	"net"
)

// InterfaceAddr pairs a local unicast address with the interface it was
// enumerated from, since joining a multicast group needs the owning
// interface, not just the bare IP.
type InterfaceAddr struct {
	IP   net.IP
	Zone *net.Interface
}

// LocalAddrs returns every non-loopback local unicast address, filtered
// by the given IP version mode. IPv6 addresses that are globally
// routable are excluded: SSDP is a link-local protocol.
func LocalAddrs(mode IpVersionMode) ([]InterfaceAddr, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	var out []InterfaceAddr
	for i := range ifaces {
		iface := ifaces[i]
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok {
				continue
			}
			ip := ipNet.IP
			if ip.IsLoopback() {
				continue
			}

			isV4 := ip.To4() != nil
			switch mode {
			case V4Only:
				if !isV4 {
					continue
				}
			case V6Only:
				if isV4 {
					continue
				}
			case Any:
				// both families accepted
			}

			if !isV4 {
				if ip.IsGlobalUnicast() && !ip.IsLinkLocalUnicast() && !isPrivateOrULA(ip) {
					continue
				}
			}

			out = append(out, InterfaceAddr{IP: ip, Zone: &iface})
		}
	}

	return out, nil
}

// isPrivateOrULA reports whether ip is an IPv6 unique local address
// (fc00::/7), which SSDP treats the same as link-local for reachability
// purposes even though it is technically "global unicast" per net.IP.
func isPrivateOrULA(ip net.IP) bool {
	return ip.IsPrivate()
}
