package ssdp

import (
	"fmt"
	"net"
)

// NotifyMessage is the Go-side builder for an SSDP NOTIFY announcement:
// set the typed fields, then call Multicast (or Unicast, for the rare
// case of a targeted announcement) to put it on the wire. Grounded on
// original_source/src/message/notify.rs, which plays the same role for
// the Rust Notify type, and on the teacher's SendLocation for the
// send-one-datagram-per-interface shape.
type NotifyMessage struct {
	NT             FieldMap
	NTS            NTS
	USN            USN
	Location       string
	Server         string
	CacheControlMA int
	BootID         *uint32
	ConfigID       *uint32
	SecureLocation string
}

// toMessage renders the typed fields onto a generic Message ready for
// EncodeMessage.
func (n *NotifyMessage) toMessage() (*Message, error) {
	msg := NewMessage(MessageNotify)

	SetNT(msg, NT{Field: n.NT})
	SetNTS(msg, n.NTS)
	SetUSN(msg, n.USN)

	if n.Location == "" {
		return nil, &MissingHeaderError{Name: "LOCATION"}
	}
	SetLocation(msg, n.Location)

	if n.Server != "" {
		SetServer(msg, n.Server)
	}
	SetCacheControl(msg, fmt.Sprintf("max-age=%d", n.CacheControlMA))

	if n.BootID != nil {
		SetBootID(msg, BootID(*n.BootID))
	}
	if n.ConfigID != nil {
		SetConfigID(msg, ConfigID(*n.ConfigID))
	}
	if n.SecureLocation != "" {
		SetSecureLocation(msg, SecureLocation(n.SecureLocation))
	}

	return msg, nil
}

// Multicast sends the announcement once per local interface matching
// cfg.Mode, to the corresponding IPv4/IPv6 SSDP multicast group, on an
// ephemeral-port connector carrying cfg.TTL (spec §4.8 Multicast). Mirrors
// the teacher's Listener.generateSessionUSN + SendLocation combination,
// generalized across every bound interface instead of a single adapter.
func (n *NotifyMessage) Multicast(cfg Config) error {
	msg, err := n.toMessage()
	if err != nil {
		return err
	}

	addrs, err := LocalAddrs(cfg.Mode)
	if err != nil {
		return fmt.Errorf("ssdp: notify multicast: %w", err)
	}

	var firstErr error
	for _, a := range addrs {
		dst, local, err := multicastTarget(cfg, a)
		if err != nil {
			continue
		}
		if sendErr := sendOnce(local, dst, cfg.TTL, msg); sendErr != nil && firstErr == nil {
			firstErr = sendErr
		}
	}
	return firstErr
}

// Unicast sends the announcement to a single destination, bypassing
// multicast group membership entirely (used for directed byebye/update
// notifications a control point has requested out-of-band). Mirrors
// Multicast's fan-out: the message goes out from every local interface of
// the matching family, since a wildcard-bound socket is ambiguous about
// which interface the kernel will actually route the send through (spec
// §9 Design Notes, §4.8 Unicast).
func (n *NotifyMessage) Unicast(dst *net.UDPAddr) error {
	msg, err := n.toMessage()
	if err != nil {
		return err
	}
	return unicastFanOut(dst, msg)
}

// unicastFanOut sends msg to dst from every local interface whose family
// matches dst, returning the last transport error if every attempt
// failed or nil if at least one attempt succeeded. Shared by
// NotifyMessage.Unicast and SearchResponse.Respond, which spec §4.8
// describes as having "the same fan-out as Unicast send".
func unicastFanOut(dst *net.UDPAddr, msg *Message) error {
	mode := V4Only
	if dst.IP.To4() == nil {
		mode = V6Only
	}

	addrs, err := LocalAddrs(mode)
	if err != nil {
		return fmt.Errorf("ssdp: unicast: %w", err)
	}
	if len(addrs) == 0 {
		return fmt.Errorf("ssdp: unicast: no usable local interfaces")
	}

	var lastErr error
	succeeded := false
	for _, a := range addrs {
		local := &net.UDPAddr{IP: a.IP, Port: 0, Zone: zoneName(a.Zone)}
		if sendErr := sendOnce(local, dst, 0, msg); sendErr != nil {
			lastErr = sendErr
			continue
		}
		succeeded = true
	}
	if succeeded {
		return nil
	}
	return lastErr
}

// multicastTarget resolves the destination multicast group and local
// bind address for one local interface address, according to cfg.
func multicastTarget(cfg Config, a InterfaceAddr) (dst, local *net.UDPAddr, err error) {
	if a.IP.To4() != nil {
		group := net.ParseIP(cfg.IPv4Addr)
		if group == nil {
			return nil, nil, fmt.Errorf("ssdp: invalid IPv4 multicast address %q", cfg.IPv4Addr)
		}
		return &net.UDPAddr{IP: group, Port: int(cfg.Port)},
			&net.UDPAddr{IP: a.IP, Port: 0}, nil
	}

	group := net.ParseIP(cfg.IPv6Addr)
	if group == nil {
		return nil, nil, fmt.Errorf("ssdp: invalid IPv6 multicast address %q", cfg.IPv6Addr)
	}
	return &net.UDPAddr{IP: group, Port: int(cfg.Port), Zone: zoneName(a.Zone)},
		&net.UDPAddr{IP: a.IP, Port: 0, Zone: zoneName(a.Zone)}, nil
}

func zoneName(iface *net.Interface) string {
	if iface == nil {
		return ""
	}
	return iface.Name
}

// sendOnce opens a short-lived connector bound to local, encodes msg
// (stamped with a Host header derived from dst) onto a send-only stream
// targeting dst, and flushes it as one datagram. ttl, when positive, sets
// the connector's outgoing multicast hop limit before sending; callers
// sending unicast-only traffic pass 0 to leave the OS default in place.
func sendOnce(local, dst *net.UDPAddr, ttl int, msg *Message) error {
	connector, err := NewUdpConnector(local)
	if err != nil {
		return err
	}
	defer connector.Close()

	if ttl > 0 {
		if err := connector.SetMulticastTTL(ttl); err != nil {
			return err
		}
	}

	sender, err := connector.Connect(dst)
	if err != nil {
		return err
	}

	if err := EncodeMessage(withDestinationHost(msg, dst), sender); err != nil {
		return err
	}
	return sender.Flush()
}
