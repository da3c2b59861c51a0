package ssdp

import (
	"context"
	"fmt"
	"net"
)

// NotifyHandler is invoked once per parsed NOTIFY message a
// NotifyListener receives.
type NotifyHandler func(NotifyMessage, net.Addr)

// SearchHandler is invoked once per parsed M-SEARCH request a
// SearchListener receives; the returned bool reports whether to answer
// at all (a device ignoring a search target it does not serve returns
// false).
type SearchHandler func(ST, MX, net.Addr) (SearchResponse, bool)

// NotifyListener joins the SSDP multicast groups on every interface
// matching a Config's Mode and dispatches parsed NOTIFY messages to a
// handler, the control-point side of the protocol (spec §4.8, "Notify
// listener"). Grounded on the teacher's Listener.Listen/ProcessData
// loop in pkg/ssdp/listener.go, generalized from one hardcoded socket to
// the shared multi-socket Receiver (§4.7).
type NotifyListener struct {
	Handler NotifyHandler
}

// Listen binds one multicast socket per IP family under cfg (joined to the
// group on every matching interface) and feeds every NOTIFY datagram
// received to l.Handler until ctx is cancelled.
func (l *NotifyListener) Listen(ctx context.Context, cfg Config) error {
	conns, err := bindMulticastSockets(cfg)
	if err != nil {
		return err
	}

	receiver := NewReceiver(conns...)
	receiver.Start(ctx)
	defer receiver.Close()

	for {
		select {
		case pkt := <-receiver.Packets():
			msg, err := DecodeMessage(pkt.Data)
			if err != nil {
				Log.Debugf("ssdp: notify listener: dropping datagram from %s: %v", pkt.From, err)
				continue
			}
			if msg.Type != MessageNotify {
				continue
			}
			notify, ok := notifyFromMessage(msg)
			if !ok {
				Log.Debugf("ssdp: notify listener: dropping unparseable NOTIFY from %s", pkt.From)
				continue
			}
			if l.Handler != nil {
				l.Handler(notify, pkt.From)
			}
		case <-receiver.Errors():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// notifyFromMessage extracts the typed NotifyMessage fields from a
// generic parsed Message, returning ok=false if a required header is
// missing or fails to parse (spec §5: a device must discard rather than
// crash on a malformed announcement from the network).
func notifyFromMessage(msg *Message) (NotifyMessage, bool) {
	nt, ok, err := GetNT(msg)
	if !ok || err != nil {
		return NotifyMessage{}, false
	}
	nts, ok, err := GetNTS(msg)
	if !ok || err != nil {
		return NotifyMessage{}, false
	}
	usn, ok, err := GetUSN(msg)
	if !ok || err != nil {
		return NotifyMessage{}, false
	}
	location, _ := GetLocation(msg)

	n := NotifyMessage{NT: nt.Field, NTS: nts, USN: usn, Location: location}
	if server, ok := GetServer(msg); ok {
		n.Server = server
	}
	if bootID, ok, err := GetBootID(msg); ok && err == nil {
		v := uint32(bootID)
		n.BootID = &v
	}
	if configID, ok, err := GetConfigID(msg); ok && err == nil {
		v := uint32(configID)
		n.ConfigID = &v
	}
	if secureLoc, ok, err := GetSecureLocation(msg); ok && err == nil {
		n.SecureLocation = string(secureLoc)
	}

	return n, true
}

// SearchListener answers M-SEARCH requests on behalf of a device, the
// device side of the protocol (spec §4.8, "Search listener").
type SearchListener struct {
	Handler SearchHandler
	// MaxAge is the CACHE-CONTROL max-age advertised on every response.
	// Defaults to 1800 seconds (the UPnP-recommended half hour) when zero.
	MaxAge int
}

func (l *SearchListener) maxAge() int {
	if l.MaxAge == 0 {
		return 1800
	}
	return l.MaxAge
}

// Listen binds one multicast socket per IP family under cfg (joined to the
// group on every matching interface), and for every M-SEARCH request received, calls l.Handler and (if it answers)
// sends the resulting SearchResponse back to the requester.
func (l *SearchListener) Listen(ctx context.Context, cfg Config) error {
	conns, err := bindMulticastSockets(cfg)
	if err != nil {
		return err
	}

	receiver := NewReceiver(conns...)
	receiver.Start(ctx)
	defer receiver.Close()

	for {
		select {
		case pkt := <-receiver.Packets():
			msg, err := DecodeMessage(pkt.Data)
			if err != nil {
				Log.Debugf("ssdp: search listener: dropping datagram from %s: %v", pkt.From, err)
				continue
			}
			if msg.Type != MessageSearch {
				continue
			}
			st, ok, err := GetST(msg)
			if !ok || err != nil {
				Log.Debugf("ssdp: search listener: dropping M-SEARCH from %s: bad ST: %v", pkt.From, err)
				continue
			}
			mx, ok, err := GetMX(msg)
			if !ok || err != nil {
				Log.Debugf("ssdp: search listener: dropping M-SEARCH from %s: bad MX: %v", pkt.From, err)
				continue
			}
			if l.Handler == nil {
				continue
			}
			resp, answer := l.Handler(st, mx, pkt.From)
			if !answer {
				continue
			}

			udpAddr, ok := pkt.From.(*net.UDPAddr)
			if !ok {
				continue
			}
			_ = resp.Respond(udpAddr, l.maxAge())

		case <-receiver.Errors():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// bindMulticastSockets binds one SO_REUSEADDR/SO_REUSEPORT socket per IP
// family present among cfg's matching local interfaces, and joins that
// single socket to the corresponding SSDP multicast group once per
// interface, rather than opening a fresh socket per interface. A shared
// per-family socket is also how responses for every interface arrive on
// one Receiver entry instead of N duplicate ones. Grounded on
// original_source/src/message/listen.rs:33-68, which keeps at most one
// ipv4_sock/ipv6_sock and calls join_multicast_v4/v6 against it once per
// interface.
func bindMulticastSockets(cfg Config) ([]*net.UDPConn, error) {
	addrs, err := LocalAddrs(cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("ssdp: bind multicast sockets: %w", err)
	}

	var v4Conn, v6Conn *net.UDPConn
	for _, a := range addrs {
		if a.IP.To4() != nil {
			if v4Conn == nil {
				conn, err := BindReuse("udp4", fmt.Sprintf("0.0.0.0:%d", cfg.Port))
				if err != nil {
					continue
				}
				v4Conn = conn
			}
			group := net.ParseIP(cfg.IPv4Addr)
			if group == nil {
				continue
			}
			if err := JoinMulticastV4(v4Conn, a.Zone, group); err != nil {
				Log.Debugf("ssdp: bind multicast sockets: join v4 group on %s: %v", a.Zone.Name, err)
			}
			continue
		}

		if v6Conn == nil {
			conn, err := BindReuse("udp6", fmt.Sprintf("[::]:%d", cfg.Port))
			if err != nil {
				continue
			}
			v6Conn = conn
		}
		group := net.ParseIP(cfg.IPv6Addr)
		if group == nil {
			continue
		}
		if err := JoinMulticastV6(v6Conn, a.Zone, group); err != nil {
			Log.Debugf("ssdp: bind multicast sockets: join v6 group on %s: %v", a.Zone.Name, err)
		}
	}

	var conns []*net.UDPConn
	if v4Conn != nil {
		conns = append(conns, v4Conn)
	}
	if v6Conn != nil {
		conns = append(conns, v6Conn)
	}

	if len(conns) == 0 {
		return nil, fmt.Errorf("ssdp: no usable local interfaces for mode %v", cfg.Mode)
	}

	return conns, nil
}
