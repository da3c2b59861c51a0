package ssdp

import (
	"context"
	"fmt"
	"net"
	"time"
)

// SearchRequest is the Go-side builder for an M-SEARCH discovery
// request. Grounded on original_source/src/message/search.rs for the
// field shape and the MX-bounded response collection window it drives.
type SearchRequest struct {
	ST ST
	MX MX
}

func (s *SearchRequest) toMessage() *Message {
	msg := NewMessage(MessageSearch)
	SetMan(msg)
	SetST(msg, s.ST)
	SetMX(msg, s.MX)
	return msg
}

// Multicast sends the search once per local interface matching cfg.Mode
// and collects responses for MX+1 seconds (the extra second accounts for
// propagation delay, spec §4.8), returning whatever SearchResponses
// arrive before the deadline. It never returns a timeout as an error:
// running out the window with zero responses is the ordinary "nothing
// answered" outcome. Sending without an MX set is a programming error,
// not a transport failure, and is rejected before anything is sent.
func (s *SearchRequest) Multicast(ctx context.Context, cfg Config) ([]SearchResponse, error) {
	if s.MX == 0 {
		return nil, &InvalidHeaderError{Name: MXHeaderName, Reason: "MX must be set via NewMX before a multicast search"}
	}
	msg := s.toMessage()

	addrs, err := LocalAddrs(cfg.Mode)
	if err != nil {
		return nil, fmt.Errorf("ssdp: search multicast: %w", err)
	}

	conns := make([]*net.UDPConn, 0, len(addrs))
	for _, a := range addrs {
		local := &net.UDPAddr{IP: a.IP, Port: 0, Zone: zoneName(a.Zone)}
		conn, err := net.ListenUDP(udpNetwork(local), local)
		if err != nil {
			continue
		}
		if cfg.TTL > 0 {
			_ = setMulticastTTL(conn, cfg.TTL)
		}
		conns = append(conns, conn)

		dst, _, err := multicastTarget(cfg, a)
		if err != nil {
			continue
		}
		sender := newUdpSender(conn, dst)
		if encErr := EncodeMessage(withDestinationHost(msg, dst), sender); encErr == nil {
			_ = sender.Flush()
		}
	}

	if len(conns) == 0 {
		return nil, fmt.Errorf("ssdp: search multicast: no usable local interfaces")
	}

	return collectResponses(ctx, conns, time.Duration(s.MX)*time.Second+time.Second)
}

// Unicast sends the search directly to dst from every local interface of
// the matching family (the same fan-out Multicast uses across the
// multicast group) and collects responses. The window is MX+1s if MX is
// set, otherwise a default of 2s (spec §4.8 Unicast); unlike Multicast, a
// zero MX is not a validation error here.
func (s *SearchRequest) Unicast(ctx context.Context, dst *net.UDPAddr) ([]SearchResponse, error) {
	msg := s.toMessage()

	mode := V4Only
	if dst.IP.To4() == nil {
		mode = V6Only
	}

	addrs, err := LocalAddrs(mode)
	if err != nil {
		return nil, fmt.Errorf("ssdp: search unicast: %w", err)
	}

	conns := make([]*net.UDPConn, 0, len(addrs))
	for _, a := range addrs {
		local := &net.UDPAddr{IP: a.IP, Port: 0, Zone: zoneName(a.Zone)}
		conn, err := net.ListenUDP(udpNetwork(local), local)
		if err != nil {
			continue
		}
		conns = append(conns, conn)

		sender := newUdpSender(conn, dst)
		if encErr := EncodeMessage(withDestinationHost(msg, dst), sender); encErr == nil {
			_ = sender.Flush()
		}
	}

	if len(conns) == 0 {
		return nil, fmt.Errorf("ssdp: search unicast: no usable local interfaces")
	}

	window := 2 * time.Second
	if s.MX != 0 {
		window = time.Duration(s.MX)*time.Second + time.Second
	}

	return collectResponses(ctx, conns, window)
}

// SearchResponse is a parsed reply to an M-SEARCH request, combining the
// typed headers a control point needs with the address it came from.
type SearchResponse struct {
	From           net.Addr
	CacheControl   string
	Location       string
	Server         string
	ST             ST
	USN            USN
	BootID         *uint32
	ConfigID       *uint32
	SearchPort     *uint16
	SecureLocation string
}

// parseSearchResponse decodes a raw datagram into a SearchResponse,
// skipping it (by returning ok=false) if it does not classify as a
// MessageResponse or is missing a header the search protocol requires.
func parseSearchResponse(data []byte, from net.Addr) (SearchResponse, bool) {
	msg, err := DecodeMessage(data)
	if err != nil || msg.Type != MessageResponse {
		return SearchResponse{}, false
	}

	st, ok, err := GetST(msg)
	if !ok || err != nil {
		return SearchResponse{}, false
	}

	usn, ok, err := GetUSN(msg)
	if !ok || err != nil {
		return SearchResponse{}, false
	}

	location, _ := GetLocation(msg)
	server, _ := GetServer(msg)

	resp := SearchResponse{
		From:     from,
		Location: location,
		Server:   server,
		ST:       st,
		USN:      usn,
	}

	if cc, ok := msg.GetRaw(CacheControlHeaderName); ok && len(cc) > 0 {
		resp.CacheControl = string(cc[0])
	}
	if bootID, ok, err := GetBootID(msg); ok && err == nil {
		v := uint32(bootID)
		resp.BootID = &v
	}
	if configID, ok, err := GetConfigID(msg); ok && err == nil {
		v := uint32(configID)
		resp.ConfigID = &v
	}
	if searchPort, ok, err := GetSearchPort(msg); ok && err == nil {
		v := uint16(searchPort)
		resp.SearchPort = &v
	}
	if secureLoc, ok, err := GetSecureLocation(msg); ok && err == nil {
		resp.SecureLocation = string(secureLoc)
	}

	return resp, true
}

// collectResponses runs a Receiver over conns for window (or until ctx
// is cancelled, whichever comes first), parsing every datagram that
// looks like a search response and discarding the rest.
func collectResponses(ctx context.Context, conns []*net.UDPConn, window time.Duration) ([]SearchResponse, error) {
	receiver := NewReceiver(conns...)

	collectCtx, cancel := context.WithTimeout(ctx, window)
	defer cancel()

	receiver.Start(collectCtx)
	defer receiver.Close()

	var responses []SearchResponse
	for {
		select {
		case pkt := <-receiver.Packets():
			if resp, ok := parseSearchResponse(pkt.Data, pkt.From); ok {
				responses = append(responses, resp)
			}
		case <-receiver.Errors():
			// a transient read error; keep collecting
		case <-collectCtx.Done():
			return responses, nil
		}
	}
}

// Respond sends a unicast SearchResponse back to the search's origin,
// used by a device's SearchListener handler (spec §4.8) to answer an
// M-SEARCH it received. Same fan-out as Unicast send: the response goes
// out from every local interface of dst's family, since a response is as
// ambiguous to route off a wildcard socket as an outbound Unicast NOTIFY.
func (r *SearchResponse) Respond(dst *net.UDPAddr, cacheControlMA int) error {
	msg := NewMessage(MessageResponse)
	SetCacheControl(msg, fmt.Sprintf("max-age=%d", cacheControlMA))
	SetLocation(msg, r.Location)
	if r.Server != "" {
		SetServer(msg, r.Server)
	}
	SetST(msg, r.ST)
	SetUSN(msg, r.USN)

	return unicastFanOut(dst, msg)
}
