package ssdp

import (
	"bytes"
	"net"
)

// udpSender buffers everything written to it and flushes as a single
// datagram on Flush, rewriting the request-target quirk SSDP inherited
// from HTTP: the first "/" in an outgoing request line becomes "*",
// since SSDP requests always target "*" rather than a path. Responses
// (payloads starting with "H", as in "HTTP/1.1 200 OK") are left alone.
//
// This mirrors the teacher's pattern of building the whole NOTIFY/M-SEARCH
// body in memory before a single conn.WriteTo call in SendLocation,
// generalized into a reusable io.Writer that the codec's EncodeMessage
// (§4.6) writes its hand-formatted request or status line and headers into.
type udpSender struct {
	conn *net.UDPConn
	dst  *net.UDPAddr
	buf  bytes.Buffer
}

func newUdpSender(conn *net.UDPConn, dst *net.UDPAddr) *udpSender {
	return &udpSender{conn: conn, dst: dst}
}

// Write implements io.Writer, appending to the internal buffer. It never
// returns an error: failures surface from Flush, where the actual send
// happens.
func (s *udpSender) Write(p []byte) (int, error) {
	return s.buf.Write(p)
}

// Flush sends the buffered bytes as a single UDP datagram to the
// sender's destination, applying the "/"-to-"*" request-target rewrite,
// then resets the buffer for reuse.
func (s *udpSender) Flush() error {
	payload := s.buf.Bytes()
	rewritten := rewriteRequestTarget(payload)

	_, err := s.conn.WriteTo(rewritten, s.dst)
	s.buf.Reset()
	return err
}

// rewriteRequestTarget replaces the first "/" with "*" unless the
// payload is a status line (starts with "H", as in "HTTP/1.1"). A
// request line's target is always "*" in SSDP; Go's own formatting of
// an http.Request would otherwise write "/" since net/url has no
// concept of an asterisk-form request-target.
func rewriteRequestTarget(payload []byte) []byte {
	if len(payload) == 0 || payload[0] == 'H' {
		return payload
	}

	idx := bytes.IndexByte(payload, '/')
	if idx < 0 {
		return payload
	}

	out := make([]byte, len(payload))
	copy(out, payload)
	out[idx] = '*'
	return out
}

// Destination reports the address this sender writes to.
func (s *udpSender) Destination() net.Addr {
	return s.dst
}
