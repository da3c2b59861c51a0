package ssdp

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net"
	"net/textproto"
	"strconv"
	"strings"
)

const (
	methodNotify   = "NOTIFY"
	methodSearch   = "M-SEARCH"
	httpVersion    = "HTTP/1.1"
	statusOKPhrase = "200 OK"
)

// EncodeMessage renders a Message onto a udpSender, writing an HTTPU
// request or response line followed by its headers and the blank line
// that terminates them. It does not flush; callers decide when to emit
// the datagram, matching the teacher's pattern of building a complete
// payload before the single WriteTo call in SendLocation.
func EncodeMessage(msg *Message, w io.Writer) error {
	switch msg.Type {
	case MessageNotify:
		if _, err := fmt.Fprintf(w, "%s / %s\r\n", methodNotify, httpVersion); err != nil {
			return err
		}
	case MessageSearch:
		if _, err := fmt.Fprintf(w, "%s / %s\r\n", methodSearch, httpVersion); err != nil {
			return err
		}
	case MessageResponse:
		if _, err := fmt.Fprintf(w, "%s %s\r\n", httpVersion, statusOKPhrase); err != nil {
			return err
		}
	default:
		return fmt.Errorf("ssdp: cannot encode message of unknown type %v", msg.Type)
	}

	for _, name := range msg.Headers.Names() {
		lines, _ := msg.Headers.GetRaw(name)
		for _, line := range lines {
			if _, err := fmt.Fprintf(w, "%s: %s\r\n", name, line); err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(w, "\r\n")
	return err
}

// withDestinationHost stamps a Host header derived from dst onto a copy
// of msg, leaving msg itself untouched. Only request messages (NOTIFY,
// M-SEARCH) carry a Host header on the wire; a response is returned
// unmodified. Grounded on original_source/src/message/ssdp.rs:443, which
// formats outgoing requests with "Host: <dst>".
func withDestinationHost(msg *Message, dst *net.UDPAddr) *Message {
	if msg.Type != MessageNotify && msg.Type != MessageSearch {
		return msg
	}
	clone := msg.Clone()
	SetHost(clone, dst.String())
	return clone
}

// DecodeMessage parses a raw HTTPU datagram into a Message. It accepts
// either a request line (NOTIFY or M-SEARCH) or a status line (a search
// response), classifying the Message's Type accordingly, then reads the
// remaining lines as MIME headers via net/textproto the same way
// net/http parses a request off a wire connection. Requests additionally
// require a Host header (spec §4.6): the underlying tokenizer has no
// opinion on HTTP framing invariants beyond syntax, so SSDP enforces this
// one itself.
func DecodeMessage(raw []byte) (*Message, error) {
	reader := textproto.NewReader(bufio.NewReader(bytes.NewReader(raw)))

	line, err := reader.ReadLine()
	if err != nil {
		return nil, &InvalidHTTPError{Raw: raw}
	}

	msgType, err := classifyStartLine(line)
	if err != nil {
		return nil, err
	}

	mimeHeader, err := reader.ReadMIMEHeader()
	if err != nil && err != io.EOF {
		return nil, &InvalidHTTPError{Raw: raw}
	}

	msg := NewMessage(msgType)
	for name, values := range mimeHeader {
		lines := make([][]byte, len(values))
		for i, v := range values {
			lines[i] = []byte(v)
		}
		msg.SetRaw(name, lines)
	}

	if msgType == MessageNotify || msgType == MessageSearch {
		if _, ok := GetHost(msg); !ok {
			return nil, &MissingHeaderError{Name: HostHeaderName}
		}
	}

	return msg, nil
}

// classifyStartLine determines the Message's type from its first line,
// accepting the same three shapes DecodeMessage needs to dispatch on:
// "NOTIFY * HTTP/1.1", "M-SEARCH * HTTP/1.1", and "HTTP/1.1 200 OK".
func classifyStartLine(line string) (MessageType, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, &InvalidMethodError{Method: line}
	}

	switch fields[0] {
	case methodNotify, methodSearch:
		if len(fields) != 3 {
			return 0, &InvalidHTTPError{Raw: []byte(line)}
		}
		if fields[1] != "*" {
			return 0, &InvalidURIError{URI: fields[1]}
		}
		if fields[2] != httpVersion {
			return 0, &InvalidHTTPVersionError{}
		}
		if fields[0] == methodNotify {
			return MessageNotify, nil
		}
		return MessageSearch, nil

	case httpVersion:
		code, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, &InvalidHTTPError{Raw: []byte(line)}
		}
		if code != 200 {
			return 0, &ResponseCodeError{Code: code}
		}
		return MessageResponse, nil

	default:
		return 0, &InvalidMethodError{Method: fields[0]}
	}
}
