package ssdp

import "bytes"

// NTSHeaderName is the wire name of the Notification Sub-Type header.
const NTSHeaderName = "NTS"

// NTS is the notification sub-type of a NOTIFY message.
type NTS int

const (
	// NTSAlive announces that an entity is present on the network.
	NTSAlive NTS = iota
	// NTSUpdate announces an interface was added to an existing device.
	NTSUpdate
	// NTSByeBye announces that an entity is leaving the network.
	NTSByeBye
)

var (
	ntsAliveLiteral  = []byte("ssdp:alive")
	ntsUpdateLiteral = []byte("ssdp:update")
	ntsByeByeLiteral = []byte("ssdp:byebye")
)

// ParseNTS parses a single-line NTS header value. The match is exact;
// there is no tolerance for case or trailing bytes.
func ParseNTS(raw [][]byte) (NTS, error) {
	if len(raw) != 1 {
		return 0, &InvalidHeaderError{Name: NTSHeaderName, Reason: "expected exactly one header line"}
	}

	switch {
	case bytes.Equal(raw[0], ntsAliveLiteral):
		return NTSAlive, nil
	case bytes.Equal(raw[0], ntsUpdateLiteral):
		return NTSUpdate, nil
	case bytes.Equal(raw[0], ntsByeByeLiteral):
		return NTSByeBye, nil
	default:
		return 0, &InvalidHeaderError{Name: NTSHeaderName, Reason: "must be ssdp:alive, ssdp:update, or ssdp:byebye"}
	}
}

// Format renders the NTS header back onto its wire form.
func (n NTS) Format() []byte {
	switch n {
	case NTSAlive:
		return ntsAliveLiteral
	case NTSUpdate:
		return ntsUpdateLiteral
	case NTSByeBye:
		return ntsByeByeLiteral
	default:
		return nil
	}
}

// String implements fmt.Stringer.
func (n NTS) String() string { return string(n.Format()) }

// GetNTS looks up and parses the NTS header from a header bag.
func GetNTS(h HeaderRef) (NTS, bool, error) {
	raw, ok := h.GetRaw(NTSHeaderName)
	if !ok {
		return 0, false, nil
	}
	v, err := ParseNTS(raw)
	if err != nil {
		return 0, true, err
	}
	return v, true, nil
}

// SetNTS formats and stores the NTS header on a header bag.
func SetNTS(h HeaderMut, v NTS) {
	h.SetRaw(NTSHeaderName, [][]byte{v.Format()})
}
