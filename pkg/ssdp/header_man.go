package ssdp

import "bytes"

// ManHeaderName is the wire name of the mandatory-extension header.
const ManHeaderName = "MAN"

var manLiteral = []byte(`"ssdp:discover"`)

// Man is a marker header used to define the scope of the M-SEARCH HTTP
// extension. Its only valid value is the literal quoted string
// "ssdp:discover".
type Man struct{}

// ParseMan parses a single-line MAN header value. The match is exact,
// including the surrounding quotes and lowercase "ssdp".
func ParseMan(raw [][]byte) (Man, error) {
	if len(raw) != 1 {
		return Man{}, &InvalidHeaderError{Name: ManHeaderName, Reason: "expected exactly one header line"}
	}
	if !bytes.Equal(raw[0], manLiteral) {
		return Man{}, &InvalidHeaderError{Name: ManHeaderName, Reason: `must be the literal "ssdp:discover"`}
	}
	return Man{}, nil
}

// Format renders the MAN header back onto its wire form.
func (Man) Format() []byte {
	return manLiteral
}

// GetMan looks up and parses the MAN header from a header bag.
func GetMan(h HeaderRef) (Man, bool, error) {
	raw, ok := h.GetRaw(ManHeaderName)
	if !ok {
		return Man{}, false, nil
	}
	v, err := ParseMan(raw)
	if err != nil {
		return Man{}, true, err
	}
	return v, true, nil
}

// SetMan stores the MAN header on a header bag.
func SetMan(h HeaderMut) {
	h.SetRaw(ManHeaderName, [][]byte{manLiteral})
}
