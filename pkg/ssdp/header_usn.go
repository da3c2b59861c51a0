package ssdp

import "bytes"

// USNHeaderName is the wire name of the Unique Service Name header.
const USNHeaderName = "USN"

var usnPairSeparator = []byte("::")

// USN represents a header which specifies a unique service name. It can
// hold up to two FieldMap components, separated by "::" on the wire.
type USN struct {
	First  FieldMap
	Second *FieldMap
}

// NewUSN builds a USN from one or two FieldMaps.
func NewUSN(first FieldMap, second *FieldMap) USN {
	return USN{First: first, Second: second}
}

// ParseUSN parses a single-line USN header value.
//
// The wire form is "pair1" or "pair1::pair2", split on the first literal
// "::". When no "::" is present, up to two trailing colons are folded
// away so that a bare trailing separator (e.g. "upnp:rootdevice:") is
// tolerated as absence of a second pair rather than a parse failure.
func ParseUSN(raw [][]byte) (USN, error) {
	if len(raw) != 1 {
		return USN{}, &InvalidHeaderError{Name: USNHeaderName, Reason: "expected exactly one header line"}
	}

	var firstRaw, secondRaw []byte
	hasSecond := false

	if idx := bytes.Index(raw[0], usnPairSeparator); idx >= 0 {
		firstRaw = raw[0][:idx]
		secondRaw = raw[0][idx+2:]
		hasSecond = true
	} else {
		firstRaw = raw[0]
		for i := 0; i < 2 && len(firstRaw) > 0 && firstRaw[len(firstRaw)-1] == ':'; i++ {
			firstRaw = firstRaw[:len(firstRaw)-1]
		}
	}

	first, ok := ParseFieldMap(firstRaw)
	if !ok {
		return USN{}, &InvalidHeaderError{Name: USNHeaderName, Reason: "first component is not a valid prefix:value field"}
	}

	if !hasSecond || len(secondRaw) == 0 {
		return USN{First: first}, nil
	}

	second, ok := ParseFieldMap(secondRaw)
	if !ok {
		return USN{}, &InvalidHeaderError{Name: USNHeaderName, Reason: "second component is not a valid prefix:value field"}
	}

	return USN{First: first, Second: &second}, nil
}

// Format renders the USN header back onto its wire form.
func (u USN) Format() []byte {
	var buf bytes.Buffer
	buf.Write(u.First.Format())
	if u.Second != nil {
		buf.Write(usnPairSeparator)
		buf.Write(u.Second.Format())
	}
	return buf.Bytes()
}

// String implements fmt.Stringer.
func (u USN) String() string { return string(u.Format()) }

// GetUSN looks up and parses the USN header from a header bag.
func GetUSN(h HeaderRef) (USN, bool, error) {
	raw, ok := h.GetRaw(USNHeaderName)
	if !ok {
		return USN{}, false, nil
	}
	v, err := ParseUSN(raw)
	if err != nil {
		return USN{}, true, err
	}
	return v, true, nil
}

// SetUSN formats and stores the USN header on a header bag.
func SetUSN(h HeaderMut, v USN) {
	h.SetRaw(USNHeaderName, [][]byte{v.Format()})
}
