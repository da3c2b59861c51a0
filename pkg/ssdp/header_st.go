package ssdp

import "bytes"

// STHeaderName is the wire name of the Search Target header.
const STHeaderName = "ST"

var stAllLiteral = []byte("ssdp:all")

// ST represents a header which specifies the search target of an
// M-SEARCH request. It is either the wildcard "ssdp:all" or a specific
// FieldMap target.
type ST struct {
	All    bool
	Target FieldMap
}

// STAll is the search target matching every device and service.
func STAll() ST { return ST{All: true} }

// STTarget narrows the search to a specific FieldMap.
func STTarget(field FieldMap) ST { return ST{Target: field} }

// ParseST parses a single-line ST header value.
func ParseST(raw [][]byte) (ST, error) {
	if len(raw) != 1 {
		return ST{}, &InvalidHeaderError{Name: STHeaderName, Reason: "expected exactly one header line"}
	}

	if bytes.Equal(raw[0], stAllLiteral) {
		return STAll(), nil
	}

	field, ok := ParseFieldMap(raw[0])
	if !ok {
		return ST{}, &InvalidHeaderError{Name: STHeaderName, Reason: "value is not ssdp:all or a valid prefix:value field"}
	}

	return STTarget(field), nil
}

// Format renders the ST header back onto its wire form.
func (s ST) Format() []byte {
	if s.All {
		return stAllLiteral
	}
	return s.Target.Format()
}

func (s ST) String() string { return string(s.Format()) }

// GetST looks up and parses the ST header from a header bag.
func GetST(h HeaderRef) (ST, bool, error) {
	raw, ok := h.GetRaw(STHeaderName)
	if !ok {
		return ST{}, false, nil
	}
	v, err := ParseST(raw)
	if err != nil {
		return ST{}, true, err
	}
	return v, true, nil
}

// SetST formats and stores the ST header on a header bag.
func SetST(h HeaderMut, v ST) {
	h.SetRaw(STHeaderName, [][]byte{v.Format()})
}
