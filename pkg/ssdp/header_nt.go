package ssdp

// NTHeaderName is the wire name of the Notification Type header.
const NTHeaderName = "NT"

// NT represents a header used to specify a notification type. Any double
// colons embedded in the value are not treated as a second FieldMap pair
// (that splitting behavior is reserved for USN).
type NT struct {
	Field FieldMap
}

// ParseNT parses a single-line NT header value.
func ParseNT(raw [][]byte) (NT, error) {
	if len(raw) != 1 {
		return NT{}, &InvalidHeaderError{Name: NTHeaderName, Reason: "expected exactly one header line"}
	}

	field, ok := ParseFieldMap(raw[0])
	if !ok {
		return NT{}, &InvalidHeaderError{Name: NTHeaderName, Reason: "value is not a valid prefix:value field"}
	}

	return NT{Field: field}, nil
}

// Format renders the NT header back onto its wire form.
func (n NT) Format() []byte {
	return n.Field.Format()
}

// GetNT looks up and parses the NT header from a header bag.
func GetNT(h HeaderRef) (NT, bool, error) {
	raw, ok := h.GetRaw(NTHeaderName)
	if !ok {
		return NT{}, false, nil
	}
	v, err := ParseNT(raw)
	if err != nil {
		return NT{}, true, err
	}
	return v, true, nil
}

// SetNT formats and stores the NT header on a header bag.
func SetNT(h HeaderMut, v NT) {
	h.SetRaw(NTHeaderName, [][]byte{v.Format()})
}
