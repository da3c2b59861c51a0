package ssdp

import "strconv"

// MXHeaderName is the wire name of the maximum-wait header.
const MXHeaderName = "MX"

const (
	// MXMin is the minimum wait bound specified by UPnP 1.0.
	MXMin = 1
	// MXMax is the maximum wait bound specified by UPnP 1.0.
	MXMax = 120
)

// MX is the maximum number of seconds devices should wait before
// responding to a search request.
type MX uint8

// NewMX validates wait is within [MXMin, MXMax].
func NewMX(wait uint8) (MX, error) {
	if wait < MXMin || wait > MXMax {
		return 0, &InvalidHeaderError{Name: MXHeaderName, Reason: "wait bound is out of range [1, 120]"}
	}
	return MX(wait), nil
}

// ParseMX parses a single-line MX header value.
func ParseMX(raw [][]byte) (MX, error) {
	if len(raw) != 1 {
		return 0, &InvalidHeaderError{Name: MXHeaderName, Reason: "expected exactly one header line"}
	}

	n, err := strconv.ParseUint(string(raw[0]), 10, 8)
	if err != nil || n < MXMin || n > MXMax {
		return 0, &InvalidHeaderError{Name: MXHeaderName, Reason: "value must be a decimal integer in [1, 120]"}
	}

	return MX(n), nil
}

// Format renders the MX header back onto its wire form.
func (m MX) Format() []byte {
	return []byte(strconv.FormatUint(uint64(m), 10))
}

// GetMX looks up and parses the MX header from a header bag.
func GetMX(h HeaderRef) (MX, bool, error) {
	raw, ok := h.GetRaw(MXHeaderName)
	if !ok {
		return 0, false, nil
	}
	v, err := ParseMX(raw)
	if err != nil {
		return 0, true, err
	}
	return v, true, nil
}

// SetMX formats and stores the MX header on a header bag.
func SetMX(h HeaderMut, v MX) {
	h.SetRaw(MXHeaderName, [][]byte{v.Format()})
}
