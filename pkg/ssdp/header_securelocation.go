package ssdp

import "unicode/utf8"

// SecureLocationHeaderName is the wire name of the HTTPS description-URL header.
const SecureLocationHeaderName = "SECURELOCATION.UPNP.ORG"

// SecureLocation is a URL provided by a device allowing control points to
// retrieve device and service descriptions over HTTPS, in place of the
// plain LOCATION header. The URL is only transported, never
// dereferenced, by this package.
type SecureLocation string

// ParseSecureLocation parses a single-line SECURELOCATION.UPNP.ORG header value.
func ParseSecureLocation(raw [][]byte) (SecureLocation, error) {
	if len(raw) != 1 || len(raw[0]) == 0 {
		return "", &InvalidHeaderError{Name: SecureLocationHeaderName, Reason: "value must not be empty"}
	}
	if !utf8.Valid(raw[0]) {
		return "", &InvalidHeaderError{Name: SecureLocationHeaderName, Reason: "value must be valid UTF-8"}
	}
	return SecureLocation(raw[0]), nil
}

// Format renders the SecureLocation header back onto its wire form.
func (s SecureLocation) Format() []byte {
	return []byte(s)
}

// GetSecureLocation looks up and parses the SECURELOCATION.UPNP.ORG header from a header bag.
func GetSecureLocation(h HeaderRef) (SecureLocation, bool, error) {
	raw, ok := h.GetRaw(SecureLocationHeaderName)
	if !ok {
		return "", false, nil
	}
	v, err := ParseSecureLocation(raw)
	if err != nil {
		return "", true, err
	}
	return v, true, nil
}

// SetSecureLocation formats and stores the SECURELOCATION.UPNP.ORG header on a header bag.
func SetSecureLocation(h HeaderMut, v SecureLocation) {
	h.SetRaw(SecureLocationHeaderName, [][]byte{v.Format()})
}
