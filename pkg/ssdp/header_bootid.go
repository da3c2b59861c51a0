package ssdp

import "strconv"

// BootIDHeaderName is the wire name of the boot-instance header.
const BootIDHeaderName = "BOOTID.UPNP.ORG"

// BootID denotes the boot instance of a root device.
type BootID uint32

// ParseBootID parses a single-line BOOTID.UPNP.ORG header value.
func ParseBootID(raw [][]byte) (BootID, error) {
	if len(raw) != 1 {
		return 0, &InvalidHeaderError{Name: BootIDHeaderName, Reason: "expected exactly one header line"}
	}
	v, err := parseSigned31(raw[0])
	if err != nil {
		return 0, &InvalidHeaderError{Name: BootIDHeaderName, Reason: err.Error()}
	}
	return BootID(v), nil
}

// Format renders the BootID header back onto its wire form.
func (b BootID) Format() []byte {
	return []byte(strconv.FormatUint(uint64(b), 10))
}

// GetBootID looks up and parses the BOOTID.UPNP.ORG header from a header bag.
func GetBootID(h HeaderRef) (BootID, bool, error) {
	raw, ok := h.GetRaw(BootIDHeaderName)
	if !ok {
		return 0, false, nil
	}
	v, err := ParseBootID(raw)
	if err != nil {
		return 0, true, err
	}
	return v, true, nil
}

// SetBootID formats and stores the BOOTID.UPNP.ORG header on a header bag.
func SetBootID(h HeaderMut, v BootID) {
	h.SetRaw(BootIDHeaderName, [][]byte{v.Format()})
}

// parseSigned31 parses a decimal integer that must fit in a signed 31-bit
// range (i.e. be representable as a non-negative int32). A leading "-0" is
// tolerated as equal to zero; any other negative value is rejected. This
// mirrors an ambiguity in earlier implementations that used an unsigned
// radix parse on what the wire format defines as a signed field (spec §9
// Open Question).
func parseSigned31(raw []byte) (uint32, error) {
	n, err := strconv.ParseInt(string(raw), 10, 32)
	if err != nil {
		return 0, errInvalidInteger
	}
	if n < 0 {
		if string(raw) == "-0" {
			return 0, nil
		}
		return 0, errInvalidInteger
	}
	return uint32(n), nil
}
