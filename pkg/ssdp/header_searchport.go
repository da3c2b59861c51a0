package ssdp

import "strconv"

// SearchPortHeaderName is the wire name of the alternate-search-port header.
const SearchPortHeaderName = "SEARCHPORT.UPNP.ORG"

const (
	// SearchPortMin is the lowest port devices may advertise for search
	// responses, per the UPnP registered-port range.
	SearchPortMin = 49152
	// SearchPortMax is the highest valid port number.
	SearchPortMax = 65535
)

// SearchPort denotes an alternate unicast port a device uses to respond
// to search requests. If absent, devices must respond on port 1900.
type SearchPort uint16

// ParseSearchPort parses a single-line SEARCHPORT.UPNP.ORG header value.
func ParseSearchPort(raw [][]byte) (SearchPort, error) {
	if len(raw) != 1 {
		return 0, &InvalidHeaderError{Name: SearchPortHeaderName, Reason: "expected exactly one header line"}
	}

	n, err := strconv.ParseUint(string(raw[0]), 10, 16)
	if err != nil || n < SearchPortMin || n > SearchPortMax {
		return 0, &InvalidHeaderError{Name: SearchPortHeaderName, Reason: "value must be a decimal integer in [49152, 65535]"}
	}

	return SearchPort(n), nil
}

// Format renders the SearchPort header back onto its wire form.
func (s SearchPort) Format() []byte {
	return []byte(strconv.FormatUint(uint64(s), 10))
}

// GetSearchPort looks up and parses the SEARCHPORT.UPNP.ORG header from a header bag.
func GetSearchPort(h HeaderRef) (SearchPort, bool, error) {
	raw, ok := h.GetRaw(SearchPortHeaderName)
	if !ok {
		return 0, false, nil
	}
	v, err := ParseSearchPort(raw)
	if err != nil {
		return 0, true, err
	}
	return v, true, nil
}

// SetSearchPort formats and stores the SEARCHPORT.UPNP.ORG header on a header bag.
func SetSearchPort(h HeaderMut, v SearchPort) {
	h.SetRaw(SearchPortHeaderName, [][]byte{v.Format()})
}
