package ssdp

import "strconv"

// ConfigIDHeaderName is the wire name of the device-description-config header.
const ConfigIDHeaderName = "CONFIGID.UPNP.ORG"

// ConfigID denotes the configuration of a device's description document.
//
// UPnP 1.1 reserves higher numbers for future use by the technical
// committee; devices should use 0 to 16777215 but we do not enforce that
// narrower range here, matching the upstream implementation this was
// ported from.
type ConfigID uint32

// ParseConfigID parses a single-line CONFIGID.UPNP.ORG header value.
func ParseConfigID(raw [][]byte) (ConfigID, error) {
	if len(raw) != 1 {
		return 0, &InvalidHeaderError{Name: ConfigIDHeaderName, Reason: "expected exactly one header line"}
	}
	v, err := parseSigned31(raw[0])
	if err != nil {
		return 0, &InvalidHeaderError{Name: ConfigIDHeaderName, Reason: err.Error()}
	}
	return ConfigID(v), nil
}

// Format renders the ConfigID header back onto its wire form.
func (c ConfigID) Format() []byte {
	return []byte(strconv.FormatUint(uint64(c), 10))
}

// GetConfigID looks up and parses the CONFIGID.UPNP.ORG header from a header bag.
func GetConfigID(h HeaderRef) (ConfigID, bool, error) {
	raw, ok := h.GetRaw(ConfigIDHeaderName)
	if !ok {
		return 0, false, nil
	}
	v, err := ParseConfigID(raw)
	if err != nil {
		return 0, true, err
	}
	return v, true, nil
}

// SetConfigID formats and stores the CONFIGID.UPNP.ORG header on a header bag.
func SetConfigID(h HeaderMut, v ConfigID) {
	h.SetRaw(ConfigIDHeaderName, [][]byte{v.Format()})
}
