package ssdp

import "bytes"

// FieldKind classifies the key half of a FieldMap.
type FieldKind int

const (
	// FieldUPnP is the "upnp" key.
	FieldUPnP FieldKind = iota
	// FieldUUID is the "uuid" key.
	FieldUUID
	// FieldURN is the "urn" key.
	FieldURN
	// FieldUnknown is any key that isn't one of the well-known prefixes.
	FieldUnknown
)

const (
	upnpPrefix = "upnp"
	uuidPrefix = "uuid"
	urnPrefix  = "urn"
)

// FieldMap is the "prefix:value" token embedded in several SSDP header
// values (NT, ST, USN). The key is classified against the well-known
// UPnP prefixes; anything else round-trips through FieldUnknown with its
// raw key preserved.
type FieldMap struct {
	Kind  FieldKind
	Key   string // only meaningful when Kind == FieldUnknown
	Value string
}

// NewUPnP builds a FieldMap with the "upnp" key.
func NewUPnP(value string) FieldMap { return FieldMap{Kind: FieldUPnP, Value: value} }

// NewUUID builds a FieldMap with the "uuid" key.
func NewUUID(value string) FieldMap { return FieldMap{Kind: FieldUUID, Value: value} }

// NewURN builds a FieldMap with the "urn" key.
func NewURN(value string) FieldMap { return FieldMap{Kind: FieldURN, Value: value} }

// NewUnknown builds a FieldMap carrying an arbitrary key.
func NewUnknown(key, value string) FieldMap { return FieldMap{Kind: FieldUnknown, Key: key, Value: value} }

// ParseFieldMap splits raw at the first colon and classifies the key.
// Neither side of the split may be empty.
func ParseFieldMap(raw []byte) (FieldMap, bool) {
	idx := bytes.IndexByte(raw, ':')
	if idx < 0 {
		return FieldMap{}, false
	}

	key := raw[:idx]
	value := raw[idx+1:]
	if len(key) == 0 || len(value) == 0 {
		return FieldMap{}, false
	}

	switch string(key) {
	case uuidPrefix:
		return FieldMap{Kind: FieldUUID, Value: string(value)}, true
	case urnPrefix:
		return FieldMap{Kind: FieldURN, Value: string(value)}, true
	case upnpPrefix:
		return FieldMap{Kind: FieldUPnP, Value: string(value)}, true
	default:
		return FieldMap{Kind: FieldUnknown, Key: string(key), Value: string(value)}, true
	}
}

// Format renders the FieldMap back onto its wire form, "<prefix>:<value>".
func (f FieldMap) Format() []byte {
	var buf bytes.Buffer
	switch f.Kind {
	case FieldUUID:
		buf.WriteString(uuidPrefix)
	case FieldURN:
		buf.WriteString(urnPrefix)
	case FieldUPnP:
		buf.WriteString(upnpPrefix)
	default:
		buf.WriteString(f.Key)
	}
	buf.WriteByte(':')
	buf.WriteString(f.Value)
	return buf.Bytes()
}

// String implements fmt.Stringer for debug output and logging.
func (f FieldMap) String() string {
	return string(f.Format())
}
