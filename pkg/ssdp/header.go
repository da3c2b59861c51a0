package ssdp

import (
	"errors"
	"net/textproto"
)

// errInvalidInteger is the shared parse failure reason for the numeric
// SSDP headers (BootID, ConfigID) that reject non-decimal or
// out-of-range input.
var errInvalidInteger = errors.New("value must be a decimal integer representable as a non-negative 31-bit signed integer")

// HeaderRef views the contents of a header bag: typed access and raw
// byte-line access side by side, matching the teacher's hyper-derived
// HeaderRef/HeaderMut split (original_source/src/header/mod.rs) without
// Rust-style generic dispatch — Go gets one typed getter per header
// instead of a single generic Get[H]().
type HeaderRef interface {
	GetRaw(name string) ([][]byte, bool)
}

// HeaderMut mutates the contents of a header bag.
type HeaderMut interface {
	SetRaw(name string, lines [][]byte)
}

// Headers is an ordered, case-insensitive mapping from header name to one
// or more raw byte lines. It backs Message and is the single source of
// truth headers are parsed from and formatted onto. Lookups are keyed by
// the MIME-canonicalized form of a name, but the literal name first given
// to SetRaw is what Names() (and therefore EncodeMessage) reproduces on
// the wire: SSDP's own header tokens (NT, USN, BOOTID.UPNP.ORG, ...) are
// not MIME-canonical, and the wire must carry them bit-exact.
type Headers struct {
	order []string          // canonical keys, insertion order
	names map[string]string // canonical key -> literal name first set
	lines map[string][][]byte
}

// NewHeaders constructs an empty header bag.
func NewHeaders() *Headers {
	return &Headers{names: make(map[string]string), lines: make(map[string][][]byte)}
}

func canonical(name string) string {
	return textproto.CanonicalMIMEHeaderKey(name)
}

// GetRaw returns the raw byte lines stored for name, if any.
func (h *Headers) GetRaw(name string) ([][]byte, bool) {
	lines, ok := h.lines[canonical(name)]
	return lines, ok
}

// SetRaw replaces the lines stored for name, preserving insertion order
// and the literal casing of name for new keys.
func (h *Headers) SetRaw(name string, lines [][]byte) {
	key := canonical(name)
	if _, exists := h.lines[key]; !exists {
		h.order = append(h.order, key)
		h.names[key] = name
	}
	h.lines[key] = lines
}

// Names returns header names, in their originally-set literal casing, in
// insertion order.
func (h *Headers) Names() []string {
	out := make([]string, len(h.order))
	for i, key := range h.order {
		out[i] = h.names[key]
	}
	return out
}

// Clone returns a deep copy of the header bag, used when a message is
// cloned onto the wire so that sending never shares mutable state with
// the caller's Message (spec §3 ownership: headers are owned by the
// message; sending clones the raw bytes onto the wire).
func (h *Headers) Clone() *Headers {
	clone := NewHeaders()
	for _, key := range h.order {
		lines := h.lines[key]
		dup := make([][]byte, len(lines))
		for i, l := range lines {
			b := make([]byte, len(l))
			copy(b, l)
			dup[i] = b
		}
		clone.order = append(clone.order, key)
		clone.names[key] = h.names[key]
		clone.lines[key] = dup
	}
	return clone
}
