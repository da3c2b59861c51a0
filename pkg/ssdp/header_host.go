package ssdp

// HostHeaderName is the wire name of the HTTP request Host header. SSDP
// requests inherit it from HTTP/1.1 framing even though the request
// target is always "*"; closing that gap is why DecodeMessage enforces
// its presence instead of trusting the underlying tokenizer (spec §4.6,
// original_source/src/message/ssdp.rs validate_http_host).
const HostHeaderName = "Host"

// GetHost returns the raw Host header value as text.
func GetHost(h HeaderRef) (string, bool) {
	raw, ok := h.GetRaw(HostHeaderName)
	if !ok || len(raw) == 0 {
		return "", false
	}
	return string(raw[0]), true
}

// SetHost stores the Host header as raw text.
func SetHost(h HeaderMut, host string) {
	h.SetRaw(HostHeaderName, [][]byte{[]byte(host)})
}
