package ssdp

// LocationHeaderName is the wire name of the device description URL header.
const LocationHeaderName = "LOCATION"

// ServerHeaderName is the wire name of the server self-identification header.
const ServerHeaderName = "SERVER"

// CacheControlHeaderName is the wire name of the cache-control header.
const CacheControlHeaderName = "CACHE-CONTROL"

// GetLocation returns the raw LOCATION header value as text. Unlike the
// strict SSDP headers, LOCATION carries an arbitrary URL and is not
// validated beyond being present.
func GetLocation(h HeaderRef) (string, bool) {
	raw, ok := h.GetRaw(LocationHeaderName)
	if !ok || len(raw) == 0 {
		return "", false
	}
	return string(raw[0]), true
}

// SetLocation stores the LOCATION header as raw text.
func SetLocation(h HeaderMut, url string) {
	h.SetRaw(LocationHeaderName, [][]byte{[]byte(url)})
}

// GetServer returns the raw SERVER header value as text.
func GetServer(h HeaderRef) (string, bool) {
	raw, ok := h.GetRaw(ServerHeaderName)
	if !ok || len(raw) == 0 {
		return "", false
	}
	return string(raw[0]), true
}

// SetServer stores the SERVER header as raw text.
func SetServer(h HeaderMut, server string) {
	h.SetRaw(ServerHeaderName, [][]byte{[]byte(server)})
}

// SetCacheControl stores the CACHE-CONTROL header as raw text.
func SetCacheControl(h HeaderMut, directive string) {
	h.SetRaw(CacheControlHeaderName, [][]byte{[]byte(directive)})
}
