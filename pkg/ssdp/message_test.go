package ssdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessageCloneIsIndependent(t *testing.T) {
	msg := NewMessage(MessageNotify)
	SetLocation(msg, "http://example.com/desc.xml")

	clone := msg.Clone()
	SetLocation(clone, "http://example.com/other.xml")

	original, _ := GetLocation(msg)
	cloned, _ := GetLocation(clone)

	assert.Equal(t, "http://example.com/desc.xml", original)
	assert.Equal(t, "http://example.com/other.xml", cloned)
}

func TestHeadersNamesPreservesInsertionOrder(t *testing.T) {
	h := NewHeaders()
	h.SetRaw("NT", [][]byte{[]byte("upnp:rootdevice")})
	h.SetRaw("USN", [][]byte{[]byte("uuid:abc")})
	h.SetRaw("LOCATION", [][]byte{[]byte("http://x")})

	assert.Equal(t, []string{"NT", "USN", "LOCATION"}, h.Names())
}
