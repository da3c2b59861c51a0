package ssdp

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalAddrsDoesNotReturnLoopback(t *testing.T) {
	addrs, err := LocalAddrs(Any)
	assert.NoError(t, err)
	for _, a := range addrs {
		assert.False(t, a.IP.IsLoopback(), "LocalAddrs must filter out loopback addresses")
	}
}

func TestLocalAddrsRespectsMode(t *testing.T) {
	v4, err := LocalAddrs(V4Only)
	assert.NoError(t, err)
	for _, a := range v4 {
		assert.NotNil(t, a.IP.To4(), "V4Only must only return IPv4 addresses")
	}

	v6, err := LocalAddrs(V6Only)
	assert.NoError(t, err)
	for _, a := range v6 {
		assert.Nil(t, a.IP.To4(), "V6Only must only return IPv6 addresses")
	}
}

func TestIsPrivateOrULA(t *testing.T) {
	assert.True(t, isPrivateOrULA(net.ParseIP("fc00::1")))
	assert.False(t, isPrivateOrULA(net.ParseIP("2001:db8::1")))
}
