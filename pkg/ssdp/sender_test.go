package ssdp

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteRequestTarget(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"notify request line", "NOTIFY / HTTP/1.1\r\n", "NOTIFY * HTTP/1.1\r\n"},
		{"search request line", "M-SEARCH / HTTP/1.1\r\n", "M-SEARCH * HTTP/1.1\r\n"},
		{"status line untouched", "HTTP/1.1 200 OK\r\n", "HTTP/1.1 200 OK\r\n"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := rewriteRequestTarget([]byte(tc.in))
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestUdpSenderFlushSendsOneDatagram(t *testing.T) {
	server, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	require.NoError(t, err)
	defer server.Close()

	client, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0})
	require.NoError(t, err)
	defer client.Close()

	sender := newUdpSender(client, server.LocalAddr().(*net.UDPAddr))
	_, err = sender.Write([]byte("NOTIFY / HTTP/1.1\r\n"))
	require.NoError(t, err)
	_, err = sender.Write([]byte("NT: upnp:rootdevice\r\n\r\n"))
	require.NoError(t, err)
	require.NoError(t, sender.Flush())

	buf := make([]byte, MaxPacketLen)
	n, _, err := server.ReadFrom(buf)
	require.NoError(t, err)
	assert.Equal(t, "NOTIFY * HTTP/1.1\r\nNT: upnp:rootdevice\r\n\r\n", string(buf[:n]))
}
