package ssdp

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeNotifyRoundTrip(t *testing.T) {
	msg := NewMessage(MessageNotify)
	SetNT(msg, NT{Field: NewUPnP("rootdevice")})
	SetNTS(msg, NTSAlive)
	SetUSN(msg, NewUSN(NewUUID("device-UUID"), nil))
	SetLocation(msg, "http://192.168.1.1:8080/desc.xml")
	SetHost(msg, "239.255.255.250:1900")

	var buf bytes.Buffer
	require.NoError(t, EncodeMessage(msg, &buf))

	decoded, err := DecodeMessage(rewriteRequestTarget(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, MessageNotify, decoded.Type)

	nt, ok, err := GetNT(decoded)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, NewUPnP("rootdevice"), nt.Field)

	nts, ok, err := GetNTS(decoded)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, NTSAlive, nts)

	location, ok := GetLocation(decoded)
	require.True(t, ok)
	assert.Equal(t, "http://192.168.1.1:8080/desc.xml", location)
}

func TestEncodeDecodeResponseRoundTrip(t *testing.T) {
	msg := NewMessage(MessageResponse)
	SetST(msg, STAll())
	SetUSN(msg, NewUSN(NewUUID("device-UUID"), nil))
	SetLocation(msg, "http://192.168.1.1:8080/desc.xml")

	var buf bytes.Buffer
	require.NoError(t, EncodeMessage(msg, &buf))

	decoded, err := DecodeMessage(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, MessageResponse, decoded.Type)
}

func TestDecodeMessageRejectsGarbage(t *testing.T) {
	_, err := DecodeMessage([]byte("not an http message\r\n\r\n"))
	assert.Error(t, err)
}

func TestDecodeMessageRejectsWrongRequestTarget(t *testing.T) {
	_, err := DecodeMessage([]byte("NOTIFY /device HTTP/1.1\r\n\r\n"))
	var uriErr *InvalidURIError
	assert.ErrorAs(t, err, &uriErr)
}

func TestDecodeMessageRejectsNon200Response(t *testing.T) {
	_, err := DecodeMessage([]byte("HTTP/1.1 404 Not Found\r\n\r\n"))
	var codeErr *ResponseCodeError
	assert.ErrorAs(t, err, &codeErr)
}

func TestDecodeMessageRejectsMissingHost(t *testing.T) {
	_, err := DecodeMessage([]byte("NOTIFY * HTTP/1.1\r\n\r\n"))
	var missingErr *MissingHeaderError
	require.ErrorAs(t, err, &missingErr)
	assert.Equal(t, HostHeaderName, missingErr.Name)
}

func TestDecodeMessageAcceptsRequestWithHost(t *testing.T) {
	_, err := DecodeMessage([]byte("M-SEARCH * HTTP/1.1\r\nHost: 239.255.255.250:1900\r\n\r\n"))
	assert.NoError(t, err)
}
