package ssdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldMap(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantOK  bool
		wantFM  FieldMap
	}{
		{"uuid", "uuid:abc-123", true, NewUUID("abc-123")},
		{"urn", "urn:schemas-upnp-org:device:Basic:1", true, NewURN("schemas-upnp-org:device:Basic:1")},
		{"upnp", "upnp:rootdevice", true, NewUPnP("rootdevice")},
		{"unknown prefix", "foo:bar", true, NewUnknown("foo", "bar")},
		{"no colon", "rootdevice", false, FieldMap{}},
		{"empty key", ":value", false, FieldMap{}},
		{"empty value", "upnp:", false, FieldMap{}},
		{"empty", "", false, FieldMap{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseFieldMap([]byte(tc.raw))
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantFM, got)
			}
		})
	}
}

func TestFieldMapFormatRoundTrip(t *testing.T) {
	for _, raw := range []string{"uuid:abc", "urn:schemas-upnp-org:service:X:1", "upnp:rootdevice", "custom:value"} {
		fm, ok := ParseFieldMap([]byte(raw))
		require.True(t, ok)
		assert.Equal(t, raw, string(fm.Format()))
	}
}
