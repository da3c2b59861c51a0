package ssdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUSN(t *testing.T) {
	t.Run("double pair", func(t *testing.T) {
		got, err := ParseUSN([][]byte{[]byte("uuid:device-UUID::upnp:rootdevice")})
		require.NoError(t, err)
		assert.Equal(t, NewUUID("device-UUID"), got.First)
		require.NotNil(t, got.Second)
		assert.Equal(t, NewUPnP("rootdevice"), *got.Second)
	})

	t.Run("single pair", func(t *testing.T) {
		got, err := ParseUSN([][]byte{[]byte("uuid:device-UUID")})
		require.NoError(t, err)
		assert.Equal(t, NewUUID("device-UUID"), got.First)
		assert.Nil(t, got.Second)
	})

	t.Run("trailing double colon folded", func(t *testing.T) {
		got, err := ParseUSN([][]byte{[]byte("upnp:rootdevice::")})
		require.NoError(t, err)
		assert.Equal(t, NewUPnP("rootdevice"), got.First)
		assert.Nil(t, got.Second)
	})

	t.Run("trailing single colon folded", func(t *testing.T) {
		got, err := ParseUSN([][]byte{[]byte("upnp:rootdevice:")})
		require.NoError(t, err)
		assert.Equal(t, NewUPnP("rootdevice"), got.First)
		assert.Nil(t, got.Second)
	})

	negativeCases := []string{"", ":", "::", "uuid:::"}
	for _, raw := range negativeCases {
		raw := raw
		t.Run("invalid: "+raw, func(t *testing.T) {
			_, err := ParseUSN([][]byte{[]byte(raw)})
			assert.Error(t, err)
		})
	}

	t.Run("wrong number of lines", func(t *testing.T) {
		_, err := ParseUSN([][]byte{[]byte("a:b"), []byte("c:d")})
		assert.Error(t, err)
	})
}

func TestUSNFormatRoundTrip(t *testing.T) {
	second := NewUPnP("rootdevice")
	u := NewUSN(NewUUID("device-UUID"), &second)
	assert.Equal(t, "uuid:device-UUID::upnp:rootdevice", u.String())

	u2 := NewUSN(NewUUID("device-UUID"), nil)
	assert.Equal(t, "uuid:device-UUID", u2.String())
}
