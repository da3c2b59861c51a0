package ssdp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNTS(t *testing.T) {
	good := map[string]NTS{
		"ssdp:alive":  NTSAlive,
		"ssdp:update": NTSUpdate,
		"ssdp:byebye": NTSByeBye,
	}
	for raw, want := range good {
		got, err := ParseNTS([][]byte{[]byte(raw)})
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseNTS([][]byte{[]byte("ssdp:ALIVE")})
	assert.Error(t, err, "match must be exact, case included")
}

func TestParseST(t *testing.T) {
	all, err := ParseST([][]byte{[]byte("ssdp:all")})
	assert.NoError(t, err)
	assert.True(t, all.All)

	target, err := ParseST([][]byte{[]byte("urn:schemas-upnp-org:device:Basic:1")})
	assert.NoError(t, err)
	assert.False(t, target.All)
	assert.Equal(t, NewURN("schemas-upnp-org:device:Basic:1"), target.Target)

	_, err = ParseST([][]byte{[]byte("not-a-field")})
	assert.Error(t, err)
}

func TestParseMX(t *testing.T) {
	_, err := ParseMX([][]byte{[]byte("0")})
	assert.Error(t, err, "0 is below MXMin")

	_, err = ParseMX([][]byte{[]byte("121")})
	assert.Error(t, err, "121 is above MXMax")

	mx, err := ParseMX([][]byte{[]byte("5")})
	assert.NoError(t, err)
	assert.Equal(t, MX(5), mx)
}

func TestParseMan(t *testing.T) {
	_, err := ParseMan([][]byte{[]byte(`"ssdp:discover"`)})
	assert.NoError(t, err)

	_, err = ParseMan([][]byte{[]byte("ssdp:discover")})
	assert.Error(t, err, "quotes are part of the literal")
}

func TestParseBootIDNegativeZero(t *testing.T) {
	got, err := ParseBootID([][]byte{[]byte("-0")})
	assert.NoError(t, err)
	assert.Equal(t, BootID(0), got)

	_, err = ParseBootID([][]byte{[]byte("-1")})
	assert.Error(t, err, "any negative value other than -0 is rejected")

	got, err = ParseBootID([][]byte{[]byte("42")})
	assert.NoError(t, err)
	assert.Equal(t, BootID(42), got)
}

func TestParseSearchPortBounds(t *testing.T) {
	_, err := ParseSearchPort([][]byte{[]byte("1024")})
	assert.Error(t, err, "below SearchPortMin")

	got, err := ParseSearchPort([][]byte{[]byte("49200")})
	assert.NoError(t, err)
	assert.Equal(t, SearchPort(49200), got)
}
