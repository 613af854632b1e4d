package mapparser

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrowniak/tower-h3/h3m/h3mcore"
	"github.com/rrowniak/tower-h3/h3merr"
)

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func u16le(v uint16) []byte {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return b
}

func TestReadFormatTagAndProfile_roe(t *testing.T) {
	s := NewInputStream(u32le(0x0e))
	tag, mirror, arena, profile := readFormatTagAndProfile(s)
	assert.Equal(t, h3mcore.FormatROE, tag)
	assert.False(t, mirror)
	assert.False(t, arena)
	assert.False(t, profile.LevelAB)
	assert.Equal(t, 4, s.Position())
}

func TestReadFormatTagAndProfile_hotaSubVersion3(t *testing.T) {
	// HOTA sub_version=3, build-grail win + round limit scenario.
	var data []byte
	data = append(data, u32le(0x20)...)
	data = append(data, u32le(3)...)
	data = append(data, 0, 0) // mirror=0, arena=0
	data = append(data, u32le(12)...)

	s := NewInputStream(data)
	tag, mirror, arena, profile := readFormatTagAndProfile(s)
	assert.Equal(t, h3mcore.FormatHOTA, tag)
	assert.False(t, mirror)
	assert.False(t, arena)
	assert.True(t, profile.LevelHOTA3)
	assert.Equal(t, uint32(3), profile.SubVersion)
	assert.Equal(t, len(data), s.Position())
}

func TestReadFormatTagAndProfile_unknownTagFails(t *testing.T) {
	s := NewInputStream(u32le(0xabcdef))
	assert.Panics(t, func() { readFormatTagAndProfile(s) })
}

func TestReadFormatTagAndProfile_vcmiRejected(t *testing.T) {
	s := NewInputStream(u32le(0x64))
	assert.Panics(t, func() { readFormatTagAndProfile(s) })
}

func TestParseProtected_convertsShortReadPanic(t *testing.T) {
	_, err := parseProtected(u32le(0x0e)[:2], Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, h3merr.ErrShortRead)
}

func TestParseProtected_convertsUnknownTagToDecodeError(t *testing.T) {
	_, err := parseProtected(u32le(0x99), Config{})
	require.Error(t, err)
	var de *h3merr.DecodeError
	assert.ErrorAs(t, err, &de)
}
