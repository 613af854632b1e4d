package mapparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputStream_scalars(t *testing.T) {
	s := NewInputStream([]byte{0x01, 0x00, 0x2a, 0x00, 0x00, 0x00, 0xff})
	assert.Equal(t, uint8(0x01), s.U8("t"))
	assert.False(t, s.Bool("t"))
	assert.Equal(t, uint32(0x2a), s.U32("t"))
	assert.Equal(t, uint8(0xff), s.U8("t"))
	assert.Equal(t, 7, s.Position())
}

func TestInputStream_stringLE(t *testing.T) {
	// "Ivor" length-prefixed as u32 LE.
	s := NewInputStream([]byte{0x04, 0x00, 0x00, 0x00, 'I', 'v', 'o', 'r'})
	assert.Equal(t, "Ivor", s.StringLE("t"))
}

func TestInputStream_stringLE_empty(t *testing.T) {
	s := NewInputStream([]byte{0x00, 0x00, 0x00, 0x00})
	assert.Equal(t, "", s.StringLE("t"))
}

func TestInputStream_shortRead_panics(t *testing.T) {
	s := NewInputStream([]byte{0x01})
	require.Panics(t, func() { s.U32("t") })

	var got any
	func() {
		defer func() { got = recover() }()
		s2 := NewInputStream(nil)
		s2.U8("somewhere")
	}()
	sr, ok := got.(shortRead)
	require.True(t, ok)
	assert.Equal(t, "somewhere", sr.where)
}

func TestInputStream_skipAndSeek(t *testing.T) {
	s := NewInputStream(make([]byte, 10))
	s.Skip(4, "t")
	assert.Equal(t, 4, s.Position())
	s.Seek(0)
	assert.Equal(t, 0, s.Position())
	assert.Equal(t, 10, s.Len())
}

func TestInputStream_fail_panicsDecodeFail(t *testing.T) {
	s := NewInputStream(nil)
	var got any
	func() {
		defer func() { got = recover() }()
		s.fail("where", "why")
	}()
	df, ok := got.(decodeFail)
	require.True(t, ok)
	assert.Equal(t, "where", df.where)
	assert.Equal(t, "why", df.why)
}
