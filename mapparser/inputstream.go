// This file contains InputStream, the positional little-endian reader
// every section decoder reads through. Primitives panic on short reads;
// parseProtected recovers and turns the panic into a structured error.

package mapparser

import (
	"encoding/binary"
	"fmt"

	"github.com/rrowniak/tower-h3/h3mlog"
)

// shortRead is the panic value raised when a primitive runs past the
// end of the buffer.
type shortRead struct{ where string }

// decodeFail is the panic value raised when a structured check (an
// enumerated tag, a bitmap width, …) rejects the input.
type decodeFail struct{ where, why string }

// InputStream reads little-endian primitives from an in-memory buffer.
type InputStream struct {
	b   []byte
	pos int
}

// NewInputStream wraps b for reading from offset 0.
func NewInputStream(b []byte) *InputStream {
	return &InputStream{b: b}
}

func (s *InputStream) need(n int, where string) {
	if s.pos+n > len(s.b) {
		panic(shortRead{where: where})
	}
}

// fail aborts decoding of the current field with a structured reason.
func (s *InputStream) fail(where, why string) {
	panic(decodeFail{where: where, why: why})
}

// U8 reads one byte.
func (s *InputStream) U8(where string) uint8 {
	s.need(1, where)
	v := s.b[s.pos]
	s.pos++
	return v
}

// I8 reads one signed byte.
func (s *InputStream) I8(where string) int8 {
	return int8(s.U8(where))
}

// Bool reads one byte, true iff nonzero.
func (s *InputStream) Bool(where string) bool {
	return s.U8(where) != 0
}

// U16 reads 2 little-endian bytes.
func (s *InputStream) U16(where string) uint16 {
	s.need(2, where)
	v := binary.LittleEndian.Uint16(s.b[s.pos:])
	s.pos += 2
	return v
}

// U32 reads 4 little-endian bytes.
func (s *InputStream) U32(where string) uint32 {
	s.need(4, where)
	v := binary.LittleEndian.Uint32(s.b[s.pos:])
	s.pos += 4
	return v
}

// I32 reads 4 little-endian bytes as a signed value.
func (s *InputStream) I32(where string) int32 {
	return int32(s.U32(where))
}

// Bytes reads exactly n bytes.
func (s *InputStream) Bytes(n int, where string) []byte {
	s.need(n, where)
	v := make([]byte, n)
	copy(v, s.b[s.pos:s.pos+n])
	s.pos += n
	return v
}

// StringLE reads a u32 length prefix followed by that many opaque bytes.
func (s *InputStream) StringLE(where string) string {
	n := s.U32(where)
	return string(s.Bytes(int(n), where))
}

// Skip advances the cursor by n bytes without returning them.
func (s *InputStream) Skip(n int, where string) {
	s.need(n, where)
	s.pos += n
}

// Position returns the current absolute offset.
func (s *InputStream) Position() int { return s.pos }

// Seek moves the cursor to an absolute offset, used only by HexDump's
// restore-on-return contract.
func (s *InputStream) Seek(p int) { s.pos = p }

// Len returns the total buffer length.
func (s *InputStream) Len() int { return len(s.b) }

// HexDump logs a window of bytes around the current position for
// diagnostics. It never moves the cursor.
func (s *InputStream) HexDump(before, after int) {
	start := s.pos - before
	if start < 0 {
		start = 0
	}
	end := s.pos + after
	if end > len(s.b) {
		end = len(s.b)
	}
	h3mlog.Debug("hex dump", h3mlog.F("offset", s.pos), h3mlog.F("window", fmt.Sprintf("% x", s.b[start:end])))
}
