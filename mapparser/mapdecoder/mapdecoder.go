/*

Package mapdecoder implements the outermost framing layer of an H3M file:
detecting and undoing an optional gzip wrapper before the section decoder
ever sees the bytes.

*/
package mapdecoder

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"io"

	"github.com/rrowniak/tower-h3/h3merr"
)

// gzipMagic is the 4-byte gzip header (1F 8B 08 00) read as a little-endian
// uint32 sentinel.
const gzipMagic = 0x00088B1F

// IsGzipped reports whether data begins with the gzip magic.
func IsGzipped(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	return binary.LittleEndian.Uint32(data[:4]) == gzipMagic
}

// Decode returns the raw H3M bytes, inflating a leading gzip wrapper if
// present. The input is otherwise returned unchanged.
func Decode(data []byte) ([]byte, error) {
	if !IsGzipped(data) {
		return data, nil
	}

	gr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, h3merr.Decompress("data", err)
	}
	defer gr.Close()

	out, err := io.ReadAll(gr)
	if err != nil {
		return nil, h3merr.Decompress("data", err)
	}
	return out, nil
}
