// Package lod reads LOD flat archives: a fixed-size header, a fixed
// 10000-entry table, and per-entry bytes that are either stored raw or
// DEFLATE (zlib) compressed.
//
// Grounded on original_source/lod_reader.rs, re-expressed as a
// streaming Go reader instead of a packed-struct memory cast.
package lod

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/rrowniak/tower-h3/h3merr"
)

const (
	magic        = 0x00444F4C
	nameSize     = 16
	entrySize    = nameSize + 4*4
	headerSize   = 4 + 4 + 4 + 80
	maxEntries   = 10000
	typeH3C      = 1
	typeText     = 2
)

// FileType classifies an archive entry's content.
type FileType uint32

const (
	TypeRaw  FileType = 0
	TypeH3C  FileType = typeH3C
	TypeText FileType = typeText
)

// Entry describes one archive member: its table metadata, not its bytes.
type Entry struct {
	Name           string
	Offset         uint32
	OriginalSize   uint32
	CompressedSize uint32
	Type           FileType
}

// Header is the archive's fixed preamble.
type Header struct {
	Version  uint32
	FilesNum uint32
}

// Visitor is invoked once per archive member, in table order, stopping
// early at the first empty name or after FilesNum entries, whichever
// comes first.
type Visitor func(entry Entry, data []byte) error

// Walk opens path, decodes its LOD header and table, and invokes visit
// once per member with its decompressed (or raw) bytes.
func Walk(path string, visit Visitor) error {
	data, err := readFile(path)
	if err != nil {
		return err
	}
	return walk(data, visit)
}

// ReadAll reads every archive member into memory and returns them in
// table order.
func ReadAll(path string) ([]Entry, map[string][]byte, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, nil, err
	}
	var entries []Entry
	out := map[string][]byte{}
	err = walk(data, func(e Entry, b []byte) error {
		entries = append(entries, e)
		out[e.Name] = b
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return entries, out, nil
}

func readFile(path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, h3merr.ErrNotFound
		}
		return nil, h3merr.Io("stat", err)
	}
	if fi.IsDir() {
		return nil, h3merr.ErrNotAFile
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, h3merr.Io("read", err)
	}
	return data, nil
}

func walk(data []byte, visit Visitor) error {
	if len(data) < headerSize {
		return h3merr.Decode("lod.header", "file smaller than LOD header")
	}
	if binary.LittleEndian.Uint32(data[0:4]) != magic {
		return h3merr.ErrBadMagic
	}
	filesNum := binary.LittleEndian.Uint32(data[8:12])
	if filesNum > maxEntries {
		filesNum = maxEntries
	}

	tableStart := headerSize
	for i := uint32(0); i < filesNum; i++ {
		recStart := tableStart + int(i)*entrySize
		if recStart+entrySize > len(data) {
			return h3merr.Decode("lod.table", "entry table truncated")
		}
		rec := data[recStart : recStart+entrySize]

		nameRaw := rec[0:nameSize]
		nameEnd := bytes.IndexByte(nameRaw, 0)
		if nameEnd == -1 {
			nameEnd = nameSize
		}
		name := string(nameRaw[:nameEnd])
		if name == "" {
			break
		}

		e := Entry{
			Name:           name,
			Offset:         binary.LittleEndian.Uint32(rec[16:20]),
			OriginalSize:   binary.LittleEndian.Uint32(rec[20:24]),
			Type:           FileType(binary.LittleEndian.Uint32(rec[24:28])),
			CompressedSize: binary.LittleEndian.Uint32(rec[28:32]),
		}

		fileBytes, err := extract(data, e)
		if err != nil {
			return err
		}

		if err := visit(e, fileBytes); err != nil {
			return err
		}
	}
	return nil
}

func extract(data []byte, e Entry) ([]byte, error) {
	from := int(e.Offset)
	if e.CompressedSize != 0 {
		to := from + int(e.CompressedSize)
		if from > to || to > len(data) {
			return nil, h3merr.Decode("lod.entry", fmt.Sprintf("%s: slice out of range", e.Name))
		}
		return inflate(data[from:to], int(e.OriginalSize))
	}
	to := from + int(e.OriginalSize)
	if from > to || to > len(data) {
		return nil, h3merr.Decode("lod.entry", fmt.Sprintf("%s: slice out of range", e.Name))
	}
	return data[from:to], nil
}

// inflate zlib-decompresses compressed to exactly expectedSize bytes.
// The original reader calls zlib's one-shot uncompress() with a
// preallocated destination buffer of the expected size; the Go
// equivalent is a streaming zlib.Reader bounded by io.ReadFull.
func inflate(compressed []byte, expectedSize int) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, h3merr.Decompress("data", err)
	}
	defer zr.Close()

	out := make([]byte, expectedSize)
	if _, err := io.ReadFull(zr, out); err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, h3merr.Decompress("unknown", err)
	} else if err != nil {
		return nil, h3merr.Decompress("buffer-too-small", err)
	}
	return out, nil
}
