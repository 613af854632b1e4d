// Package pcx converts the raster layout used by Heroes 3's PCX assets
// into a standard image.Image, ready for encoding as a 24-bit BMP.
//
// Grounded on original_source/pcx2bmp.rs and bmp.rs: the header is a
// 12-byte (bitmap_size, width, height) record, followed by either an
// 8-bit palettized pixel plane plus a trailing 768-byte (256*3) RGB
// palette, or an already-24-bit BGR pixel plane.
package pcx

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/rrowniak/tower-h3/h3merr"
)

const headerSize = 12 // bitmap_size, width, height, each u32 LE
const paletteSize = 256 * 3

// Header is the PCX asset's fixed preamble.
type Header struct {
	BitmapSize uint32
	Width      uint32
	Height     uint32
}

// Decode parses a Heroes 3 PCX asset and returns it as an image.NRGBA.
func Decode(data []byte) (*image.NRGBA, error) {
	if len(data) < headerSize {
		return nil, h3merr.Decode("pcx.header", "file smaller than PCX header")
	}

	h := Header{
		BitmapSize: le32(data[0:4]),
		Width:      le32(data[4:8]),
		Height:     le32(data[8:12]),
	}

	pixels := data[headerSize:]
	got := len(pixels)
	exp8bit := int(h.Width*h.Height) + paletteSize
	exp24bit := int(3 * h.Width * h.Height)

	switch got {
	case exp8bit:
		return decodePalettized(h, pixels)
	case exp24bit:
		return decodeTrueColor(h, pixels)
	default:
		return nil, h3merr.Decode("pcx.pixels",
			fmt.Sprintf("unexpected pixel byte count: got %d, want %d (8-bit) or %d (24-bit)", got, exp8bit, exp24bit))
	}
}

func decodePalettized(h Header, pixels []byte) (*image.NRGBA, error) {
	w, ht := int(h.Width), int(h.Height)
	indices := pixels[:w*ht]
	palette := pixels[len(pixels)-paletteSize:]

	img := image.NewNRGBA(image.Rect(0, 0, w, ht))
	for i, idx := range indices {
		r, g, b := paletteColor(palette, idx)
		x, y := i%w, i/w
		img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 0xFF})
	}
	return img, nil
}

// decodeTrueColor reads the already-24-bit pixel plane. Unlike the
// palettized plane, these bytes are stored pre-swapped for direct BMP
// writing: blue, green, red per pixel.
func decodeTrueColor(h Header, pixels []byte) (*image.NRGBA, error) {
	w, ht := int(h.Width), int(h.Height)
	img := image.NewNRGBA(image.Rect(0, 0, w, ht))
	for i := 0; i < w*ht; i++ {
		b, g, r := pixels[i*3], pixels[i*3+1], pixels[i*3+2]
		x, y := i%w, i/w
		img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 0xFF})
	}
	return img, nil
}

func paletteColor(palette []byte, index byte) (r, g, b uint8) {
	i := int(index) * 3
	return palette[i], palette[i+1], palette[i+2]
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// DecodeFile reads and decodes a PCX asset from disk.
func DecodeFile(path string) (*image.NRGBA, error) {
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
	return Decode(data)
}
