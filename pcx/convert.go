package pcx

import (
	"bytes"
	"image"
	"os"

	"golang.org/x/image/bmp"

	"github.com/rrowniak/tower-h3/h3merr"
)

// Convert decodes a PCX asset and re-encodes it as a 24-bit BMP.
func Convert(data []byte) ([]byte, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return encodeBMP(img)
}

// ConvertFile reads src, converts it, and writes the BMP bytes to dst.
func ConvertFile(src, dst string) error {
	img, err := DecodeFile(src)
	if err != nil {
		return err
	}
	out, err := encodeBMP(img)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return h3merr.Io("write", err)
	}
	return nil
}

func encodeBMP(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, img); err != nil {
		return nil, h3merr.Decode("pcx.bmp", err.Error())
	}
	return buf.Bytes(), nil
}
