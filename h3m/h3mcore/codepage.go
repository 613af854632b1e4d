// This file contains an opt-in transcoding helper for the legacy 8-bit
// codepage H3M strings are historically encoded in. The core decoder never
// calls this: strings are surfaced as opaque bytes at the decoder boundary
// (spec: string codepage is unconfirmed, guessing inside the decoder risks
// corruption). A higher layer that knows it wants Windows-1250 text can
// call DecodeWindows1250 explicitly, mirroring how the teacher's
// koreanString helper is an explicit, opt-in transform applied by the
// caller of cString, never forced on every string.
package h3mcore

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DecodeWindows1250 transcodes raw to UTF-8 assuming it is Windows-1250
// (the historically documented, unconfirmed encoding of H3M strings). On
// transcoding error the original bytes are returned as a best-effort
// fallback, the same degrade-gracefully behavior the teacher's Korean
// decoding path uses.
func DecodeWindows1250(raw []byte) string {
	out, _, err := transform.Bytes(charmap.Windows1250.NewDecoder(), raw)
	if err != nil {
		return string(raw)
	}
	return string(out)
}
