package h3mlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	return out
}

func TestZerologAdapter_fieldTypeDispatch(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	adapter := NewZerologAdapter(zl)

	adapter.Error("boom",
		F("str", "v"),
		F("n", 7),
		F("u32", uint32(9)),
		F("u8", uint8(3)),
		F("u64", uint64(11)),
		F("err", errors.New("bad")),
		F("raw", []byte("xy")),
	)

	line := decodeLine(t, &buf)
	assert.Equal(t, "boom", line["message"])
	assert.Equal(t, "v", line["str"])
	assert.Equal(t, float64(7), line["n"])
	assert.Equal(t, float64(9), line["u32"])
	assert.Equal(t, float64(3), line["u8"])
	assert.Equal(t, float64(11), line["u64"])
	assert.Equal(t, "bad", line["err"])
}

func TestZerologAdapter_levels(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf)
	adapter := NewZerologAdapter(zl)

	adapter.Debug("d")
	line := decodeLine(t, &buf)
	assert.Equal(t, "debug", line["level"])
}
