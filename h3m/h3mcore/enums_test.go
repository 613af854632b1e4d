package h3mcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurfaceByID(t *testing.T) {
	s, ok := SurfaceByID(2)
	require.True(t, ok)
	assert.Equal(t, "Grass", s.Name)

	_, ok = SurfaceByID(10)
	assert.False(t, ok)
}

func TestRiverTypeByID(t *testing.T) {
	r, ok := RiverTypeByID(1)
	require.True(t, ok)
	assert.Equal(t, "Clear", r.Name)

	_, ok = RiverTypeByID(0)
	assert.False(t, ok, "0 means no river and is handled by the caller")

	_, ok = RiverTypeByID(5)
	assert.False(t, ok)
}

func TestRoadTypeByID(t *testing.T) {
	r, ok := RoadTypeByID(3)
	require.True(t, ok)
	assert.Equal(t, "Cobblestone", r.Name)

	_, ok = RoadTypeByID(0)
	assert.False(t, ok)
}

func TestResourceByID(t *testing.T) {
	cases := []struct {
		id   uint8
		name string
	}{
		{0, "Wood"}, {3, "Sulfur"}, {6, "Gold"},
	}
	for _, c := range cases {
		r, ok := ResourceByID(c.id)
		require.True(t, ok)
		assert.Equal(t, c.name, r.Name)
	}

	_, ok := ResourceByID(7)
	assert.False(t, ok)
}

func TestTownByIndex(t *testing.T) {
	tn, ok := TownByIndex(9)
	require.True(t, ok)
	assert.Equal(t, "Cove", tn.Name)

	_, ok = TownByIndex(10)
	assert.False(t, ok)
}

func TestObjectKindByID_unknownIsNonFatal(t *testing.T) {
	k := ObjectKindByID(1)
	assert.Equal(t, "Town", k.Name)

	unk := ObjectKindByID(200)
	assert.Equal(t, "Unknown 0xc8", unk.Name)
	assert.Equal(t, uint8(200), unk.ID)
}

func TestFormatTagByID(t *testing.T) {
	tag, ok := FormatTagByID(0x20)
	require.True(t, ok)
	assert.Equal(t, "Horn of the Abyss", tag.Name)

	_, ok = FormatTagByID(0xff)
	assert.False(t, ok)
}
