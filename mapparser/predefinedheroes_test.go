package mapparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrowniak/tower-h3/h3m/h3mcore"
)

func TestReadPredefinedHeroes_nilPreSOD(t *testing.T) {
	p := NewFormatProfile(h3mcore.FormatAB, 0)
	s := NewInputStream(nil)
	assert.Nil(t, readPredefinedHeroes(s, p))
	assert.Equal(t, 0, s.Position())
}

func TestReadPredefinedHeroes_skipsAbsentEntries(t *testing.T) {
	p := NewFormatProfile(h3mcore.FormatSOD, 0)
	data := make([]byte, p.HeroesCount) // every "present" bool = 0
	s := NewInputStream(data)
	heroes := readPredefinedHeroes(s, p)
	assert.Empty(t, heroes)
	assert.Equal(t, p.HeroesCount, s.Position())
}

// TestReadPredefinedHeroes_equippedAndBagArtifactsIndependentlyGated
// guards the fix for a double-bool bug: equipped and bag artifacts are
// two separately bool-gated fields, not one combined read.
func TestReadPredefinedHeroes_equippedAndBagArtifactsIndependentlyGated(t *testing.T) {
	p := NewFormatProfile(h3mcore.FormatSOD, 0)

	var data []byte
	data = append(data, 1) // hero 0 present
	data = append(data, 0) // no experience
	data = append(data, 0) // no secondary skills
	data = append(data, 1) // equipped artifacts present
	for i := 0; i < p.ArtifactSlots; i++ {
		data = append(data, u16le(uint16(p.InvalidArtifact))...)
	}
	data = append(data, 0) // bag artifacts NOT present
	data = append(data, 0) // no biography
	data = append(data, 0) // no gender
	data = append(data, 0) // no custom spells
	data = append(data, 0) // no primary skills
	// remaining hero slots absent
	data = append(data, make([]byte, p.HeroesCount-1)...)

	s := NewInputStream(data)
	heroes := readPredefinedHeroes(s, p)
	require.Len(t, heroes, 1)
	h := heroes[0]
	require.NotNil(t, h.Artifacts)
	assert.Len(t, h.Artifacts.Slots, p.ArtifactSlots)
	assert.Nil(t, h.Artifacts.Bag, "bag bool was false; bag must stay unset, not re-read")
	assert.Equal(t, len(data), s.Position())
}

func TestReadPredefinedHeroes_hota0ExplicitCount(t *testing.T) {
	p := NewFormatProfile(h3mcore.FormatHOTA, 0)
	data := append(u32le(3), make([]byte, 3)...) // count=3, all absent
	s := NewInputStream(data)
	heroes := readPredefinedHeroes(s, p)
	assert.Empty(t, heroes)
	assert.Equal(t, len(data), s.Position())
}
