package mapparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrowniak/tower-h3/h3m/h3mcore"
)

func TestReadCoord(t *testing.T) {
	s := NewInputStream([]byte{3, 4, 1})
	c := s.ReadCoord("where")
	assert.Equal(t, h3mcore.MapCoord{X: 3, Y: 4, Z: 1}, c)
}

func TestReadArtifactID_sentinelIsNil(t *testing.T) {
	p := NewFormatProfile(h3mcore.FormatSOD, 0)
	s := NewInputStream(u16le(uint16(p.InvalidArtifact)))
	assert.Nil(t, p.ReadArtifactID(s, "where"))
}

func TestReadArtifactID_valueRoundtrips(t *testing.T) {
	p := NewFormatProfile(h3mcore.FormatSOD, 0)
	s := NewInputStream(u16le(12))
	id := p.ReadArtifactID(s, "where")
	require.NotNil(t, id)
	assert.Equal(t, uint32(12), *id)
}

func TestReadResourcePack_orderIsFixed(t *testing.T) {
	var data []byte
	for i := uint32(1); i <= 7; i++ {
		data = append(data, u32le(i)...)
	}
	s := NewInputStream(data)
	rp := s.ReadResourcePack("where")
	assert.Equal(t, uint32(1), rp.Wood)
	assert.Equal(t, uint32(2), rp.Mercury)
	assert.Equal(t, uint32(3), rp.Ore)
	assert.Equal(t, uint32(4), rp.Sulfur)
	assert.Equal(t, uint32(5), rp.Crystal)
	assert.Equal(t, uint32(6), rp.Gems)
	assert.Equal(t, uint32(7), rp.Gold)
}

func TestReadSecondarySkill_invalidLevelFails(t *testing.T) {
	s := NewInputStream([]byte{5, 99})
	require.Panics(t, func() { s.ReadSecondarySkill("where") })
}

func TestReadMessageAndGuards_absentIsZeroValue(t *testing.T) {
	p := NewFormatProfile(h3mcore.FormatSOD, 0)
	s := NewInputStream([]byte{0})
	mg := p.ReadMessageAndGuards(s, "where")
	assert.Nil(t, mg.Message)
	assert.Nil(t, mg.Guards)
	assert.Equal(t, 1, s.Position())
}

func TestReadMessageAndGuards_presentWithoutGuardsSkipsTrailer(t *testing.T) {
	p := NewFormatProfile(h3mcore.FormatSOD, 0)
	var data []byte
	data = append(data, 1)            // present
	data = append(data, u32le(0)...)  // empty string
	data = append(data, 0)            // no guards
	data = append(data, make([]byte, 4)...)
	s := NewInputStream(data)
	mg := p.ReadMessageAndGuards(s, "where")
	require.NotNil(t, mg.Message)
	assert.Equal(t, "", *mg.Message)
	assert.Nil(t, mg.Guards)
	assert.Equal(t, len(data), s.Position())
}

func TestReadHeroesArtifacts_nilWhenAbsent(t *testing.T) {
	p := NewFormatProfile(h3mcore.FormatSOD, 0)
	s := NewInputStream([]byte{0})
	assert.Nil(t, p.ReadHeroesArtifacts(s, "where"))
}

func TestReadHeroesArtifacts_sentinelBagEntriesDropped(t *testing.T) {
	p := NewFormatProfile(h3mcore.FormatSOD, 0)
	var data []byte
	data = append(data, 1) // present
	for i := 0; i < p.ArtifactSlots; i++ {
		data = append(data, u16le(uint16(p.InvalidArtifact))...)
	}
	data = append(data, u16le(2)...) // bag length = 2
	data = append(data, u16le(5)...)
	data = append(data, u16le(uint16(p.InvalidArtifact))...)
	s := NewInputStream(data)
	loadout := p.ReadHeroesArtifacts(s, "where")
	require.NotNil(t, loadout)
	assert.Len(t, loadout.Slots, p.ArtifactSlots)
	assert.Equal(t, []uint32{5}, loadout.Bag, "sentinel bag entries are dropped, not kept as zero")
	assert.Equal(t, len(data), s.Position())
}
