package mapparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrowniak/tower-h3/h3m/h3mcore"
	"github.com/rrowniak/tower-h3/h3m/h3mobj"
)

func TestReadHero_sodExperienceBoolGated(t *testing.T) {
	p := NewFormatProfile(h3mcore.FormatSOD, 0)

	var data []byte
	data = append(data, u32le(0xFFFFFFFF)...) // quest id, sentinel -> nil
	data = append(data, u32le(0)...)          // owner = Red
	data = append(data, 3)                    // hero id
	data = append(data, 0)                    // has name = false
	data = append(data, 1)                    // has experience
	data = append(data, u32le(1234)...)       // experience
	data = append(data, 0)                    // has portrait
	data = append(data, 0)                    // has secondary skills
	data = append(data, 0)                    // has garrison
	data = append(data, 0)                    // formation = wide
	data = append(data, 0)                    // has artifacts
	data = append(data, 0)                    // patrol radius
	data = append(data, 0)                    // has biography
	data = append(data, 2)                    // gender = no override
	data = append(data, 0)                    // has custom spells
	data = append(data, 0)                    // has primary skills
	data = append(data, make([]byte, 16)...)  // trailing skip

	s := NewInputStream(data)
	h := readHero(s, p, h3mobj.Hero)

	require.Nil(t, h.QuestID)
	assert.Equal(t, "Red", h.Owner.Name)
	assert.Equal(t, uint8(3), h.HeroID)
	assert.Nil(t, h.Name)
	require.NotNil(t, h.Experience)
	assert.Equal(t, uint32(1234), *h.Experience)
	assert.Equal(t, "Wide", h.Formation.Name)
	assert.Nil(t, h.Gender, "id 2 means no gender override")
	assert.Equal(t, h3mobj.Hero, h.ObjectID())
	assert.Equal(t, len(data), s.Position())
}

func TestReadHero_preSODExperienceRawNonzero(t *testing.T) {
	p := NewFormatProfile(h3mcore.FormatAB, 0)

	var data []byte
	data = append(data, u32le(0xFFFFFFFF)...) // quest id (AB+)
	data = append(data, u32le(0)...)          // owner
	data = append(data, 1)                    // hero id
	data = append(data, 0)                    // has name
	data = append(data, u32le(0)...)          // experience raw = 0 -> nil
	data = append(data, 0)                    // has portrait
	data = append(data, 0)                    // has secondary skills
	data = append(data, 0)                    // has garrison
	data = append(data, 0)                    // formation
	data = append(data, 0)                    // has artifacts
	data = append(data, 0)                    // patrol radius
	data = append(data, 0)                    // has biography
	data = append(data, 0)                    // gender = male
	data = append(data, p.InvalidSpell)       // AB custom spell sentinel -> no custom spell
	data = append(data, make([]byte, 16)...)

	s := NewInputStream(data)
	h := readHero(s, p, h3mobj.RandomHero)

	assert.Nil(t, h.Experience, "zero raw experience means absent in pre-SOD encoding")
	assert.Empty(t, h.CustomSpells)
	assert.Equal(t, len(data), s.Position())
}

func TestReadHero_abCustomSpellPresent(t *testing.T) {
	p := NewFormatProfile(h3mcore.FormatAB, 0)

	var data []byte
	data = append(data, u32le(0xFFFFFFFF)...)
	data = append(data, u32le(0)...)
	data = append(data, 1)
	data = append(data, 0)
	data = append(data, u32le(0)...)
	data = append(data, 0)
	data = append(data, 0)
	data = append(data, 0)
	data = append(data, 0)
	data = append(data, 0)
	data = append(data, 0)
	data = append(data, 0)
	data = append(data, 0)
	data = append(data, 12) // custom spell id, not the sentinel
	data = append(data, make([]byte, 16)...)

	s := NewInputStream(data)
	h := readHero(s, p, h3mobj.Hero)
	assert.Equal(t, []uint8{12}, h.CustomSpells)
}

func TestReadHero_sodSecondarySkillsCountIsU32(t *testing.T) {
	p := NewFormatProfile(h3mcore.FormatSOD, 0)

	var data []byte
	data = append(data, u32le(0xFFFFFFFF)...)
	data = append(data, u32le(0)...)
	data = append(data, 1)
	data = append(data, 0)
	data = append(data, 0) // no experience
	data = append(data, 0) // no portrait
	data = append(data, 1) // has secondary skills
	data = append(data, u32le(2)...)
	data = append(data, 5, 1) // skill 5, advanced
	data = append(data, 9, 2) // skill 9, expert
	data = append(data, 0)    // no garrison
	data = append(data, 0)    // formation
	data = append(data, 0)    // no artifacts
	data = append(data, 0)    // patrol radius
	data = append(data, 0)    // no biography
	data = append(data, 2)    // no gender override
	data = append(data, 0)    // no custom spells
	data = append(data, 0)    // no primary skills
	data = append(data, make([]byte, 16)...)

	s := NewInputStream(data)
	h := readHero(s, p, h3mobj.Hero)
	require.Len(t, h.SecondarySkills, 2)
	assert.Equal(t, uint8(5), h.SecondarySkills[0].ID)
	assert.Equal(t, "Advanced", h.SecondarySkills[0].Level.Name)
	assert.Equal(t, "Expert", h.SecondarySkills[1].Level.Name)
	assert.Equal(t, len(data), s.Position())
}

func TestReadHero_artifactsNotDoubleBoolGated(t *testing.T) {
	// ReadHeroesArtifacts already reads its own leading bool; readHero
	// must not wrap it in another bool read.
	p := NewFormatProfile(h3mcore.FormatSOD, 0)

	var data []byte
	data = append(data, u32le(0xFFFFFFFF)...)
	data = append(data, u32le(0)...)
	data = append(data, 1)
	data = append(data, 0)
	data = append(data, 0)
	data = append(data, 0)
	data = append(data, 0)
	data = append(data, 0)
	data = append(data, 0) // formation
	data = append(data, 1) // artifacts present (single bool, consumed by ReadHeroesArtifacts)
	for i := 0; i < p.ArtifactSlots; i++ {
		data = append(data, u16le(uint16(p.InvalidArtifact))...) // empty slots (2-byte width for AB+)
	}
	data = append(data, 0, 0) // bag length = 0
	data = append(data, 0)    // patrol radius
	data = append(data, 0)    // no biography
	data = append(data, 2)    // no gender
	data = append(data, 0)    // no custom spells
	data = append(data, 0)    // no primary skills
	data = append(data, make([]byte, 16)...)

	s := NewInputStream(data)
	h := readHero(s, p, h3mobj.Hero)
	require.NotNil(t, h.Artifacts)
	assert.Len(t, h.Artifacts.Slots, p.ArtifactSlots)
	assert.Empty(t, h.Artifacts.Bag)
	assert.Equal(t, len(data), s.Position())
}
