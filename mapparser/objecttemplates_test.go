package mapparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rrowniak/tower-h3/h3m"
)

func TestReadObjectTemplate_fullyBlockedNoVisit(t *testing.T) {
	var data []byte
	data = append(data, u32le(0)...) // animation filename = ""
	data = append(data, make([]byte, 6)...) // block bits all 0 -> everything blocked
	data = append(data, make([]byte, 6)...) // visit bits all 0 -> nothing visitable
	data = append(data, 0, 0)               // landscape kinds
	data = append(data, 0, 0)               // terrain mask = none
	data = append(data, u32le(7)...)        // id
	data = append(data, u32le(1)...)        // subid
	data = append(data, 1)                  // kind = Town
	data = append(data, 0)                  // render priority
	data = append(data, make([]byte, 16)...)

	s := NewInputStream(data)
	tmpl := readObjectTemplate(s, "t")

	for i := 0; i < 6; i++ {
		for j := 0; j < 8; j++ {
			assert.Equal(t, h3m.TransitBlocked, tmpl.TransitMatrix[i][j])
		}
	}
	assert.Empty(t, tmpl.AllowedTerrains)
	assert.Equal(t, uint32(7), tmpl.ID)
	assert.Equal(t, uint32(1), tmpl.SubID)
	assert.Equal(t, "Town", tmpl.Kind.Name)
	assert.Equal(t, len(data), s.Position())
}

func TestReadObjectTemplate_visitableOverridesTransitable(t *testing.T) {
	var data []byte
	data = append(data, u32le(0)...)
	block := make([]byte, 6)
	for i := range block {
		block[i] = 0xff // everything transitable
	}
	visit := make([]byte, 6)
	visit[5] = 0x80 // row 0, col 0 visitable (src byte index 5-0=5, bit 7-0=7)
	data = append(data, block...)
	data = append(data, visit...)
	data = append(data, 0, 0)
	data = append(data, 0x03, 0x00) // terrain mask: surfaces 0 and 1
	data = append(data, u32le(1)...)
	data = append(data, u32le(0)...)
	data = append(data, 2) // kind = Monster
	data = append(data, 0)
	data = append(data, make([]byte, 16)...)

	s := NewInputStream(data)
	tmpl := readObjectTemplate(s, "t")

	assert.Equal(t, h3m.Visitable, tmpl.TransitMatrix[0][0])
	assert.Equal(t, h3m.Transitable, tmpl.TransitMatrix[0][1])
	require.NotEmpty(t, tmpl.AllowedTerrains)
	assert.Equal(t, "Dirt", tmpl.AllowedTerrains[0].Name)
	assert.Equal(t, "Sand", tmpl.AllowedTerrains[1].Name)
	assert.Equal(t, "Monster", tmpl.Kind.Name)
}

func TestReadObjectTemplates_count(t *testing.T) {
	s := NewInputStream(u32le(0))
	templates := readObjectTemplates(s)
	assert.Empty(t, templates)
}
