// This file contains step 13: ObjectTemplates, including the
// bottom-right-to-top-left passability matrix remap.

package mapparser

import (
	"github.com/rrowniak/tower-h3/h3m"
	"github.com/rrowniak/tower-h3/h3m/h3mcore"
)

func readObjectTemplates(s *InputStream) []*h3m.ObjectTemplate {
	const where = "objecttemplates"

	count := s.U32(where)
	out := make([]*h3m.ObjectTemplate, count)
	for i := range out {
		out[i] = readObjectTemplate(s, where)
	}
	return out
}

func readObjectTemplate(s *InputStream, where string) *h3m.ObjectTemplate {
	t := &h3m.ObjectTemplate{}

	t.AnimationFile = s.StringLE(where)

	blockBits := s.Bytes(6, where)
	visitBits := s.Bytes(6, where)
	for i := 0; i < 6; i++ {
		for j := 0; j < 8; j++ {
			cell := h3m.Transitable
			srcByte := blockBits[5-i]
			if srcByte&(1<<uint(7-j)) == 0 {
				cell = h3m.TransitBlocked
			}
			if visitBits[5-i]&(1<<uint(7-j)) != 0 {
				cell = h3m.Visitable
			}
			t.TransitMatrix[i][j] = cell
		}
	}

	s.U16(where) // landscape kinds, discarded

	terrainMask := s.U16(where)
	for i, surface := range h3mcore.Surfaces {
		if terrainMask&(1<<uint(i)) != 0 {
			t.AllowedTerrains = append(t.AllowedTerrains, surface)
		}
	}

	t.ID = s.U32(where)
	t.SubID = s.U32(where)
	t.Kind = h3mcore.ObjectKindByID(s.U8(where))
	t.RenderPriority = s.U8(where)
	s.Skip(16, where)

	return t
}
