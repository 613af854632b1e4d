// This file contains the small shared field decoders used by several
// sections: coordinates, sentinel-gated ids, resource packs, and the
// message/guard/artifact-loadout blocks repeated across object payloads.

package mapparser

import (
	"github.com/rrowniak/tower-h3/h3m/h3mcore"
	"github.com/rrowniak/tower-h3/h3m/h3mobj"
)

// ReadCoord reads a 3-byte map coordinate.
func (s *InputStream) ReadCoord(where string) h3mcore.MapCoord {
	return h3mcore.MapCoord{
		X: s.U8(where),
		Y: s.U8(where),
		Z: s.U8(where),
	}
}

// ReadArtifactID reads an artifact id at the profile's width, returning
// nil if the value read is the profile's sentinel.
func (p *FormatProfile) ReadArtifactID(s *InputStream, where string) *uint32 {
	return readSentineledID(s, p.ArtifactIDWidth, p.InvalidArtifact, where)
}

// ReadCreatureID reads a creature id at the profile's width, returning
// nil if the value read is the profile's sentinel.
func (p *FormatProfile) ReadCreatureID(s *InputStream, where string) *uint32 {
	return readSentineledID(s, p.CreatureIDWidth, p.InvalidCreature, where)
}

func readSentineledID(s *InputStream, width int, sentinel uint32, where string) *uint32 {
	var v uint32
	if width == 1 {
		v = uint32(s.U8(where))
	} else {
		v = uint32(s.U16(where))
	}
	if v == sentinel {
		return nil
	}
	return &v
}

// ReadResourcePack reads the 7 fixed-order resource amounts.
func (s *InputStream) ReadResourcePack(where string) h3mobj.ResourcePack {
	return h3mobj.ResourcePack{
		Wood:    s.U32(where),
		Mercury: s.U32(where),
		Ore:     s.U32(where),
		Sulfur:  s.U32(where),
		Crystal: s.U32(where),
		Gems:    s.U32(where),
		Gold:    s.U32(where),
	}
}

// ReadSecondarySkill reads a (u8 id, u8 level) pair.
func (s *InputStream) ReadSecondarySkill(where string) h3mobj.SecondarySkillGrant {
	id := s.U8(where)
	level, ok := h3mcore.SecondarySkillLevelByID(s.U8(where))
	if !ok {
		s.fail(where, "invalid secondary skill level")
	}
	return h3mobj.SecondarySkillGrant{ID: id, Level: level}
}

// ReadCreatureStack reads one (creature id, amount) garrison slot at the
// profile's creature-id width.
func (p *FormatProfile) ReadCreatureStack(s *InputStream, where string) h3mobj.CreatureStackSlot {
	id := p.ReadCreatureID(s, where)
	var idv uint32
	if id != nil {
		idv = *id
	}
	return h3mobj.CreatureStackSlot{
		CreatureID: idv,
		Amount:     s.U16(where),
	}
}

// ReadMessageAndGuards reads the optional message-plus-7-slot-garrison
// block shared by pickup objects.
func (p *FormatProfile) ReadMessageAndGuards(s *InputStream, where string) h3mobj.MessageAndGuards {
	if !s.Bool(where) {
		return h3mobj.MessageAndGuards{}
	}
	msg := s.StringLE(where)
	hasGuards := s.Bool(where)
	var guards []h3mobj.CreatureStackSlot
	if hasGuards {
		guards = make([]h3mobj.CreatureStackSlot, 7)
		for i := range guards {
			guards[i] = p.ReadCreatureStack(s, where)
		}
	}
	s.Skip(4, where)
	return h3mobj.MessageAndGuards{Message: &msg, Guards: guards}
}

// ReadHeroesArtifacts reads the optional worn-plus-bag artifact loadout.
func (p *FormatProfile) ReadHeroesArtifacts(s *InputStream, where string) *h3mobj.ArtifactLoadout {
	if !s.Bool(where) {
		return nil
	}
	slots := make([]*uint32, p.ArtifactSlots)
	for i := range slots {
		slots[i] = p.ReadArtifactID(s, where)
	}
	bagLen := s.U16(where)
	bag := make([]uint32, 0, bagLen)
	for i := 0; i < int(bagLen); i++ {
		id := p.ReadArtifactID(s, where)
		if id != nil {
			bag = append(bag, *id)
		}
	}
	return &h3mobj.ArtifactLoadout{Slots: slots, Bag: bag}
}
