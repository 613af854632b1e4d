// This file decodes the "box content" encoding shared by Event and
// PandorasBox, plus Mine/AbandonedMine, WitchHut, and Grail.

package mapparser

import (
	"github.com/rrowniak/tower-h3/h3m/h3mcore"
	"github.com/rrowniak/tower-h3/h3m/h3mobj"
)

func readBoxContent(s *InputStream, p *FormatProfile) h3mobj.BoxContent {
	const where = "objects.boxcontent"

	guards := p.ReadMessageAndGuards(s, where)

	box := h3mobj.BoxContent{
		Guards:     &guards,
		Experience: s.U32(where),
		ManaDiff:   s.I32(where),
		Morale:     s.I8(where),
		Luck:       s.I8(where),
		Resources:  s.ReadResourcePack(where),
		PrimarySkills: h3mobj.PrimarySkillBonus{
			Attack:     s.U8(where),
			Defence:    s.U8(where),
			SpellPower: s.U8(where),
			Knowledge:  s.U8(where),
		},
	}

	if n := s.U8(where); n > 0 {
		box.SecondarySkills = make([]h3mobj.SecondarySkillGrant, n)
		for i := range box.SecondarySkills {
			box.SecondarySkills[i] = s.ReadSecondarySkill(where)
		}
	}
	if n := s.U8(where); n > 0 {
		box.Artifacts = make([]uint32, n)
		for i := range box.Artifacts {
			box.Artifacts[i] = uint32(s.U16(where))
		}
	}
	if n := s.U8(where); n > 0 {
		box.Spells = make([]uint8, n)
		for i := range box.Spells {
			box.Spells[i] = s.U8(where)
		}
	}
	if n := s.U8(where); n > 0 {
		box.Creatures = make([]h3mobj.CreatureStackSlot, n)
		for i := range box.Creatures {
			box.Creatures[i] = p.ReadCreatureStack(s, where)
		}
	}
	s.Skip(8, where)

	return box
}

func readMine(s *InputStream, p *FormatProfile, id h3mobj.ObjectID, subID uint32) *h3mobj.MinePayload {
	const where = "objects.mine"

	m := &h3mobj.MinePayload{}
	if subID < 7 {
		m.Owner = h3mobj.OwnershipByID(s.U32(where))
	} else {
		resourcesBytes := (p.ResourcesCount + 7) / 8
		m.ResourceOptions = s.BitmapToNumbers(resourcesBytes*8, where)
	}
	m.ID = id
	return m
}

func readWitchHut(s *InputStream, p *FormatProfile, id h3mobj.ObjectID) *h3mobj.WitchHutPayload {
	const where = "objects.witchhut"

	w := &h3mobj.WitchHutPayload{}
	if p.LevelAB {
		w.AllowedSkills = s.BitmapToNumbers(p.SkillsCount, where)
	}
	w.ID = id
	return w
}

func readGrail(s *InputStream, subID uint32, id h3mobj.ObjectID) *h3mobj.GrailPayload {
	const where = "objects.grail"

	g := &h3mobj.GrailPayload{}
	if subID < 1000 {
		radius := s.I32(where)
		g.Radius = &radius
	}
	g.ID = id
	return g
}

func readGarrison(s *InputStream, p *FormatProfile, id h3mobj.ObjectID) *h3mobj.GarrisonPayload {
	const where = "objects.garrison"

	g := &h3mobj.GarrisonPayload{}
	g.Owner = h3mobj.OwnershipByID(s.U32(where))
	g.Units = make([]h3mobj.CreatureStackSlot, 7)
	for i := range g.Units {
		g.Units[i] = p.ReadCreatureStack(s, where)
	}
	if p.LevelAB {
		g.RemovableUnits = s.Bool(where)
	} else {
		g.RemovableUnits = true
	}
	s.Skip(8, where)
	g.ID = id
	return g
}

func readRandomDwelling(s *InputStream, p *FormatProfile, id h3mobj.ObjectID) *h3mobj.RandomDwellingPayload {
	const where = "objects.randomdwelling"

	d := &h3mobj.RandomDwellingPayload{}
	d.Owner = h3mobj.OwnershipByID(s.U32(where))

	d.FactionSelector = s.U32(where)
	if d.FactionSelector == 0 {
		d.FactionBitmap = s.BitmapToNumbers(len(h3mcore.AllTowns), where)
	}

	if id == h3mobj.RandomDwelling || id == h3mobj.RandomDwellingLvl {
		min := s.U8(where)
		max := s.U8(where)
		d.MinLevel = &min
		d.MaxLevel = &max
	}

	d.ID = id
	return d
}

func readCreatureBank(s *InputStream, p *FormatProfile, id h3mobj.ObjectID) *h3mobj.CreatureBankPayload {
	const where = "objects.creaturebank"

	cb := &h3mobj.CreatureBankPayload{}
	cb.ID = id
	if !p.LevelHOTA3 {
		return cb
	}

	cb.GuardsPresetIndex = s.I32(where)
	cb.UpgradedStackPresent = s.I8(where)
	count := s.U32(where)
	cb.Artifacts = make([]uint32, 0, count)
	for i := uint32(0); i < count; i++ {
		v := s.U32(where)
		if v != 0xFFFFFFFF {
			cb.Artifacts = append(cb.Artifacts, v)
		}
	}
	return cb
}
