// This file decodes Hero, RandomHero, and Prison payloads.

package mapparser

import (
	"github.com/rrowniak/tower-h3/h3m/h3mcore"
	"github.com/rrowniak/tower-h3/h3m/h3mobj"
)

func readHero(s *InputStream, p *FormatProfile, id h3mobj.ObjectID) *h3mobj.HeroPayload {
	const where = "objects.hero"

	h := &h3mobj.HeroPayload{}

	if p.LevelAB {
		h.QuestID = sentineledU32(s, where)
	}

	h.Owner = h3mobj.OwnershipByID(s.U32(where))
	h.HeroID = s.U8(where)

	if s.Bool(where) {
		name := s.StringLE(where)
		h.Name = &name
	}

	if p.LevelSOD {
		if s.Bool(where) {
			exp := s.U32(where)
			h.Experience = &exp
		}
	} else {
		exp := s.U32(where)
		if exp != 0 {
			h.Experience = &exp
		}
	}

	if s.Bool(where) {
		portrait := s.U8(where)
		h.Portrait = &portrait
	}
	if s.Bool(where) {
		n := s.U32(where)
		h.SecondarySkills = make([]h3mobj.SecondarySkillGrant, n)
		for i := range h.SecondarySkills {
			h.SecondarySkills[i] = s.ReadSecondarySkill(where)
		}
	}
	if s.Bool(where) {
		n := s.U32(where)
		h.Garrison = make([]h3mobj.CreatureStackSlot, n)
		for i := range h.Garrison {
			h.Garrison[i] = p.ReadCreatureStack(s, where)
		}
	}

	formation, ok := h3mobj.ArmyFormationByID(s.U8(where))
	if !ok {
		s.fail(where, "invalid army formation")
	}
	h.Formation = formation

	h.Artifacts = p.ReadHeroesArtifacts(s, where)

	h.PatrolRadius = s.U8(where)

	if p.LevelAB {
		if s.Bool(where) {
			bio := s.StringLE(where)
			h.Biography = &bio
		}
		gender, ok := h3mcore.GenderByID(s.U8(where))
		if ok {
			h.Gender = gender
		}

		if p.LevelSOD {
			if s.Bool(where) {
				bits := s.BitmapToNumbers(p.SpellsCount, where)
				h.CustomSpells = make([]uint8, len(bits))
				for i, b := range bits {
					h.CustomSpells[i] = uint8(b)
				}
			}
		} else {
			spellID := s.U8(where)
			if spellID != p.InvalidSpell {
				h.CustomSpells = []uint8{spellID}
			}
		}
	}

	if p.LevelSOD {
		if s.Bool(where) {
			ps := h3mobj.PrimarySkillBonus{
				Attack:     s.U8(where),
				Defence:    s.U8(where),
				SpellPower: s.U8(where),
				Knowledge:  s.U8(where),
			}
			h.PrimarySkills = &ps
		}
	}

	s.Skip(16, where)

	h.ID = id
	return h
}
