// This file contains step 11: PredefinedHeroes.

package mapparser

import (
	"github.com/rrowniak/tower-h3/h3m"
	"github.com/rrowniak/tower-h3/h3m/h3mcore"
)

func readPredefinedHeroes(s *InputStream, p *FormatProfile) []*h3m.PredefinedHero {
	if !p.LevelSOD {
		return nil
	}
	const where = "predefinedheroes"

	count := p.HeroesCount
	if p.LevelHOTA0 {
		count = int(s.U32(where))
	}

	var heroes []*h3m.PredefinedHero
	for id := 0; id < count; id++ {
		if !s.Bool(where) {
			continue
		}
		h := &h3m.PredefinedHero{ID: uint32(id)}

		if s.Bool(where) {
			exp := s.U32(where)
			h.Experience = &exp
		}
		if s.Bool(where) {
			n := s.U32(where)
			h.SecondarySkills = make([]h3m.SecondarySkill, n)
			for i := range h.SecondarySkills {
				skillID := s.U8(where)
				levelID := s.U8(where)
				level, ok := h3mcore.SecondarySkillLevelByID(levelID)
				if !ok {
					s.fail(where, "invalid secondary skill level")
				}
				h.SecondarySkills[i] = h3m.SecondarySkill{ID: skillID, Level: level}
			}
		}
		if s.Bool(where) { // equipped artifacts
			slots := make([]*uint32, p.ArtifactSlots)
			for i := range slots {
				slots[i] = p.ReadArtifactID(s, where)
			}
			if h.Artifacts == nil {
				h.Artifacts = &h3m.HeroArtifacts{}
			}
			h.Artifacts.Slots = slots
		}
		if s.Bool(where) { // bag artifacts
			bagLen := s.U16(where)
			bag := make([]uint32, 0, bagLen)
			for i := 0; i < int(bagLen); i++ {
				if id := p.ReadArtifactID(s, where); id != nil {
					bag = append(bag, *id)
				}
			}
			if h.Artifacts == nil {
				h.Artifacts = &h3m.HeroArtifacts{}
			}
			h.Artifacts.Bag = bag
		}
		if s.Bool(where) {
			bio := s.StringLE(where)
			h.Biography = &bio
		}
		if s.Bool(where) {
			gender, ok := h3mcore.GenderByID(s.U8(where))
			if !ok {
				s.fail(where, "invalid gender")
			}
			h.Gender = gender
		}
		if s.Bool(where) {
			h.CustomSpells = spellBitmapAsBytes(s, p, where)
		}
		if s.Bool(where) {
			skills := &h3m.PrimarySkills{
				Attack:     uint32(s.U8(where)),
				Defence:    uint32(s.U8(where)),
				SpellPower: uint32(s.U8(where)),
				Knowledge:  uint32(s.U8(where)),
			}
			h.PrimarySkills = skills
		}

		heroes = append(heroes, h)
	}
	return heroes
}

// spellBitmapAsBytes decodes the custom-spells bitmap into the ascending
// list of set spell ids, narrowed to uint8 for PredefinedHero.CustomSpells.
func spellBitmapAsBytes(s *InputStream, p *FormatProfile, where string) []uint8 {
	ids := s.BitmapToNumbers(p.SpellsCount, where)
	out := make([]uint8, len(ids))
	for i, id := range ids {
		out[i] = uint8(id)
	}
	return out
}
