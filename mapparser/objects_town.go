// This file decodes Town and RandomTown payloads.

package mapparser

import (
	"github.com/rrowniak/tower-h3/h3m/h3mcore"
	"github.com/rrowniak/tower-h3/h3m/h3mobj"
)

func readTown(s *InputStream, p *FormatProfile, id h3mobj.ObjectID, subID uint32) *h3mobj.TownPayload {
	const where = "objects.town"

	t := &h3mobj.TownPayload{}

	if p.LevelAB {
		t.ID = sentineledU32(s, where)
	}

	t.Owner = h3mobj.OwnershipByID(s.U32(where))

	if s.Bool(where) {
		name := s.StringLE(where)
		t.Name = &name
	}
	if s.Bool(where) {
		guards := p.ReadMessageAndGuards(s, where)
		t.Guards = &guards
	}

	formation, ok := h3mobj.ArmyFormationByID(s.U8(where))
	if !ok {
		s.fail(where, "invalid army formation")
	}
	t.Formation = formation

	t.Buildings.CustomBuildings = s.Bool(where)
	if t.Buildings.CustomBuildings {
		t.Buildings.Built = s.BitmapToNumbers(p.BuildingsCount, where)
		t.Buildings.Forbidden = s.BitmapToNumbers(p.BuildingsCount, where)
	} else {
		t.Buildings.HasFort = s.Bool(where)
		t.Buildings.DefaultBuildings = true
	}

	if p.LevelAB {
		t.ObligatorySpells = s.BitmapToNumbers(p.SpellsCount, where)
	}
	t.PossibleSpells = s.BitmapToNumbers(p.SpellsCount, where)

	if p.LevelHOTA1 {
		research := s.Bool(where)
		t.SpellsResearchAvailable = &research
	}

	n := s.U32(where)
	t.Events = make([]h3mobj.TownEvent, n)
	for i := range t.Events {
		t.Events[i] = readTownEvent(s, p, where)
	}

	if p.LevelSOD {
		alignmentID := s.U8(where)
		if alignmentID != 0xFF {
			town, ok := h3mcore.TownByIndex(int(alignmentID))
			if ok {
				t.Alignment = town
			}
		}
	}

	s.Skip(3, where)

	t.SetID(id)
	return t
}

func readTownEvent(s *InputStream, p *FormatProfile, where string) h3mobj.TownEvent {
	ev := h3mobj.TownEvent{
		Name:      s.StringLE(where),
		Message:   s.StringLE(where),
		Resources: s.ReadResourcePack(where),
	}

	ev.AffectedPlayers = BitmapToObjects(s, h3mcore.PlayerColors, 1, where)
	if p.LevelSOD {
		ev.HumanAffected = s.Bool(where)
	} else {
		ev.HumanAffected = true
	}
	ev.ComputerAffected = s.Bool(where)
	ev.FirstOccurrence = s.U16(where)
	ev.NextOccurrence = s.U8(where)
	s.Skip(17, where)

	ev.NewBuildings = s.BitmapToNumbers(p.BuildingsCount, where)

	for i := range ev.Creatures {
		ev.Creatures[i] = h3mobj.CreatureLevelChange{
			LevelIndex: uint8(i),
			CreatureAt: s.U16(where),
		}
	}
	s.Skip(4, where)

	return ev
}
