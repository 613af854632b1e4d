// This file decodes Monster, RandomMonster*, and Event payloads.

package mapparser

import (
	"github.com/rrowniak/tower-h3/h3m/h3mcore"
	"github.com/rrowniak/tower-h3/h3m/h3mobj"
)

func readMonster(s *InputStream, p *FormatProfile, id h3mobj.ObjectID) *h3mobj.Monster {
	const where = "objects.monster"

	m := &h3mobj.Monster{}

	if p.LevelAB {
		creatureID := s.U32(where)
		m.CreatureID = &creatureID
	}
	m.Amount = s.U16(where)
	m.Character = h3mobj.MonsterCharacter(s.U8(where))

	if s.Bool(where) {
		msg := s.StringLE(where)
		m.Message = &msg
		loot := s.ReadResourcePack(where)
		m.Loot = &loot
		m.Reward = p.ReadArtifactID(s, where)
	}

	m.NeverFlees = s.Bool(where)
	m.GrowingTeam = !s.Bool(where)
	s.Skip(2, where)

	if p.LevelHOTA3 {
		m.AggressionFactor = sentineledU32(s, where)
		joinForMoney := s.Bool(where)
		m.JoinOnlyForMoney = &joinForMoney
		joinPercentage := s.U32(where)
		m.JoinPercentage = &joinPercentage
		m.UpgradedCreaturesID = sentineledU32(s, where)
		m.CreaturesOnBattleID = sentineledU32(s, where)
	}

	m.ID = id
	return m
}

// sentineledU32 reads a u32 and returns nil when it equals the format's
// all-ones sentinel (0xFFFFFFFF).
func sentineledU32(s *InputStream, where string) *uint32 {
	v := s.U32(where)
	if v == 0xFFFFFFFF {
		return nil
	}
	return &v
}

func readEvent(s *InputStream, p *FormatProfile, id h3mobj.ObjectID) *h3mobj.EventTrigger {
	const where = "objects.event"

	e := &h3mobj.EventTrigger{}
	e.Reward = readBoxContent(s, p)
	e.AffectedPlayers = BitmapToObjects(s, h3mcore.PlayerColors, 1, where)
	e.ComputerCanActivate = s.Bool(where)
	e.RemoveAfterVisit = s.Bool(where)
	s.Skip(4, where)
	if p.LevelHOTA3 {
		human := s.Bool(where)
		e.HumanCanActivate = &human
	}
	e.ID = id
	return e
}
