// This file contains step 4: the Win/Loss section.

package mapparser

import (
	"github.com/rrowniak/tower-h3/h3m"
	"github.com/rrowniak/tower-h3/h3m/h3mcore"
)

const invalidCode = 0xFF

func readWinLoss(s *InputStream, p *FormatProfile) *h3m.WinLossCondition {
	const where = "winloss"

	wl := &h3m.WinLossCondition{}

	victoryCode := s.U8(where)
	if victoryCode != invalidCode {
		wl.AllowNormalVictory = s.Bool(where)
		wl.AppliesToComputer = s.Bool(where)
		wl.SpecialVictory = readSpecialVictory(s, p, victoryCode)
	}

	lossCode := s.U8(where)
	wl.SpecialLoss = readSpecialLoss(s, lossCode)

	return wl
}

func readSpecialVictory(s *InputStream, p *FormatProfile, code uint8) h3m.SpecialVictory {
	const where = "winloss.victory"

	switch code {
	case 0: // acquire artifact
		var id uint32
		if p.LevelAB {
			id = uint32(s.U16(where))
		} else {
			id = uint32(s.U8(where))
		}
		return h3m.SpecialVictory{Kind: h3m.VictoryAcquireArtifact, ArtifactID: id}

	case 1: // accumulate creatures
		var unit uint16
		if p.LevelAB {
			unit = s.U16(where)
		} else {
			unit = uint16(s.U8(where))
		}
		amount := s.U32(where)
		return h3m.SpecialVictory{Kind: h3m.VictoryAccumulateCreatures, CreatureUnitID: unit, Amount: amount}

	case 2: // accumulate resources
		resID := s.U8(where)
		res, ok := h3mcore.ResourceByID(resID)
		if !ok {
			s.fail(where, "invalid resource id")
		}
		amount := s.U32(where)
		return h3m.SpecialVictory{Kind: h3m.VictoryAccumulateResources, Resource: res, Amount: amount}

	case 3: // upgrade town
		coord := s.ReadCoord(where)
		hall, ok := h3mcore.HallLevelByID(s.U8(where))
		if !ok {
			s.fail(where, "invalid hall level")
		}
		castle, ok := h3mcore.CastleLevelByID(s.U8(where))
		if !ok {
			s.fail(where, "invalid castle level")
		}
		return h3m.SpecialVictory{Kind: h3m.VictoryUpgradeTown, TownCoord: coord, HallLevel: hall, CastleLevel: castle}

	case 4: // build grail
		return h3m.SpecialVictory{Kind: h3m.VictoryBuildGrail, TownCoord: s.ReadCoord(where)}

	case 5: // defeat hero
		return h3m.SpecialVictory{Kind: h3m.VictoryDefeatHero, HeroCoord: s.ReadCoord(where)}

	case 6: // capture town
		return h3m.SpecialVictory{Kind: h3m.VictoryCaptureTown, TownCoord: s.ReadCoord(where)}

	case 7: // defeat monster
		return h3m.SpecialVictory{Kind: h3m.VictoryDefeatMonster, MonsterCoord: s.ReadCoord(where)}

	case 8: // flag all dwellings
		return h3m.SpecialVictory{Kind: h3m.VictoryFlagAllCreatureDwellings}

	case 9: // flag all mines
		return h3m.SpecialVictory{Kind: h3m.VictoryFlagAllMines}

	case 10: // transport artifact
		var id uint32
		if p.LevelAB {
			id = uint32(s.U16(where))
		} else {
			id = uint32(s.U8(where))
		}
		return h3m.SpecialVictory{Kind: h3m.VictoryTransportArtifact, ArtifactID: id, ArtifactCoord: s.ReadCoord(where)}

	case 11: // HOTA: eliminate all monsters
		return h3m.SpecialVictory{Kind: h3m.VictoryEliminateAllMonsters}

	case 12: // HOTA: survive N days
		return h3m.SpecialVictory{Kind: h3m.VictorySurviveNDays, LimitDays: s.U32(where)}

	default:
		s.fail(where, "unknown victory code")
		panic("unreachable")
	}
}

func readSpecialLoss(s *InputStream, code uint8) h3m.SpecialLoss {
	const where = "winloss.loss"

	switch code {
	case invalidCode:
		return h3m.SpecialLoss{Kind: h3m.LossNone}
	case 0:
		return h3m.SpecialLoss{Kind: h3m.LossTown, TownCoord: s.ReadCoord(where)}
	case 1:
		return h3m.SpecialLoss{Kind: h3m.LossHero, HeroCoord: s.ReadCoord(where)}
	case 2:
		return h3m.SpecialLoss{Kind: h3m.LossTimeExpires, LimitDays: uint32(s.U16(where))}
	default:
		s.fail(where, "unknown loss code")
		panic("unreachable")
	}
}
