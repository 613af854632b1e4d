// This file contains step 2 (Info) and step 3 (PlayerInfo) of the
// section-by-section decode.

package mapparser

import (
	"github.com/rrowniak/tower-h3/h3m"
	"github.com/rrowniak/tower-h3/h3m/h3mcore"
)

func readInfo(s *InputStream, p *FormatProfile, tag *h3mcore.FormatTag, mirrorMap, arenaMap bool) *h3m.Info {
	const where = "info"

	info := &h3m.Info{
		Format:     tag,
		SubVersion: p.SubVersion,
		MirrorMap:  mirrorMap,
		ArenaMap:   arenaMap,
	}

	info.AnyPlayers = s.Bool(where)
	info.MapDimension = s.I32(where)
	info.TwoLevels = s.Bool(where)
	info.Name = s.StringLE(where)
	info.Description = s.StringLE(where)

	difficulty, ok := h3mcore.DifficultyByID(s.U8(where))
	if !ok {
		s.fail(where, "invalid difficulty")
	}
	info.Difficulty = difficulty

	if p.LevelAB {
		limit := s.U8(where)
		info.HeroLevelLimit = &limit
	}

	return info
}

func readPlayers(s *InputStream, p *FormatProfile) []*h3m.PlayerInfo {
	const where = "player"

	players := make([]*h3m.PlayerInfo, len(h3mcore.PlayerColors))
	for i, color := range h3mcore.PlayerColors {
		players[i] = readPlayer(s, p, color)
	}
	return players
}

func readPlayer(s *InputStream, p *FormatProfile, color *h3mcore.PlayerColor) *h3m.PlayerInfo {
	const where = "player"

	canBeHuman := s.Bool(where)
	canBeComputer := s.Bool(where)

	if !canBeHuman && !canBeComputer {
		s.Skip(6, where)
		if p.LevelAB {
			s.Skip(6, where)
		}
		if p.LevelSOD {
			s.Skip(1, where)
		}
		return &h3m.PlayerInfo{Color: color}
	}

	pi := &h3m.PlayerInfo{
		Color:         color,
		CanBeHuman:    canBeHuman,
		CanBeComputer: canBeComputer,
	}

	behaviour, ok := h3mcore.BehaviourByID(s.I8(where))
	if !ok {
		s.fail(where, "invalid player behaviour")
	}
	pi.Behaviour = behaviour

	if p.LevelSOD {
		s.Skip(1, where)
	}

	factionBits := s.Bytes(p.FactionsBytes, where)
	isRandom := s.Bool(where)
	pi.Faction = decodeFaction(factionBits, isRandom, p.Factions)

	pi.HasMainTown = s.Bool(where)
	if pi.HasMainTown {
		if p.LevelAB {
			pi.GenerateHeroAtMainTown = s.Bool(where)
			s.Skip(1, where) // main-town type
		}
	}
	coord := s.ReadCoord(where)
	pi.MainTownPosition = &coord

	pi.HasRandomHero = s.Bool(where)
	heroTypeID := s.U8(where)
	if heroTypeID != p.InvalidHero {
		portrait := s.U8(where)
		name := s.StringLE(where)
		pi.LeadHero = &h3m.Hero{ID: heroTypeID, PortraitID: &portrait, Name: name}
	}

	if p.LevelAB {
		s.Skip(1, where)
		count := s.U32(where)
		pi.OtherHeroes = make([]*h3m.Hero, count)
		for i := range pi.OtherHeroes {
			id := s.U8(where)
			name := s.StringLE(where)
			pi.OtherHeroes[i] = &h3m.Hero{ID: id, Name: name}
		}
	}

	return pi
}

func decodeFaction(bits []byte, isRandom bool, universe []*h3mcore.Town) h3m.Faction {
	set := setBits(bits, len(universe))

	allSet := len(set) == len(universe)
	switch {
	case isRandom && allSet:
		return h3m.Faction{Kind: h3m.FactionRandomAll}
	case isRandom:
		subset := make([]*h3mcore.Town, len(set))
		for i, idx := range set {
			subset[i] = universe[idx]
		}
		return h3m.Faction{Kind: h3m.FactionRandomSome, Subset: subset}
	case len(set) == 1:
		return h3m.Faction{Kind: h3m.FactionSome, Some: universe[set[0]]}
	default:
		return h3m.Faction{Kind: h3m.FactionNone}
	}
}

// setBits returns the ascending bit indices set within [0,n) of bits.
func setBits(bits []byte, n int) []int {
	var out []int
	for i := 0; i < n; i++ {
		if bits[i/8]&(1<<uint(i%8)) != 0 {
			out = append(out, i)
		}
	}
	return out
}
