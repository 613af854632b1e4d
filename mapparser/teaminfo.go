// This file contains step 5 (TeamInfo) and step 6 (HeroesDef).

package mapparser

import (
	"github.com/rrowniak/tower-h3/h3m"
	"github.com/rrowniak/tower-h3/h3m/h3mcore"
)

func readTeamInfo(s *InputStream) *h3m.TeamInfo {
	const where = "teaminfo"

	count := s.U8(where)
	if count == 0 {
		return &h3m.TeamInfo{}
	}

	teams := make(map[uint8][]*h3mcore.PlayerColor)
	for _, color := range h3mcore.PlayerColors {
		team := s.U8(where)
		teams[team] = append(teams[team], color)
	}
	return &h3m.TeamInfo{Teams: teams}
}

func readHeroesDef(s *InputStream, p *FormatProfile) *h3m.HeroesDef {
	const where = "heroesdef"

	hd := &h3m.HeroesDef{}

	if p.LevelHOTA0 {
		count := s.U32(where)
		if count >= 256 {
			s.fail(where, "hero count out of range")
		}
		hd.AllowedHeroes = s.BitmapToNumbers(int(count), where)
	} else {
		hd.AllowedHeroes = s.BitmapToNumbers(p.HeroesCount, where)
	}

	if p.LevelAB {
		count := s.U32(where)
		hd.ReservedForCampaign = make([]uint8, count)
		for i := range hd.ReservedForCampaign {
			hd.ReservedForCampaign[i] = s.U8(where)
		}
	}

	if p.LevelSOD {
		count := s.U8(where)
		hd.Disposed = make([]h3m.DisposedHero, count)
		for i := range hd.Disposed {
			id := s.U8(where)
			portrait := s.U8(where)
			name := s.StringLE(where)
			bits := s.Bytes(1, where)
			var affected []*h3mcore.PlayerColor
			for j, color := range h3mcore.PlayerColors {
				if bits[0]&(1<<uint(j)) != 0 {
					affected = append(affected, color)
				}
			}
			hd.Disposed[i] = h3m.DisposedHero{
				Hero:    h3m.Hero{ID: id, PortraitID: &portrait, Name: name},
				Players: affected,
			}
		}
	}

	return hd
}
