// This file contains step 7 (MapOptions), step 8 (AllowedArtifacts),
// step 9 (AllowedSpells), and step 10 (Rumors).

package mapparser

import "github.com/rrowniak/tower-h3/h3m"

func readMapOptions(s *InputStream, p *FormatProfile) *h3m.MapOptions {
	const where = "options"

	opts := &h3m.MapOptions{}
	s.Skip(31, where)

	if p.LevelHOTA0 {
		opts.AllowSpecialMonths = s.Bool(where)
		s.Skip(3, where)
	}
	if p.LevelHOTA1 {
		s.Skip(1, where) // unknown
		s.Skip(5, where)
	}
	if p.LevelHOTA3 {
		limit := s.U32(where)
		opts.RoundLimit = &limit
	}

	return opts
}

func readAllowedArtifacts(s *InputStream, p *FormatProfile) *h3m.AllowedArtifacts {
	if !p.LevelAB {
		return nil
	}
	const where = "allowedartifacts"

	count := p.ArtifactsCount
	if p.LevelHOTA0 {
		count = int(s.U32(where))
	}
	return &h3m.AllowedArtifacts{Artifacts: s.BitmapToNumbers(count, where)}
}

func readAllowedSpells(s *InputStream, p *FormatProfile) *h3m.AllowedSpells {
	if !p.LevelSOD {
		return nil
	}
	const where = "allowedspells"

	return &h3m.AllowedSpells{
		Spells: s.BitmapToNumbers(p.SpellsCount, where),
		Skills: s.BitmapToNumbers(p.SkillsCount, where),
	}
}

func readRumors(s *InputStream) []*h3m.Rumor {
	const where = "rumors"

	count := s.U32(where)
	rumors := make([]*h3m.Rumor, count)
	for i := range rumors {
		rumors[i] = &h3m.Rumor{
			Name: s.StringLE(where),
			Text: s.StringLE(where),
		}
	}
	return rumors
}
