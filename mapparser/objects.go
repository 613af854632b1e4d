// This file contains step 14: Objects, and the top-level dispatch into
// the per-kind payloads of §4.7 (h3mobj).

package mapparser

import (
	"github.com/rrowniak/tower-h3/h3m"
	"github.com/rrowniak/tower-h3/h3m/h3mobj"
)

func readObjects(s *InputStream, p *FormatProfile, templates []*h3m.ObjectTemplate) []*h3m.Object {
	const where = "objects"

	count := s.U32(where)
	out := make([]*h3m.Object, count)
	for i := range out {
		coord := s.ReadCoord(where)
		templateIndex := s.U32(where)
		s.Skip(5, where)

		if int(templateIndex) >= len(templates) {
			s.fail(where, "object template index out of range")
		}
		template := templates[templateIndex]

		out[i] = &h3m.Object{
			Position:      coord,
			TemplateIndex: templateIndex,
			Type:          dispatchObjectType(s, p, h3mobj.ObjectID(template.ID), uint32(template.SubID)),
		}
	}
	return out
}

// dispatchObjectType decodes the payload body selected by id. An
// unrecognized id is fatal, per the format's own failure policy.
func dispatchObjectType(s *InputStream, p *FormatProfile, id h3mobj.ObjectID, subID uint32) h3mobj.ObjectType {
	const where = "objects.payload"

	switch id {
	case h3mobj.Monster,
		h3mobj.RandomMonster, h3mobj.RandomMonsterL1, h3mobj.RandomMonsterL2, h3mobj.RandomMonsterL3,
		h3mobj.RandomMonsterL4, h3mobj.RandomMonsterL5, h3mobj.RandomMonsterL6, h3mobj.RandomMonsterL7:
		return readMonster(s, p, id)

	case h3mobj.Event:
		return readEvent(s, p, id)

	case h3mobj.Shipyard, h3mobj.Lighthouse,
		h3mobj.CreatureGenerator1, h3mobj.CreatureGenerator2, h3mobj.CreatureGenerator3, h3mobj.CreatureGenerator4:
		g := &h3mobj.GeneratorPayload{Owner: h3mobj.OwnershipByID(s.U32(where))}
		g.ID = id
		return g

	case h3mobj.Mine, h3mobj.AbandonedMine:
		return readMine(s, p, id, subID)

	case h3mobj.Hero, h3mobj.RandomHero, h3mobj.Prison:
		return readHero(s, p, id)

	case h3mobj.Artifact, h3mobj.RandomArt, h3mobj.RandomTreasureArt, h3mobj.RandomMinorArt,
		h3mobj.RandomMajorArt, h3mobj.RandomRelicArt:
		a := &h3mobj.ArtifactPayload{Pickup: p.ReadMessageAndGuards(s, where)}
		a.ID = id
		return a

	case h3mobj.SpellScroll:
		sc := &h3mobj.SpellScrollPayload{
			Pickup:  p.ReadMessageAndGuards(s, where),
			SpellID: s.U32(where),
		}
		sc.ID = id
		return sc

	case h3mobj.Resource, h3mobj.RandomResource:
		pickup := p.ReadMessageAndGuards(s, where)
		amount := s.U32(where)
		s.Skip(4, where)
		r := &h3mobj.ResourcePayload{Pickup: pickup, Amount: amount}
		r.ID = id
		return r

	case h3mobj.Sign, h3mobj.OceanBottle:
		text := s.StringLE(where)
		s.Skip(4, where)
		sign := &h3mobj.SignPayload{Text: text}
		sign.ID = id
		return sign

	case h3mobj.SeerHut:
		return readSeerHut(s, p, id)

	case h3mobj.WitchHut:
		return readWitchHut(s, p, id)

	case h3mobj.Scholar:
		bonusKind := s.U8(where)
		bonusID := s.U8(where)
		s.Skip(6, where)
		sch := &h3mobj.ScholarPayload{BonusKind: h3mobj.ScholarBonusKind(bonusKind), BonusID: bonusID}
		sch.ID = id
		return sch

	case h3mobj.Garrison, h3mobj.Garrison2:
		return readGarrison(s, p, id)

	case h3mobj.Town, h3mobj.RandomTown:
		return readTown(s, p, id, subID)

	case h3mobj.ShrineOfMagicIncantation, h3mobj.ShrineOfMagicGesture, h3mobj.ShrineOfMagicThought:
		sh := &h3mobj.ShrineOfMagicPayload{SpellID: s.U32(where)}
		sh.ID = id
		return sh

	case h3mobj.PandorasBox:
		pb := &h3mobj.PandorasBoxPayload{Reward: readBoxContent(s, p)}
		pb.ID = id
		return pb

	case h3mobj.Grail:
		return readGrail(s, subID, id)

	case h3mobj.RandomDwelling, h3mobj.RandomDwellingLvl, h3mobj.RandomDwellingFaction:
		return readRandomDwelling(s, p, id)

	case h3mobj.QuestGuard:
		qg := &h3mobj.QuestGuardPayload{Quest: readQuest(s, p, false)}
		qg.ID = id
		return qg

	case h3mobj.HeroPlaceholder:
		hp := &h3mobj.HeroPlaceholderPayload{Owner: s.U8(where), HeroID: s.U8(where)}
		hp.ID = id
		return hp

	case h3mobj.CreatureBank, h3mobj.DerelictShip, h3mobj.DragonUtopia, h3mobj.Crypt, h3mobj.Shipwreck:
		return readCreatureBank(s, p, id)

	default:
		s.fail(where, "unknown object type id")
		panic("unreachable")
	}
}
