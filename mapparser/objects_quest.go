// This file decodes the Quest encoding shared by SeerHut and
// QuestGuard, and the SeerHut payload that builds on it.

package mapparser

import (
	"github.com/rrowniak/tower-h3/h3m/h3mcore"
	"github.com/rrowniak/tower-h3/h3m/h3mobj"
)

func readMission(s *InputStream, p *FormatProfile, where string) h3mobj.Mission {
	m := h3mobj.Mission{Kind: h3mobj.MissionKind(s.U8(where))}

	switch m.Kind {
	case h3mobj.MissionNone:
		// no payload

	case h3mobj.MissionLevel:
		m.Level = s.U32(where)

	case h3mobj.MissionPrimarySkills:
		m.PrimarySkills = h3mobj.PrimarySkillBonus{
			Attack:     s.U8(where),
			Defence:    s.U8(where),
			SpellPower: s.U8(where),
			Knowledge:  s.U8(where),
		}

	case h3mobj.MissionKillHero:
		m.HeroID = s.U32(where)

	case h3mobj.MissionKillCreature:
		m.CreatureID = s.U32(where)

	case h3mobj.MissionArtifacts:
		n := s.U8(where)
		m.Artifacts = make([]uint8, n)
		for i := range m.Artifacts {
			m.Artifacts[i] = s.U8(where)
		}

	case h3mobj.MissionArmy:
		n := s.U8(where)
		m.Army = make([]h3mobj.CreatureStackSlot, n)
		for i := range m.Army {
			m.Army[i] = p.ReadCreatureStack(s, where)
		}

	case h3mobj.MissionResources:
		m.Resources = s.ReadResourcePack(where)

	case h3mobj.MissionHero:
		m.HeroIdentity = s.U8(where)

	case h3mobj.MissionPlayer:
		m.PlayerID = s.U8(where)

	case h3mobj.MissionKeymaster:
		// no payload

	case h3mobj.MissionHOTAMulti:
		if !p.LevelHOTA3 {
			s.fail(where, "HOTA multi-mission in non-HOTA3 format")
		}
		m.HOTAMulti = h3mobj.HOTAMultiKind(s.U32(where))
		switch m.HOTAMulti {
		case h3mobj.HOTAMultiHeroClass:
			n := s.U32(where)
			m.HOTAHeroClassBitmap = s.BitmapToNumbers(int(n), where)
		case h3mobj.HOTAMultiReachDate:
			m.HOTAReachDate = s.U32(where)
		default:
			s.fail(where, "unknown HOTA multi-mission kind")
		}

	default:
		s.fail(where, "unknown mission kind")
	}

	return m
}

// readQuest decodes the mission/text encoding shared by SeerHut and
// QuestGuard. withReward is true only for a SeerHut quest: QuestGuard's
// quest carries no reward.
func readQuest(s *InputStream, p *FormatProfile, withReward bool) h3mobj.Quest {
	const where = "objects.quest"

	q := h3mobj.Quest{
		Mission:        readMission(s, p, where),
		LastDay:        s.I32(where),
		ProposalText:   s.StringLE(where),
		ProgressText:   s.StringLE(where),
		CompletionText: s.StringLE(where),
	}

	if withReward {
		if q.Mission.Kind == h3mobj.MissionNone {
			s.Skip(1, where)
		} else {
			reward := readReward(s, where)
			q.Reward = &reward
		}
	}

	return q
}

func readReward(s *InputStream, where string) h3mobj.Reward {
	r := h3mobj.Reward{Kind: h3mobj.RewardKind(s.U8(where))}

	switch r.Kind {
	case h3mobj.RewardNone:
		// no payload
	case h3mobj.RewardExperience:
		r.Amount = s.U32(where)
	case h3mobj.RewardManaPoints:
		r.ManaDiff = s.I32(where)
	case h3mobj.RewardMorale:
		r.Morale = s.I8(where)
	case h3mobj.RewardLuck:
		r.Luck = s.I8(where)
	case h3mobj.RewardResources:
		r.Resource = s.ReadResourcePack(where)
	case h3mobj.RewardPrimarySkill:
		r.PrimarySkill = h3mobj.PrimarySkillBonus{
			Attack:     s.U8(where),
			Defence:    s.U8(where),
			SpellPower: s.U8(where),
			Knowledge:  s.U8(where),
		}
	case h3mobj.RewardSecondarySkill:
		gr := h3mobj.SecondarySkillGrant{ID: s.U8(where)}
		level, ok := h3mcore.SecondarySkillLevelByID(s.U8(where))
		if ok {
			gr.Level = level
		}
		r.SecondarySkill = gr
	case h3mobj.RewardArtifact:
		r.ArtifactID = s.U32(where)
	case h3mobj.RewardSpell:
		r.SpellID = s.U32(where)
	case h3mobj.RewardCreature:
		r.Creature = h3mobj.CreatureStackSlot{CreatureID: s.U32(where), Amount: s.U16(where)}
	default:
		s.fail(where, "unknown reward kind")
	}

	return r
}

func readSeerHut(s *InputStream, p *FormatProfile, id h3mobj.ObjectID) *h3mobj.SeerHutPayload {
	const where = "objects.seerhut"

	sh := &h3mobj.SeerHutPayload{}

	if p.LevelHOTA3 {
		n := s.U32(where)
		sh.Quests = make([]h3mobj.Quest, n)
		for i := range sh.Quests {
			sh.Quests[i] = readQuest(s, p, true)
		}
		m := s.U32(where)
		sh.Repeatable = make([]h3mobj.Quest, m)
		for i := range sh.Repeatable {
			sh.Repeatable[i] = readQuest(s, p, true)
		}
		s.Skip(2, where)
	} else {
		q := readQuest(s, p, true)
		sh.Quest = &q
		s.Skip(2, where)
	}

	sh.ID = id
	return sh
}
