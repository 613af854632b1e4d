package h3mobj

import "github.com/rrowniak/tower-h3/h3m/h3mcore"

// ArtifactLoadout is the worn-plus-bag artifact set carried by a hero
// object instance (distinct from a map-level PredefinedHero template).
type ArtifactLoadout struct {
	Slots []*uint32
	Bag   []uint32
}

// HeroPayload is the payload for Hero, RandomHero, and Prison.
type HeroPayload struct {
	base

	QuestID *uint32 // AB+ only
	Owner   *Ownership
	HeroID  uint8
	Name    *string

	// Experience is nil when the hero has no forced experience value.
	Experience *uint32

	Portrait *uint8

	SecondarySkills []SecondarySkillGrant
	Garrison        []CreatureStackSlot
	Formation       *ArmyFormation
	Artifacts       *ArtifactLoadout

	PatrolRadius uint8

	Biography    *string
	Gender       *h3mcore.Gender
	CustomSpells []uint8

	PrimarySkills *PrimarySkillBonus
}
