package h3mobj

import "github.com/rrowniak/tower-h3/h3m/h3mcore"

// ResourcePack is a fixed-order amount of each of the seven resources.
type ResourcePack struct {
	Wood, Mercury, Ore, Sulfur, Crystal, Gems, Gold uint32
}

// MessageAndGuards is the optional message-plus-guard-army block shared
// by artifacts, resources, and other visitable pickups.
type MessageAndGuards struct {
	Message  *string
	Guards   []CreatureStackSlot
}

// BoxContent is the reward payload shared by Event and PandorasBox.
type BoxContent struct {
	Guards *MessageAndGuards

	Experience uint32
	ManaDiff   int32
	Morale     int8
	Luck       int8

	Resources ResourcePack

	PrimarySkills PrimarySkillBonus

	SecondarySkills []SecondarySkillGrant
	Artifacts       []uint32
	Spells          []uint8
	Creatures       []CreatureStackSlot
}

// PrimarySkillBonus is the four-skill reward block used by BoxContent.
type PrimarySkillBonus struct {
	Attack, Defence, SpellPower, Knowledge uint8
}

// SecondarySkillGrant pairs a skill id with the level granted.
type SecondarySkillGrant struct {
	ID    uint8
	Level *h3mcore.SecondarySkillLevel
}
