// This file contains the global hero allowance and predefined hero model.

package h3m

import "github.com/rrowniak/tower-h3/h3m/h3mcore"

// HeroesDef describes which heroes are globally available on the map.
type HeroesDef struct {
	// AllowedHeroes is the ascending list of globally allowed hero ids.
	AllowedHeroes []int

	// ReservedForCampaign lists hero ids reserved for campaign use (AB+).
	ReservedForCampaign []uint8

	// Disposed lists per-color hero dispositions (SOD+): a named hero and
	// the set of colors it is disposed towards.
	Disposed []DisposedHero
}

// DisposedHero is a single SOD+ hero disposition record.
type DisposedHero struct {
	Hero    Hero
	Players []*h3mcore.PlayerColor
}

// PrimarySkills is a hero's four primary attributes.
type PrimarySkills struct {
	Attack, Defence, SpellPower, Knowledge uint32
}

// SecondarySkill pairs a skill id with its proficiency level.
type SecondarySkill struct {
	ID    uint8
	Level *h3mcore.SecondarySkillLevel
}

// HeroArtifacts is the set of artifacts equipped and carried by a hero.
type HeroArtifacts struct {
	// Slots holds one optional artifact id per equipment slot, indexed
	// the way the FormatProfile enumerates artifact slots. A nil entry
	// means the slot is empty.
	Slots []*uint32

	// Bag holds the artifacts not equipped in a named slot.
	Bag []uint32
}

// PredefinedHero describes a fully customized hero template (SOD+).
type PredefinedHero struct {
	ID uint32

	Experience       *uint32
	SecondarySkills  []SecondarySkill
	Artifacts        *HeroArtifacts
	Biography        *string
	Gender           *h3mcore.Gender
	CustomSpells     []uint8
	PrimarySkills    *PrimarySkills
}
