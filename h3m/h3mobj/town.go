package h3mobj

import "github.com/rrowniak/tower-h3/h3m/h3mcore"

// TownBuildings is the custom-buildings override for a Town object.
// When CustomBuildings is false, HasFort/DefaultBuildings carry the
// simplified two-boolean form instead.
type TownBuildings struct {
	CustomBuildings bool

	Built     []int
	Forbidden []int

	HasFort          bool
	DefaultBuildings bool
}

// TownEvent is one scheduled event in a Town's event list.
type TownEvent struct {
	Name    string
	Message string

	Resources ResourcePack

	AffectedPlayers []*h3mcore.PlayerColor
	HumanAffected   bool
	ComputerAffected bool

	FirstOccurrence uint16
	NextOccurrence  uint8

	NewBuildings []int
	Creatures    [7]CreatureLevelChange
}

// CreatureLevelChange is one of the 7 dwelling-level creature-count
// overrides in a TownEvent.
type CreatureLevelChange struct {
	LevelIndex  uint8
	CreatureAt  uint16
}

// TownPayload is the payload for Town and RandomTown.
type TownPayload struct {
	base

	ID     *uint32 // AB+ only
	Owner  *Ownership
	Name   *string

	Guards    *MessageAndGuards
	Formation *ArmyFormation

	Buildings TownBuildings

	ObligatorySpells []int // AB+
	PossibleSpells   []int

	SpellsResearchAvailable *bool // HOTA1+

	Events []TownEvent

	// Alignment is the faction at the SOD+ alignment byte's index; nil
	// when that byte is 0xFF or not a faction index, and always nil
	// before SOD.
	Alignment *h3mcore.Town
}
