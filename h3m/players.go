// This file contains the per-color player slot model.

package h3m

import "github.com/rrowniak/tower-h3/h3m/h3mcore"

// FactionKind discriminates the variants of Faction.
type FactionKind byte

const (
	// FactionRandomAll means every faction enabled on the map may be
	// randomly selected for this player.
	FactionRandomAll FactionKind = iota
	// FactionRandomSome means a random faction is picked from a
	// restricted subset.
	FactionRandomSome
	// FactionSome means a single, fixed faction was chosen.
	FactionSome
	// FactionNone means no faction bit was set and the slot is not
	// marked random.
	FactionNone
)

// Faction is the sum type describing a player's faction assignment,
// derived from the faction bitmap and the is-random-faction flag.
type Faction struct {
	Kind FactionKind

	// Some holds the single faction when Kind == FactionSome.
	Some *h3mcore.Town

	// Subset holds the restricted set of factions when
	// Kind == FactionRandomSome.
	Subset []*h3mcore.Town
}

// Hero identifies a named hero slot (lead hero, other heroes, disposed
// heroes): a hero type id, optional portrait override, and a name.
type Hero struct {
	ID        uint8
	PortraitID *uint8
	Name      string
}

// PlayerInfo models one of the eight fixed-color player slots.
type PlayerInfo struct {
	Color *h3mcore.PlayerColor

	// CanBeHuman / CanBeComputer are the two activation booleans. If both
	// are false the slot is inactive and every field below retains its
	// zero value; none of the dependent bytes were semantically present.
	CanBeHuman    bool
	CanBeComputer bool

	Behaviour *h3mcore.Behaviour
	Faction   Faction

	HasMainTown              bool
	GenerateHeroAtMainTown   bool
	MainTownPosition         *h3mcore.MapCoord

	HasRandomHero bool
	LeadHero      *Hero
	OtherHeroes   []*Hero
}
