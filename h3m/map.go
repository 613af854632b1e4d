// This file contains the Map type and its top-level components, the
// aggregate domain tree a successful decode produces.

package h3m

import "github.com/rrowniak/tower-h3/h3m/h3mcore"

// Map models a complete H3M scenario.
type Map struct {
	Info              *Info
	Players           []*PlayerInfo
	WinLoss           *WinLossCondition
	Teams             *TeamInfo
	HeroesDef         *HeroesDef
	Options           *MapOptions
	AllowedArtifacts  *AllowedArtifacts
	AllowedSpells     *AllowedSpells
	Rumors            []*Rumor
	PredefinedHeroes  []*PredefinedHero
	Terrain           []Level
	ObjectTemplates   []*ObjectTemplate
	Objects           []*Object
	Events            []*Event
}

// Level is one z-layer of the terrain grid: row-major, N*N tiles.
type Level []TerrainTile

// Info describes the scenario header.
type Info struct {
	Format          *h3mcore.FormatTag
	SubVersion      uint32 // only meaningful when Format == FormatHOTA
	MirrorMap       bool   // HOTA sub_version > 0
	ArenaMap        bool   // HOTA sub_version > 0
	AnyPlayers      bool
	MapDimension    int32
	TwoLevels       bool
	Name            string
	Description     string
	Difficulty      *h3mcore.Difficulty
	HeroLevelLimit  *uint8 // present only if AB+
}

// TeamInfo maps a team index to the set of player colors on that team.
// A nil TeamInfo (or one with zero Teams) means the map defines no teams.
type TeamInfo struct {
	Teams map[uint8][]*h3mcore.PlayerColor
}

// MapOptions holds HOTA-only scenario options.
type MapOptions struct {
	AllowSpecialMonths bool
	RoundLimit         *uint32
}

// AllowedArtifacts is the set of artifact ids enabled on this map.
type AllowedArtifacts struct {
	Artifacts []int
}

// AllowedSpells is the set of spell and skill ids enabled on this map.
type AllowedSpells struct {
	Spells []int
	Skills []int
}

// Rumor is a single scenario rumor.
type Rumor struct {
	Name string
	Text string
}

// Event is a placeholder for the scenario-level timed-event list. The
// wire layout of this section is not specified upstream (see SPEC_FULL.md);
// the decoder always returns an empty []*Event.
type Event struct{}
