// This file contains the scenario win/loss condition model.

package h3m

import "github.com/rrowniak/tower-h3/h3m/h3mcore"

// WinLossCondition holds the scenario's victory/loss configuration.
type WinLossCondition struct {
	// AllowNormalVictory and AppliesToComputer are only meaningful when
	// SpecialVictory.Kind is not VictoryNone.
	AllowNormalVictory bool
	AppliesToComputer  bool

	SpecialVictory SpecialVictory
	SpecialLoss    SpecialLoss
}

// SpecialVictoryKind discriminates the variants of SpecialVictory.
type SpecialVictoryKind byte

const (
	VictoryNone SpecialVictoryKind = iota
	VictoryAcquireArtifact
	VictoryAccumulateCreatures
	VictoryAccumulateResources
	VictoryUpgradeTown
	VictoryBuildGrail
	VictoryDefeatHero
	VictoryCaptureTown
	VictoryDefeatMonster
	VictoryFlagAllCreatureDwellings
	VictoryFlagAllMines
	VictoryTransportArtifact
	VictoryEliminateAllMonsters // HOTA
	VictorySurviveNDays         // HOTA
)

// SpecialVictory is the sum type over every special victory condition.
// Only the fields relevant to Kind are populated.
type SpecialVictory struct {
	Kind SpecialVictoryKind

	ArtifactID     uint32
	CreatureUnitID uint16
	Amount         uint32
	Resource       *h3mcore.Resource
	TownCoord      h3mcore.MapCoord
	HallLevel      *h3mcore.HallLevel
	CastleLevel    *h3mcore.CastleLevel
	HeroCoord      h3mcore.MapCoord
	MonsterCoord   h3mcore.MapCoord
	ArtifactCoord  h3mcore.MapCoord
	LimitDays      uint32
}

// SpecialLossKind discriminates the variants of SpecialLoss.
type SpecialLossKind byte

const (
	LossNone SpecialLossKind = iota
	LossTown
	LossHero
	LossTimeExpires
)

// SpecialLoss is the sum type over every special loss condition.
type SpecialLoss struct {
	Kind SpecialLossKind

	TownCoord h3mcore.MapCoord
	HeroCoord h3mcore.MapCoord
	LimitDays uint32
}
