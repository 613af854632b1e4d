package h3mobj

// MonsterCharacter is the aggression disposition read as a raw byte;
// the upstream source never enumerates its values, so it is kept as a
// plain integer at this boundary.
type MonsterCharacter uint8

// Monster is the payload for Monster and every RandomMonster* template.
type Monster struct {
	base

	CreatureID *uint32 // only set when the format is AB+
	Amount     uint16
	Character  MonsterCharacter

	Message *string
	Loot    *ResourcePack
	Reward  *uint32 // artifact id offered on defeat

	NeverFlees  bool
	GrowingTeam bool

	// HOTA3 only; nil when not present.
	AggressionFactor    *uint32
	JoinOnlyForMoney    *bool
	JoinPercentage      *uint32
	UpgradedCreaturesID *uint32
	CreaturesOnBattleID *uint32
}
