package h3mobj

// RandomDwellingPayload is the shared payload for RandomDwelling,
// RandomDwellingLvl, and RandomDwellingFaction.
type RandomDwellingPayload struct {
	base

	Owner *Ownership

	// FactionSelector is the raw id selector read from the wire; 0
	// means "any faction", in which case FactionBitmap is populated.
	FactionSelector uint32
	FactionBitmap   []int

	MinLevel *uint8
	MaxLevel *uint8
}

// CreatureBankPayload is the shared HOTA3 payload for CreatureBank,
// DerelictShip, DragonUtopia, Crypt, and Shipwreck. Pre-HOTA3 formats
// carry no payload for these templates.
type CreatureBankPayload struct {
	base

	GuardsPresetIndex    int32
	UpgradedStackPresent int8
	Artifacts            []uint32
}
