package h3mobj

// GeneratorPayload is the shared payload for Shipyard, Lighthouse, and
// the four CreatureGenerator templates: an owning player or neutral.
type GeneratorPayload struct {
	base

	Owner *Ownership
}

// MinePayload is the payload for Mine and AbandonedMine. Exactly one of
// Owner or ResourceOptions is populated, chosen by the template's subid.
type MinePayload struct {
	base

	Owner *Ownership

	// ResourceOptions lists the resource types the abandoned mine may
	// yield once claimed, decoded from a bitmap over the 7 resources.
	ResourceOptions []int
}

// GrailPayload is the payload for Grail.
type GrailPayload struct {
	base

	// Radius is nil when the template subid marks a radius-less grail
	// placement (subid >= 1000).
	Radius *int32
}

// ShrineOfMagicPayload is the shared payload for the three
// ShrineOfMagic* templates.
type ShrineOfMagicPayload struct {
	base

	SpellID uint32
}

// HeroPlaceholderPayload is the payload for HeroPlaceholder.
type HeroPlaceholderPayload struct {
	base

	Owner   uint8
	HeroID  uint8
}
