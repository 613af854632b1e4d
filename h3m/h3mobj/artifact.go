package h3mobj

// ArtifactPayload is the payload for Artifact, RandomArt, and the
// random-artifact-class variants.
type ArtifactPayload struct {
	base

	Pickup MessageAndGuards
}

// SpellScrollPayload is the payload for SpellScroll.
type SpellScrollPayload struct {
	base

	Pickup  MessageAndGuards
	SpellID uint32
}

// ResourcePayload is the payload for Resource and RandomResource.
type ResourcePayload struct {
	base

	Pickup MessageAndGuards
	Amount uint32
}

// SignPayload is the payload for Sign and OceanBottle.
type SignPayload struct {
	base

	Text string
}
