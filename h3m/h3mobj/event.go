package h3mobj

import "github.com/rrowniak/tower-h3/h3m/h3mcore"

// EventTrigger is the payload for a scenario Event object.
type EventTrigger struct {
	base

	Reward BoxContent

	AffectedPlayers []*h3mcore.PlayerColor

	ComputerCanActivate bool
	RemoveAfterVisit    bool

	// HOTA3 only.
	HumanCanActivate *bool
}

// PandorasBoxPayload is the payload for a PandorasBox object.
type PandorasBoxPayload struct {
	base

	Reward BoxContent
}
