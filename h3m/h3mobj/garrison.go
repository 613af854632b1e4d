package h3mobj

// GarrisonPayload is the payload for Garrison and Garrison2.
type GarrisonPayload struct {
	base

	Owner *Ownership
	Units []CreatureStackSlot

	// RemovableUnits is true when absent (pre-AB); AB+ stores it
	// explicitly.
	RemovableUnits bool
}
