// This file contains the ObjectType interface, the tagged union every
// concrete object payload implements, following the same shape as the
// teacher's repcmd.Cmd interface.

package h3mobj

import "github.com/rrowniak/tower-h3/h3m/h3mcore"

// e creates a new Enum value.
func e(name string) h3mcore.Enum {
	return h3mcore.Enum{Name: name}
}

// ObjectType is implemented by every object-kind-specific payload.
type ObjectType interface {
	// ObjectID returns the template id this payload was dispatched from.
	ObjectID() ObjectID
}

// base is embedded by every payload to carry the dispatch id without
// repeating the accessor on every type.
type base struct {
	ID ObjectID
}

// ObjectID implements ObjectType.
func (b base) ObjectID() ObjectID { return b.ID }

// SetID assigns the dispatch id carried by base. Exposed because
// TownPayload declares its own ID field (the AB+ forced-town-id), which
// shadows base's promoted ID at the selector level.
func (b *base) SetID(id ObjectID) { b.ID = id }

// Ownership identifies the owning player color of a neutral-or-owned
// object (shipyard, creature generator, mine, garrison, town).
type Ownership struct {
	h3mcore.Enum

	ID uint32
}

// Ownerships is an enumeration of the recognized ownership values; IDs
// 0..=7 mirror h3mcore.PlayerColors, 255 is neutral/unowned.
var Ownerships = []*Ownership{
	{e("Red"), 0}, {e("Blue"), 1}, {e("Tan"), 2}, {e("Green"), 3},
	{e("Orange"), 4}, {e("Purple"), 5}, {e("Teal"), 6}, {e("Pink"), 7},
	{e("Neutral"), 255},
}

// OwnershipByID returns the Ownership for the given id.
func OwnershipByID(id uint32) *Ownership {
	for _, o := range Ownerships {
		if o.ID == id {
			return o
		}
	}
	return &Ownership{h3mcore.UnknownEnum(id), id}
}

// ArmyFormation tells whether a garrison/hero's creatures fight in a
// "wide" (loose) or "tight" (grouped) formation.
type ArmyFormation struct {
	h3mcore.Enum

	ID uint8
}

// ArmyFormations is an enumeration of the possible formations.
var ArmyFormations = []*ArmyFormation{
	{e("Wide"), 0},
	{e("Tight"), 1},
}

// ArmyFormationByID returns the ArmyFormation for the given id (0 or 1).
func ArmyFormationByID(id uint8) (f *ArmyFormation, ok bool) {
	if int(id) < len(ArmyFormations) {
		return ArmyFormations[id], true
	}
	return nil, false
}

// CreatureStackSlot is one of the (up to 7) garrison/army slots.
type CreatureStackSlot struct {
	CreatureID uint32 // width/sentinel per FormatProfile; see mapparser
	Amount     uint16
}
