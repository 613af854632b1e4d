// This file contains the terrain, resource, town-level, faction and
// object-kind enum types.

package h3mcore

// Surface is a terrain tile's surface type.
type Surface struct {
	Enum

	ID uint8
}

// Surfaces is an enumeration of the possible surfaces.
var Surfaces = []*Surface{
	{Enum{"Dirt"}, 0},
	{Enum{"Sand"}, 1},
	{Enum{"Grass"}, 2},
	{Enum{"Snow"}, 3},
	{Enum{"Swamp"}, 4},
	{Enum{"Rough"}, 5},
	{Enum{"Subterranean"}, 6},
	{Enum{"Lava"}, 7},
	{Enum{"Water"}, 8},
	{Enum{"Rock"}, 9},
}

// SurfaceByID returns the Surface for the given id.
// ok is false if id is out of range 0..=9; surface is a mandatory
// enumerated field, so this is fatal to the caller.
func SurfaceByID(id uint8) (s *Surface, ok bool) {
	if int(id) < len(Surfaces) {
		return Surfaces[id], true
	}
	return nil, false
}

// RiverType is a terrain tile's river type.
type RiverType struct {
	Enum

	ID uint8
}

// RiverTypes is an enumeration of the possible river types. 0 is reserved
// on the wire to mean "no river" and is handled by the caller, not here.
var RiverTypes = []*RiverType{
	{Enum{"Clear"}, 1},
	{Enum{"Icy"}, 2},
	{Enum{"Muddy"}, 3},
	{Enum{"Lava"}, 4},
}

// RiverTypeByID returns the RiverType for the given id (1..=4).
func RiverTypeByID(id uint8) (r *RiverType, ok bool) {
	if id >= 1 && int(id) <= len(RiverTypes) {
		return RiverTypes[id-1], true
	}
	return nil, false
}

// RoadType is a terrain tile's road type.
type RoadType struct {
	Enum

	ID uint8
}

// RoadTypes is an enumeration of the possible road types. 0 is reserved on
// the wire to mean "no road" and is handled by the caller, not here.
var RoadTypes = []*RoadType{
	{Enum{"Dirt"}, 1},
	{Enum{"Gravel"}, 2},
	{Enum{"Cobblestone"}, 3},
}

// RoadTypeByID returns the RoadType for the given id (1..=3).
func RoadTypeByID(id uint8) (r *RoadType, ok bool) {
	if id >= 1 && int(id) <= len(RoadTypes) {
		return RoadTypes[id-1], true
	}
	return nil, false
}

// Resource is one of the seven tradable resources.
type Resource struct {
	Enum

	ID uint8
}

// Resources is an enumeration of the possible resources, in the fixed
// order used by resource packs on the wire.
var Resources = []*Resource{
	{Enum{"Wood"}, 0},
	{Enum{"Mercury"}, 1},
	{Enum{"Ore"}, 2},
	{Enum{"Sulfur"}, 3},
	{Enum{"Crystal"}, 4},
	{Enum{"Gems"}, 5},
	{Enum{"Gold"}, 6},
}

// ResourceByID returns the Resource for the given id.
// ok is false if id is out of range 0..=6.
func ResourceByID(id uint8) (r *Resource, ok bool) {
	if int(id) < len(Resources) {
		return Resources[id], true
	}
	return nil, false
}

// HallLevel is a town hall upgrade level (used by the "upgrade town"
// special victory condition).
type HallLevel struct {
	Enum

	ID uint8
}

// HallLevels is an enumeration of the possible hall levels.
var HallLevels = []*HallLevel{
	{Enum{"Town"}, 0},
	{Enum{"City"}, 1},
	{Enum{"Capitol"}, 2},
}

// HallLevelByID returns the HallLevel for the given id (0..=2).
func HallLevelByID(id uint8) (h *HallLevel, ok bool) {
	if int(id) < len(HallLevels) {
		return HallLevels[id], true
	}
	return nil, false
}

// CastleLevel is a town fortification upgrade level (used by the "upgrade
// town" special victory condition).
type CastleLevel struct {
	Enum

	ID uint8
}

// CastleLevels is an enumeration of the possible castle levels.
var CastleLevels = []*CastleLevel{
	{Enum{"Fort"}, 0},
	{Enum{"Citadel"}, 1},
	{Enum{"Castle"}, 2},
}

// CastleLevelByID returns the CastleLevel for the given id (0..=2).
func CastleLevelByID(id uint8) (c *CastleLevel, ok bool) {
	if int(id) < len(CastleLevels) {
		return CastleLevels[id], true
	}
	return nil, false
}

// Town is a playable faction.
type Town struct {
	Enum

	// Index is this faction's bit index within a faction bitmap.
	Index int
}

// AllTowns is the maximal, superset enumeration of factions across every
// format level. A FormatProfile selects the prefix of this slice that is
// valid for its (tag, sub_version).
var AllTowns = []*Town{
	{Enum{"Castle"}, 0},
	{Enum{"Rampart"}, 1},
	{Enum{"Tower"}, 2},
	{Enum{"Inferno"}, 3},
	{Enum{"Necropolis"}, 4},
	{Enum{"Dungeon"}, 5},
	{Enum{"Stronghold"}, 6},
	{Enum{"Fortress"}, 7},
	{Enum{"Conflux"}, 8},
	{Enum{"Cove"}, 9},
}

// TownByIndex returns the faction at the given bitmap index (0..=9).
func TownByIndex(index int) (t *Town, ok bool) {
	for _, t := range AllTowns {
		if t.Index == index {
			return t, true
		}
	}
	return nil, false
}

// ObjectKind is the coarse object-template classification.
type ObjectKind struct {
	Enum

	ID uint8
}

// ObjectKinds is an enumeration of the recognized object-template kinds.
var ObjectKinds = []*ObjectKind{
	{Enum{"Town"}, 1},
	{Enum{"Monster"}, 2},
	{Enum{"Hero"}, 3},
	{Enum{"Artifact"}, 4},
	{Enum{"Resource"}, 5},
}

// ObjectKindByID returns the ObjectKind for the given id.
// An unknown id is not fatal: a new ObjectKind with an Unknown name is
// returned, preserving the original byte.
func ObjectKindByID(id uint8) *ObjectKind {
	for _, k := range ObjectKinds {
		if k.ID == id {
			return k
		}
	}
	return &ObjectKind{UnknownEnum(id), id}
}
