// This file contains the object template model: the reusable definition
// an Object's position is placed against.

package h3m

import "github.com/rrowniak/tower-h3/h3m/h3mcore"

// TileTransitProperty classifies a single cell of an object template's
// footprint.
type TileTransitProperty byte

const (
	// Transitable means the cell can be walked through.
	Transitable TileTransitProperty = iota
	// TransitBlocked means the cell blocks movement.
	TransitBlocked
	// Visitable means the cell triggers the object's visit behavior.
	Visitable
)

// ObjectTemplate is a reusable object definition referenced by Object by
// index.
type ObjectTemplate struct {
	AnimationFile string

	// TransitMatrix is the 6x8 footprint passability grid, indexed
	// [row][col] with (0,0) at the top-left of the footprint.
	TransitMatrix [6][8]TileTransitProperty

	AllowedTerrains []*h3mcore.Surface

	ID    uint32
	SubID uint32
	Kind  *h3mcore.ObjectKind

	RenderPriority uint8
}
