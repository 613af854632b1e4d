// This file contains the terrain tile model.

package h3m

import "github.com/rrowniak/tower-h3/h3m/h3mcore"

// TerrainTile is a single tile of the terrain grid.
type TerrainTile struct {
	Surface        *h3mcore.Surface
	SurfacePicture uint8

	River          *h3mcore.RiverType
	RiverDirection uint8

	Road          *h3mcore.RoadType
	RoadDirection uint8

	MirroringFlags uint8
}
