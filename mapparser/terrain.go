// This file contains step 12: the Terrain grid.

package mapparser

import (
	"github.com/rrowniak/tower-h3/h3m"
	"github.com/rrowniak/tower-h3/h3m/h3mcore"
)

func readTerrain(s *InputStream, info *h3m.Info) []h3m.Level {
	const where = "terrain"

	if info.MapDimension <= 0 {
		s.fail(where, "non-positive map dimension")
	}
	n := int(info.MapDimension)

	levels := 1
	if info.TwoLevels {
		levels = 2
	}

	out := make([]h3m.Level, levels)
	for z := 0; z < levels; z++ {
		level := make(h3m.Level, n*n)
		for i := range level {
			level[i] = readTerrainTile(s, where)
		}
		out[z] = level
	}
	return out
}

func readTerrainTile(s *InputStream, where string) h3m.TerrainTile {
	surfaceID := s.U8(where)
	surface, ok := h3mcore.SurfaceByID(surfaceID)
	if !ok {
		s.fail(where, "invalid surface")
	}
	picture := s.U8(where)

	riverID := s.U8(where)
	var river *h3mcore.RiverType
	if riverID != 0 {
		river, ok = h3mcore.RiverTypeByID(riverID)
		if !ok {
			s.fail(where, "invalid river type")
		}
	}
	riverDir := s.U8(where)

	roadID := s.U8(where)
	var road *h3mcore.RoadType
	if roadID != 0 {
		road, ok = h3mcore.RoadTypeByID(roadID)
		if !ok {
			s.fail(where, "invalid road type")
		}
	}
	roadDir := s.U8(where)

	mirror := s.U8(where)

	return h3m.TerrainTile{
		Surface:        surface,
		SurfacePicture: picture,
		River:          river,
		RiverDirection: riverDir,
		Road:           road,
		RoadDirection:  roadDir,
		MirroringFlags: mirror,
	}
}
