package main

import (
	"github.com/go-gl/mathgl/mgl32"

	"navmeshviewer/mesh"
)

// samplePolyMesh returns a small pyramid navmesh shown when no input is
// given: four triangles around an apex, one of them a null area.
func samplePolyMesh() *mesh.PolyMesh {
	return &mesh.PolyMesh{
		Verts: []mgl32.Vec3{
			{0, 0, 0},
			{1, 0, 0},
			{1, 0, 1},
			{0, 0, 1},
			{0.5, 1, 0.5},
		},
		Polys: [][]uint16{
			{0, 1, 4, mesh.NullIndex},
			{1, 2, 4, mesh.NullIndex},
			{2, 3, 4, mesh.NullIndex},
			{3, 0, 4, mesh.NullIndex},
		},
		Areas: []uint8{
			mesh.WalkableArea,
			mesh.WalkableArea,
			mesh.NullArea,
			mesh.WalkableArea,
		},
		Nvp:        4,
		CellSize:   1,
		CellHeight: 1,
		BMin:       mgl32.Vec3{-1, -1, -1},
	}
}
