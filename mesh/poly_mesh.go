package mesh

import "github.com/go-gl/mathgl/mgl32"

const (
	// NullArea marks a polygon that is not walkable.
	NullArea uint8 = 0
	// WalkableArea marks a polygon the agent can stand on.
	WalkableArea uint8 = 63
)

// NullIndex terminates a polygon's valid vertex-index prefix.
const NullIndex uint16 = 0xffff

// PolyMesh is a navigation polygon mesh. Vertex positions are stored in
// mesh-local grid units; CellSize and CellHeight convert them to world
// space relative to BMin. Each polygon row holds up to Nvp vertex indices
// and may be padded with NullIndex.
type PolyMesh struct {
	Verts      []mgl32.Vec3
	Polys      [][]uint16
	Areas      []uint8
	Nvp        int
	CellSize   float32
	CellHeight float32
	BMin       mgl32.Vec3
}

// PolyCount returns the number of polygons.
func (pm *PolyMesh) PolyCount() int { return len(pm.Polys) }

// VertCount returns the number of vertices.
func (pm *PolyMesh) VertCount() int { return len(pm.Verts) }

// PolyVerts returns the valid vertex-index prefix of polygon i: the row
// indices up to the first NullIndex, capped at Nvp. All sentinel
// interpretation happens here; callers never compare against NullIndex
// themselves.
func (pm *PolyMesh) PolyVerts(i int) []uint16 {
	p := pm.Polys[i]
	n := len(p)
	if pm.Nvp > 0 && pm.Nvp < n {
		n = pm.Nvp
	}
	for j := 0; j < n; j++ {
		if p[j] == NullIndex {
			return p[:j]
		}
	}
	return p[:n]
}

// VertToWorld converts a grid-local vertex position to world space. The
// +1 cell-height offset lifts drawn geometry slightly above the floor so
// it does not z-fight with the surface it annotates.
func (pm *PolyMesh) VertToWorld(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		pm.BMin[0] + v[0]*pm.CellSize,
		pm.BMin[1] + (v[1]+1)*pm.CellHeight,
		pm.BMin[2] + v[2]*pm.CellSize,
	}
}
