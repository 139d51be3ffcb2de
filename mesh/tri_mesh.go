package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// TriMesh is an arbitrary triangle mesh in world space. Verts holds packed
// xyz triples, Tris holds three vertex indices per triangle. Normals holds
// one xyz triple per triangle (flat shading): the normal for the triangle
// starting at Tris[i] lives at Normals[i:i+3], so len(Normals) == len(Tris).
// Keeping the buffer triangle-indexed rather than vertex-indexed is
// deliberate; shared vertices must not share normals.
type TriMesh struct {
	Verts   []float32
	Tris    []int32
	Normals []float32
}

// VertCount returns the number of vertices.
func (tm *TriMesh) VertCount() int { return len(tm.Verts) / 3 }

// TriCount returns the number of triangles.
func (tm *TriMesh) TriCount() int { return len(tm.Tris) / 3 }

// Vert returns vertex i as a vector.
func (tm *TriMesh) Vert(i int32) mgl32.Vec3 {
	v := tm.Verts[i*3:]
	return mgl32.Vec3{v[0], v[1], v[2]}
}

// Bounds returns the axis-aligned bounding box of the mesh. Degenerate
// (empty) meshes yield a zero box.
func (tm *TriMesh) Bounds() (bmin, bmax mgl32.Vec3) {
	if len(tm.Verts) < 3 {
		return
	}
	bmin = mgl32.Vec3{float32(math.Inf(1)), float32(math.Inf(1)), float32(math.Inf(1))}
	bmax = mgl32.Vec3{float32(math.Inf(-1)), float32(math.Inf(-1)), float32(math.Inf(-1))}
	for i := 0; i+2 < len(tm.Verts); i += 3 {
		for j := 0; j < 3; j++ {
			bmin[j] = min32(bmin[j], tm.Verts[i+j])
			bmax[j] = max32(bmax[j], tm.Verts[i+j])
		}
	}
	return bmin, bmax
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
