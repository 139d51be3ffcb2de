package debugdraw

import (
	"math"

	"navmeshviewer/mesh"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	colWalkable = RGBA(0, 192, 255, 64)
	colNullArea = RGBA(0, 0, 0, 64)
	colBoundary = RGBA(0, 48, 64, 220)
	colVertex   = RGBA(0, 0, 0, 220)

	colUnwalkable = RGBA(192, 128, 0, 255)
)

// DrawPolyMesh renders a navigation polygon mesh in three passes: filled
// polygons colored by area, boundary edges, and vertex points. Custom
// area IDs are resolved through areaToCol; pass nil for the default
// palette. Out-of-range vertex indices are skipped, never an error.
func DrawPolyMesh(dd DebugDraw, pm *mesh.PolyMesh, areaToCol AreaToColor) {
	if dd == nil || pm == nil {
		return
	}
	if areaToCol == nil {
		areaToCol = DefaultAreaToColor
	}

	dd.Begin(DrawTris)
	for i := 0; i < pm.PolyCount(); i++ {
		var color Colorb
		switch pm.Areas[i] {
		case mesh.WalkableArea:
			color = colWalkable
		case mesh.NullArea:
			color = colNullArea
		default:
			color = areaToCol(pm.Areas[i])
		}

		// Fan triangulation around the polygon's first vertex.
		vs := pm.PolyVerts(i)
		for j := 2; j < len(vs); j++ {
			vi := [3]uint16{vs[0], vs[j-1], vs[j]}
			for _, idx := range vi {
				if int(idx) >= pm.VertCount() {
					continue
				}
				v := pm.VertToWorld(pm.Verts[idx])
				dd.Vertex(v[0], v[1], v[2], color)
			}
		}
	}
	dd.End()

	// Boundary edges, lifted a little further so they draw over the fill.
	dd.Begin(DrawLines, 2.5)
	for i := 0; i < pm.PolyCount(); i++ {
		vs := pm.PolyVerts(i)
		for j := range vs {
			nj := j + 1
			if nj >= len(vs) {
				nj = 0
			}
			vi := [2]uint16{vs[j], vs[nj]}
			for _, idx := range vi {
				if int(idx) >= pm.VertCount() {
					continue
				}
				v := pm.VertToWorld(pm.Verts[idx])
				dd.Vertex(v[0], v[1]+0.1, v[2], colBoundary)
			}
		}
	}
	dd.End()

	dd.Begin(DrawPoints, 3.0)
	for _, gv := range pm.Verts {
		v := pm.VertToWorld(gv)
		dd.Vertex(v[0], v[1]+0.1, v[2], colVertex)
	}
	dd.End()
}

// DrawTriMeshSlope renders a triangle mesh shaded by face normal, tinting
// faces steeper than walkableSlopeAngle (degrees) toward an unwalkable
// amber. Texturing is enabled on the sink for the duration of the call;
// texture coordinates project each face onto the plane its normal points
// away from, scaled by texScale.
func DrawTriMeshSlope(dd DebugDraw, tm *mesh.TriMesh, walkableSlopeAngle, texScale float32) {
	if dd == nil || tm == nil {
		return
	}
	if len(tm.Verts) == 0 || len(tm.Tris) == 0 || len(tm.Normals) == 0 {
		return
	}

	walkableThr := float32(math.Cos(float64(walkableSlopeAngle) / 180.0 * math.Pi))

	dd.Texture(true)
	dd.Begin(DrawTris)
	for i := 0; i+2 < len(tm.Tris); i += 3 {
		norm := tm.Normals[i : i+3]

		a := int(220 * (2 + norm[0] + norm[1]) / 4)
		if a < 0 {
			a = 0
		} else if a > 255 {
			a = 255
		}
		color := RGBA(a, a, a, 255)
		if norm[1] < walkableThr {
			color = LerpCol(color, colUnwalkable, 64)
		}

		va := tm.Verts[tm.Tris[i]*3:]
		vb := tm.Verts[tm.Tris[i+1]*3:]
		vc := tm.Verts[tm.Tris[i+2]*3:]

		ax := 0
		if mgl32.Abs(norm[1]) > mgl32.Abs(norm[ax]) {
			ax = 1
		}
		if mgl32.Abs(norm[2]) > mgl32.Abs(norm[ax]) {
			ax = 2
		}
		ax = (1 << ax) & 3  // +1 mod 3
		ay := (1 << ax) & 3 // +1 mod 3

		dd.VertexUV(va[0], va[1], va[2], color, va[ax]*texScale, va[ay]*texScale)
		dd.VertexUV(vb[0], vb[1], vb[2], color, vb[ax]*texScale, vb[ay]*texScale)
		dd.VertexUV(vc[0], vc[1], vc[2], color, vc[ax]*texScale, vc[ay]*texScale)
	}
	dd.End()
	dd.Texture(false)
}
