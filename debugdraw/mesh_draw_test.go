package debugdraw

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"navmeshviewer/mesh"
)

// recordDraw captures the raw call stream, gosie3d-mock style.
type recordEvent struct {
	kind  string
	prim  Primitive
	size  float32
	pos   [3]float32
	color Colorb
	uv    [2]float32
	state bool
}

type recordDraw struct {
	events []recordEvent
}

func (r *recordDraw) DepthMask(state bool) {
	r.events = append(r.events, recordEvent{kind: "depthmask", state: state})
}

func (r *recordDraw) Texture(state bool) {
	r.events = append(r.events, recordEvent{kind: "texture", state: state})
}

func (r *recordDraw) Begin(prim Primitive, size ...float32) {
	e := recordEvent{kind: "begin", prim: prim, size: 1}
	if len(size) > 0 {
		e.size = size[0]
	}
	r.events = append(r.events, e)
}

func (r *recordDraw) Vertex(x, y, z float32, color Colorb) {
	r.events = append(r.events, recordEvent{kind: "vertex", pos: [3]float32{x, y, z}, color: color})
}

func (r *recordDraw) VertexUV(x, y, z float32, color Colorb, u, v float32) {
	r.events = append(r.events, recordEvent{kind: "vertex", pos: [3]float32{x, y, z}, color: color, uv: [2]float32{u, v}})
}

func (r *recordDraw) End() {
	r.events = append(r.events, recordEvent{kind: "end"})
}

// batchVerts returns the vertices of the n-th begin/end bracket.
func (r *recordDraw) batchVerts(n int) []recordEvent {
	batch := -1
	var verts []recordEvent
	for _, e := range r.events {
		switch e.kind {
		case "begin":
			batch++
		case "vertex":
			if batch == n {
				verts = append(verts, e)
			}
		}
	}
	return verts
}

func (r *recordDraw) batchPrim(n int) (Primitive, float32) {
	batch := -1
	for _, e := range r.events {
		if e.kind == "begin" {
			batch++
			if batch == n {
				return e.prim, e.size
			}
		}
	}
	return 0, 0
}

func assertTrue(t *testing.T, value bool, msg string) {
	t.Helper()
	if !value {
		t.Errorf(msg)
	}
}

func pentagonMesh() *mesh.PolyMesh {
	return &mesh.PolyMesh{
		Verts: []mgl32.Vec3{
			{0, 0, 0},
			{2, 0, 0},
			{3, 0, 2},
			{1, 1, 3},
			{0, 0, 2},
		},
		Polys: [][]uint16{
			{0, 1, 2, 3, 4, mesh.NullIndex},
		},
		Areas:      []uint8{mesh.WalkableArea},
		Nvp:        6,
		CellSize:   0.5,
		CellHeight: 0.25,
		BMin:       mgl32.Vec3{-1, -2, -3},
	}
}

func TestPolyMeshFillTriangleCount(t *testing.T) {
	dd := &recordDraw{}
	DrawPolyMesh(dd, pentagonMesh(), nil)

	// Fan triangulation of a pentagon yields k-2 = 3 triangles.
	verts := dd.batchVerts(0)
	if len(verts) != 9 {
		t.Fatalf("fill pass emitted %d vertices, want 9", len(verts))
	}
	prim, _ := dd.batchPrim(0)
	assertTrue(t, prim == DrawTris, "fill pass must be a triangle batch")
}

func TestPolyMeshShortPolygonNoFill(t *testing.T) {
	pm := pentagonMesh()
	pm.Polys = [][]uint16{{0, 1, mesh.NullIndex, mesh.NullIndex, mesh.NullIndex, mesh.NullIndex}}
	dd := &recordDraw{}
	DrawPolyMesh(dd, pm, nil)

	assertTrue(t, len(dd.batchVerts(0)) == 0, "two-vertex polygon must produce no fill triangles")
	assertTrue(t, len(dd.batchVerts(1)) == 4, "two-vertex polygon still contributes its edges")
	assertTrue(t, len(dd.batchVerts(2)) == len(pm.Verts), "vertex pass draws every mesh vertex")
}

func TestPolyMeshBoundaryClosedLoop(t *testing.T) {
	pm := pentagonMesh()
	dd := &recordDraw{}
	DrawPolyMesh(dd, pm, nil)

	verts := dd.batchVerts(1)
	if len(verts) != 10 {
		t.Fatalf("boundary pass emitted %d vertices, want 10 (5 edges)", len(verts))
	}
	prim, size := dd.batchPrim(1)
	assertTrue(t, prim == DrawLines, "boundary pass must be a line batch")
	assertTrue(t, size == 2.5, "boundary line width")

	// The last edge wraps to the first valid vertex.
	last := verts[len(verts)-1]
	first := verts[0]
	assertTrue(t, last.pos == first.pos, "last edge must close the loop")
}

func TestPolyMeshVertexTransform(t *testing.T) {
	pm := pentagonMesh()
	dd := &recordDraw{}
	DrawPolyMesh(dd, pm, nil)

	// Fill pass vertex 0 is mesh vertex 0.
	v := dd.batchVerts(0)[0]
	want := [3]float32{
		pm.BMin[0] + 0*pm.CellSize,
		pm.BMin[1] + (0+1)*pm.CellHeight,
		pm.BMin[2] + 0*pm.CellSize,
	}
	if v.pos != want {
		t.Errorf("fill vertex transform got %v, want %v", v.pos, want)
	}

	// Boundary and point passes add a further 0.1 lift.
	b := dd.batchVerts(1)[0]
	if b.pos[1] != want[1]+0.1 {
		t.Errorf("boundary vertex lift got %v, want %v", b.pos[1], want[1]+0.1)
	}
	p := dd.batchVerts(2)[0]
	if p.pos[1] != want[1]+0.1 {
		t.Errorf("point vertex lift got %v, want %v", p.pos[1], want[1]+0.1)
	}
}

func TestPolyMeshAreaColors(t *testing.T) {
	pm := pentagonMesh()
	pm.Polys = [][]uint16{
		{0, 1, 2, mesh.NullIndex, mesh.NullIndex, mesh.NullIndex},
		{0, 2, 3, mesh.NullIndex, mesh.NullIndex, mesh.NullIndex},
		{0, 3, 4, mesh.NullIndex, mesh.NullIndex, mesh.NullIndex},
	}
	pm.Areas = []uint8{mesh.WalkableArea, mesh.NullArea, 7}

	custom := RGBA(10, 20, 30, 40)
	var askedFor []uint8
	dd := &recordDraw{}
	DrawPolyMesh(dd, pm, func(area uint8) Colorb {
		askedFor = append(askedFor, area)
		return custom
	})

	verts := dd.batchVerts(0)
	assertTrue(t, verts[0].color == RGBA(0, 192, 255, 64), "walkable area color")
	assertTrue(t, verts[3].color == RGBA(0, 0, 0, 64), "null area color")
	assertTrue(t, verts[6].color == custom, "custom area routed to strategy")
	if len(askedFor) != 1 || askedFor[0] != 7 {
		t.Errorf("strategy calls = %v, want exactly [7]", askedFor)
	}
}

func TestPolyMeshOutOfRangeIndexSkipped(t *testing.T) {
	pm := pentagonMesh()
	pm.Polys = [][]uint16{{0, 99, 2, mesh.NullIndex, mesh.NullIndex, mesh.NullIndex}}
	pm.Areas = []uint8{mesh.WalkableArea}

	dd := &recordDraw{}
	DrawPolyMesh(dd, pm, nil)

	// The triangle loses its out-of-range vertex but the others are kept.
	assertTrue(t, len(dd.batchVerts(0)) == 2, "out-of-range index must be skipped, not fatal")
}

func slopeMesh(normal [3]float32) *mesh.TriMesh {
	return &mesh.TriMesh{
		Verts:   []float32{0, 0, 0, 1, 0, 0, 0, 0, 1},
		Tris:    []int32{0, 1, 2},
		Normals: []float32{normal[0], normal[1], normal[2]},
	}
}

func TestSlopeEmptyMeshNoCalls(t *testing.T) {
	dd := &recordDraw{}
	DrawTriMeshSlope(dd, &mesh.TriMesh{}, 45, 1)
	if len(dd.events) != 0 {
		t.Fatalf("empty mesh produced %d draw calls, want 0", len(dd.events))
	}
}

func TestSlopeBaseColor(t *testing.T) {
	dd := &recordDraw{}
	DrawTriMeshSlope(dd, slopeMesh([3]float32{0, 1, 0}), 45, 1)

	// a = 220*(2+0+1)/4 = 165; flat up-facing normal is walkable.
	want := RGBA(165, 165, 165, 255)
	verts := dd.batchVerts(0)
	if len(verts) != 3 {
		t.Fatalf("got %d vertices, want 3", len(verts))
	}
	for _, v := range verts {
		assertTrue(t, v.color == want, "walkable face keeps the grey base color")
	}
}

func TestSlopeUnwalkableBlend(t *testing.T) {
	dd := &recordDraw{}
	DrawTriMeshSlope(dd, slopeMesh([3]float32{1, 0, 0}), 45, 1)

	// normal.y = 0 < cos(45°), so the grey base is blended toward amber.
	base := RGBA(165, 165, 165, 255)
	want := LerpCol(base, RGBA(192, 128, 0, 255), 64)
	verts := dd.batchVerts(0)
	for _, v := range verts {
		assertTrue(t, v.color == want, "steep face must receive the unwalkable blend")
	}
}

func TestSlopeThresholdBoundary(t *testing.T) {
	thr := float32(math.Cos(30.0 / 180.0 * math.Pi))

	// Slightly above threshold: walkable.
	dd := &recordDraw{}
	DrawTriMeshSlope(dd, slopeMesh([3]float32{0, thr + 0.01, 0}), 30, 1)
	walkable := dd.batchVerts(0)[0].color
	assertTrue(t, walkable[0] == walkable[1] && walkable[1] == walkable[2], "above threshold keeps grey")

	// Slightly below: blended.
	dd = &recordDraw{}
	DrawTriMeshSlope(dd, slopeMesh([3]float32{0, thr - 0.01, 0}), 30, 1)
	steep := dd.batchVerts(0)[0].color
	assertTrue(t, steep[0] != steep[2], "below threshold must blend toward amber")
}

func TestSlopeTextureBracketing(t *testing.T) {
	dd := &recordDraw{}
	DrawTriMeshSlope(dd, slopeMesh([3]float32{0, 1, 0}), 45, 1)

	assertTrue(t, dd.events[0].kind == "texture" && dd.events[0].state, "texturing enabled first")
	last := dd.events[len(dd.events)-1]
	assertTrue(t, last.kind == "texture" && !last.state, "texturing disabled last")

	prim, _ := dd.batchPrim(0)
	assertTrue(t, prim == DrawTris, "slope pass is one triangle batch")
}

func TestSlopeUVProjectionAxis(t *testing.T) {
	// The UV plane is spanned by the two axes following the dominant
	// normal axis, (dominant+1) mod 3 and (dominant+2) mod 3.
	cases := []struct {
		name   string
		normal [3]float32
		// expected uv for vertex (vx,vy,vz) with scale 1
		uv func(v [3]float32) [2]float32
	}{
		{"dominant x", [3]float32{1, 0, 0}, func(v [3]float32) [2]float32 { return [2]float32{v[1], v[2]} }},
		{"dominant y", [3]float32{0, 1, 0}, func(v [3]float32) [2]float32 { return [2]float32{v[2], v[0]} }},
		{"dominant z", [3]float32{0, 0, 1}, func(v [3]float32) [2]float32 { return [2]float32{v[0], v[1]} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tm := &mesh.TriMesh{
				Verts:   []float32{2, 3, 5, 7, 11, 13, 17, 19, 23},
				Tris:    []int32{0, 1, 2},
				Normals: []float32{tc.normal[0], tc.normal[1], tc.normal[2]},
			}
			dd := &recordDraw{}
			DrawTriMeshSlope(dd, tm, 45, 1)
			verts := dd.batchVerts(0)
			for i, v := range verts {
				want := tc.uv(v.pos)
				if v.uv != want {
					t.Errorf("vertex %d uv = %v, want %v", i, v.uv, want)
				}
			}
		})
	}
}

func TestSlopeTextureScale(t *testing.T) {
	tm := slopeMesh([3]float32{0, 1, 0})
	dd := &recordDraw{}
	DrawTriMeshSlope(dd, tm, 45, 0.25)

	// Vertex 1 is (1,0,0); dominant y projects to (z,x) scaled.
	v := dd.batchVerts(0)[1]
	want := [2]float32{0, 0.25}
	if v.uv != want {
		t.Errorf("uv = %v, want %v", v.uv, want)
	}
}
