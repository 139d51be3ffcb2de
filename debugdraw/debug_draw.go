// Package debugdraw converts mesh data into batches of abstract drawing
// primitives. Geometry walkers emit vertices through the DebugDraw sink;
// grouping vertices into whole primitives is the sink's job, which keeps
// the walkers independent of any concrete renderer.
package debugdraw

// Primitive selects how a sink groups incoming vertices.
type Primitive int

const (
	DrawPoints Primitive = iota
	DrawLines
	DrawTris
	DrawQuads
)

// VertsPerPrim returns how many vertices make up one primitive of kind p.
func VertsPerPrim(p Primitive) int {
	switch p {
	case DrawPoints:
		return 1
	case DrawLines:
		return 2
	case DrawTris:
		return 3
	case DrawQuads:
		return 4
	}
	return 1
}

// DebugDraw is the drawing sink. A Begin/End pair brackets one batch of
// homogeneous primitives; the optional Begin size applies to point size
// and line width only. Incomplete primitives left over at End are
// silently dropped.
type DebugDraw interface {
	DepthMask(state bool)

	// Texture toggles texturing for subsequent batches.
	Texture(state bool)

	Begin(prim Primitive, size ...float32)

	Vertex(x, y, z float32, color Colorb)

	// VertexUV submits a vertex with texture coordinates.
	VertexUV(x, y, z float32, color Colorb, u, v float32)

	End()
}

// AreaToColor resolves a fill color for area IDs that are neither the
// walkable nor the null area. Consumers inject their own policy;
// DefaultAreaToColor is used when nil is passed.
type AreaToColor func(area uint8) Colorb

// DefaultAreaToColor hashes the area ID to a stable translucent color.
func DefaultAreaToColor(area uint8) Colorb {
	return TransCol(IntToCol(int(area), 255), 64)
}

// BaseDraw is a no-op sink, handy for embedding in backends that only
// implement part of the contract.
type BaseDraw struct{}

func (BaseDraw) DepthMask(state bool)                                 {}
func (BaseDraw) Texture(state bool)                                   {}
func (BaseDraw) Begin(prim Primitive, size ...float32)                {}
func (BaseDraw) Vertex(x, y, z float32, color Colorb)                 {}
func (BaseDraw) VertexUV(x, y, z float32, color Colorb, u, v float32) {}
func (BaseDraw) End()                                                 {}
