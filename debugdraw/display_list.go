package debugdraw

import "github.com/go-gl/mathgl/mgl32"

// Vertex is one recorded vertex.
type Vertex struct {
	Pos   mgl32.Vec3
	Color Colorb
	UV    mgl32.Vec2
}

// Batch is one Begin/End bracket: a run of whole primitives of a single
// kind.
type Batch struct {
	Prim      Primitive
	Size      float32
	Textured  bool
	DepthMask bool
	Verts     []Vertex
}

// PrimCount returns the number of whole primitives in the batch.
func (b *Batch) PrimCount() int {
	return len(b.Verts) / VertsPerPrim(b.Prim)
}

// Primitive returns the vertices of primitive i.
func (b *Batch) Primitive(i int) []Vertex {
	n := VertsPerPrim(b.Prim)
	return b.Verts[i*n : (i+1)*n]
}

// DisplayList records the draw-protocol call stream and groups it into
// primitive batches a backend can consume. The caller owns the list and
// clears it once per frame.
type DisplayList struct {
	batches []Batch

	cur       Batch
	open      bool
	textured  bool
	depthMask bool
}

// NewDisplayList returns an empty list with depth writes enabled.
func NewDisplayList() *DisplayList {
	return &DisplayList{depthMask: true}
}

func (d *DisplayList) DepthMask(state bool) { d.depthMask = state }

func (d *DisplayList) Texture(state bool) { d.textured = state }

func (d *DisplayList) Begin(prim Primitive, size ...float32) {
	d.cur = Batch{
		Prim:      prim,
		Size:      1.0,
		Textured:  d.textured,
		DepthMask: d.depthMask,
	}
	if len(size) > 0 {
		d.cur.Size = size[0]
	}
	d.open = true
}

func (d *DisplayList) Vertex(x, y, z float32, color Colorb) {
	d.VertexUV(x, y, z, color, 0, 0)
}

func (d *DisplayList) VertexUV(x, y, z float32, color Colorb, u, v float32) {
	if !d.open {
		return
	}
	d.cur.Verts = append(d.cur.Verts, Vertex{
		Pos:   mgl32.Vec3{x, y, z},
		Color: color,
		UV:    mgl32.Vec2{u, v},
	})
}

// End closes the current batch. A trailing partial primitive is dropped;
// a batch with no whole primitive is discarded.
func (d *DisplayList) End() {
	if !d.open {
		return
	}
	d.open = false
	n := len(d.cur.Verts)
	n -= n % VertsPerPrim(d.cur.Prim)
	if n == 0 {
		return
	}
	d.cur.Verts = d.cur.Verts[:n]
	d.batches = append(d.batches, d.cur)
}

// Batches returns the recorded batches in emission order.
func (d *DisplayList) Batches() []Batch { return d.batches }

// Clear discards all recorded batches.
func (d *DisplayList) Clear() {
	d.batches = d.batches[:0]
	d.open = false
}

// Draw replays the recorded batches into another sink.
func (d *DisplayList) Draw(dd DebugDraw) {
	if dd == nil {
		return
	}
	for i := range d.batches {
		b := &d.batches[i]
		dd.DepthMask(b.DepthMask)
		dd.Texture(b.Textured)
		dd.Begin(b.Prim, b.Size)
		for _, v := range b.Verts {
			dd.VertexUV(v.Pos[0], v.Pos[1], v.Pos[2], v.Color, v.UV[0], v.UV[1])
		}
		dd.End()
	}
}
