package debugdraw

// Line-shape helpers for scene furniture: ground grid, bounding boxes,
// position markers.

// DrawGridXZ draws a w×h cell grid on the XZ plane with origin at
// (ox,oy,oz).
func DrawGridXZ(dd DebugDraw, ox, oy, oz float32, w, h int, size float32, col Colorb, lineWidth float32) {
	if dd == nil {
		return
	}
	dd.Begin(DrawLines, lineWidth)
	for i := 0; i <= h; i++ {
		dd.Vertex(ox, oy, oz+float32(i)*size, col)
		dd.Vertex(ox+float32(w)*size, oy, oz+float32(i)*size, col)
	}
	for i := 0; i <= w; i++ {
		dd.Vertex(ox+float32(i)*size, oy, oz, col)
		dd.Vertex(ox+float32(i)*size, oy, oz+float32(h)*size, col)
	}
	dd.End()
}

// DrawBoxWire draws the twelve edges of an axis-aligned box.
func DrawBoxWire(dd DebugDraw, minx, miny, minz, maxx, maxy, maxz float32, col Colorb, lineWidth float32) {
	if dd == nil {
		return
	}
	dd.Begin(DrawLines, lineWidth)
	appendBoxWire(dd, minx, miny, minz, maxx, maxy, maxz, col)
	dd.End()
}

func appendBoxWire(dd DebugDraw, minx, miny, minz, maxx, maxy, maxz float32, col Colorb) {
	// Bottom
	dd.Vertex(minx, miny, minz, col)
	dd.Vertex(maxx, miny, minz, col)
	dd.Vertex(maxx, miny, minz, col)
	dd.Vertex(maxx, miny, maxz, col)
	dd.Vertex(maxx, miny, maxz, col)
	dd.Vertex(minx, miny, maxz, col)
	dd.Vertex(minx, miny, maxz, col)
	dd.Vertex(minx, miny, minz, col)

	// Top
	dd.Vertex(minx, maxy, minz, col)
	dd.Vertex(maxx, maxy, minz, col)
	dd.Vertex(maxx, maxy, minz, col)
	dd.Vertex(maxx, maxy, maxz, col)
	dd.Vertex(maxx, maxy, maxz, col)
	dd.Vertex(minx, maxy, maxz, col)
	dd.Vertex(minx, maxy, maxz, col)
	dd.Vertex(minx, maxy, minz, col)

	// Sides
	dd.Vertex(minx, miny, minz, col)
	dd.Vertex(minx, maxy, minz, col)
	dd.Vertex(maxx, miny, minz, col)
	dd.Vertex(maxx, maxy, minz, col)
	dd.Vertex(maxx, miny, maxz, col)
	dd.Vertex(maxx, maxy, maxz, col)
	dd.Vertex(minx, miny, maxz, col)
	dd.Vertex(minx, maxy, maxz, col)
}

// DrawCross draws three axis-aligned segments crossing at (x,y,z).
func DrawCross(dd DebugDraw, x, y, z, s float32, col Colorb, lineWidth float32) {
	if dd == nil {
		return
	}
	dd.Begin(DrawLines, lineWidth)
	dd.Vertex(x-s, y, z, col)
	dd.Vertex(x+s, y, z, col)
	dd.Vertex(x, y-s, z, col)
	dd.Vertex(x, y+s, z, col)
	dd.Vertex(x, y, z-s, col)
	dd.Vertex(x, y, z+s, col)
	dd.End()
}
