// Package snapshot renders debugdraw batches offscreen: primitives are
// projected through a camera, rasterized in software and written out as
// a WebP image. Used for headless screenshots and golden renders.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"sort"

	"github.com/HugoSmits86/nativewebp"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/vector"

	"navmeshviewer/camera"
	"navmeshviewer/debugdraw"
)

// Renderer records the draw-protocol stream and rasterizes it on Render.
// It is a debugdraw.DebugDraw via the embedded display list.
type Renderer struct {
	*debugdraw.DisplayList

	cam        *camera.Camera
	width      int
	height     int
	background color.NRGBA

	img *image.NRGBA
}

// New returns a renderer targeting a width×height image.
func New(cam *camera.Camera, width, height int) *Renderer {
	cam.Aspect = float32(width) / float32(height)
	return &Renderer{
		DisplayList: debugdraw.NewDisplayList(),
		cam:         cam,
		width:       width,
		height:      height,
		background:  color.NRGBA{R: 74, G: 74, B: 80, A: 255},
	}
}

type screenPrim struct {
	pts   []mgl32.Vec2
	col   debugdraw.Colorb
	depth float32
	size  float32
	prim  debugdraw.Primitive
}

// Render rasterizes the recorded batches into the output image. Filled
// primitives within a batch are painted back to front.
func (r *Renderer) Render() *image.NRGBA {
	r.img = image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)

	w := float32(r.width)
	h := float32(r.height)

	for _, b := range r.Batches() {
		prims := make([]screenPrim, 0, b.PrimCount())
		for i := 0; i < b.PrimCount(); i++ {
			verts := b.Primitive(i)
			sp := screenPrim{
				pts:  make([]mgl32.Vec2, 0, len(verts)),
				col:  verts[0].Color,
				size: b.Size,
				prim: b.Prim,
			}
			behind := false
			for _, v := range verts {
				pt, depth, ok := r.cam.ProjectToScreen(v.Pos, w, h)
				if !ok {
					behind = true
					break
				}
				sp.pts = append(sp.pts, pt)
				sp.depth += depth
			}
			if behind {
				continue
			}
			sp.depth /= float32(len(verts))
			prims = append(prims, sp)
		}

		sort.SliceStable(prims, func(i, j int) bool {
			return prims[i].depth > prims[j].depth
		})

		for _, p := range prims {
			r.paint(p)
		}
	}
	return r.img
}

func (r *Renderer) paint(p screenPrim) {
	switch p.prim {
	case debugdraw.DrawTris, debugdraw.DrawQuads:
		r.fillPolygon(p.pts, p.col)
	case debugdraw.DrawLines:
		r.strokeLine(p.pts[0], p.pts[1], p.size, p.col)
	case debugdraw.DrawPoints:
		r.fillPoint(p.pts[0], p.size, p.col)
	}
}

func (r *Renderer) fillPolygon(pts []mgl32.Vec2, col debugdraw.Colorb) {
	if len(pts) < 3 {
		return
	}
	z := vector.NewRasterizer(r.width, r.height)
	z.DrawOp = draw.Over
	z.MoveTo(pts[0][0], pts[0][1])
	for _, pt := range pts[1:] {
		z.LineTo(pt[0], pt[1])
	}
	z.ClosePath()
	z.Draw(r.img, r.img.Bounds(), image.NewUniform(toNRGBA(col)), image.Point{})
}

// strokeLine paints a segment as a screen-space quad of the given width.
func (r *Renderer) strokeLine(a, b mgl32.Vec2, width float32, col debugdraw.Colorb) {
	d := b.Sub(a)
	if d.Len() < 1e-6 {
		return
	}
	n := mgl32.Vec2{-d[1], d[0]}.Normalize().Mul(width * 0.5)
	r.fillPolygon([]mgl32.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}, col)
}

func (r *Renderer) fillPoint(c mgl32.Vec2, size float32, col debugdraw.Colorb) {
	s := size * 0.5
	if s < 0.5 {
		s = 0.5
	}
	r.fillPolygon([]mgl32.Vec2{
		{c[0] - s, c[1] - s},
		{c[0] + s, c[1] - s},
		{c[0] + s, c[1] + s},
		{c[0] - s, c[1] + s},
	}, col)
}

// Image returns the last rendered image, or nil before Render.
func (r *Renderer) Image() *image.NRGBA { return r.img }

// SaveWebP renders (if needed) and writes the image as lossless WebP.
func (r *Renderer) SaveWebP(path string) error {
	if r.img == nil {
		r.Render()
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: create %s: %w", path, err)
	}
	defer f.Close()
	if err := nativewebp.Encode(f, r.img, nil); err != nil {
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	return nil
}

func toNRGBA(c debugdraw.Colorb) color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}
