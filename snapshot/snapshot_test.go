package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"navmeshviewer/camera"
	"navmeshviewer/debugdraw"
)

func frontCamera() *camera.Camera {
	c := camera.New()
	c.Position = mgl32.Vec3{0, 0, 5}
	c.Target = mgl32.Vec3{0, 0, 0}
	return c
}

func TestRenderFillsTriangle(t *testing.T) {
	r := New(frontCamera(), 200, 200)

	red := debugdraw.RGBA(255, 0, 0, 255)
	r.Begin(debugdraw.DrawTris)
	r.Vertex(-2, -2, 0, red)
	r.Vertex(2, -2, 0, red)
	r.Vertex(0, 2, 0, red)
	r.End()

	img := r.Render()
	center := img.NRGBAAt(100, 100)
	if center.R < 200 || center.G > 50 {
		t.Errorf("center pixel = %+v, want red fill", center)
	}
	corner := img.NRGBAAt(2, 2)
	if corner.R > 100 {
		t.Errorf("corner pixel = %+v, want background", corner)
	}
}

func TestRenderEmptyListIsBackground(t *testing.T) {
	r := New(frontCamera(), 64, 64)
	img := r.Render()
	bg := img.NRGBAAt(0, 0)
	if bg != r.background {
		t.Errorf("background pixel = %+v, want %+v", bg, r.background)
	}
}

func TestRenderSkipsPrimsBehindCamera(t *testing.T) {
	r := New(frontCamera(), 64, 64)
	red := debugdraw.RGBA(255, 0, 0, 255)
	r.Begin(debugdraw.DrawTris)
	r.Vertex(-2, -2, 10, red)
	r.Vertex(2, -2, 10, red)
	r.Vertex(0, 2, 10, red)
	r.End()

	img := r.Render()
	if c := img.NRGBAAt(32, 32); c.R > 100 {
		t.Errorf("primitive behind camera painted: %+v", c)
	}
}

func TestRenderPaintsLinesAndPoints(t *testing.T) {
	r := New(frontCamera(), 200, 200)
	white := debugdraw.RGBA(255, 255, 255, 255)
	r.Begin(debugdraw.DrawLines, 4)
	r.Vertex(-2, 0, 0, white)
	r.Vertex(2, 0, 0, white)
	r.End()
	r.Begin(debugdraw.DrawPoints, 6)
	r.Vertex(0, 1, 0, white)
	r.End()

	img := r.Render()
	if c := img.NRGBAAt(100, 100); c.R < 200 {
		t.Errorf("line not painted through center: %+v", c)
	}
}

func TestSaveWebP(t *testing.T) {
	r := New(frontCamera(), 32, 32)
	path := filepath.Join(t.TempDir(), "snap.webp")
	if err := r.SaveWebP(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("snapshot file is empty")
	}
}
