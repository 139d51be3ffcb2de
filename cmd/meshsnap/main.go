// meshsnap renders an OBJ mesh to a WebP image without opening a window.
package main

import (
	"flag"

	"go.uber.org/zap"

	"navmeshviewer/camera"
	"navmeshviewer/debugdraw"
	"navmeshviewer/internal/config"
	"navmeshviewer/internal/logger"
	"navmeshviewer/mesh"
	"navmeshviewer/snapshot"
)

func main() {
	cfgPath := flag.String("config", "", "config file path")
	meshPath := flag.String("mesh", "", "OBJ mesh to render (required)")
	out := flag.String("out", "", "output image path (default from config)")
	slope := flag.Float64("slope", -1, "walkable slope angle override, degrees")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Init("info", "")
		logger.Log.Fatal("load config", zap.Error(err))
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	if *meshPath == "" {
		logger.Log.Fatal("no mesh given, use -mesh")
	}
	if *out == "" {
		*out = cfg.Snapshot.Output
	}
	if *slope >= 0 {
		cfg.Render.WalkableSlopeAngle = float32(*slope)
	}

	obj, err := mesh.LoadObj(*meshPath)
	if err != nil {
		logger.Log.Fatal("load mesh", zap.String("path", *meshPath), zap.Error(err))
	}
	tm := obj.TriMesh()
	logger.Log.Info("loaded mesh",
		zap.String("path", *meshPath),
		zap.Int("verts", obj.VertexCount()),
		zap.Int("tris", tm.TriCount()))

	cam := camera.New()
	cam.Frame(tm.Bounds())

	r := snapshot.New(cam, cfg.Snapshot.Width, cfg.Snapshot.Height)
	if cfg.Render.DrawGrid {
		debugdraw.DrawGridXZ(r, -10, 0, -10, 20, 20, 1,
			debugdraw.RGBA(110, 110, 110, 120), 1)
	}
	debugdraw.DrawTriMeshSlope(r, tm, cfg.Render.WalkableSlopeAngle, cfg.Render.TextureScale)
	if cfg.Render.DrawBounds {
		bmin, bmax := tm.Bounds()
		debugdraw.DrawBoxWire(r, bmin[0], bmin[1], bmin[2],
			bmax[0], bmax[1], bmax[2],
			debugdraw.RGBA(255, 255, 255, 128), 1)
	}

	r.Render()
	if err := r.SaveWebP(*out); err != nil {
		logger.Log.Fatal("save snapshot", zap.Error(err))
	}
	logger.Log.Info("wrote snapshot",
		zap.String("path", *out),
		zap.Int("width", cfg.Snapshot.Width),
		zap.Int("height", cfg.Snapshot.Height))
}
