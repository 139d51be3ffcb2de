package main

import (
	"flag"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"navmeshviewer/camera"
	"navmeshviewer/debugdraw"
	"navmeshviewer/gldraw"
	"navmeshviewer/internal/config"
	"navmeshviewer/internal/logger"
	"navmeshviewer/mesh"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

type viewerState struct {
	cam      *camera.Camera
	dragging bool
	lastX    float64
	lastY    float64
}

func main() {
	cfgPath := flag.String("config", "", "config file path")
	meshPath := flag.String("mesh", "", "OBJ mesh to display")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logger.Init("info", "")
		logger.Log.Fatal("load config", zap.Error(err))
	}
	logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	defer logger.Sync()

	var tm *mesh.TriMesh
	if *meshPath != "" {
		obj, err := mesh.LoadObj(*meshPath)
		if err != nil {
			// Keep running with whatever was loaded before; here
			// that is just the sample scene.
			logger.Log.Error("load mesh", zap.String("path", *meshPath), zap.Error(err))
		} else {
			tm = obj.TriMesh()
			logger.Log.Info("loaded mesh",
				zap.String("path", *meshPath),
				zap.Int("verts", obj.VertexCount()),
				zap.Int("faces", obj.FaceCount()),
				zap.Int("tris", tm.TriCount()))
		}
	}
	pm := samplePolyMesh()

	if err := glfw.Init(); err != nil {
		logger.Log.Fatal("init glfw", zap.Error(err))
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(cfg.Viewer.Width, cfg.Viewer.Height, cfg.Viewer.Title, nil, nil)
	if err != nil {
		logger.Log.Fatal("create window", zap.Error(err))
	}
	window.MakeContextCurrent()
	if cfg.Viewer.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		logger.Log.Fatal("init gl", zap.Error(err))
	}
	logger.Log.Info("opengl", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	dd, err := gldraw.New()
	if err != nil {
		logger.Log.Fatal("create draw backend", zap.Error(err))
	}
	defer dd.Close()

	st := &viewerState{cam: camera.New()}
	if tm != nil {
		st.cam.Frame(tm.Bounds())
	}
	installInput(window, st)

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0.29, 0.29, 0.31, 1)

	for !window.ShouldClose() {
		fbw, fbh := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbw), int32(fbh))
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		st.cam.Aspect = float32(fbw) / float32(fbh)
		dd.SetViewProj(st.cam.ViewProjection())

		if cfg.Render.DrawGrid {
			debugdraw.DrawGridXZ(dd, -10, 0, -10, 20, 20, 1,
				debugdraw.RGBA(110, 110, 110, 120), 1)
		}
		if tm != nil && cfg.Render.DrawInputMesh {
			debugdraw.DrawTriMeshSlope(dd, tm,
				cfg.Render.WalkableSlopeAngle, cfg.Render.TextureScale)
			if cfg.Render.DrawBounds {
				bmin, bmax := tm.Bounds()
				debugdraw.DrawBoxWire(dd, bmin[0], bmin[1], bmin[2],
					bmax[0], bmax[1], bmax[2],
					debugdraw.RGBA(255, 255, 255, 128), 1)
			}
		}
		if cfg.Render.DrawNavMesh {
			debugdraw.DrawPolyMesh(dd, pm, nil)
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

func installInput(window *glfw.Window, st *viewerState) {
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		st.dragging = action == glfw.Press
		st.lastX, st.lastY = w.GetCursorPos()
	})
	window.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		if !st.dragging {
			return
		}
		dx := float32(x - st.lastX)
		dy := float32(y - st.lastY)
		st.lastX, st.lastY = x, y
		st.cam.Orbit(dx*0.01, dy*0.01)
	})
	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		st.cam.Zoom(float32(yoff) * st.cam.Position.Sub(st.cam.Target).Len() * 0.1)
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press {
			return
		}
		switch key {
		case glfw.KeyEscape:
			w.SetShouldClose(true)
		case glfw.KeyR:
			target := st.cam.Target
			st.cam = camera.New()
			st.cam.Target = target
			st.cam.Position = target.Add(mgl32.Vec3{5, 5, 5})
		}
	})
}
