// Package config handles viewer configuration.
package config

// Config holds all viewer settings.
type Config struct {
	Viewer   ViewerConfig   `yaml:"viewer"`
	Render   RenderConfig   `yaml:"render"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ViewerConfig holds window settings.
type ViewerConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// RenderConfig holds draw-pass settings.
type RenderConfig struct {
	WalkableSlopeAngle float32 `yaml:"walkable_slope_angle"` // degrees
	TextureScale       float32 `yaml:"texture_scale"`
	DrawInputMesh      bool    `yaml:"draw_input_mesh"`
	DrawNavMesh        bool    `yaml:"draw_nav_mesh"`
	DrawGrid           bool    `yaml:"draw_grid"`
	DrawBounds         bool    `yaml:"draw_bounds"`
}

// SnapshotConfig holds headless render settings.
type SnapshotConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Output string `yaml:"output"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Viewer: ViewerConfig{
			Width:  1024,
			Height: 768,
			Title:  "Mesh Viewer",
			VSync:  true,
		},
		Render: RenderConfig{
			WalkableSlopeAngle: 45,
			TextureScale:       1.0 / 8,
			DrawInputMesh:      true,
			DrawNavMesh:        true,
			DrawGrid:           true,
			DrawBounds:         false,
		},
		Snapshot: SnapshotConfig{
			Width:  1024,
			Height: 768,
			Output: "snapshot.webp",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
