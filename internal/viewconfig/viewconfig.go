package viewconfig

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/hack-pad/hackpadfs"
	"github.com/jinzhu/copier"
	"gopkg.in/yaml.v3"

	"isoview/internal/vecmath"
	"isoview/internal/view"
)

// DefaultPath is the config file, relative to the working directory.
const DefaultPath = "config/isoview.yaml"

// ProjectionConfig sets the on-screen size of a world unit. Height and edge height are given as ratios
// so the whole projection scales with TileWidth.
type ProjectionConfig struct {
	TileWidth   float32 `yaml:"tile_width"`
	HeightRatio float32 `yaml:"height_ratio"`
	EdgeRatio   float32 `yaml:"edge_ratio"`
}

// AtlasConfig names the tile atlas image and the pixel size of one tile in it.
type AtlasConfig struct {
	Path       string  `yaml:"path"`
	TileWidth  float32 `yaml:"tile_width"`
	TileHeight float32 `yaml:"tile_height"`
}

// DebugConfig toggles the overlays drawn on top of the scene.
type DebugConfig struct {
	ShowFPS   bool `yaml:"show_fps"`
	ShowStats bool `yaml:"show_stats"`
}

// Config is everything the demo reads at startup. It is not reloaded while running.
type Config struct {
	Title        string           `yaml:"title"`
	WindowWidth  int              `yaml:"window_width"`
	WindowHeight int              `yaml:"window_height"`
	Background   string           `yaml:"background"`
	Projection   ProjectionConfig `yaml:"projection"`
	Atlas        AtlasConfig      `yaml:"atlas"`
	Focus        [3]float64       `yaml:"focus"`
	Scene        string           `yaml:"scene,omitempty"`
	Debug        DebugConfig      `yaml:"debug"`
}

// Overrides are command-line values. Empty fields leave the config untouched.
type Overrides struct {
	Title        string
	WindowWidth  int
	WindowHeight int
	Background   string
	Scene        string
}

// Default returns the reference configuration: 100px tiles, height 1.125 of the width,
// edges half the height, a 64x72 atlas tile and the focus one unit below the origin.
func Default() Config {
	return Config{
		Title:        "Orthogonal projection testing",
		WindowWidth:  1280,
		WindowHeight: 720,
		Background:   "#0079f1",
		Projection: ProjectionConfig{
			TileWidth:   100,
			HeightRatio: 1.125,
			EdgeRatio:   0.5,
		},
		Atlas: AtlasConfig{
			Path:       "assets/test_tilemap.png",
			TileWidth:  64,
			TileHeight: 72,
		},
		Focus: [3]float64{0, 0, -1},
	}
}

// Load reads the YAML config at path from fsys on top of Default(). A missing file yields Default().
// Unknown keys, malformed YAML and invalid values are errors.
func Load(fsys hackpadfs.FS, path string) (Config, error) {
	cfg := Default()
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("viewconfig: read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("viewconfig: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("viewconfig: %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from ISOVIEW_* variables found through lookup (usually os.LookupEnv).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("ISOVIEW_TITLE"); ok && v != "" {
		c.Title = v
	}
	if v, ok := lookup("ISOVIEW_ATLAS"); ok && v != "" {
		c.Atlas.Path = v
	}
	if v, ok := lookup("ISOVIEW_SCENE"); ok {
		c.Scene = v
	}
	if v, ok := lookup("ISOVIEW_TILE_WIDTH"); ok && v != "" {
		f, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return fmt.Errorf("viewconfig: ISOVIEW_TILE_WIDTH: %w", err)
		}
		c.Projection.TileWidth = float32(f)
	}
	return c.Validate()
}

// Merge copies every non-empty override into the config.
func (c *Config) Merge(o Overrides) error {
	if err := copier.CopyWithOption(c, &o, copier.Option{IgnoreEmpty: true}); err != nil {
		return fmt.Errorf("viewconfig: merge overrides: %w", err)
	}
	return c.Validate()
}

// Validate rejects sizes that would make the projection or the atlas lookup meaningless.
func (c Config) Validate() error {
	for _, f := range []struct {
		name string
		v    float32
	}{
		{"projection.tile_width", c.Projection.TileWidth},
		{"projection.height_ratio", c.Projection.HeightRatio},
		{"projection.edge_ratio", c.Projection.EdgeRatio},
		{"atlas.tile_width", c.Atlas.TileWidth},
		{"atlas.tile_height", c.Atlas.TileHeight},
	} {
		if math32.IsNaN(f.v) || math32.IsInf(f.v, 0) || f.v <= 0 {
			return fmt.Errorf("%s must be a positive finite number, got %v", f.name, f.v)
		}
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.Atlas.Path == "" {
		return errors.New("atlas.path is empty")
	}
	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	return nil
}

// ViewProjection derives the fixed projection parameters handed to the view.
func (c Config) ViewProjection() view.Projection {
	w := c.Projection.TileWidth
	h := w * c.Projection.HeightRatio
	return view.Projection{
		TileWidth:  w,
		Height:     h,
		EdgeHeight: h * c.Projection.EdgeRatio,
	}
}

// AtlasTileSize returns the pixel size of one atlas tile.
func (c Config) AtlasTileSize() vecmath.Vec2[float32] {
	return vecmath.New2(c.Atlas.TileWidth, c.Atlas.TileHeight)
}

// FocusPoint returns the world point kept at the screen center.
func (c Config) FocusPoint() vecmath.Vec3[float64] {
	return vecmath.New3(c.Focus[0], c.Focus[1], c.Focus[2])
}

// BackgroundColor returns the parsed background. Validate guarantees it parses.
func (c Config) BackgroundColor() color.RGBA {
	col, _ := ParseColor(c.Background)
	return col
}

// ParseColor parses "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}
