package mapgen

import (
	"sort"
	"time"

	"github.com/chewxy/math32"

	"isoview/internal/scene"
	"isoview/internal/vecmath"
)

// HeightMapOptions controls procedural height map generation.
// Width/Depth are in tiles along world X/Y; MaxHeight is the tallest column in cubes.
// Seed controls randomness; Seed == 0 uses a time-based seed.
// Octaves, Frequency, Lacunarity, and Gain control the fractal noise shape.
type HeightMapOptions struct {
	Width     int     `yaml:"width"`
	Depth     int     `yaml:"depth"`
	MaxHeight int     `yaml:"max_height"`
	Scale     float32 `yaml:"scale"`

	// Tiles picks the atlas tile per layer from the bottom; the last entry repeats upwards.
	Tiles [][2]float32 `yaml:"tiles"`

	Seed       int64   `yaml:"seed"`
	Octaves    int     `yaml:"octaves"`
	Frequency  float32 `yaml:"frequency"`
	Lacunarity float32 `yaml:"lacunarity"`
	Gain       float32 `yaml:"gain"`
}

// DefaultHeightMapOptions returns a sane default configuration.
func DefaultHeightMapOptions() HeightMapOptions {
	return HeightMapOptions{
		Width:      8,
		Depth:      8,
		MaxHeight:  3,
		Scale:      1,
		Tiles:      [][2]float32{{0, 0}},
		Octaves:    4,
		Frequency:  0.2,
		Lacunarity: 2.0,
		Gain:       0.5,
	}
}

func (o *HeightMapOptions) normalize() {
	def := DefaultHeightMapOptions()
	if o.MaxHeight <= 0 {
		o.MaxHeight = def.MaxHeight
	}
	if o.Scale <= 0 {
		o.Scale = def.Scale
	}
	if len(o.Tiles) == 0 {
		o.Tiles = def.Tiles
	}
	if o.Octaves <= 0 {
		o.Octaves = 1
	}
	if o.Frequency <= 0 {
		o.Frequency = 0.05
	}
	if o.Lacunarity <= 0 {
		o.Lacunarity = 2.0
	}
	if o.Gain <= 0 {
		o.Gain = 0.5
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
}

// Heights returns the column height (in cubes, at least 1) of every tile, indexed [y][x].
func Heights(opts HeightMapOptions) [][]int {
	if opts.Width <= 0 || opts.Depth <= 0 {
		return nil
	}
	opts.normalize()
	field := newTerrain(opts)
	out := make([][]int, opts.Depth)
	for y := 0; y < opts.Depth; y++ {
		out[y] = make([]int, opts.Width)
		for x := 0; x < opts.Width; x++ {
			h := field.at(float32(x)*opts.Frequency, float32(y)*opts.Frequency)
			if !isFinite(h) {
				h = 0
			}
			// Map [0,1] noise to [1, MaxHeight].
			n := 1 + int(math32.Floor(h*float32(opts.MaxHeight)))
			if n > opts.MaxHeight {
				n = opts.MaxHeight
			}
			out[y][x] = n
		}
	}
	return out
}

// GenerateHeightMap appends stacked cube sprites for a noise height map, centered on the world origin
// with the ground layer at z = 0. Sprites are appended back to front (ascending x+y, then z) so that
// drawing in insertion order paints nearer cubes over farther ones. Returns the number of sprites added.
func GenerateHeightMap(s *scene.Scene, opts HeightMapOptions) int {
	heights := Heights(opts)
	if heights == nil {
		return 0
	}
	opts.normalize()

	type cell struct{ x, y, z int }
	var cells []cell
	for y, row := range heights {
		for x, h := range row {
			for z := 0; z < h; z++ {
				cells = append(cells, cell{x, y, z})
			}
		}
	}
	sort.SliceStable(cells, func(i, j int) bool {
		di, dj := cells[i].x+cells[i].y, cells[j].x+cells[j].y
		if di != dj {
			return di < dj
		}
		return cells[i].z < cells[j].z
	})

	step := float64(opts.Scale)
	originX := -float64(opts.Width-1) / 2 * step
	originY := -float64(opts.Depth-1) / 2 * step
	for _, c := range cells {
		tile := opts.Tiles[min(c.z, len(opts.Tiles)-1)]
		pos := vecmath.New3(
			originX+float64(c.x)*step,
			originY+float64(c.y)*step,
			float64(c.z)*step,
		)
		s.AddCubeSprite(pos, opts.Scale, vecmath.New2(tile[0], tile[1]))
	}
	return len(cells)
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
