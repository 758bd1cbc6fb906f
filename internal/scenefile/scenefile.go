package scenefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/hack-pad/hackpadfs"
	"gopkg.in/yaml.v3"

	"isoview/internal/mapgen"
	"isoview/internal/scene"
	"isoview/internal/vecmath"
	"isoview/internal/viewconfig"
)

// LineDef is one line in world coordinates. Color is "#rrggbb[aa]"; empty uses the scene default.
type LineDef struct {
	From  [3]float64 `yaml:"from"`
	To    [3]float64 `yaml:"to"`
	Color string     `yaml:"color,omitempty"`
}

// WireCubeDef is a wireframe cube centered at Pos.
type WireCubeDef struct {
	Pos  [3]float64 `yaml:"pos"`
	Size float64    `yaml:"size"`
}

// SpriteDef is a cube sprite. Scale 0 means 1.
type SpriteDef struct {
	Pos   [3]float64 `yaml:"pos"`
	Scale float32    `yaml:"scale,omitempty"`
	Tile  [2]float32 `yaml:"tile"`
}

// File is a scene description. Elements are added in the order heightmap, sprites, wire cubes, lines.
type File struct {
	Heightmap *mapgen.HeightMapOptions `yaml:"heightmap,omitempty"`
	Sprites   []SpriteDef              `yaml:"sprites"`
	WireCubes []WireCubeDef            `yaml:"wire_cubes"`
	Lines     []LineDef                `yaml:"lines"`
}

// Parse decodes a YAML scene description. Unknown keys are errors.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	for i, l := range f.Lines {
		if l.Color == "" {
			continue
		}
		if _, err := viewconfig.ParseColor(l.Color); err != nil {
			return nil, fmt.Errorf("lines[%d]: %w", i, err)
		}
	}
	for i, c := range f.WireCubes {
		if c.Size <= 0 {
			return nil, fmt.Errorf("wire_cubes[%d]: size must be positive, got %v", i, c.Size)
		}
	}
	return &f, nil
}

// Load reads and parses the scene file at path.
func Load(fsys hackpadfs.FS, path string) (*File, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenefile: parse %s: %w", path, err)
	}
	return f, nil
}

// Apply appends the described elements to s.
func (f *File) Apply(s *scene.Scene) {
	if f.Heightmap != nil {
		mapgen.GenerateHeightMap(s, *f.Heightmap)
	}
	for _, sp := range f.Sprites {
		scale := sp.Scale
		if scale == 0 {
			scale = 1
		}
		s.AddCubeSprite(vec3(sp.Pos), scale, vecmath.New2(sp.Tile[0], sp.Tile[1]))
	}
	for _, c := range f.WireCubes {
		s.AddWireCube(vec3(c.Pos), c.Size)
	}
	for _, l := range f.Lines {
		if l.Color == "" {
			s.AddLine(vec3(l.From), vec3(l.To))
			continue
		}
		col, _ := viewconfig.ParseColor(l.Color)
		s.AddColoredLine(vec3(l.From), vec3(l.To), col)
	}
}

// Demo builds the default scene: a cube sprite at the origin, a wire cube around it and a second
// sprite stacked on top.
func Demo(s *scene.Scene) {
	s.AddCubeSprite(vecmath.New3(0.0, 0.0, 0.0), 1, vecmath.New2[float32](0, 0))
	s.AddWireCube(vecmath.New3(0.0, 0.0, 0.0), 1)
	s.AddCubeSprite(vecmath.New3(0.0, 0.0, 1.0), 1, vecmath.New2[float32](0, 0))
}

func vec3(a [3]float64) vecmath.Vec3[float64] {
	return vecmath.New3(a[0], a[1], a[2])
}
