package scene

import (
	"image/color"
	"iter"
	"slices"

	"isoview/internal/vecmath"
)

// DefaultLineColor is used by AddLine and AddWireCube.
var DefaultLineColor = color.RGBA{R: 230, G: 41, B: 55, A: 255}

// Element is one drawable primitive in world space. The set of variants is closed: Line and CubeSprite.
type Element interface {
	element()
}

// Line is a segment between two world points.
type Line struct {
	From, To vecmath.Vec3[float64]
	Color    color.RGBA
}

// CubeSprite is a cube drawn as a single tile from the atlas, anchored at the cube center.
type CubeSprite struct {
	Pos      vecmath.Vec3[float64]
	Scale    float32
	TexCoord vecmath.Vec2[float32]
}

func (Line) element()       {}
func (CubeSprite) element() {}

// Scene holds the ordered, append-only list of elements. Elements are drawn in insertion order
// and never change after they are added.
type Scene struct {
	elements []Element
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{}
}

// Elements returns a copy of the elements in insertion order.
func (s *Scene) Elements() []Element {
	return slices.Clone(s.elements)
}

// All iterates the elements in insertion order without copying.
func (s *Scene) All() iter.Seq[Element] {
	return slices.Values(s.elements)
}

// Len returns the number of elements.
func (s *Scene) Len() int {
	return len(s.elements)
}

// AddLine appends a line in DefaultLineColor.
func (s *Scene) AddLine(from, to vecmath.Vec3[float64]) {
	s.AddColoredLine(from, to, DefaultLineColor)
}

// AddColoredLine appends a line with an explicit color.
func (s *Scene) AddColoredLine(from, to vecmath.Vec3[float64], c color.RGBA) {
	s.elements = append(s.elements, Line{From: from, To: to, Color: c})
}

// AddWireCube appends the visible edges of an axis-aligned cube of edge length size centered at pos.
// The three edges hidden behind the cube from the isometric viewpoint are not emitted, so nine lines are added.
func (s *Scene) AddWireCube(pos vecmath.Vec3[float64], size float64) {
	h := size / 2
	at := func(x, y, z float64) vecmath.Vec3[float64] {
		return pos.Add(vecmath.New3(x, y, z))
	}
	// bottom
	s.AddLine(at(h, h, -h), at(h, -h, -h))
	s.AddLine(at(h, h, -h), at(-h, h, -h))
	// top
	s.AddLine(at(-h, -h, h), at(h, -h, h))
	s.AddLine(at(-h, -h, h), at(-h, h, h))
	s.AddLine(at(h, h, h), at(h, -h, h))
	s.AddLine(at(h, h, h), at(-h, h, h))
	// sides
	s.AddLine(at(h, h, h), at(h, h, -h))
	s.AddLine(at(h, -h, h), at(h, -h, -h))
	s.AddLine(at(-h, h, h), at(-h, h, -h))
}

// AddCubeSprite appends a cube sprite using the atlas tile at texCoord, drawn at scale (1 = one tile).
func (s *Scene) AddCubeSprite(pos vecmath.Vec3[float64], scale float32, texCoord vecmath.Vec2[float32]) {
	s.elements = append(s.elements, CubeSprite{Pos: pos, Scale: scale, TexCoord: texCoord})
}

// Counts returns how many lines and sprites the scene holds.
func (s *Scene) Counts() (lines, sprites int) {
	for _, el := range s.elements {
		switch el.(type) {
		case Line:
			lines++
		case CubeSprite:
			sprites++
		}
	}
	return lines, sprites
}
