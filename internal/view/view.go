package view

import (
	"image/color"

	"isoview/internal/scene"
	"isoview/internal/tilemap"
	"isoview/internal/vecmath"
)

// LineThickness is the stroke width of every line.
const LineThickness = 1.5

// Renderer is the drawing backend. Coordinates are in screen pixels relative to the top-left of the frame.
type Renderer interface {
	DrawLine(from, to vecmath.Vec2[float32], thickness float32, c color.RGBA)
	DrawTexturedQuad(tex tilemap.Texture, src tilemap.Rect, pos, size vecmath.Vec2[float32])
}

// Projection holds the on-screen size of one world unit. TileWidth is the horizontal half-diagonal of a
// tile, Height the vertical extent of one unit of Z, and EdgeHeight the vertical half-diagonal of a tile.
type Projection struct {
	TileWidth  float32
	Height     float32
	EdgeHeight float32
}

// View projects world coordinates to the screen and keeps the visible frame for the current frame.
type View struct {
	proj       Projection
	center     vecmath.Vec2[float64]
	size       vecmath.Vec2[float32]
	frameStart vecmath.Vec2[float64]
	frameEnd   vecmath.Vec2[float64]
	tiles      *tilemap.Tilemap
}

// New returns a view with an empty frame. Call UpdateSize before drawing.
// tiles may be nil for views that only project; sprites then get a nil texture and an empty source rect.
func New(proj Projection, tiles *tilemap.Tilemap) *View {
	return &View{proj: proj, tiles: tiles}
}

func (v *View) Projection() Projection                    { return v.proj }
func (v *View) Center() vecmath.Vec2[float64]             { return v.center }
func (v *View) Size() vecmath.Vec2[float32]               { return v.size }
func (v *View) Frame() (start, end vecmath.Vec2[float64]) { return v.frameStart, v.frameEnd }

// Project maps a world point to screen space. The transform is linear: there is no translation term
// and no perspective divide.
func (v *View) Project(p vecmath.Vec3[float64]) vecmath.Vec2[float64] {
	w := float64(v.proj.TileWidth)
	h := float64(v.proj.Height)
	eh := float64(v.proj.EdgeHeight)
	return vecmath.New2(
		p.X*w-p.Y*w,
		p.X*eh+p.Y*eh-p.Z*h,
	)
}

// UpdateSize recenters the frame on the projected focus point and sizes it to the screen.
// Call exactly once per frame, before any Draw.
func (v *View) UpdateSize(screen vecmath.Vec2[float32], focus vecmath.Vec3[float64]) {
	v.center = v.Project(focus)
	v.size = screen
	half := vecmath.Widen2(screen).Div(2)
	v.frameStart = v.center.Sub(half)
	v.frameEnd = v.center.Add(half)
}

// Contains reports whether a screen-space point lies inside the frame, bounds included.
func (v *View) Contains(p vecmath.Vec2[float64]) bool {
	return v.frameStart.X <= p.X && p.X <= v.frameEnd.X &&
		v.frameStart.Y <= p.Y && p.Y <= v.frameEnd.Y
}

// ToFrame converts a screen-space point to frame-relative pixels.
func (v *View) ToFrame(p vecmath.Vec2[float64]) vecmath.Vec2[float32] {
	return vecmath.Narrow2(p.Sub(v.frameStart))
}

// Draw submits one element to r and reports whether it was submitted.
// A line is dropped whole when either endpoint is outside the frame; it is never cut at the frame edge.
// Sprites are always submitted and left to the renderer to discard.
func (v *View) Draw(r Renderer, el scene.Element) bool {
	switch e := el.(type) {
	case scene.Line:
		from := v.Project(e.From)
		to := v.Project(e.To)
		if !v.Contains(from) || !v.Contains(to) {
			return false
		}
		r.DrawLine(v.ToFrame(from), v.ToFrame(to), LineThickness, e.Color)
		return true
	case scene.CubeSprite:
		pos, size := v.SpriteQuad(e)
		var (
			tex tilemap.Texture
			src tilemap.Rect
		)
		if v.tiles != nil {
			tex, src = v.tiles.Texture(), v.tiles.Tile(e.TexCoord)
		}
		r.DrawTexturedQuad(tex, src, pos, size)
		return true
	}
	return false
}

// SpriteQuad returns the frame-relative top-left corner and the size of the quad a cube sprite covers.
// The offset places the cube's logical center on the projected anchor.
func (v *View) SpriteQuad(s scene.CubeSprite) (pos, size vecmath.Vec2[float32]) {
	center := v.ToFrame(v.Project(s.Pos))
	w, h, eh := v.proj.TileWidth, v.proj.Height, v.proj.EdgeHeight
	offset := vecmath.New2(s.Scale*-w, s.Scale*(-h/2-eh))
	size = vecmath.New2(s.Scale*w*2, s.Scale*(h+eh*2))
	return center.Add(offset), size
}
