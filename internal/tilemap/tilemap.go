package tilemap

import "isoview/internal/vecmath"

// Texture is a GPU-side atlas handle. Only its pixel size is needed here; drawing goes through the renderer.
type Texture interface {
	Size() vecmath.Vec2[float32]
}

// Rect is a pixel-space rectangle inside the atlas.
type Rect struct {
	X, Y, Width, Height float32
}

// Tilemap is a texture atlas split into a grid of fixed-size tiles. Immutable after New.
type Tilemap struct {
	texture  Texture
	tileSize vecmath.Vec2[float32]
}

// New returns a tilemap over tex with tiles of tileSize pixels (e.g. 64x72).
func New(tex Texture, tileSize vecmath.Vec2[float32]) *Tilemap {
	return &Tilemap{texture: tex, tileSize: tileSize}
}

func (m *Tilemap) Texture() Texture                { return m.texture }
func (m *Tilemap) TileSize() vecmath.Vec2[float32] { return m.tileSize }

// Tile returns the source rectangle of the tile at grid coordinate texCoord.
// Fractional coordinates are allowed and address sub-tile offsets.
func (m *Tilemap) Tile(texCoord vecmath.Vec2[float32]) Rect {
	return Rect{
		X:      m.tileSize.X * texCoord.X,
		Y:      m.tileSize.Y * texCoord.Y,
		Width:  m.tileSize.X,
		Height: m.tileSize.Y,
	}
}

// Grid returns how many whole tiles fit in the atlas horizontally and vertically.
// A nil texture or a zero tile size yields (0, 0).
func (m *Tilemap) Grid() (cols, rows int) {
	if m.texture == nil || m.tileSize.X <= 0 || m.tileSize.Y <= 0 {
		return 0, 0
	}
	size := m.texture.Size()
	return int(size.X / m.tileSize.X), int(size.Y / m.tileSize.Y)
}
