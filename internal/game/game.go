package game

import (
	"isoview/internal/scene"
	"isoview/internal/vecmath"
	"isoview/internal/view"
)

// Stats counts what one frame submitted to the renderer.
type Stats struct {
	Lines   int
	Sprites int
	Culled  int
}

// Game ties a scene to the view it is drawn through. Focus is the world point kept at the screen center.
type Game struct {
	Scene *scene.Scene
	View  *view.View
	Focus vecmath.Vec3[float64]
}

// New returns a game over an empty scene.
func New(v *view.View, focus vecmath.Vec3[float64]) *Game {
	return &Game{Scene: scene.New(), View: v, Focus: focus}
}

// Frame updates the view for the current screen size and draws every element in insertion order.
// The caller clears the background before and presents the frame after.
func (g *Game) Frame(r view.Renderer, screen vecmath.Vec2[float32]) Stats {
	g.View.UpdateSize(screen, g.Focus)
	var st Stats
	for el := range g.Scene.All() {
		if !g.View.Draw(r, el) {
			st.Culled++
			continue
		}
		switch el.(type) {
		case scene.Line:
			st.Lines++
		case scene.CubeSprite:
			st.Sprites++
		}
	}
	return st
}
