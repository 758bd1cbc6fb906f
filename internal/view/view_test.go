package view

import (
	"image/color"
	"testing"

	"isoview/internal/scene"
	"isoview/internal/tilemap"
	"isoview/internal/vecmath"
)

type fakeTexture struct{}

func (fakeTexture) Size() vecmath.Vec2[float32] { return vecmath.New2[float32](256, 144) }

type lineCall struct {
	from, to  vecmath.Vec2[float32]
	thickness float32
	color     color.RGBA
}

type quadCall struct {
	tex       tilemap.Texture
	src       tilemap.Rect
	pos, size vecmath.Vec2[float32]
}

type recorder struct {
	lines []lineCall
	quads []quadCall
}

func (r *recorder) DrawLine(from, to vecmath.Vec2[float32], thickness float32, c color.RGBA) {
	r.lines = append(r.lines, lineCall{from, to, thickness, c})
}

func (r *recorder) DrawTexturedQuad(tex tilemap.Texture, src tilemap.Rect, pos, size vecmath.Vec2[float32]) {
	r.quads = append(r.quads, quadCall{tex, src, pos, size})
}

func referenceView() *View {
	return New(Projection{TileWidth: 100, Height: 112.5, EdgeHeight: 56.25},
		tilemap.New(fakeTexture{}, vecmath.New2[float32](64, 72)))
}

func unitView() *View {
	return New(Projection{TileWidth: 1, Height: 1, EdgeHeight: 1},
		tilemap.New(fakeTexture{}, vecmath.New2[float32](64, 72)))
}

func TestProjectReferencePoints(t *testing.T) {
	v := referenceView()
	cases := []struct {
		in   vecmath.Vec3[float64]
		want vecmath.Vec2[float64]
	}{
		{vecmath.New3(0.0, 0.0, 0.0), vecmath.New2(0.0, 0.0)},
		{vecmath.New3(1.0, 0.0, 0.0), vecmath.New2(100.0, 56.25)},
		{vecmath.New3(0.0, 1.0, 0.0), vecmath.New2(-100.0, 56.25)},
		{vecmath.New3(0.0, 0.0, 1.0), vecmath.New2(0.0, -112.5)},
	}
	for _, c := range cases {
		if got := v.Project(c.in); got != c.want {
			t.Errorf("Project(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestProjectIsLinear(t *testing.T) {
	v := referenceView()
	a := vecmath.New3(1.5, -2.0, 0.25)
	b := vecmath.New3(-0.5, 3.0, 2.0)
	if got, want := v.Project(a.Add(b)), v.Project(a).Add(v.Project(b)); got != want {
		t.Fatalf("Project(a+b) = %v, Project(a)+Project(b) = %v", got, want)
	}
	if got, want := v.Project(a.Scale(4)), v.Project(a).Scale(4); got != want {
		t.Fatalf("Project(4a) = %v, 4*Project(a) = %v", got, want)
	}
}

func TestUpdateSizeFrame(t *testing.T) {
	v := referenceView()
	v.UpdateSize(vecmath.New2[float32](200, 200), vecmath.New3(0.0, 0.0, -1.0))

	if got := v.Center(); got != vecmath.New2(0.0, 112.5) {
		t.Fatalf("center = %v", got)
	}
	start, end := v.Frame()
	if start != vecmath.New2(-100.0, 12.5) || end != vecmath.New2(100.0, 212.5) {
		t.Fatalf("frame = %v..%v", start, end)
	}
	if v.Size() != vecmath.New2[float32](200, 200) {
		t.Fatalf("size = %v", v.Size())
	}
}

func TestContainsInclusive(t *testing.T) {
	v := referenceView()
	v.UpdateSize(vecmath.New2[float32](200, 200), vecmath.New3(0.0, 0.0, -1.0))
	for _, p := range []vecmath.Vec2[float64]{
		vecmath.New2(-100.0, 12.5),
		vecmath.New2(100.0, 212.5),
		vecmath.New2(0.0, 100.0),
	} {
		if !v.Contains(p) {
			t.Errorf("Contains(%v) = false", p)
		}
	}
	for _, p := range []vecmath.Vec2[float64]{
		vecmath.New2(-100.001, 50.0),
		vecmath.New2(0.0, 212.6),
		vecmath.New2(0.0, 12.4),
	} {
		if v.Contains(p) {
			t.Errorf("Contains(%v) = true", p)
		}
	}
}

func TestLineDroppedWhenOneEndOutside(t *testing.T) {
	v := unitView()
	// Frame (-10,-10)..(40,40).
	v.UpdateSize(vecmath.New2[float32](50, 50), vecmath.New3(15.0, 0.0, 0.0))
	start, end := v.Frame()
	if start != vecmath.New2(-10.0, -10.0) || end != vecmath.New2(40.0, 40.0) {
		t.Fatalf("frame = %v..%v", start, end)
	}

	r := &recorder{}
	// Projects to (0,0) and (50,50).
	line := scene.Line{From: vecmath.New3(0.0, 0.0, 0.0), To: vecmath.New3(50.0, 0.0, 0.0), Color: scene.DefaultLineColor}
	if v.Draw(r, line) {
		t.Fatalf("Draw returned true for a line leaving the frame")
	}
	if len(r.lines) != 0 {
		t.Fatalf("line was drawn: %+v", r.lines)
	}
}

func TestLineInsideDrawnFrameRelative(t *testing.T) {
	v := unitView()
	v.UpdateSize(vecmath.New2[float32](50, 50), vecmath.New3(15.0, 0.0, 0.0))

	r := &recorder{}
	c := color.RGBA{B: 255, A: 255}
	line := scene.Line{From: vecmath.New3(0.0, 0.0, 0.0), To: vecmath.New3(40.0, 0.0, 0.0), Color: c}
	if !v.Draw(r, line) {
		t.Fatalf("Draw returned false")
	}
	if len(r.lines) != 1 {
		t.Fatalf("lines = %d", len(r.lines))
	}
	got := r.lines[0]
	if got.from != vecmath.New2[float32](10, 10) || got.to != vecmath.New2[float32](50, 50) {
		t.Fatalf("endpoints = %v -> %v", got.from, got.to)
	}
	if got.thickness != 1.5 || got.color != c {
		t.Fatalf("thickness %v color %v", got.thickness, got.color)
	}
}

func TestSpriteQuadGeometry(t *testing.T) {
	v := referenceView()
	v.UpdateSize(vecmath.New2[float32](200, 200), vecmath.New3(0.0, 0.0, -1.0))

	r := &recorder{}
	v.Draw(r, scene.CubeSprite{Pos: vecmath.Zero3[float64](), Scale: 1, TexCoord: vecmath.New2[float32](1, 0)})
	if len(r.quads) != 1 {
		t.Fatalf("quads = %d", len(r.quads))
	}
	q := r.quads[0]
	if q.pos != vecmath.New2[float32](0, -125) {
		t.Errorf("pos = %v, want (0, -125)", q.pos)
	}
	if q.size != vecmath.New2[float32](200, 225) {
		t.Errorf("size = %v, want (200, 225)", q.size)
	}
	if q.src != (tilemap.Rect{X: 64, Y: 0, Width: 64, Height: 72}) {
		t.Errorf("src = %+v", q.src)
	}
	if _, ok := q.tex.(fakeTexture); !ok {
		t.Errorf("texture = %T", q.tex)
	}
}

func TestSpriteScaleHalf(t *testing.T) {
	v := referenceView()
	v.UpdateSize(vecmath.New2[float32](200, 200), vecmath.New3(0.0, 0.0, -1.0))
	pos, size := v.SpriteQuad(scene.CubeSprite{Pos: vecmath.Zero3[float64](), Scale: 0.5})
	if pos != vecmath.New2[float32](50, -68.75) || size != vecmath.New2[float32](100, 112.5) {
		t.Fatalf("quad = %v %v", pos, size)
	}
}

func TestSpriteOutsideFrameStillSubmitted(t *testing.T) {
	v := referenceView()
	v.UpdateSize(vecmath.New2[float32](200, 200), vecmath.New3(0.0, 0.0, -1.0))

	far := vecmath.New3(100.0, 100.0, 0.0)
	if v.Contains(v.Project(far)) {
		t.Fatalf("test point unexpectedly inside frame")
	}
	r := &recorder{}
	if !v.Draw(r, scene.CubeSprite{Pos: far, Scale: 1}) {
		t.Fatalf("Draw returned false for sprite")
	}
	if len(r.quads) != 1 {
		t.Fatalf("sprite not submitted")
	}
}

func TestSpriteWithoutTilemap(t *testing.T) {
	v := New(Projection{TileWidth: 100, Height: 112.5, EdgeHeight: 56.25}, nil)
	v.UpdateSize(vecmath.New2[float32](200, 200), vecmath.New3(0.0, 0.0, -1.0))

	r := &recorder{}
	if !v.Draw(r, scene.CubeSprite{Pos: vecmath.Zero3[float64](), Scale: 1, TexCoord: vecmath.New2[float32](2, 0)}) {
		t.Fatalf("Draw returned false for sprite")
	}
	if len(r.quads) != 1 {
		t.Fatalf("quads = %d", len(r.quads))
	}
	q := r.quads[0]
	if q.tex != nil || q.src != (tilemap.Rect{}) {
		t.Fatalf("tex = %v, src = %+v", q.tex, q.src)
	}
	if q.pos != vecmath.New2[float32](0, -125) || q.size != vecmath.New2[float32](200, 225) {
		t.Fatalf("pos = %v, size = %v", q.pos, q.size)
	}
}
