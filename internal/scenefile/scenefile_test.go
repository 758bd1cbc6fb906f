package scenefile

import (
	"errors"
	"image/color"
	"io/fs"
	"testing"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"

	"isoview/internal/scene"
	"isoview/internal/vecmath"
)

const sample = `
sprites:
  - pos: [0, 0, 0]
    tile: [1, 2]
  - pos: [0, 0, 1]
    scale: 0.5
    tile: [0, 0]
wire_cubes:
  - pos: [0, 0, 0]
    size: 1
lines:
  - from: [0, 0, 0]
    to: [1, 0, 0]
  - from: [0, 0, 0]
    to: [0, 0, 1]
    color: "#00ff00"
`

func TestParseAndApply(t *testing.T) {
	f, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	s := scene.New()
	f.Apply(s)

	lines, sprites := s.Counts()
	if sprites != 2 || lines != 11 {
		t.Fatalf("counts = %d lines %d sprites", lines, sprites)
	}
	els := s.Elements()
	first := els[0].(scene.CubeSprite)
	if first.Scale != 1 || first.TexCoord != vecmath.New2[float32](1, 2) {
		t.Fatalf("first sprite = %+v", first)
	}
	if second := els[1].(scene.CubeSprite); second.Scale != 0.5 {
		t.Fatalf("second sprite scale = %v", second.Scale)
	}
	last := els[len(els)-1].(scene.Line)
	if last.Color != (color.RGBA{G: 255, A: 255}) || last.To != vecmath.New3(0.0, 0.0, 1.0) {
		t.Fatalf("last line = %+v", last)
	}
	if l := els[len(els)-2].(scene.Line); l.Color != scene.DefaultLineColor {
		t.Fatalf("default color line = %+v", l)
	}
}

func TestParseHeightmap(t *testing.T) {
	f, err := Parse([]byte("heightmap:\n  width: 2\n  depth: 2\n  max_height: 1\n  seed: 7\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	s := scene.New()
	f.Apply(s)
	if s.Len() != 4 {
		t.Fatalf("len = %d, want 4", s.Len())
	}
}

func TestParseErrors(t *testing.T) {
	for _, body := range []string{
		"sprits: []\n",
		"lines:\n  - from: [0,0,0]\n    to: [1,0,0]\n    color: red\n",
		"wire_cubes:\n  - pos: [0,0,0]\n    size: 0\n",
		"sprites: {\n",
	} {
		if _, err := Parse([]byte(body)); err == nil {
			t.Errorf("Parse(%q) succeeded", body)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	f, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil): %v", err)
	}
	s := scene.New()
	f.Apply(s)
	if s.Len() != 0 {
		t.Fatalf("len = %d", s.Len())
	}
}

func TestLoad(t *testing.T) {
	fsys, err := mem.NewFS()
	if err != nil {
		t.Fatal(err)
	}
	if err := hackpadfs.MkdirAll(fsys, "scenes", 0755); err != nil {
		t.Fatal(err)
	}
	if err := hackpadfs.WriteFullFile(fsys, "scenes/a.yaml", []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(fsys, "scenes/a.yaml"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := Load(fsys, "scenes/b.yaml"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("missing err = %v", err)
	}
}

func TestDemo(t *testing.T) {
	s := scene.New()
	Demo(s)
	lines, sprites := s.Counts()
	if lines != 9 || sprites != 2 {
		t.Fatalf("demo = %d lines %d sprites", lines, sprites)
	}
	if _, ok := s.Elements()[0].(scene.CubeSprite); !ok {
		t.Fatal("demo must start with the ground sprite")
	}
}
