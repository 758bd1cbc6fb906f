package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hack-pad/hackpadfs"

	"isoview/internal/assets"
	"isoview/internal/commands"
	"isoview/internal/debug"
	"isoview/internal/game"
	"isoview/internal/graphics"
	"isoview/internal/logger"
	"isoview/internal/scene"
	"isoview/internal/scenefile"
	"isoview/internal/tilemap"
	"isoview/internal/vecmath"
	"isoview/internal/view"
	"isoview/internal/viewconfig"
)

// statsLogInterval is how often (in frames) frame stats are written to the log.
const statsLogInterval = 600

type app struct {
	log  *logger.Logger
	fsys hackpadfs.FS
	out  io.Writer

	configPath string
	overrides  viewconfig.Overrides
}

func (a *app) register(reg *commands.Registry) {
	run := a.configFlags("run")
	run.StringVar(&a.overrides.Title, "title", "", "window title")
	run.IntVar(&a.overrides.WindowWidth, "width", 0, "initial window width")
	run.IntVar(&a.overrides.WindowHeight, "height", 0, "initial window height")
	run.StringVar(&a.overrides.Background, "bg", "", "background color, #rrggbb")
	run.StringVar(&a.overrides.Scene, "scene", "", "scene file (YAML); empty uses the demo scene")
	reg.Register("run", "open the window and draw the scene", run, a.run)

	var x, y, z float64
	project := a.configFlags("project")
	project.Float64Var(&x, "x", 0, "world x")
	project.Float64Var(&y, "y", 0, "world y")
	project.Float64Var(&z, "z", 0, "world z (up)")
	reg.Register("project", "print the screen position of a world point", project, func() error {
		return a.project(vecmath.New3(x, y, z))
	})

	var w, h float64
	frame := a.configFlags("frame")
	frame.Float64Var(&w, "w", 1280, "screen width")
	frame.Float64Var(&h, "h", 720, "screen height")
	reg.Register("frame", "print the visible frame for a screen size", frame, func() error {
		return a.frame(vecmath.New2(float32(w), float32(h)))
	})
}

func (a *app) configFlags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&a.configPath, "config", viewconfig.DefaultPath, "config file (YAML)")
	return fs
}

func (a *app) loadConfig() (viewconfig.Config, error) {
	cfg, err := viewconfig.Load(a.fsys, a.configPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Merge(a.overrides); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (a *app) project(p vecmath.Vec3[float64]) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	v := view.New(cfg.ViewProjection(), nil)
	_, err = fmt.Fprintln(a.out, v.Project(p))
	return err
}

func (a *app) frame(screen vecmath.Vec2[float32]) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	v := view.New(cfg.ViewProjection(), nil)
	v.UpdateSize(screen, cfg.FocusPoint())
	start, end := v.Frame()
	_, err = fmt.Fprintf(a.out, "center %v\nstart  %v\nend    %v\n", v.Center(), start, end)
	return err
}

func (a *app) buildScene(cfg viewconfig.Config) (*scene.Scene, error) {
	s := scene.New()
	if cfg.Scene == "" {
		scenefile.Demo(s)
		return s, nil
	}
	f, err := scenefile.Load(a.fsys, cfg.Scene)
	if err != nil {
		return nil, err
	}
	f.Apply(s)
	return s, nil
}

func (a *app) run() error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	scn, err := a.buildScene(cfg)
	if err != nil {
		return err
	}
	// Decode before opening the window: a bad atlas is a startup error, not a rendering one.
	atlas, err := assets.LoadAtlas(a.fsys, cfg.Atlas.Path)
	if err != nil {
		return err
	}
	lines, sprites := scn.Counts()
	a.log.Logf("start: atlas %s %dx%d, scene %d lines %d sprites, projection %+v",
		cfg.Atlas.Path, atlas.Bounds().Dx(), atlas.Bounds().Dy(), lines, sprites, cfg.ViewProjection())

	var (
		g       *game.Game
		overlay = debug.New(cfg.Debug.ShowFPS, cfg.Debug.ShowStats)
		frames  int
	)
	setup := func() error {
		tex, err := graphics.LoadTexture(atlas)
		if err != nil {
			return err
		}
		tiles := tilemap.New(tex, cfg.AtlasTileSize())
		cols, rows := tiles.Grid()
		a.log.Logf("atlas grid %dx%d tiles", cols, rows)
		g = game.New(view.New(cfg.ViewProjection(), tiles), cfg.FocusPoint())
		g.Scene = scn
		return nil
	}
	draw := func() {
		st := g.Frame(graphics.Renderer{}, graphics.ScreenSize())
		frames++
		if frames%statsLogInterval == 0 {
			a.log.Logf("frame %d: %s", frames, debug.FormatStats(st))
		}
		if overlay.ShowFPS || overlay.ShowStats {
			overlay.Tick(graphics.FPS(), st)
			graphics.DrawOverlay(overlay.Lines())
		}
	}

	win := graphics.Window{
		Title:      cfg.Title,
		Width:      cfg.WindowWidth,
		Height:     cfg.WindowHeight,
		Background: cfg.BackgroundColor(),
	}
	err = graphics.Run(win, setup, draw)
	a.log.Logf("exit after %d frames", frames)
	return err
}
