package graphics

import (
	"errors"
	"image"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"isoview/internal/tilemap"
	"isoview/internal/vecmath"
)

// Window describes the window Run opens.
type Window struct {
	Title      string
	Width      int
	Height     int
	Background color.RGBA
}

// Run opens a resizable window and runs the main loop. setup runs once after the window (and GL context)
// exists, so textures can be uploaded there; an error from setup closes the window and is returned.
// Each frame clears the screen to the background color and calls draw. Returns when the window is closed.
func Run(w Window, setup func() error, draw func()) error {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	if setup != nil {
		if err := setup(); err != nil {
			return err
		}
	}

	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(w.Background)
		draw()
		rl.EndDrawing()
	}
	return nil
}

// ScreenSize returns the current render size in pixels.
func ScreenSize() vecmath.Vec2[float32] {
	return vecmath.New2(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

// Texture is an atlas uploaded to the GPU.
type Texture struct {
	tex rl.Texture2D
}

// Size returns the texture size in pixels.
func (t Texture) Size() vecmath.Vec2[float32] {
	return vecmath.New2(float32(t.tex.Width), float32(t.tex.Height))
}

// LoadTexture uploads decoded pixels with nearest-neighbour filtering so tile art stays crisp.
// Must be called after the window exists.
func LoadTexture(img *image.RGBA) (Texture, error) {
	rimg := rl.NewImageFromImage(img)
	defer rl.UnloadImage(rimg)
	tex := rl.LoadTextureFromImage(rimg)
	if !rl.IsTextureValid(tex) {
		return Texture{}, errors.New("graphics: texture upload failed")
	}
	rl.SetTextureFilter(tex, rl.FilterPoint)
	return Texture{tex: tex}, nil
}

// Renderer draws through raylib. It must be used between BeginDrawing and EndDrawing, i.e. inside Run's draw.
type Renderer struct{}

func (Renderer) DrawLine(from, to vecmath.Vec2[float32], thickness float32, c color.RGBA) {
	rl.DrawLineEx(rl.NewVector2(from.X, from.Y), rl.NewVector2(to.X, to.Y), thickness, c)
}

// DrawTexturedQuad draws src from tex stretched over the rectangle at pos with size, untinted.
// Textures not created by LoadTexture are skipped.
func (Renderer) DrawTexturedQuad(tex tilemap.Texture, src tilemap.Rect, pos, size vecmath.Vec2[float32]) {
	t, ok := tex.(Texture)
	if !ok {
		return
	}
	rl.DrawTexturePro(t.tex,
		rl.NewRectangle(src.X, src.Y, src.Width, src.Height),
		rl.NewRectangle(pos.X, pos.Y, size.X, size.Y),
		rl.NewVector2(0, 0), 0, rl.White)
}

const (
	overlayFontSize   = 20
	overlayPadding    = 12
	overlayLineHeight = overlayFontSize + 4
)

// FPS returns the current frames per second.
func FPS() int32 {
	return rl.GetFPS()
}

// DrawOverlay draws lines right-aligned in the top-right corner, in green. Call last in the frame.
func DrawOverlay(lines []string) {
	screenW := int32(rl.GetScreenWidth())
	y := int32(overlayPadding)
	for _, text := range lines {
		w := rl.MeasureText(text, overlayFontSize)
		rl.DrawText(text, screenW-w-overlayPadding, y, overlayFontSize, rl.Green)
		y += overlayLineHeight
	}
}
