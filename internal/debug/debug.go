package debug

import (
	"fmt"

	"isoview/internal/game"
)

// updateInterval: only refresh overlay text every N frames to reduce allocations.
const updateInterval = 30

// Overlay holds optional debug text for the top-right corner. All overlays are off by default.
// Drawing is left to the graphics package.
type Overlay struct {
	ShowFPS   bool
	ShowStats bool

	frameCount uint32
	fpsText    string
	statsText  string
}

// New returns an overlay with the given overlays enabled.
func New(showFPS, showStats bool) *Overlay {
	return &Overlay{ShowFPS: showFPS, ShowStats: showStats}
}

// Tick advances the frame counter and refreshes the cached text every updateInterval frames.
// It reports whether the text was refreshed. fps is passed in so the overlay can be driven without a window.
func (o *Overlay) Tick(fps int32, st game.Stats) bool {
	o.frameCount++
	refresh := o.frameCount%updateInterval == 0 ||
		(o.ShowFPS && o.fpsText == "") || (o.ShowStats && o.statsText == "")
	if !refresh {
		return false
	}
	o.fpsText = fmt.Sprintf("FPS: %d", fps)
	o.statsText = FormatStats(st)
	return true
}

// Lines returns the text lines currently shown, top to bottom.
func (o *Overlay) Lines() []string {
	var out []string
	if o.ShowFPS && o.fpsText != "" {
		out = append(out, o.fpsText)
	}
	if o.ShowStats && o.statsText != "" {
		out = append(out, o.statsText)
	}
	return out
}

// FormatStats renders frame stats as one line.
func FormatStats(st game.Stats) string {
	return fmt.Sprintf("lines %d  sprites %d  culled %d", st.Lines, st.Sprites, st.Culled)
}
