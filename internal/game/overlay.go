package game

import (
	"fmt"

	"bezierpoints/internal/config"
	"bezierpoints/internal/engine"
	"bezierpoints/internal/sketch"
	"bezierpoints/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Theme colors, same dark indigo palette as the engine editor
var (
	colorBgPanel       = rl.NewColor(18, 18, 24, 245)
	colorBgElement     = rl.NewColor(28, 28, 38, 255)
	colorAccent        = rl.NewColor(108, 99, 255, 255)
	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(200, 200, 208, 255)
)

const (
	overlayX      = 10
	overlayY      = 10
	overlayWidth  = 300
	overlayLine   = 20
	overlayHeader = 24
	overlayLines  = 4
)

// Overlay is the on-screen diagnostics panel (F1). It only reads the world;
// the console checkbox is the one piece of state it owns.
type Overlay struct {
	Visible bool
	console bool
	last    *sketch.PointAdded
}

func NewOverlay(cfg config.DiagnosticsConfig) *Overlay {
	return &Overlay{
		Visible: cfg.Overlay,
		console: cfg.Console,
	}
}

// ConsoleEnabled gates the per-frame console dump.
func (o *Overlay) ConsoleEnabled() bool {
	return o.console
}

// Watch remembers the most recently placed point.
func (o *Overlay) Watch(state *sketch.DrawingState) {
	state.OnPointAdded.AddListener(func(ev sketch.PointAdded) {
		o.last = &ev
	})
}

// Bounds is the panel rectangle. Its size is fixed so the region the mouse
// treats as UI does not depend on how many lines are shown.
func (o *Overlay) Bounds() rl.Rectangle {
	return rl.Rectangle{
		X:      overlayX,
		Y:      overlayY,
		Width:  overlayWidth,
		Height: overlayHeader + overlayLine*(overlayLines+1) + 10,
	}
}

// Contains reports whether pos is over the visible panel.
func (o *Overlay) Contains(pos rl.Vector2) bool {
	return o.Visible && rl.CheckCollisionPointRec(pos, o.Bounds())
}

// Lines builds the panel text.
func (o *Overlay) Lines(w *world.World) []string {
	lines := make([]string, 0, overlayLines)
	if state, ok := sketchState(w); ok {
		lines = append(lines,
			fmt.Sprintf("Points: %d", len(state.Points)),
			fmt.Sprintf("Level: %d", state.CurrentLevel),
		)
	}
	if pos, ok := w.Mouse.Cursor(); ok {
		lines = append(lines, fmt.Sprintf("Mouse: %.0f, %.0f", pos.X, pos.Y))
	} else {
		lines = append(lines, "Mouse: outside window")
	}
	if o.last != nil {
		lines = append(lines, fmt.Sprintf("Last: %s at (%.0f, %.0f)",
			o.last.Entity, o.last.Point.Position.X, o.last.Point.Position.Y))
	}
	return lines
}

func (o *Overlay) Draw(w *world.World) {
	if !o.Visible {
		rl.DrawText("F1: diagnostics", overlayX, overlayY, 16, colorTextSecondary)
		return
	}

	gui.Panel(o.Bounds(), "Diagnostics")

	y := float32(overlayY + overlayHeader + 4)
	for _, line := range o.Lines(w) {
		gui.Label(rl.Rectangle{X: overlayX + 10, Y: y, Width: overlayWidth - 20, Height: overlayLine}, line)
		y += overlayLine
	}

	checkBounds := rl.Rectangle{X: overlayX + 10, Y: y + 2, Width: 16, Height: 16}
	o.console = gui.CheckBox(checkBounds, "Log to console", o.console)

	rl.DrawFPS(int32(overlayX+overlayWidth-90), int32(overlayY+4))
}

func initOverlayStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgPanel))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

func sketchState(w *world.World) (*sketch.DrawingState, bool) {
	return engine.Get[sketch.DrawingState](w.Resources)
}
