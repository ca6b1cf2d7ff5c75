package game

import (
	"fmt"

	"bezierpoints/internal/config"
	"bezierpoints/internal/input"
	"bezierpoints/internal/logging"
	"bezierpoints/internal/sketch"
	"bezierpoints/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

type Game struct {
	World   *world.World
	Overlay *Overlay
	cfg     config.Config
	log     zerolog.Logger
}

func New(cfg config.Config, log zerolog.Logger) *Game {
	g := &Game{
		World:   world.New(logging.ForSystem(log, "world")),
		Overlay: NewOverlay(cfg.Diagnostics),
		cfg:     cfg,
		log:     log,
	}
	sketch.Plugin{
		Visuals: sketch.VisualConfig{
			Radius:   cfg.Point.Radius,
			Segments: cfg.Point.Segments,
			Color:    cfg.Point.Color,
		},
		Diagnostics: g.Overlay.ConsoleEnabled,
		Log:         log,
	}.Build(g.World.Schedule)
	g.World.Mouse.AddPanel(g.Overlay.Contains)
	return g
}

// Run opens the window and drives frames until it is closed. Only startup
// failures are returned.
func (g *Game) Run() error {
	w := g.cfg.Window
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()

	if !rl.IsWindowReady() {
		return fmt.Errorf("window %dx%d could not be created", w.Width, w.Height)
	}
	if w.Fullscreen {
		rl.ToggleBorderlessWindowed()
	}
	rl.SetTargetFPS(int32(w.TargetFPS))

	if err := g.World.Initialize(); err != nil {
		return err
	}
	defer g.World.Unload()

	if state, ok := sketchState(g.World); ok {
		g.Overlay.Watch(state)
	}
	initOverlayStyle()

	g.log.Info().
		Int("width", rl.GetScreenWidth()).
		Int("height", rl.GetScreenHeight()).
		Bool("fullscreen", w.Fullscreen).
		Msg("window open")

	dev := input.RaylibDevice{}
	for !rl.WindowShouldClose() {
		g.Update(dev)
		g.Draw()
	}
	return nil
}

func (g *Game) Update(dev input.Device) {
	if rl.IsKeyPressed(rl.KeyF1) {
		g.Overlay.Visible = !g.Overlay.Visible
	}
	g.World.Update(dev, rl.GetFrameTime())
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	g.World.Draw()
	g.Overlay.Draw(g.World)
	rl.EndDrawing()
}
