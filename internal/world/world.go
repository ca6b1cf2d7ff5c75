package world

import (
	"fmt"

	"bezierpoints/internal/assets"
	"bezierpoints/internal/engine"
	"bezierpoints/internal/input"

	"github.com/rs/zerolog"
)

// World owns the scene, the shared resources and the system schedule. It is
// the only place frame state lives.
type World struct {
	Scene     *engine.Scene
	Resources *engine.Resources
	Schedule  *engine.Schedule
	Renderer  *Renderer
	Assets    *assets.Manager
	Mouse     *input.Mouse
	log       zerolog.Logger
}

func New(log zerolog.Logger) *World {
	w := &World{
		Scene:     engine.NewScene("Main"),
		Resources: engine.NewResources(),
		Schedule:  engine.NewSchedule(log),
		Renderer:  NewRenderer(),
		Assets:    assets.NewManager(),
		Mouse:     input.NewMouse(),
		log:       log,
	}
	engine.Insert(w.Resources, w.Assets)
	engine.Insert(w.Resources, w.Mouse)
	return w
}

// Initialize runs the startup stage. Errors are fatal to the caller.
func (w *World) Initialize() error {
	if err := w.Schedule.RunStartup(w.Scene, w.Resources); err != nil {
		return fmt.Errorf("world startup: %w", err)
	}
	w.log.Info().
		Int("objects", w.Scene.Len()).
		Strs("systems", w.Schedule.Systems(engine.Update)).
		Msg("world ready")
	return nil
}

// Update samples input and runs one frame of systems. System errors are
// logged and do not stop the frame loop.
func (w *World) Update(dev input.Device, deltaTime float32) {
	w.Mouse.Update(dev)
	if err := w.Schedule.RunUpdate(w.Scene, w.Resources); err != nil {
		w.log.Error().Err(err).Msg("frame update")
	}
	w.Scene.Update(deltaTime)
}

func (w *World) Draw() {
	w.Renderer.Draw(w.Scene)
}

// Unload frees shared assets and withdraws the manager so no system can
// hand them out afterwards.
func (w *World) Unload() {
	w.Assets.Unload()
	engine.Remove[assets.Manager](w.Resources)
}
