package sketch

import (
	"errors"
	"fmt"

	"bezierpoints/internal/components"
	"bezierpoints/internal/engine"
	"bezierpoints/internal/input"

	"github.com/rs/zerolog"
)

// PointTag marks scene objects that mirror a recorded point.
const PointTag = "point"

// HandleInput returns the update system that places a point on each left
// click. A click without a cursor, or over a UI panel, is logged and skipped.
func HandleInput(log zerolog.Logger) engine.SystemFunc {
	return func(scene *engine.Scene, res *engine.Resources) error {
		mouse, err := engine.Fetch[input.Mouse](res)
		if err != nil {
			return err
		}
		if !mouse.JustPressed(input.ButtonLeft) {
			return nil
		}
		if mouse.OverPanel() {
			log.Debug().Msg("click over panel ignored")
			return nil
		}

		e, p, err := SpawnPoint(scene, res)
		if errors.Is(err, ErrCursorUnavailable) {
			log.Debug().Err(err).Msg("click ignored")
			return nil
		}
		if err != nil {
			return err
		}

		log.Debug().
			Stringer("entity", e).
			Float32("x", p.Position.X).
			Float32("y", p.Position.Y).
			Uint32("level", p.Level).
			Msg("point placed")
		return nil
	}
}

// SpawnPoint records a point at the current cursor and spawns its scene
// object under the same handle. State is untouched on error.
func SpawnPoint(scene *engine.Scene, res *engine.Resources) (engine.Entity, Point, error) {
	state, err := engine.Fetch[DrawingState](res)
	if err != nil {
		return engine.Entity{}, Point{}, err
	}
	mouse, err := engine.Fetch[input.Mouse](res)
	if err != nil {
		return engine.Entity{}, Point{}, err
	}

	cursor, ok := mouse.Cursor()
	if !ok {
		return engine.Entity{}, Point{}, ErrCursorUnavailable
	}
	cam := components.MainCamera(scene)
	if cam == nil {
		return engine.Entity{}, Point{}, ErrNoCamera
	}

	p := Point{
		Position: cam.ScreenToWorld(cursor),
		Level:    state.CurrentLevel,
	}

	obj := engine.NewGameObject(fmt.Sprintf("Point_%d", len(state.Points)))
	obj.Tags = []string{PointTag}
	obj.Transform.Position = p.Position
	e := scene.Spawn(obj)

	state.AddPoint(e, p)
	return e, p, nil
}
