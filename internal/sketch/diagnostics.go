package sketch

import (
	"bezierpoints/internal/engine"
	"bezierpoints/internal/input"

	"github.com/rs/zerolog"
)

// Diagnostics returns a read-only update system that logs the cursor and the
// whole point table every frame while enabled() is true.
func Diagnostics(log zerolog.Logger, enabled func() bool) engine.SystemFunc {
	return func(scene *engine.Scene, res *engine.Resources) error {
		if enabled != nil && !enabled() {
			return nil
		}
		if mouse, ok := engine.Get[input.Mouse](res); ok {
			if pos, ok := mouse.Cursor(); ok {
				log.Info().Msgf("Mouse Position: %g,%g", pos.X, pos.Y)
			}
		}
		state, ok := engine.Get[DrawingState](res)
		if !ok {
			return nil
		}
		for _, e := range state.Handles() {
			log.Info().Msgf("%s - %s", e, state.Points[e])
		}
		return nil
	}
}
