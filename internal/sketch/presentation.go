package sketch

import (
	"errors"
	"fmt"

	"bezierpoints/internal/components"
	"bezierpoints/internal/engine"

	"github.com/rs/zerolog"
)

// SyncPresentation returns the update system that makes every point's scene
// object sit at the point's position and draw with the shared visuals.
// Running it twice in a row changes nothing the second time.
func SyncPresentation(log zerolog.Logger) engine.SystemFunc {
	return func(scene *engine.Scene, res *engine.Resources) error {
		state, err := engine.Fetch[DrawingState](res)
		if err != nil {
			return err
		}
		visuals, err := engine.Fetch[Visuals](res)
		if err != nil {
			return err
		}

		var errs []error
		for e, p := range state.Points {
			obj := scene.Get(e)
			if obj == nil {
				log.Error().Stringer("entity", e).Msg("point without scene object")
				errs = append(errs, fmt.Errorf("%s: %w", e, ErrMissingEntity))
				continue
			}

			obj.Transform.Position = p.Position

			r := engine.GetComponent[*components.PointRenderer](obj)
			if r == nil {
				obj.AddComponent(components.NewPointRenderer(visuals.Mesh, visuals.Material))
				continue
			}
			if !r.Uses(visuals.Mesh, visuals.Material) {
				r.Mesh, r.Material = visuals.Mesh, visuals.Material
			}
		}
		return errors.Join(errs...)
	}
}
