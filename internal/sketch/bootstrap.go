package sketch

import (
	"fmt"

	"bezierpoints/internal/assets"
	"bezierpoints/internal/components"
	"bezierpoints/internal/engine"
)

const pointMaterialName = "point"

// Visuals are the mesh and material every point renderer shares.
type Visuals struct {
	Mesh     *assets.Disc
	Material *assets.Material
}

// VisualConfig describes the shared point marker.
type VisualConfig struct {
	Radius   float32
	Segments int
	Color    string
}

// Bootstrap returns the startup system: shared visuals, the main camera and a
// fresh drawing state at level 0.
func Bootstrap(cfg VisualConfig) engine.SystemFunc {
	return func(scene *engine.Scene, res *engine.Resources) error {
		if !engine.Has[assets.Manager](res) {
			engine.Insert(res, assets.NewManager())
		}
		manager, err := engine.Fetch[assets.Manager](res)
		if err != nil {
			return err
		}

		mesh, err := manager.Disc(cfg.Radius, cfg.Segments)
		if err != nil {
			return fmt.Errorf("point mesh: %w", err)
		}
		material, err := manager.Material(pointMaterialName, cfg.Color)
		if err != nil {
			return fmt.Errorf("point material: %w", err)
		}
		engine.Insert(res, &Visuals{Mesh: mesh, Material: material})

		camera := engine.NewGameObject(components.MainCameraName)
		camera.Tags = []string{components.MainCameraTag}
		camera.AddComponent(components.NewOrthoCamera())
		scene.Spawn(camera)

		engine.Insert(res, NewDrawingState())
		return nil
	}
}
