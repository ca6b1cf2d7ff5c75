package world

import (
	"slices"

	"bezierpoints/internal/components"
	"bezierpoints/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws every drawable object through the main camera.
type Renderer struct {
	Background rl.Color
}

func NewRenderer() *Renderer {
	return &Renderer{Background: rl.NewColor(20, 20, 30, 255)}
}

// DrawOrder returns the active drawable objects the camera can see, back to
// front: lower z first, ties broken by entity handle.
func DrawOrder(gameObjects []*engine.GameObject, cam *components.OrthoCamera) []*engine.GameObject {
	var out []*engine.GameObject
	for _, g := range gameObjects {
		if !g.Active {
			continue
		}
		if _, ok := engine.FindComponent[engine.Drawable](g); !ok {
			continue
		}
		if cam != nil && !cam.InDepthRange(g.Transform.Position.Z) {
			continue
		}
		out = append(out, g)
	}
	slices.SortStableFunc(out, func(a, b *engine.GameObject) int {
		az, bz := a.Transform.Position.Z, b.Transform.Position.Z
		switch {
		case az < bz:
			return -1
		case az > bz:
			return 1
		case a.Entity.Less(b.Entity):
			return -1
		case b.Entity.Less(a.Entity):
			return 1
		default:
			return 0
		}
	})
	return out
}

// Draw renders the scene in 2D mode. It must run between rl.BeginDrawing and
// rl.EndDrawing.
func (r *Renderer) Draw(scene *engine.Scene) {
	rl.ClearBackground(r.Background)

	cam := components.MainCamera(scene)
	if cam == nil {
		return
	}

	rl.BeginMode2D(cam.GetRaylibCamera())
	for _, g := range DrawOrder(scene.GameObjects, cam) {
		for _, c := range g.Components() {
			if d, ok := c.(engine.Drawable); ok {
				d.Draw()
			}
		}
	}
	rl.EndMode2D()
}
