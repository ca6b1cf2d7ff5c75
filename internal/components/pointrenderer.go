package components

import (
	"bezierpoints/internal/assets"
	"bezierpoints/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PointRenderer draws its object as a filled disc. Mesh and Material are
// shared by every point and owned by the asset manager.
type PointRenderer struct {
	engine.BaseComponent
	Mesh     *assets.Disc
	Material *assets.Material
}

func NewPointRenderer(mesh *assets.Disc, material *assets.Material) *PointRenderer {
	return &PointRenderer{
		Mesh:     mesh,
		Material: material,
	}
}

// Uses reports whether r already points at the given shared assets.
func (r *PointRenderer) Uses(mesh *assets.Disc, material *assets.Material) bool {
	return r.Mesh == mesh && r.Material == material
}

func (r *PointRenderer) Draw() {
	g := r.GetGameObject()
	if g == nil || !g.Active || r.Mesh == nil || r.Material == nil {
		return
	}

	pos := g.Transform.Position
	center := rl.Vector2{X: pos.X, Y: pos.Y}
	radius := r.Mesh.Radius * g.Transform.Scale.X

	rl.DrawCircleSector(center, radius, 0, 360, int32(r.Mesh.Segments), r.Material.Color)
}
