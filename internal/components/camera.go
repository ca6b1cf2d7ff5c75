package components

import (
	"bezierpoints/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// MainCameraTag marks the camera the renderer and input mapping use.
	MainCameraTag = "MainCamera"
	// MainCameraName is looked up when no object carries the tag.
	MainCameraName = "Camera"
)

// OrthoCamera is a 2D orthographic camera. The owning object's position is
// the world point shown at Offset on screen. With the defaults (zero offset,
// zero position, zoom 1) a window pixel and a world unit are the same thing.
type OrthoCamera struct {
	engine.BaseComponent
	Offset rl.Vector2 // screen point the camera position maps to
	Zoom   float32
	Near   float32
	Far    float32
}

func NewOrthoCamera() *OrthoCamera {
	return &OrthoCamera{
		Zoom: 1,
		Near: -1000,
		Far:  1000,
	}
}

func (c *OrthoCamera) target() rl.Vector2 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector2{}
	}
	return rl.Vector2{X: g.Transform.Position.X, Y: g.Transform.Position.Y}
}

func (c *OrthoCamera) zoom() float32 {
	if c.Zoom == 0 {
		return 1
	}
	return c.Zoom
}

// ScreenToWorld maps a window pixel to the world plane z = 0.
func (c *OrthoCamera) ScreenToWorld(screen rl.Vector2) rl.Vector3 {
	t := c.target()
	z := c.zoom()
	return rl.Vector3{
		X: (screen.X-c.Offset.X)/z + t.X,
		Y: (screen.Y-c.Offset.Y)/z + t.Y,
		Z: 0,
	}
}

// WorldToScreen is the inverse of ScreenToWorld, dropping depth.
func (c *OrthoCamera) WorldToScreen(world rl.Vector3) rl.Vector2 {
	t := c.target()
	z := c.zoom()
	return rl.Vector2{
		X: (world.X-t.X)*z + c.Offset.X,
		Y: (world.Y-t.Y)*z + c.Offset.Y,
	}
}

// InDepthRange reports whether z lies inside the clip range [Near, Far].
func (c *OrthoCamera) InDepthRange(z float32) bool {
	return z >= c.Near && z <= c.Far
}

func (c *OrthoCamera) GetRaylibCamera() rl.Camera2D {
	return rl.Camera2D{
		Offset:   c.Offset,
		Target:   c.target(),
		Rotation: 0,
		Zoom:     c.zoom(),
	}
}

// MainCamera finds the tagged camera in scene, falling back to the object
// named MainCameraName. Returns nil when neither has an OrthoCamera.
func MainCamera(scene *engine.Scene) *OrthoCamera {
	for _, g := range scene.FindByTag(MainCameraTag) {
		if cam := engine.GetComponent[*OrthoCamera](g); cam != nil {
			return cam
		}
	}
	if g := scene.FindByName(MainCameraName); g != nil {
		return engine.GetComponent[*OrthoCamera](g)
	}
	return nil
}
