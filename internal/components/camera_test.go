package components

import (
	"testing"

	"bezierpoints/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spawnCamera(scene *engine.Scene) *OrthoCamera {
	obj := engine.NewGameObject("Camera")
	obj.Tags = []string{MainCameraTag}
	cam := NewOrthoCamera()
	obj.AddComponent(cam)
	scene.Spawn(obj)
	return cam
}

func TestOrthoCamera_DefaultIsIdentity(t *testing.T) {
	cam := spawnCamera(engine.NewScene("Test"))

	got := cam.ScreenToWorld(rl.Vector2{X: 100, Y: 200})
	assert.Equal(t, rl.Vector3{X: 100, Y: 200, Z: 0}, got)
}

func TestOrthoCamera_OffsetZoomTarget(t *testing.T) {
	cam := spawnCamera(engine.NewScene("Test"))
	cam.Offset = rl.Vector2{X: 640, Y: 360}
	cam.Zoom = 2
	cam.GetGameObject().Transform.Position = rl.Vector3{X: 10, Y: -10}

	world := cam.ScreenToWorld(rl.Vector2{X: 650, Y: 370})
	assert.Equal(t, rl.Vector3{X: 15, Y: -5, Z: 0}, world)

	back := cam.WorldToScreen(world)
	assert.Equal(t, rl.Vector2{X: 650, Y: 370}, back)

	rc := cam.GetRaylibCamera()
	assert.Equal(t, rl.Vector2{X: 10, Y: -10}, rc.Target)
	assert.Equal(t, float32(2), rc.Zoom)
}

func TestOrthoCamera_ZeroZoomTreatedAsOne(t *testing.T) {
	cam := NewOrthoCamera()
	cam.Zoom = 0

	assert.Equal(t, rl.Vector3{X: 3, Y: 4}, cam.ScreenToWorld(rl.Vector2{X: 3, Y: 4}))
}

func TestOrthoCamera_DepthRange(t *testing.T) {
	cam := NewOrthoCamera()

	assert.True(t, cam.InDepthRange(0))
	assert.True(t, cam.InDepthRange(-1000))
	assert.True(t, cam.InDepthRange(999.5))
	assert.False(t, cam.InDepthRange(1000.5))
}

func TestMainCamera(t *testing.T) {
	scene := engine.NewScene("Test")
	assert.Nil(t, MainCamera(scene))

	untagged := engine.NewGameObject("Other")
	untagged.AddComponent(NewOrthoCamera())
	scene.Spawn(untagged)
	assert.Nil(t, MainCamera(scene))

	cam := spawnCamera(scene)
	require.NotNil(t, MainCamera(scene))
	assert.Same(t, cam, MainCamera(scene))
}

func TestMainCamera_FallsBackToName(t *testing.T) {
	scene := engine.NewScene("Test")
	named := engine.NewGameObject(MainCameraName)
	scene.Spawn(named)
	assert.Nil(t, MainCamera(scene), "named object without a camera component")

	cam := NewOrthoCamera()
	named.AddComponent(cam)
	assert.Same(t, cam, MainCamera(scene))

	tagged := spawnCamera(scene)
	assert.Same(t, tagged, MainCamera(scene), "the tag wins over the name")
}
