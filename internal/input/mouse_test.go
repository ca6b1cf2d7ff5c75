package input

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

type fakeDevice struct {
	down      map[Button]bool
	cursor    rl.Vector2
	hasCursor bool
}

func (f *fakeDevice) ButtonDown(b Button) bool   { return f.down[b] }
func (f *fakeDevice) Cursor() (rl.Vector2, bool) { return f.cursor, f.hasCursor }

func TestMouse_JustPressedOnlyOnEdge(t *testing.T) {
	dev := &fakeDevice{down: map[Button]bool{}}
	m := NewMouse()

	m.Update(dev)
	assert.False(t, m.JustPressed(ButtonLeft))

	dev.down[ButtonLeft] = true
	presses := 0
	for range 5 {
		m.Update(dev)
		if m.JustPressed(ButtonLeft) {
			presses++
		}
		assert.True(t, m.Pressed(ButtonLeft))
	}
	assert.Equal(t, 1, presses, "held button must report one press")

	dev.down[ButtonLeft] = false
	m.Update(dev)
	assert.True(t, m.JustReleased(ButtonLeft))
	assert.False(t, m.Pressed(ButtonLeft))

	m.Update(dev)
	assert.False(t, m.JustReleased(ButtonLeft))
}

func TestMouse_RepressAfterRelease(t *testing.T) {
	dev := &fakeDevice{down: map[Button]bool{}}
	m := NewMouse()

	var presses int
	for _, state := range []bool{true, false, true, true, false, true} {
		dev.down[ButtonLeft] = state
		m.Update(dev)
		if m.JustPressed(ButtonLeft) {
			presses++
		}
	}
	assert.Equal(t, 3, presses)
}

func TestMouse_ButtonsIndependent(t *testing.T) {
	dev := &fakeDevice{down: map[Button]bool{ButtonRight: true}}
	m := NewMouse()
	m.Update(dev)

	assert.True(t, m.JustPressed(ButtonRight))
	assert.False(t, m.JustPressed(ButtonLeft))
	assert.False(t, m.JustPressed(ButtonMiddle))
}

func TestMouse_Cursor(t *testing.T) {
	dev := &fakeDevice{cursor: rl.Vector2{X: 100, Y: 200}, hasCursor: true}
	m := NewMouse()

	_, ok := m.Cursor()
	assert.False(t, ok, "no cursor before the first update")

	m.Update(dev)
	pos, ok := m.Cursor()
	assert.True(t, ok)
	assert.Equal(t, rl.Vector2{X: 100, Y: 200}, pos)

	dev.hasCursor = false
	m.Update(dev)
	_, ok = m.Cursor()
	assert.False(t, ok)
}

func TestMouse_InvalidButton(t *testing.T) {
	m := NewMouse()
	assert.False(t, m.Pressed(Button(-1)))
	assert.False(t, m.JustPressed(buttonCount))
	assert.False(t, m.JustReleased(Button(42)))
	assert.Equal(t, "unknown", Button(42).String())
	assert.Equal(t, "left", ButtonLeft.String())
}

func TestMouse_OverPanel(t *testing.T) {
	dev := &fakeDevice{cursor: rl.Vector2{X: 15, Y: 15}, hasCursor: true}
	m := NewMouse()
	m.AddPanel(nil)
	m.Update(dev)
	assert.False(t, m.OverPanel(), "no panels registered")

	visible := true
	m.AddPanel(func(p rl.Vector2) bool { return visible && p.X < 20 && p.Y < 20 })
	assert.True(t, m.OverPanel())

	visible = false
	assert.False(t, m.OverPanel())

	visible = true
	dev.cursor = rl.Vector2{X: 50, Y: 50}
	m.Update(dev)
	assert.False(t, m.OverPanel())

	dev.hasCursor = false
	dev.cursor = rl.Vector2{X: 5, Y: 5}
	m.Update(dev)
	assert.False(t, m.OverPanel(), "no cursor, no panel hit")
}
