package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibDevice reads the mouse of the current raylib window.
// It must only be used after rl.InitWindow.
type RaylibDevice struct{}

var raylibButtons = [buttonCount]rl.MouseButton{
	ButtonLeft:   rl.MouseLeftButton,
	ButtonRight:  rl.MouseRightButton,
	ButtonMiddle: rl.MouseMiddleButton,
}

func (RaylibDevice) ButtonDown(b Button) bool {
	if !b.valid() {
		return false
	}
	return rl.IsMouseButtonDown(raylibButtons[b])
}

func (RaylibDevice) Cursor() (rl.Vector2, bool) {
	if !rl.IsCursorOnScreen() {
		return rl.Vector2{}, false
	}
	return rl.GetMousePosition(), true
}
