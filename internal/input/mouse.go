// Package input turns per-frame device polling into edge-triggered button
// state and an optional cursor position.
package input

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
	buttonCount
)

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// Device is polled once per frame for raw, level-triggered state.
type Device interface {
	ButtonDown(b Button) bool
	// Cursor returns the pointer position in window pixels, or false when the
	// pointer is outside the window.
	Cursor() (rl.Vector2, bool)
}

// Mouse is the frame snapshot systems read. Update must be called exactly once
// per frame, before any system runs.
type Mouse struct {
	down      [buttonCount]bool
	prev      [buttonCount]bool
	cursor    rl.Vector2
	hasCursor bool
	panels    []func(rl.Vector2) bool
}

func NewMouse() *Mouse {
	return &Mouse{}
}

// Update samples the device and shifts the current state into history.
func (m *Mouse) Update(d Device) {
	m.prev = m.down
	for b := Button(0); b < buttonCount; b++ {
		m.down[b] = d.ButtonDown(b)
	}
	m.cursor, m.hasCursor = d.Cursor()
}

// Pressed reports whether b is held this frame.
func (m *Mouse) Pressed(b Button) bool {
	if !b.valid() {
		return false
	}
	return m.down[b]
}

// JustPressed reports an up-to-down transition of b in this frame only.
func (m *Mouse) JustPressed(b Button) bool {
	if !b.valid() {
		return false
	}
	return m.down[b] && !m.prev[b]
}

// JustReleased reports a down-to-up transition of b in this frame only.
func (m *Mouse) JustReleased(b Button) bool {
	if !b.valid() {
		return false
	}
	return !m.down[b] && m.prev[b]
}

// Cursor returns the last sampled pointer position, if any.
func (m *Mouse) Cursor() (rl.Vector2, bool) {
	return m.cursor, m.hasCursor
}

// AddPanel registers a screen region owned by the UI. contains is asked
// every time OverPanel is checked, so the region may move or hide.
func (m *Mouse) AddPanel(contains func(rl.Vector2) bool) {
	if contains == nil {
		return
	}
	m.panels = append(m.panels, contains)
}

// OverPanel reports whether the cursor is over a UI panel. Clicks there
// belong to the UI, not the scene.
func (m *Mouse) OverPanel() bool {
	if !m.hasCursor {
		return false
	}
	for _, contains := range m.panels {
		if contains(m.cursor) {
			return true
		}
	}
	return false
}

func (b Button) valid() bool {
	return b >= 0 && b < buttonCount
}
