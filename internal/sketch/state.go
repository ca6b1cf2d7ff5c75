// Package sketch is the point-placing toy itself: the drawing state and the
// systems that fill it from mouse clicks and mirror it into the scene.
package sketch

import (
	"errors"
	"fmt"
	"slices"

	"bezierpoints/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	// ErrCursorUnavailable means a click arrived with no cursor position.
	// The frame is skipped; nothing is recorded.
	ErrCursorUnavailable = errors.New("cursor position unavailable")
	// ErrMissingEntity means a recorded point has no live scene object.
	ErrMissingEntity = errors.New("point has no scene object")
	// ErrNoCamera means no main camera exists to map the cursor.
	ErrNoCamera = errors.New("no main camera")
)

// Point is a user-placed marker. Stored by value, so it cannot change after
// it is recorded.
type Point struct {
	Position rl.Vector3
	Level    uint32
}

func (p Point) String() string {
	return fmt.Sprintf("Point{Position: (%g, %g, %g), Level: %d}",
		p.Position.X, p.Position.Y, p.Position.Z, p.Level)
}

// Line joins two points. Nothing creates lines yet; the container is kept so
// segments can be added without reshaping the state.
type Line struct {
	Start engine.Entity
	End   engine.Entity
	Level uint32
}

// PointAdded is fired after a point is recorded.
type PointAdded struct {
	Entity engine.Entity
	Point  Point
}

// DrawingState is the single store of everything the user has placed.
type DrawingState struct {
	Points       map[engine.Entity]Point
	Lines        map[engine.Entity]Line
	CurrentLevel uint32
	OnPointAdded engine.Event[PointAdded]
}

func NewDrawingState() *DrawingState {
	return &DrawingState{
		Points: make(map[engine.Entity]Point),
		Lines:  make(map[engine.Entity]Line),
	}
}

// AddPoint records p under e and notifies listeners.
func (s *DrawingState) AddPoint(e engine.Entity, p Point) {
	s.Points[e] = p
	s.OnPointAdded.Invoke(PointAdded{Entity: e, Point: p})
}

// Handles returns every point handle in ascending order.
func (s *DrawingState) Handles() []engine.Entity {
	handles := make([]engine.Entity, 0, len(s.Points))
	for e := range s.Points {
		handles = append(handles, e)
	}
	slices.SortFunc(handles, func(a, b engine.Entity) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
	return handles
}
