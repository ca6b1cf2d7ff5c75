package assets

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ErrAllocation reports a shared asset that could not be built.
var ErrAllocation = errors.New("asset allocation failed")

// Disc is a flat filled circle mesh, drawn as a triangle fan.
type Disc struct {
	Radius   float32
	Segments int
}

// Material defines surface properties for rendering
type Material struct {
	Name  string
	Color rl.Color
}

type discKey struct {
	radius   float32
	segments int
}

// Manager allocates shared meshes and materials once and hands out the
// same pointer on every later request.
type Manager struct {
	discs     map[discKey]*Disc
	materials map[string]*Material
}

func NewManager() *Manager {
	return &Manager{
		discs:     make(map[discKey]*Disc),
		materials: make(map[string]*Material),
	}
}

// Color name mapping for materials
var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Violet":    rl.Violet,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
	"Magenta":   rl.Magenta,
}

// ParseColor accepts a color name or a "#rrggbb" / "#rrggbbaa" hex string.
func ParseColor(s string) (rl.Color, error) {
	if c, ok := colorByName[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return rl.Color{}, fmt.Errorf("unknown color %q", s)
	}
	raw, err := hex.DecodeString(s[1:])
	if err != nil || (len(raw) != 3 && len(raw) != 4) {
		return rl.Color{}, fmt.Errorf("bad hex color %q", s)
	}
	c := rl.NewColor(raw[0], raw[1], raw[2], 255)
	if len(raw) == 4 {
		c.A = raw[3]
	}
	return c, nil
}

// Disc returns the shared disc mesh for radius and segments.
func (m *Manager) Disc(radius float32, segments int) (*Disc, error) {
	if radius <= 0 {
		return nil, fmt.Errorf("disc radius %v: %w", radius, ErrAllocation)
	}
	if segments < 3 {
		return nil, fmt.Errorf("disc segments %d: %w", segments, ErrAllocation)
	}
	key := discKey{radius: radius, segments: segments}
	if d, ok := m.discs[key]; ok {
		return d, nil
	}
	d := &Disc{Radius: radius, Segments: segments}
	m.discs[key] = d
	return d, nil
}

// Material returns the shared material registered under name, creating it
// from color on first use. Later calls ignore color.
func (m *Manager) Material(name, color string) (*Material, error) {
	if mat, ok := m.materials[name]; ok {
		return mat, nil
	}
	c, err := ParseColor(color)
	if err != nil {
		return nil, fmt.Errorf("material %q: %w: %w", name, ErrAllocation, err)
	}
	mat := &Material{Name: name, Color: c}
	m.materials[name] = mat
	return mat, nil
}

// Unload drops every cached asset.
func (m *Manager) Unload() {
	clear(m.discs)
	clear(m.materials)
}
