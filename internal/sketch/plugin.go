package sketch

import (
	"bezierpoints/internal/engine"
	"bezierpoints/internal/logging"

	"github.com/rs/zerolog"
)

// Plugin wires the sketch systems into a schedule.
type Plugin struct {
	Visuals VisualConfig
	// Diagnostics gates the console dump; nil means always on.
	Diagnostics func() bool
	Log         zerolog.Logger
}

// Build registers bootstrap at startup and, per frame, input before
// presentation before diagnostics. Presentation reads what input wrote in the
// same frame.
func (p Plugin) Build(s *engine.Schedule) {
	s.AddSystem(engine.Startup, "bootstrap", Bootstrap(p.Visuals))
	s.AddSystem(engine.Update, "input", HandleInput(logging.ForSystem(p.Log, "input")))
	s.AddSystem(engine.Update, "presentation", SyncPresentation(logging.ForSystem(p.Log, "presentation")))
	s.AddSystem(engine.Update, "diagnostics", Diagnostics(logging.ForSystem(p.Log, "diagnostics"), p.Diagnostics))
}
