package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	ErrNoResource     = errors.New("resource not found")
	ErrAlreadyStarted = errors.New("startup stage already ran")
)

// Stage groups systems that run together.
type Stage int

const (
	// Startup systems run once, before the first frame.
	Startup Stage = iota
	// Update systems run every frame in registration order.
	Update
)

func (s Stage) String() string {
	switch s {
	case Startup:
		return "startup"
	case Update:
		return "update"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// SystemFunc is one unit of frame work. The scene and resources are the only
// shared state a system may touch.
type SystemFunc func(scene *Scene, res *Resources) error

type system struct {
	name string
	run  SystemFunc
}

// Schedule runs systems stage by stage in the order they were added, so a
// system always observes the writes of the ones registered before it.
type Schedule struct {
	stages  map[Stage][]system
	started bool
	log     zerolog.Logger
}

func NewSchedule(log zerolog.Logger) *Schedule {
	return &Schedule{
		stages: make(map[Stage][]system),
		log:    log,
	}
}

func (s *Schedule) AddSystem(stage Stage, name string, fn SystemFunc) {
	s.stages[stage] = append(s.stages[stage], system{name: name, run: fn})
}

// Systems lists the system names of a stage in run order.
func (s *Schedule) Systems(stage Stage) []string {
	names := make([]string, 0, len(s.stages[stage]))
	for _, sys := range s.stages[stage] {
		names = append(names, sys.name)
	}
	return names
}

// RunStartup runs the startup stage once. The first failing system aborts it.
func (s *Schedule) RunStartup(scene *Scene, res *Resources) error {
	if s.started {
		return ErrAlreadyStarted
	}
	s.started = true
	for _, sys := range s.stages[Startup] {
		s.log.Debug().Str("system", sys.name).Msg("startup")
		if err := sys.run(scene, res); err != nil {
			return fmt.Errorf("%s: %w", sys.name, err)
		}
	}
	scene.Start()
	return nil
}

// RunUpdate runs every update system. A failing system does not stop the
// ones after it; all failures come back joined.
func (s *Schedule) RunUpdate(scene *Scene, res *Resources) error {
	var errs []error
	for _, sys := range s.stages[Update] {
		if err := sys.run(scene, res); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", sys.name, err))
		}
	}
	return errors.Join(errs...)
}
