package engine

import "fmt"

// Entity is a generational handle naming one game object in a scene.
// A zero Entity is never issued and means "none".
type Entity struct {
	ID      uint32
	Version uint32 // bumped each time ID is recycled
}

// IsZero reports whether e is the empty handle.
func (e Entity) IsZero() bool {
	return e.Version == 0
}

func (e Entity) String() string {
	return fmt.Sprintf("%dv%d", e.ID, e.Version)
}

// Less orders handles by ID, then version. Used for stable listings.
func (e Entity) Less(other Entity) bool {
	if e.ID != other.ID {
		return e.ID < other.ID
	}
	return e.Version < other.Version
}

// Entities hands out Entity handles and recycles released IDs.
type Entities struct {
	versions []uint32 // current version per ID, 0 = dead
	freeIDs  []uint32
}

// NewEntities preallocates room for capacity handles.
func NewEntities(capacity int) *Entities {
	return &Entities{
		versions: make([]uint32, 0, capacity),
		freeIDs:  make([]uint32, 0, capacity),
	}
}

// Create returns a fresh live handle.
func (a *Entities) Create() Entity {
	if n := len(a.freeIDs); n > 0 {
		id := a.freeIDs[n-1]
		a.freeIDs = a.freeIDs[:n-1]
		a.versions[id] = nextVersion(a.versions[id])
		return Entity{ID: id, Version: a.versions[id]}
	}
	id := uint32(len(a.versions))
	a.versions = append(a.versions, 1)
	return Entity{ID: id, Version: 1}
}

// Release marks e dead so its ID can be reused with a new version.
// Releasing a stale or unknown handle is a no-op.
func (a *Entities) Release(e Entity) {
	if !a.Alive(e) {
		return
	}
	// Dead slots keep their last version bit-inverted so Alive fails for it.
	a.versions[e.ID] = ^a.versions[e.ID]
	a.freeIDs = append(a.freeIDs, e.ID)
}

// Alive reports whether e is the current handle for its ID.
func (a *Entities) Alive(e Entity) bool {
	if e.IsZero() || int(e.ID) >= len(a.versions) {
		return false
	}
	return a.versions[e.ID] == e.Version
}

// Len returns the number of live handles.
func (a *Entities) Len() int {
	return len(a.versions) - len(a.freeIDs)
}

func nextVersion(dead uint32) uint32 {
	v := ^dead + 1
	if v == 0 {
		v = 1
	}
	return v
}
