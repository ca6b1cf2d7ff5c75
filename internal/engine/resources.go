package engine

import (
	"fmt"
	"reflect"
)

// Resources holds at most one value per type: the world-wide singletons
// that systems share (drawing state, input snapshot, shared assets).
type Resources struct {
	items map[reflect.Type]any
}

func NewResources() *Resources {
	return &Resources{items: make(map[reflect.Type]any)}
}

// Insert stores res as the T resource, replacing any previous one.
func Insert[T any](r *Resources, res *T) {
	if res == nil {
		panic("engine: cannot insert nil resource")
	}
	if r.items == nil {
		r.items = make(map[reflect.Type]any)
	}
	r.items[reflect.TypeFor[T]()] = res
}

// Get returns the T resource, if present.
func Get[T any](r *Resources) (*T, bool) {
	res, ok := r.items[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return res.(*T), true
}

// Fetch is Get with an error naming the missing type, for use in systems.
func Fetch[T any](r *Resources) (*T, error) {
	res, ok := Get[T](r)
	if !ok {
		return nil, fmt.Errorf("resource %s: %w", reflect.TypeFor[T](), ErrNoResource)
	}
	return res, nil
}

// Has reports whether a T resource is present.
func Has[T any](r *Resources) bool {
	_, ok := r.items[reflect.TypeFor[T]()]
	return ok
}

// Remove drops the T resource if present.
func Remove[T any](r *Resources) {
	delete(r.items, reflect.TypeFor[T]())
}

// Len returns the number of stored resources.
func (r *Resources) Len() int {
	return len(r.items)
}
