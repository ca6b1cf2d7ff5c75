package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	entities    *Entities
	byEntity    map[Entity]*GameObject
	started     bool
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		entities:    NewEntities(64),
		byEntity:    make(map[Entity]*GameObject),
	}
}

// Spawn issues a new entity handle for g and adds it to the scene.
// Objects that already carry a live handle from this scene keep it.
// Once the scene has started, g is started on the spot.
func (s *Scene) Spawn(g *GameObject) Entity {
	if s.entities == nil {
		s.entities = NewEntities(64)
	}
	if s.byEntity == nil {
		s.byEntity = make(map[Entity]*GameObject)
	}
	if !s.entities.Alive(g.Entity) {
		g.Entity = s.entities.Create()
	}
	g.Scene = s
	s.byEntity[g.Entity] = g
	s.GameObjects = append(s.GameObjects, g)
	if s.started {
		g.Start()
	}
	return g.Entity
}

// Despawn removes g and releases its handle.
func (s *Scene) Despawn(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	if s.byEntity[g.Entity] == g {
		delete(s.byEntity, g.Entity)
		s.entities.Release(g.Entity)
	}
	g.Scene = nil
}

// Get returns the object spawned under e, or nil.
func (s *Scene) Get(e Entity) *GameObject {
	return s.byEntity[e]
}

// Len returns the number of live objects.
func (s *Scene) Len() int {
	return len(s.GameObjects)
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	s.started = true
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
