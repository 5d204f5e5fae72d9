package blit

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/component"
	"github.com/yohamta/donburi/filter"
)

// Role marks what drives an entity.
type Role uint8

const (
	RoleAmbient Role = iota // moves on its own velocity only
	RolePlayer              // velocity is steered by direction keys
)

// Sprite attaches a shared raster to an entity.
type Sprite struct {
	Raster *Raster
}

// Components. Each is an independent attribute bundle; any combination may
// be attached to an entity.
var (
	PositionComponent = donburi.NewComponentType[Position]()
	VelocityComponent = donburi.NewComponentType[Velocity]()
	SpriteComponent   = donburi.NewComponentType[Sprite]()
	RoleComponent     = donburi.NewComponentType[Role]()
)

var (
	movingQuery  = donburi.NewQuery(filter.Contains(PositionComponent, VelocityComponent))
	visibleQuery = donburi.NewQuery(filter.Contains(PositionComponent, SpriteComponent))
	steerQuery   = donburi.NewQuery(filter.Contains(VelocityComponent, RoleComponent))
)

// Entity describes an entity to spawn. Velocity and Sprite are optional;
// a nil Velocity makes the entity static and a nil Sprite makes it invisible.
type Entity struct {
	Position Position
	Velocity *Velocity
	Sprite   *Raster
	Role     Role
}

// Spawn creates e in world and returns its identity. Negative coordinates are
// clamped to 0.
func Spawn(world donburi.World, e Entity) donburi.Entity {
	components := []component.IComponentType{PositionComponent, RoleComponent}
	if e.Velocity != nil {
		components = append(components, VelocityComponent)
	}
	if e.Sprite != nil {
		components = append(components, SpriteComponent)
	}

	id := world.Create(components...)
	entry := world.Entry(id)

	pos := e.Position
	pos.X = max(pos.X, 0)
	pos.Y = max(pos.Y, 0)
	PositionComponent.SetValue(entry, pos)
	RoleComponent.SetValue(entry, e.Role)
	if e.Velocity != nil {
		VelocityComponent.SetValue(entry, *e.Velocity)
	}
	if e.Sprite != nil {
		SpriteComponent.SetValue(entry, Sprite{Raster: e.Sprite})
	}
	return id
}

// extent returns the footprint used by the bounce rule. Entities without a
// sprite occupy a single pixel.
func extent(entry *donburi.Entry) (int, int) {
	if entry.HasComponent(SpriteComponent) {
		if r := SpriteComponent.Get(entry).Raster; r != nil {
			return r.Size()
		}
	}
	return 1, 1
}
