package blit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestSpawnComponents(t *testing.T) {
	world := donburi.NewWorld()
	ball, err := SolidRaster(2, 3, Red)
	require.NoError(t, err)

	moving := Spawn(world, Entity{Position: Position{1, 2}, Velocity: &Velocity{1, -1}, Sprite: ball, Role: RolePlayer})
	static := Spawn(world, Entity{Position: Position{-4, 5}, Sprite: ball})
	hidden := Spawn(world, Entity{Velocity: &Velocity{2, 2}})

	e := world.Entry(moving)
	assert.Equal(t, Position{1, 2}, *PositionComponent.Get(e))
	assert.Equal(t, Velocity{1, -1}, *VelocityComponent.Get(e))
	assert.Equal(t, RolePlayer, *RoleComponent.Get(e))
	w, h := extent(e)
	assert.Equal(t, 2, w)
	assert.Equal(t, 3, h)

	e = world.Entry(static)
	assert.False(t, e.HasComponent(VelocityComponent))
	assert.Equal(t, Position{0, 5}, *PositionComponent.Get(e), "negative coordinates clamp")

	e = world.Entry(hidden)
	assert.False(t, e.HasComponent(SpriteComponent))
	w, h = extent(e)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)

	assert.Equal(t, 2, movingQuery.Count(world))
	assert.Equal(t, 2, visibleQuery.Count(world))
}
