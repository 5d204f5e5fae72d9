package ecs

import (
	"github.com/phanxgames/blit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Donburi event types for everything the pipeline handles in a tick.
// Subscribe to these in your ECS systems.
var (
	KeyEventType     = events.NewEventType[blit.KeyEvent]()
	PointerEventType = events.NewEventType[blit.PointerState]()
	BounceEventType  = events.NewEventType[blit.BounceEvent]()
)

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on the world and delivered when the caller runs ProcessEvents (or
// events.ProcessAllEvents).
func NewDonburiSink(world donburi.World) blit.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitKey(ev blit.KeyEvent) {
	KeyEventType.Publish(s.world, ev)
}

func (s *donburiSink) EmitPointer(st blit.PointerState) {
	PointerEventType.Publish(s.world, st)
}

func (s *donburiSink) EmitBounce(ev blit.BounceEvent) {
	BounceEventType.Publish(s.world, ev)
}
