// Package ecs bridges blit pipeline events into a [Donburi] world.
//
// [NewDonburiSink] republishes drained key events, pointer samples and bounce
// reversals as typed Donburi events. Subscribe to [KeyEventType],
// [PointerEventType] or [BounceEventType] in your ECS systems and drain them
// with events.ProcessAllEvents once per tick.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	pipeline.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
