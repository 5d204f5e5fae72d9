package blit

import "github.com/yohamta/donburi"

// BounceEvent reports a velocity reversal resolved during a tick.
type BounceEvent struct {
	Entity   donburi.Entity
	Axis     Axis
	Position Position
	Velocity Velocity // after reversal
}

// EventSink receives every drained input event and every bounce, in the
// order the pipeline handles them. See the ecs package for a Donburi adapter.
type EventSink interface {
	EmitKey(ev KeyEvent)
	EmitPointer(s PointerState)
	EmitBounce(ev BounceEvent)
}

type callbackKind uint8

const (
	callbackKey callbackKind = iota
	callbackBounce
	callbackTick
)

type keyHandler struct {
	id uint32
	fn func(KeyEvent)
}

type bounceHandler struct {
	id uint32
	fn func(BounceEvent)
}

type tickHandler struct {
	id uint32
	fn func(uint64)
}

type handlerRegistry struct {
	key    []keyHandler
	bounce []bounceHandler
	tick   []tickHandler
	nextID uint32
}

// CallbackHandle allows removing a registered pipeline callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind callbackKind
}

// Remove unregisters the callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case callbackKey:
		h.reg.key = removeHandler(h.reg.key, h.id, func(k keyHandler) uint32 { return k.id })
	case callbackBounce:
		h.reg.bounce = removeHandler(h.reg.bounce, h.id, func(b bounceHandler) uint32 { return b.id })
	case callbackTick:
		h.reg.tick = removeHandler(h.reg.tick, h.id, func(t tickHandler) uint32 { return t.id })
	}
}

func removeHandler[T any](list []T, id uint32, idOf func(T) uint32) []T {
	for i, h := range list {
		if idOf(h) == id {
			// Copy so a fire loop ranging over the old slice is unaffected.
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}

// OnKey registers fn to run for every key event drained in step 2 of a tick.
func (p *Pipeline) OnKey(fn func(KeyEvent)) CallbackHandle {
	p.handlers.nextID++
	id := p.handlers.nextID
	p.handlers.key = append(p.handlers.key, keyHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &p.handlers, kind: callbackKey}
}

// OnBounce registers fn to run for every velocity reversal.
func (p *Pipeline) OnBounce(fn func(BounceEvent)) CallbackHandle {
	p.handlers.nextID++
	id := p.handlers.nextID
	p.handlers.bounce = append(p.handlers.bounce, bounceHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &p.handlers, kind: callbackBounce}
}

// OnTick registers fn to run at the end of every tick, after the commit. fn
// receives the number of completed ticks including this one.
func (p *Pipeline) OnTick(fn func(tick uint64)) CallbackHandle {
	p.handlers.nextID++
	id := p.handlers.nextID
	p.handlers.tick = append(p.handlers.tick, tickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &p.handlers, kind: callbackTick}
}

func (p *Pipeline) fireKey(ev KeyEvent) {
	for _, h := range p.handlers.key {
		h.fn(ev)
	}
	if p.sink != nil {
		p.sink.EmitKey(ev)
	}
}

func (p *Pipeline) fireBounce(ev BounceEvent) {
	for _, h := range p.handlers.bounce {
		h.fn(ev)
	}
	if p.sink != nil {
		p.sink.EmitBounce(ev)
	}
}

func (p *Pipeline) fireTick() {
	for _, h := range p.handlers.tick {
		h.fn(p.ticks)
	}
}
