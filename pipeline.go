package blit

import (
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// PipelineConfig holds the devices and options for NewPipeline. Only Display
// is required.
type PipelineConfig struct {
	Display  Display
	Keyboard Keyboard   // nil: no key device, injected events only
	Pointer  Pointer    // nil: no pointer device
	Ticks    TickSource // nil: HardwareTicks()
	Logger   *zap.Logger

	// Background is the initial clear color (black when zero).
	Background RGB
	// FadeTicks is how many ticks a palette change takes to blend in.
	FadeTicks int
	// FadeEase shapes the palette blend. Defaults to ease.Linear.
	FadeEase ease.TweenFunc

	DiagnosticsPeriod time.Duration
	ScreenshotDir     string
	Debug             bool
}

// Pipeline is the per-tick frame loop. It owns the surface, the input queues
// and the clock, and reads entities from a Donburi world. A Pipeline is not
// safe for concurrent use; exactly one goroutine calls Tick.
type Pipeline struct {
	world   donburi.World
	surface *Surface
	display Display
	log     *zap.Logger

	keyboard Keyboard
	pointer  Pointer
	keys     EventQueue[KeyEvent]
	pointers EventQueue[PointerState]
	tracker  PointerTracker

	clock       *Clock
	diagnostics *Diagnostics
	fade        *backgroundFade
	fadeTicks   int
	fadeEase    ease.TweenFunc

	handlers handlerRegistry
	sink     EventSink

	injectKeys     []KeyEvent
	injectPointers []PointerState
	testRunner     *TestRunner

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir   string
	screenshotQueue []string

	debug       bool
	ticks       uint64
	commitFails uint64
}

// NewPipeline creates a pipeline whose surface matches the display's
// resolution. A missing display or an unusable resolution is a setup error.
func NewPipeline(world donburi.World, cfg PipelineConfig) (*Pipeline, error) {
	if world == nil {
		return nil, fmt.Errorf("new pipeline: world: %w", ErrNoDevice)
	}
	if cfg.Display == nil {
		return nil, fmt.Errorf("new pipeline: display: %w", ErrNoDevice)
	}
	w, h := cfg.Display.Resolution()
	surface, err := NewSurface(w, h)
	if err != nil {
		return nil, fmt.Errorf("new pipeline: %w", err)
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	ticks := cfg.Ticks
	if ticks == nil {
		ticks = HardwareTicks()
	}
	dir := cfg.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}

	p := &Pipeline{
		world:         world,
		surface:       surface,
		display:       cfg.Display,
		log:           log,
		keyboard:      cfg.Keyboard,
		pointer:       cfg.Pointer,
		clock:         NewClock(ticks),
		diagnostics:   NewDiagnostics(cfg.DiagnosticsPeriod, log),
		fade:          newBackgroundFade(cfg.Background),
		fadeTicks:     cfg.FadeTicks,
		fadeEase:      cfg.FadeEase,
		ScreenshotDir: dir,
		debug:         cfg.Debug,
	}
	log.Debug("pipeline ready", zap.Int("width", w), zap.Int("height", h))
	return p, nil
}

// World returns the entity world the pipeline reads.
func (p *Pipeline) World() donburi.World {
	return p.world
}

// Surface returns the off-screen framebuffer.
func (p *Pipeline) Surface() *Surface {
	return p.surface
}

// Pointer returns the accumulated pointer state.
func (p *Pipeline) Pointer() PointerTracker {
	return p.tracker
}

// Background returns the color the next clear will use.
func (p *Pipeline) Background() RGB {
	return p.fade.current
}

// Clock returns the pipeline's time source.
func (p *Pipeline) Clock() *Clock {
	return p.clock
}

// Diagnostics returns the frame timing reporter.
func (p *Pipeline) Diagnostics() *Diagnostics {
	return p.diagnostics
}

// Ticks returns the number of completed ticks.
func (p *Pipeline) Ticks() uint64 {
	return p.ticks
}

// CommitFailures returns how many commits have failed so far.
func (p *Pipeline) CommitFailures() uint64 {
	return p.commitFails
}

// SetEventSink forwards drained input and bounces to sink. Pass nil to detach.
func (p *Pipeline) SetEventSink(sink EventSink) {
	p.sink = sink
}

// SetDebugMode enables per-step timing logs at debug level.
func (p *Pipeline) SetDebugMode(enabled bool) {
	p.debug = enabled
}

// Tick runs one frame: sample input, translate it, integrate, bounce, clear,
// composite, commit. The order never changes and no step is skipped.
func (p *Pipeline) Tick() {
	p.clock.Update()
	if p.testRunner != nil {
		p.testRunner.step(p)
	}

	var stats debugStats
	var t0 time.Time
	mark := func(d *time.Duration) {
		if p.debug {
			now := time.Now()
			*d = now.Sub(t0)
			t0 = now
		}
	}
	if p.debug {
		t0 = time.Now()
	}

	p.sampleInput()
	mark(&stats.sample)
	p.applyInput()
	mark(&stats.input)
	p.integrate()
	mark(&stats.integrate)
	p.resolveBounce()
	mark(&stats.bounce)
	p.surface.Fill(p.fade.Update())
	mark(&stats.clear)
	stats.sprites = p.composite()
	mark(&stats.composite)
	p.commit()
	mark(&stats.commit)

	p.flushScreenshots()
	p.ticks++
	p.diagnostics.Sample(p.clock.Elapsed())
	p.fireTick()

	if p.debug {
		p.debugLog(stats)
	}
}

// sampleInput drains the devices into the per-class queues. Injected events
// are appended after device events.
func (p *Pipeline) sampleInput() {
	if p.keyboard != nil {
		for {
			ev, ok := p.keyboard.Poll()
			if !ok {
				break
			}
			p.keys.Push(ev)
		}
	}
	if p.pointer != nil {
		if s, ok := p.pointer.PollState(); ok {
			p.pointers.Push(s)
		}
	}
	p.processInjectedInput()
}

// applyInput drains both queues. Direction keys steer player entities,
// palette keys start a background fade, PageUp/PageDown brighten or darken
// the background one level per press, pointer samples accumulate.
func (p *Pipeline) applyInput() {
	keys := p.keys.Drain()
	for _, ev := range keys {
		if ev.Kind == KeyPrintable {
			if c, ok := Palette(ev.Rune); ok {
				p.fade.Start(c, p.fadeTicks, p.fadeEase)
			}
		} else if step, ok := BrightnessStep(ev); ok {
			p.fade.Shift(step)
		}
		p.fireKey(ev)
	}

	if dx, dy := Steer(keys); dx != 0 || dy != 0 {
		steerQuery.Each(p.world, func(entry *donburi.Entry) {
			if *RoleComponent.Get(entry) != RolePlayer {
				return
			}
			v := VelocityComponent.Get(entry)
			v.DX += dx
			v.DY += dy
		})
	}

	for _, s := range p.pointers.Drain() {
		p.tracker.Apply(s)
		if p.sink != nil {
			p.sink.EmitPointer(s)
		}
	}
}

func (p *Pipeline) integrate() {
	w, h := p.surface.Size()
	movingQuery.Each(p.world, func(entry *donburi.Entry) {
		pos := PositionComponent.Get(entry)
		*pos = Integrate(*pos, *VelocityComponent.Get(entry), w, h)
	})
}

func (p *Pipeline) resolveBounce() {
	w, h := p.surface.Size()
	movingQuery.Each(p.world, func(entry *donburi.Entry) {
		pos := *PositionComponent.Get(entry)
		vel := VelocityComponent.Get(entry)
		ew, eh := extent(entry)

		next, axis := Bounce(pos, *vel, ew, eh, w, h)
		if axis == 0 {
			return
		}
		*vel = next
		p.fireBounce(BounceEvent{Entity: entry.Entity(), Axis: axis, Position: pos, Velocity: next})
	})
}

func (p *Pipeline) composite() int {
	n := 0
	visibleQuery.Each(p.world, func(entry *donburi.Entry) {
		pos := PositionComponent.Get(entry)
		p.surface.Composite(SpriteComponent.Get(entry).Raster, pos.X, pos.Y)
		n++
	})
	return n
}

// commit is best effort: a failure is logged and the tick carries on.
func (p *Pipeline) commit() {
	if err := p.surface.Commit(p.display); err != nil {
		p.commitFails++
		p.log.Warn("failed to update display output",
			zap.Error(err),
			zap.Uint64("tick", p.ticks),
			zap.Uint64("failures", p.commitFails),
		)
	}
}
