// Package ebitenhost runs a blit pipeline inside an Ebitengine window.
package ebitenhost

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/blit"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title   string
	Scale   int // window pixels per framebuffer pixel
	TPS     int // ticks per second; ebiten's default when zero
	ShowFPS bool
	// MaxTicks closes the window after this many pipeline ticks. Zero means
	// no limit.
	MaxTicks uint64
}

// Host bundles the ebiten-backed devices for one pipeline.
type Host struct {
	Display  *Display
	Keyboard *Keyboard
	Pointer  *Pointer
}

// NewHost creates the devices for a width×height framebuffer.
func NewHost(width, height int) (*Host, error) {
	d, err := NewDisplay(width, height)
	if err != nil {
		return nil, err
	}
	return &Host{Display: d, Keyboard: NewKeyboard(), Pointer: NewPointer()}, nil
}

type game struct {
	ctx      context.Context
	host     *Host
	p        *blit.Pipeline
	showFPS  bool
	maxTicks uint64
}

// Update samples the devices and runs exactly one pipeline tick.
func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	g.host.Keyboard.capture()
	g.host.Pointer.capture()
	g.p.Tick()
	if g.maxTicks > 0 && g.p.Ticks() >= g.maxTicks {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if img := g.host.Display.Image(); img != nil {
		screen.DrawImage(img, nil)
	}
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.host.Display.Resolution()
}

// Run opens a window and drives p from ebiten's game loop until ctx is
// cancelled or the window is closed. p must have been created with the
// host's devices.
func Run(ctx context.Context, p *blit.Pipeline, host *Host, cfg RunConfig) error {
	w, h := host.Display.Resolution()
	scale := max(cfg.Scale, 1)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(w*scale, h*scale)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	g := &game{ctx: ctx, host: host, p: p, showFPS: cfg.ShowFPS, maxTicks: cfg.MaxTicks}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return ctx.Err()
}
