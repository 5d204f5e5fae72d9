// bounce spawns a handful of entities that drift around the framebuffer and
// reverse at its edges. Arrow keys steer the player entity, '1'..'5' fade the
// background and Escape quits.
//
//	go run ./demos/bounce -config demos/bounce/bounce.yaml -backend terminal
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"go.uber.org/zap"

	"github.com/phanxgames/blit"
	"github.com/phanxgames/blit/config"
	"github.com/phanxgames/blit/ebitenhost"
	"github.com/phanxgames/blit/ecs"
	"github.com/phanxgames/blit/sound"
	"github.com/phanxgames/blit/termhost"
)

const (
	exitRuntime = 1
	exitConfig  = 2
	exitSetup   = 3
)

// devices is what a backend hands to the pipeline, plus how to drive it.
type devices struct {
	display  blit.Display
	keyboard blit.Keyboard
	pointer  blit.Pointer
	run      func(ctx context.Context, p *blit.Pipeline) error
	close    func()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML run configuration")
	backend := flag.String("backend", "", "override display.backend (ebiten, terminal, headless)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err == nil && *backend != "" {
		cfg.Display.Backend = *backend
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitConfig)
	}

	logger, err := cfg.Log.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitConfig)
	}
	logger = logger.With(zap.String("run", uuid.NewString()))

	code := run(cfg, logger)
	_ = logger.Sync()
	os.Exit(code)
}

func run(cfg config.Config, logger *zap.Logger) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sprite, err := loadSprite(cfg.Sprite)
	if err != nil {
		logger.Error("sprite", zap.Error(err))
		return exitSetup
	}

	dev, err := openBackend(cfg)
	if err != nil {
		logger.Error("display", zap.String("backend", cfg.Display.Backend), zap.Error(err))
		return exitSetup
	}
	defer dev.close()

	world := donburi.NewWorld()
	spawnEntities(world, cfg.Entities, sprite)

	p, err := blit.NewPipeline(world, blit.PipelineConfig{
		Display:           dev.display,
		Keyboard:          dev.keyboard,
		Pointer:           dev.pointer,
		Logger:            logger,
		FadeTicks:         cfg.FadeTicks,
		DiagnosticsPeriod: cfg.Diagnostics.Period,
		ScreenshotDir:     cfg.Screenshots,
		Debug:             cfg.Debug,
	})
	if err != nil {
		logger.Error("pipeline", zap.Error(err))
		return exitSetup
	}
	p.SetEventSink(ecs.NewDonburiSink(world))
	ecs.BounceEventType.Subscribe(world, func(_ donburi.World, ev blit.BounceEvent) {
		logger.Debug("bounce",
			zap.Int("x", ev.Position.X),
			zap.Int("y", ev.Position.Y),
			zap.Int("dx", ev.Velocity.DX),
			zap.Int("dy", ev.Velocity.DY),
		)
	})
	p.OnTick(func(uint64) { events.ProcessAllEvents(world) })
	p.OnKey(func(ev blit.KeyEvent) {
		if ev.Kind == blit.KeySpecial && ev.Code == blit.ScanEscape {
			cancel()
		}
	})

	if cfg.Sound.Enabled {
		attachChime(p, cfg.Sound, logger)
	}
	if cfg.Script != "" {
		data, err := os.ReadFile(cfg.Script)
		if err != nil {
			logger.Error("test script", zap.Error(err))
			return exitSetup
		}
		runner, err := blit.LoadTestScript(data)
		if err != nil {
			logger.Error("test script", zap.Error(err))
			return exitSetup
		}
		p.SetTestRunner(runner)
	}

	w, h := p.Surface().Size()
	logger.Info("running",
		zap.String("backend", cfg.Display.Backend),
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Int("entities", len(cfg.Entities)),
	)

	err = dev.run(ctx, p)
	logger.Info("stopped",
		zap.Uint64("ticks", p.Ticks()),
		zap.Uint64("commit_failures", p.CommitFailures()),
	)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("run", zap.Error(err))
		return exitRuntime
	}
	return 0
}

func loadSprite(sc config.SpriteConfig) (*blit.Raster, error) {
	var (
		r   *blit.Raster
		err error
	)
	if sc.Path != "" {
		data, rerr := os.ReadFile(sc.Path)
		if rerr != nil {
			return nil, fmt.Errorf("read sprite: %w", rerr)
		}
		r, err = blit.DecodeRaster(data)
	} else {
		c := blit.RGB{R: uint8(sc.Color[0]), G: uint8(sc.Color[1]), B: uint8(sc.Color[2])}
		r, err = blit.DiscRaster(sc.Diameter, c)
	}
	if err != nil {
		return nil, err
	}
	if sc.Scale > 1 {
		return r.Scale(sc.Scale)
	}
	return r, nil
}

func spawnEntities(world donburi.World, entities []config.EntityConfig, sprite *blit.Raster) {
	for _, ec := range entities {
		e := blit.Entity{Position: blit.Position{X: ec.X, Y: ec.Y}}
		if !ec.Static {
			e.Velocity = &blit.Velocity{DX: ec.DX, DY: ec.DY}
		}
		if !ec.Hidden {
			e.Sprite = sprite
		}
		if ec.Player {
			e.Role = blit.RolePlayer
		}
		blit.Spawn(world, e)
	}
}

func attachChime(p *blit.Pipeline, sc config.SoundConfig, logger *zap.Logger) {
	chime, err := sound.New(sc.Frequency, sc.Duration, sc.Volume)
	if err != nil {
		logger.Warn("chime disabled", zap.Error(err))
		return
	}
	if err := chime.Init(); err != nil {
		logger.Warn("chime disabled", zap.Error(err))
		return
	}
	chime.Attach(p)
}

func openBackend(cfg config.Config) (*devices, error) {
	opts := blit.RunOptions{TPS: cfg.TPS, MaxTicks: cfg.MaxTicks}

	switch cfg.Display.Backend {
	case config.BackendEbiten:
		host, err := ebitenhost.NewHost(cfg.Display.Width, cfg.Display.Height)
		if err != nil {
			return nil, err
		}
		rc := ebitenhost.RunConfig{
			Title:    cfg.Display.Title,
			Scale:    cfg.Display.Scale,
			TPS:      cfg.TPS,
			ShowFPS:  cfg.Display.ShowFPS,
			MaxTicks: cfg.MaxTicks,
		}
		return &devices{
			display:  host.Display,
			keyboard: host.Keyboard,
			pointer:  host.Pointer,
			run: func(ctx context.Context, p *blit.Pipeline) error {
				return ebitenhost.Run(ctx, p, host, rc)
			},
			close: host.Display.Dispose,
		}, nil

	case config.BackendTerminal:
		host, err := termhost.Open()
		if err != nil {
			return nil, err
		}
		return &devices{
			display:  host,
			keyboard: host,
			pointer:  host,
			run: func(ctx context.Context, p *blit.Pipeline) error {
				return blit.Run(ctx, p, opts)
			},
			close: host.Close,
		}, nil

	default:
		digest := blit.NewDigestDisplay(cfg.Display.Width, cfg.Display.Height)
		return &devices{
			display: digest,
			run: func(ctx context.Context, p *blit.Pipeline) error {
				if runner := p.TestRunner(); runner != nil {
					opts.Until = runner.Done
				}
				err := blit.Run(ctx, p, opts)
				fmt.Printf("%s %d\n", digest.Hash(), digest.Frames())
				return err
			},
			close: func() {},
		}, nil
	}
}
