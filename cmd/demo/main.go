// Command demo is an interactive showcase of the ECS runtime. Entities
// with position, velocity and glyph components bounce around the terminal
// while a movement and a render system run each tick.
//
// Keys: space spawns an entity, k kills the most recent one, p toggles
// sleep on every entity, q or ESC quits.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/volt2d/ecs"
)

func main() {
	configPath := flag.String("config", "demo.toml", "path to the TOML config")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "demo: bad config:", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, "demo: logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Error("demo exited", zap.Error(err))
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
}

// newLogger builds a zap logger writing to the configured file; the
// terminal itself belongs to tcell.
func newLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{cfg.File}
	zapCfg.ErrorOutputPaths = []string{cfg.File}
	return zapCfg.Build()
}

func run(cfg Config, logger *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	width, height := screen.Size()

	m := ecs.Acquire()
	defer ecs.Release()
	m.SetErrorCallback(func(code ecs.ErrorCode, msg string) {
		logger.Warn("ecs error", zap.Uint8("code", uint8(code)), zap.String("msg", msg))
	})

	if !m.CreatePool(cfg.World.PoolName, cfg.World.PoolSize) {
		return fmt.Errorf("pool %q not created", cfg.World.PoolName)
	}
	logger.Info("world ready",
		zap.String("pool", cfg.World.PoolName),
		zap.Int("capacity", m.GetPoolSize(cfg.World.PoolName)))

	var actors []*ecs.Entity
	spawn := func() {
		e := m.CreateEntityIn(cfg.World.PoolName)
		if e == nil {
			logger.Warn("spawn failed, pool full")
			return
		}
		p := ecs.AddComponent[Position](m, e)
		p.X, p.Y = rand.Float64()*float64(width), rand.Float64()*float64(height)
		v := ecs.AddComponent[Velocity](m, e)
		v.VX, v.VY = rand.Float64()*20-10, rand.Float64()*10-5
		g := ecs.AddComponent[Glyph](m, e)
		g.Rune = rune('a' + rand.Intn(26))
		g.Style = tcell.StyleDefault.Foreground(tcell.ColorRed + tcell.Color(rand.Intn(6)))
		actors = append(actors, e)
	}
	for i := 0; i < cfg.World.EntityCount; i++ {
		spawn()
	}

	move := ecs.CreateSystem[MovementSystem](m, 0)
	move.m, move.width, move.height = m, width, height
	move.DisableDefaultPool()
	move.AddPoolName(cfg.World.PoolName)
	ecs.AddComponentType[Position](m, move)
	ecs.AddComponentType[Velocity](m, move)

	render := ecs.CreateSystem[RenderSystem](m, 1)
	render.m, render.screen = m, screen
	render.DisableDefaultPool()
	render.AddPoolName(cfg.World.PoolName)
	ecs.AddComponentType[Position](m, render)
	ecs.AddComponentType[Glyph](m, render)

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(time.Duration(cfg.Demo.TickMs) * time.Millisecond)
	defer ticker.Stop()
	last := time.Now()
	asleep := false

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape, ev.Rune() == 'q':
					logger.Info("quit", zap.Int("alive", m.GetPool(cfg.World.PoolName).CountAlive()))
					return nil
				case ev.Rune() == ' ':
					spawn()
				case ev.Rune() == 'k':
					if n := len(actors); n > 0 {
						m.KillEntity(actors[n-1])
						actors = actors[:n-1]
					}
				case ev.Rune() == 'p':
					asleep = !asleep
					for _, e := range actors {
						if asleep {
							e.Sleep()
						} else {
							e.Wake()
						}
					}
				}
			case *tcell.EventResize:
				width, height = screen.Size()
				move.width, move.height = width, height
				screen.Sync()
			}
		case <-ticker.C:
			now := time.Now()
			m.Update(now.Sub(last).Seconds())
			last = now
		}
	}
}
