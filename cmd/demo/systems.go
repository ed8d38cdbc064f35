package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/volt2d/ecs"
)

type Position struct {
	ecs.ComponentBase
	X, Y float64
}

type Velocity struct {
	ecs.ComponentBase
	VX, VY float64
}

type Glyph struct {
	ecs.ComponentBase
	Rune  rune
	Style tcell.Style
}

// MovementSystem integrates velocities and bounces entities off the
// screen edges.
type MovementSystem struct {
	ecs.SystemBase
	m             *ecs.Manager
	width, height int
}

func (s *MovementSystem) Update(delta float64, entities []*ecs.Entity) {
	for _, e := range entities {
		p := ecs.GetComponent[Position](s.m, e)
		v := ecs.GetComponent[Velocity](s.m, e)
		p.X += v.VX * delta
		p.Y += v.VY * delta
		if p.X < 0 {
			p.X, v.VX = 0, -v.VX
		}
		if p.Y < 0 {
			p.Y, v.VY = 0, -v.VY
		}
		if edge := float64(s.width - 1); p.X > edge {
			p.X, v.VX = edge, -v.VX
		}
		if edge := float64(s.height - 1); p.Y > edge {
			p.Y, v.VY = edge, -v.VY
		}
	}
}

// RenderSystem draws every glyph-bearing entity. It runs after movement.
type RenderSystem struct {
	ecs.SystemBase
	m      *ecs.Manager
	screen tcell.Screen
}

func (s *RenderSystem) Update(_ float64, entities []*ecs.Entity) {
	s.screen.Clear()
	for _, e := range entities {
		p := ecs.GetComponent[Position](s.m, e)
		g := ecs.GetComponent[Glyph](s.m, e)
		s.screen.SetContent(int(p.X), int(p.Y), g.Rune, nil, g.Style)
	}
	s.screen.Show()
}
