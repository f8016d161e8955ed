// Package demo is the key loop demonstration: a player rectangle steered by
// the bound actions, extra animated rectangles and a one-line HUD.
package demo

import (
	"fmt"

	"github.com/vovakirdan/keyloop/internal/config"
	"github.com/vovakirdan/keyloop/internal/core"
	"github.com/vovakirdan/keyloop/internal/engine"
	"github.com/vovakirdan/keyloop/internal/shape"
)

// Scene holds the demo's entities and drives them from the update hook.
type Scene struct {
	Player *shape.Entity

	// Entities in draw order; the player is last so it draws on top.
	entities []*shape.Entity

	moveDelta float64
	clamp     bool
	title     string
}

// NewScene builds the scene described by cfg.
func NewScene(cfg config.DemoConfig) (*Scene, error) {
	s := &Scene{
		moveDelta: cfg.Player.MoveDelta,
		clamp:     cfg.Player.ClampToWindow,
		title:     cfg.Window.Title,
	}

	for i, sc := range cfg.Shapes {
		e, err := newShape(sc)
		if err != nil {
			return nil, fmt.Errorf("demo: shapes[%d]: %w", i, err)
		}
		s.entities = append(s.entities, e)
	}

	p := cfg.Player
	player := shape.NewRect(p.X, p.Y, p.Width, p.Height, core.ColorWhite)
	if g := config.GlyphRune(p.Glyph); g != 0 {
		player.Glyph = g
	}
	player.MinVelocity = p.MinVelocity
	player.MaxVelocity = p.MaxVelocity
	player.Acceleration = p.Acceleration
	player.Velocity = core.ClampF(p.Velocity, p.MinVelocity, p.MaxVelocity)
	if len(p.Colors) > 0 {
		anim, err := newAnimation(p.Colors, p.AnimationsPerSecond)
		if err != nil {
			return nil, fmt.Errorf("demo: player: %w", err)
		}
		player.SetAnimation(anim)
	}

	s.Player = player
	s.entities = append(s.entities, player)
	return s, nil
}

func newShape(sc config.ShapeConfig) (*shape.Entity, error) {
	fill := core.ColorWhite
	if sc.Color != "" {
		c, err := core.ParseColor(sc.Color)
		if err != nil {
			return nil, err
		}
		fill = c
	}

	e := shape.NewRect(sc.X, sc.Y, sc.Width, sc.Height, fill)
	if g := config.GlyphRune(sc.Glyph); g != 0 {
		e.Glyph = g
	}
	if len(sc.Colors) > 0 {
		anim, err := newAnimation(sc.Colors, sc.AnimationsPerSecond)
		if err != nil {
			return nil, err
		}
		e.SetAnimation(anim)
	}
	return e, nil
}

func newAnimation(names []string, perSecond float64) (*shape.Animation, error) {
	colors, err := core.ParseColors(names)
	if err != nil {
		return nil, err
	}
	return shape.NewAnimation(colors, perSecond)
}

// Entities returns the scene's entities in draw order.
func (s *Scene) Entities() []*shape.Entity {
	return s.entities
}

// Register adds every entity to the registry in draw order.
func (s *Scene) Register(reg *shape.Registry) {
	for _, e := range s.entities {
		reg.Add(e)
	}
}

// Update is the fixed-step update hook: it steers the player from the held
// actions and advances every entity's color cycle by the nominal delta.
func (s *Scene) Update(ctx *engine.Context, deltaMillis float64) {
	w, h := 0, 0
	if s.clamp {
		w, h = ctx.Width, ctx.Height-hudRows
	}
	Drive(s.Player, ctx.Keys, s.moveDelta, w, h)

	for _, e := range s.entities {
		shape.Animate(e, deltaMillis)
	}
}

// Hooks returns the loop hooks for this scene.
func (s *Scene) Hooks() engine.Hooks {
	return engine.Hooks{
		Update: s.Update,
		Draw:   s.DrawHUD,
	}
}
