package demo

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/keyloop/internal/config"
	"github.com/vovakirdan/keyloop/internal/diag"
	"github.com/vovakirdan/keyloop/internal/engine"
	"github.com/vovakirdan/keyloop/internal/timing"
)

// NewLoop wires a scene and a loop over w from cfg. The sink receives every
// diagnostic line; nil drops them. A nil clock uses the system clock.
func NewLoop(cfg config.DemoConfig, w engine.Window, sink diag.Sink, clock timing.Clock, logger *log.Logger) (*engine.Loop, *Scene, error) {
	cadence, err := cfg.Loop.Cadence()
	if err != nil {
		return nil, nil, err
	}
	bind, err := cfg.Input.KeyBind()
	if err != nil {
		return nil, nil, err
	}

	scene, err := NewScene(cfg)
	if err != nil {
		return nil, nil, err
	}

	ctx := engine.NewContext(bind)
	scene.Register(ctx.Shapes)

	loop, err := engine.NewLoop(w, ctx, scene.Hooks().WithSink(sink), engine.Options{
		Cadence:      cadence,
		PollInterval: cfg.Loop.PollInterval(),
		Clock:        clock,
		Logger:       logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("demo: %w", err)
	}
	return loop, scene, nil
}
