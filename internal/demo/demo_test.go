package demo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/keyloop/internal/config"
	"github.com/vovakirdan/keyloop/internal/core"
	"github.com/vovakirdan/keyloop/internal/engine"
	"github.com/vovakirdan/keyloop/internal/shape"
	"github.com/vovakirdan/keyloop/internal/timing"
)

func held(actions ...core.Action) core.KeyState {
	var k core.KeyState
	for _, a := range actions {
		k.Press(a)
	}
	return k
}

func TestDirection(t *testing.T) {
	tests := []struct {
		name string
		keys core.KeyState
		want core.Vec2
	}{
		{"none", held(), core.Vec2{}},
		{"up", held(core.ActionUp), core.Vec2{Y: -2}},
		{"up left", held(core.ActionUp, core.ActionLeft), core.Vec2{X: -2, Y: -2}},
		{"down right", held(core.ActionDown, core.ActionRight), core.Vec2{X: 2, Y: 2}},
		{"opposites cancel", held(core.ActionLeft, core.ActionRight), core.Vec2{}},
		{"run only", held(core.ActionRun), core.Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Direction(tt.keys, 2))
		})
	}
}

func newMover(v, lo, hi, acc float64) *shape.Entity {
	e := shape.NewRect(0, 0, 1, 1, core.ColorWhite)
	e.Velocity, e.MinVelocity, e.MaxVelocity, e.Acceleration = v, lo, hi, acc
	return e
}

func TestAccelerateReachesMaxWithoutOvershoot(t *testing.T) {
	e := newMover(0.25, 0.25, 1.0, 0.25)

	for i := 0; i < 3; i++ {
		Accelerate(e, true)
	}
	assert.Equal(t, 1.0, e.Velocity)

	Accelerate(e, true)
	assert.Equal(t, 1.0, e.Velocity, "velocity must stay at max")
}

func TestAccelerateClampsUnevenSteps(t *testing.T) {
	e := newMover(0.25, 0.25, 1.0, 0.3)

	Accelerate(e, true)
	Accelerate(e, true)
	assert.InDelta(t, 0.85, e.Velocity, 1e-9)
	Accelerate(e, true)
	assert.Equal(t, 1.0, e.Velocity)

	for i := 0; i < 5; i++ {
		Accelerate(e, false)
	}
	assert.Equal(t, 0.25, e.Velocity)
}

func TestDecelerateTowardMin(t *testing.T) {
	e := newMover(1.0, 0.25, 1.0, 0.25)

	Accelerate(e, false)
	assert.Equal(t, 0.75, e.Velocity)
	Accelerate(e, false)
	Accelerate(e, false)
	assert.Equal(t, 0.25, e.Velocity)
	Accelerate(e, false)
	assert.Equal(t, 0.25, e.Velocity, "velocity must stay at min")
}

func TestDriveMovesByDirectionTimesVelocity(t *testing.T) {
	e := newMover(0.5, 0.5, 0.5, 0)
	e.X, e.Y = 10, 10

	Drive(e, held(core.ActionUp, core.ActionLeft), 2, 0, 0)
	assert.Equal(t, 9.0, e.X)
	assert.Equal(t, 9.0, e.Y)

	Drive(e, held(), 2, 0, 0)
	assert.Equal(t, 9.0, e.X, "no held direction, no move")
}

func TestDriveAcceleratesEvenWithoutDirection(t *testing.T) {
	e := newMover(0.25, 0.25, 1.0, 0.25)
	Drive(e, held(core.ActionRun), 1, 0, 0)
	assert.Equal(t, 0.5, e.Velocity)
	assert.Zero(t, e.X)
}

func TestDriveClampsToArea(t *testing.T) {
	e := newMover(1, 1, 1, 0)
	e.W, e.H = 4, 2
	e.X = 14

	Drive(e, held(core.ActionRight, core.ActionUp), 3, 20, 10)
	assert.Equal(t, 16.0, e.X)
	assert.Equal(t, 0.0, e.Y)
}

func TestNewSceneFromDefaults(t *testing.T) {
	s, err := NewScene(config.DefaultDemoConfig())
	require.NoError(t, err)

	ents := s.Entities()
	require.Len(t, ents, 3)
	assert.Same(t, s.Player, ents[2], "player draws last")

	assert.Equal(t, core.ColorRed, s.Player.FillColor, "first animation color is shown")
	assert.Equal(t, '█', s.Player.Glyph)
	assert.Equal(t, 0.25, s.Player.Velocity)
	assert.Equal(t, core.ColorBlue, ents[0].FillColor)
	assert.Equal(t, '▒', ents[0].Glyph)
	assert.Equal(t, core.ColorGray, ents[1].FillColor)
	assert.Nil(t, ents[1].Anim)
}

func TestNewSceneRejectsBadAnimation(t *testing.T) {
	cfg := config.DefaultDemoConfig()
	cfg.Shapes[0].AnimationsPerSecond = 0
	_, err := NewScene(cfg)
	assert.ErrorIs(t, err, timing.ErrInvalidCadence)
}

func TestSceneUpdateAnimatesEachEntity(t *testing.T) {
	s, err := NewScene(config.DefaultDemoConfig())
	require.NoError(t, err)
	ctx := engine.NewContext(nil)

	// Player period is 250ms, the first shape's 500ms.
	for i := 0; i < 3; i++ {
		s.Update(ctx, 100)
	}

	assert.Equal(t, 1, s.Player.Anim.Index())
	assert.Equal(t, core.ColorYellow, s.Player.FillColor)
	assert.InDelta(t, 50, s.Player.Anim.Remainder(), 1e-9)

	first := s.Entities()[0]
	assert.Equal(t, 0, first.Anim.Index())
	assert.Equal(t, core.ColorBlue, first.FillColor)
}

func newDemoLoop(t *testing.T) (*engine.Loop, *Scene, *engine.HeadlessWindow, *timing.ManualClock, *[]string) {
	t.Helper()
	cfg := config.DefaultDemoConfig()
	w := engine.NewHeadlessWindow(cfg.Window.Width, cfg.Window.Height)
	clock := timing.NewManualClock()
	var lines []string
	loop, scene, err := NewLoop(cfg, w, func(line string) { lines = append(lines, line) }, clock, nil)
	require.NoError(t, err)
	return loop, scene, w, clock, &lines
}

func TestLoopSteersPlayer(t *testing.T) {
	loop, scene, w, clock, _ := newDemoLoop(t)

	w.Press("d")
	w.Press("space")
	clock.Advance(17)
	loop.Step()

	assert.InDelta(t, 0.30, scene.Player.Velocity, 1e-9)
	assert.InDelta(t, 10.30, scene.Player.X, 1e-9)
	assert.Equal(t, 5.0, scene.Player.Y)

	w.Release("space")
	w.Release("d")
	clock.Advance(17)
	loop.Step()

	assert.InDelta(t, 0.25, scene.Player.Velocity, 1e-9)
	assert.InDelta(t, 10.30, scene.Player.X, 1e-9, "released keys stop movement")
}

func TestLoopDrawsSceneAndHUD(t *testing.T) {
	loop, _, w, clock, _ := newDemoLoop(t)

	clock.Advance(17)
	ev := loop.Step()
	require.True(t, ev.Draw)

	rows := strings.Split(w.Frame(), "\n")
	require.Len(t, rows, 24)
	assert.Equal(t, '█', w.Screen().Get(10, 5), "player top-left")
	assert.Equal(t, '▒', w.Screen().Get(40, 8))
	assert.True(t, strings.HasPrefix(rows[23], "v=0.25"), "HUD row: %q", rows[23])
}

func TestLoopReportsDiagnostics(t *testing.T) {
	loop, _, w, clock, lines := newDemoLoop(t)

	for i := 0; i < 60; i++ {
		clock.Advance(17)
		loop.Step()
	}

	// 1020ms: one diagnostic after the 59th step, counting its 59 draws.
	require.Equal(t, []string{"FPS: 59"}, *lines)
	assert.Equal(t, "FPS: 59", loop.Context().LastDiagnostic)

	clock.Advance(17)
	loop.Step()
	assert.Contains(t, w.Frame(), "FPS: 59")
}

func TestLoopClampsPlayerToWindowAboveHUD(t *testing.T) {
	loop, scene, w, clock, _ := newDemoLoop(t)
	scene.Player.Velocity = 1
	scene.Player.MinVelocity = 1

	w.Press("s")
	for i := 0; i < 40; i++ {
		clock.Advance(17)
		loop.Step()
	}

	// 24 rows minus the HUD row minus the player's height of 3.
	assert.Equal(t, 20.0, scene.Player.Y)
}

func TestNewLoopRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultDemoConfig()
	cfg.Loop.UpdateRate = 0
	_, _, err := NewLoop(cfg, engine.NewHeadlessWindow(1, 1), nil, nil, nil)
	assert.ErrorIs(t, err, timing.ErrInvalidCadence)

	cfg = config.DefaultDemoConfig()
	cfg.Input.Bindings["jump"] = []string{"j"}
	_, _, err = NewLoop(cfg, engine.NewHeadlessWindow(1, 1), nil, nil, nil)
	assert.Error(t, err)
}
