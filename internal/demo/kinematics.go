package demo

import (
	"github.com/vovakirdan/keyloop/internal/core"
	"github.com/vovakirdan/keyloop/internal/shape"
)

// Direction sums the directional contributions of the held actions.
// Opposite directions cancel out.
func Direction(keys core.KeyState, moveDelta float64) core.Vec2 {
	var v core.Vec2
	if keys.Held(core.ActionUp) {
		v = v.Add(core.Vec2{Y: -moveDelta})
	}
	if keys.Held(core.ActionDown) {
		v = v.Add(core.Vec2{Y: moveDelta})
	}
	if keys.Held(core.ActionLeft) {
		v = v.Add(core.Vec2{X: -moveDelta})
	}
	if keys.Held(core.ActionRight) {
		v = v.Add(core.Vec2{X: moveDelta})
	}
	return v
}

// Accelerate moves e's velocity one acceleration step toward MaxVelocity
// while run is held, or toward MinVelocity otherwise. The result never
// leaves [MinVelocity, MaxVelocity] once inside it.
func Accelerate(e *shape.Entity, run bool) {
	if run {
		if e.Velocity < e.MaxVelocity {
			e.Velocity = min(e.Velocity+e.Acceleration, e.MaxVelocity)
		}
		return
	}
	if e.Velocity > e.MinVelocity {
		e.Velocity = max(e.Velocity-e.Acceleration, e.MinVelocity)
	}
}

// Drive applies one update tick of input to e: the velocity step first, then
// the move. Nothing moves when the direction cancels out.
// Width and height bound the move; zero leaves that axis unbounded.
func Drive(e *shape.Entity, keys core.KeyState, moveDelta float64, width, height int) {
	Accelerate(e, keys.Held(core.ActionRun))

	dir := Direction(keys, moveDelta)
	if dir.IsZero() {
		return
	}
	e.MoveWithin(dir.Scale(e.Velocity), width, height)
}
