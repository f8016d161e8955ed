package shape

import (
	"fmt"

	"github.com/vovakirdan/keyloop/internal/core"
	"github.com/vovakirdan/keyloop/internal/timing"
)

// Animation cycles through a color sequence at a fixed real-time rate,
// independent of the update and draw cadences.
type Animation struct {
	colors []core.Color
	index  int
	acc    *timing.Accumulator
}

// NewAnimation creates a color cycle advancing perSecond times per second.
// An empty color list is allowed and makes the animation a no-op.
func NewAnimation(colors []core.Color, perSecond float64) (*Animation, error) {
	if !(perSecond > 0) {
		return nil, fmt.Errorf("shape: animation rate %v: %w", perSecond, timing.ErrInvalidCadence)
	}
	acc, err := timing.NewAccumulator(1000 / perSecond)
	if err != nil {
		return nil, fmt.Errorf("shape: animation period: %w", err)
	}

	return &Animation{
		colors: append([]core.Color(nil), colors...),
		acc:    acc,
	}, nil
}

// Index returns the position of the current color.
func (a *Animation) Index() int {
	return a.index
}

// Len returns the length of the color sequence.
func (a *Animation) Len() int {
	return len(a.colors)
}

// Current returns the color at the current index, or false for an empty sequence.
func (a *Animation) Current() (core.Color, bool) {
	if a == nil || len(a.colors) == 0 {
		return core.ColorDefault, false
	}
	return a.colors[a.index], true
}

// SetColors replaces the sequence, clamping the index back to 0 if it no
// longer fits.
func (a *Animation) SetColors(colors []core.Color) {
	a.colors = append([]core.Color(nil), colors...)
	if a.index >= len(a.colors) {
		a.index = 0
	}
}

// Remainder returns the milliseconds accumulated toward the next step.
func (a *Animation) Remainder() float64 {
	return a.acc.Accumulated()
}

// Animate advances e's color cycle by deltaMillis. When a full period has
// strictly elapsed the index moves one step (wrapping) and FillColor is
// written only if the new color differs. The period is subtracted so the
// remainder carries into the next step.
func Animate(e *Entity, deltaMillis float64) {
	a := e.Anim
	if a == nil {
		return
	}
	if len(a.colors) == 0 {
		a.index = 0
		return
	}

	a.acc.Add(deltaMillis)
	if !a.acc.Consume() {
		return
	}

	a.index = (a.index + 1) % len(a.colors)
	if next := a.colors[a.index]; next != e.FillColor {
		e.FillColor = next
	}
}
