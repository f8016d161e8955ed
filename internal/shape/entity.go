// Package shape provides the drawable entities of the demo: rectangles with a
// fill color, an optional color-cycling animation and the kinematic scalars
// used by the Run action.
package shape

import (
	"github.com/vovakirdan/keyloop/internal/core"
)

// DefaultGlyph fills rectangles when no glyph is configured.
const DefaultGlyph = '█'

// Drawable is anything the draw pass can render into a screen buffer.
type Drawable interface {
	Draw(dst *core.Screen)
}

// Entity is a rectangle with a fill color. Geometry is kept in fractional
// cells so sub-cell velocities accumulate between updates.
type Entity struct {
	X, Y float64 // Top-left corner
	W, H float64 // Size in cells

	FillColor core.Color
	Glyph     rune

	// Anim cycles FillColor when set.
	Anim *Animation

	// Kinematics, used by the Run action.
	Velocity     float64
	MinVelocity  float64
	MaxVelocity  float64
	Acceleration float64
}

// NewRect creates a static rectangle.
func NewRect(x, y, w, h float64, fill core.Color) *Entity {
	return &Entity{
		X:         x,
		Y:         y,
		W:         w,
		H:         h,
		FillColor: fill,
		Glyph:     DefaultGlyph,
	}
}

// SetAnimation attaches a color cycle and shows its current color.
func (e *Entity) SetAnimation(a *Animation) {
	e.Anim = a
	if c, ok := a.Current(); ok {
		e.FillColor = c
	}
}

// Bounds returns the entity's area rounded to whole cells.
func (e *Entity) Bounds() core.Rect {
	return core.NewRect(core.Round(e.X), core.Round(e.Y), core.Round(e.W), core.Round(e.H))
}

// Draw fills the entity's bounds with its glyph and fill color.
func (e *Entity) Draw(dst *core.Screen) {
	glyph := e.Glyph
	if glyph == 0 {
		glyph = DefaultGlyph
	}
	dst.DrawRect(e.Bounds(), core.Cell{Rune: glyph, Color: e.FillColor})
}

// MoveWithin translates the entity by v and keeps it inside a w x h area.
func (e *Entity) MoveWithin(v core.Vec2, w, h int) {
	e.X += v.X
	e.Y += v.Y
	if w > 0 {
		e.X = core.ClampF(e.X, 0, max(0, float64(w)-e.W))
	}
	if h > 0 {
		e.Y = core.ClampF(e.Y, 0, max(0, float64(h)-e.H))
	}
}

// Text is a single line of HUD text.
type Text struct {
	X, Y  int
	Value string
	Color core.Color
}

// Draw writes the text at its position.
func (t Text) Draw(dst *core.Screen) {
	dst.DrawText(t.X, t.Y, t.Value, t.Color)
}
