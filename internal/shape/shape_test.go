package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/keyloop/internal/core"
	"github.com/vovakirdan/keyloop/internal/timing"
)

func animated(t *testing.T, colors []core.Color, perSecond float64) *Entity {
	t.Helper()
	a, err := NewAnimation(colors, perSecond)
	require.NoError(t, err)
	e := NewRect(0, 0, 2, 1, core.ColorDefault)
	e.SetAnimation(a)
	return e
}

func TestNewAnimationRejectsNonPositiveRate(t *testing.T) {
	for _, rate := range []float64{0, -2} {
		_, err := NewAnimation([]core.Color{core.ColorRed}, rate)
		assert.ErrorIs(t, err, timing.ErrInvalidCadence, "rate %v", rate)
	}
}

func TestSetAnimationShowsFirstColor(t *testing.T) {
	e := animated(t, []core.Color{core.ColorRed, core.ColorBlue}, 1)
	assert.Equal(t, core.ColorRed, e.FillColor)
	assert.Equal(t, 0, e.Anim.Index())
}

func TestAnimateThreeColorExample(t *testing.T) {
	e := animated(t, []core.Color{core.ColorRed, core.ColorBlue, core.ColorGreen}, 1)

	Animate(e, 500)
	Animate(e, 500)
	assert.Equal(t, 0, e.Anim.Index(), "exactly one period does not exceed the threshold")

	Animate(e, 500)
	assert.Equal(t, 1, e.Anim.Index())
	assert.Equal(t, core.ColorBlue, e.FillColor)
	assert.Equal(t, 500.0, e.Anim.Remainder())
}

func TestAnimateWraps(t *testing.T) {
	e := animated(t, []core.Color{core.ColorRed, core.ColorBlue, core.ColorGreen}, 10)

	expected := []core.Color{core.ColorBlue, core.ColorGreen, core.ColorRed, core.ColorBlue}
	for i, want := range expected {
		Animate(e, 101)
		assert.Equal(t, want, e.FillColor, "step %d", i)
		assert.GreaterOrEqual(t, e.Anim.Index(), 0)
		assert.Less(t, e.Anim.Index(), e.Anim.Len())
	}
}

func TestAnimateFiresOncePerCall(t *testing.T) {
	e := animated(t, []core.Color{core.ColorRed, core.ColorBlue, core.ColorGreen}, 1)

	Animate(e, 5000)
	assert.Equal(t, 1, e.Anim.Index(), "a large delta advances only one step")
	assert.Equal(t, 4000.0, e.Anim.Remainder())
}

func TestAnimateEmptySequenceIsNoop(t *testing.T) {
	e := animated(t, nil, 1)
	e.FillColor = core.ColorOrange

	for i := 0; i < 5; i++ {
		Animate(e, 2000)
	}
	assert.Equal(t, core.ColorOrange, e.FillColor)
	assert.Equal(t, 0, e.Anim.Index())
	assert.Zero(t, e.Anim.Remainder())
}

func TestAnimateSingleColorSuppressesWrite(t *testing.T) {
	e := animated(t, []core.Color{core.ColorCyan}, 1)

	Animate(e, 1500)
	assert.Equal(t, 0, e.Anim.Index())
	assert.Equal(t, core.ColorCyan, e.FillColor)
	assert.Equal(t, 500.0, e.Anim.Remainder())
}

func TestAnimateWithoutAnimation(t *testing.T) {
	e := NewRect(0, 0, 1, 1, core.ColorGreen)
	Animate(e, 10000)
	assert.Equal(t, core.ColorGreen, e.FillColor)
}

func TestSetColorsClampsIndex(t *testing.T) {
	e := animated(t, []core.Color{core.ColorRed, core.ColorBlue, core.ColorGreen}, 1)
	Animate(e, 1001)
	Animate(e, 1000)
	require.Equal(t, 2, e.Anim.Index())

	e.Anim.SetColors([]core.Color{core.ColorWhite})
	assert.Equal(t, 0, e.Anim.Index())

	e.Anim.SetColors(nil)
	_, ok := e.Anim.Current()
	assert.False(t, ok)
}

func TestEntityDraw(t *testing.T) {
	s := core.NewScreen(6, 4)
	e := NewRect(1.4, 0.6, 2, 2, core.ColorRed)
	e.Draw(s)

	// (1.4, 0.6) rounds to (1, 1)
	assert.Equal(t, core.Cell{Rune: DefaultGlyph, Color: core.ColorRed}, s.GetCell(1, 1))
	assert.Equal(t, core.Cell{Rune: DefaultGlyph, Color: core.ColorRed}, s.GetCell(2, 2))
	assert.Equal(t, ' ', s.Get(0, 0))
	assert.Equal(t, ' ', s.Get(3, 1))
}

func TestEntityMoveWithin(t *testing.T) {
	e := NewRect(1, 1, 2, 2, core.ColorRed)

	e.MoveWithin(core.Vec2{X: -5, Y: 0.5}, 10, 5)
	assert.Equal(t, 0.0, e.X)
	assert.Equal(t, 1.5, e.Y)

	e.MoveWithin(core.Vec2{X: 50, Y: 50}, 10, 5)
	assert.Equal(t, 8.0, e.X)
	assert.Equal(t, 3.0, e.Y)

	// Zero-sized area means unbounded.
	e.MoveWithin(core.Vec2{X: 100}, 0, 0)
	assert.Equal(t, 108.0, e.X)
}

func TestRegistryKeepsOrderAndDuplicates(t *testing.T) {
	reg := NewRegistry()
	a := NewRect(0, 0, 1, 1, core.ColorRed)
	b := Text{Value: "hi"}

	reg.Add(a)
	reg.Add(b)
	reg.Add(a)
	reg.Add(nil)

	var seen []Drawable
	reg.Each(func(d Drawable) { seen = append(seen, d) })

	require.Len(t, seen, 3)
	assert.Same(t, a, seen[0])
	assert.Equal(t, b, seen[1])
	assert.Same(t, a, seen[2])
}

func TestTextDraw(t *testing.T) {
	s := core.NewScreen(8, 1)
	Text{X: 1, Y: 0, Value: "FPS", Color: core.ColorGray}.Draw(s)
	assert.Equal(t, " FPS    ", s.Row(0))
	assert.Equal(t, core.ColorGray, s.GetCell(2, 0).Color)
}
