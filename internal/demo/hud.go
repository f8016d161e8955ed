package demo

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/keyloop/internal/core"
	"github.com/vovakirdan/keyloop/internal/engine"
	"github.com/vovakirdan/keyloop/internal/shape"
)

// hudRows is the number of bottom rows reserved for the HUD.
const hudRows = 1

// HUDLine formats the status line shown under the scene.
func (s *Scene) HUDLine(ctx *engine.Context) string {
	parts := []string{
		fmt.Sprintf("v=%.2f", s.Player.Velocity),
		fmt.Sprintf("pos=%d,%d", core.Round(s.Player.X), core.Round(s.Player.Y)),
		fmt.Sprintf("ticks=%d", ctx.Ticks),
	}
	if held := heldActions(ctx.Keys); held != "" {
		parts = append(parts, held)
	}
	if ctx.LastDiagnostic != "" {
		parts = append(parts, ctx.LastDiagnostic)
	}
	return strings.Join(parts, "  ")
}

// DrawHUD is the draw hook: it writes the status line on the bottom row.
func (s *Scene) DrawHUD(ctx *engine.Context, w engine.Window) {
	if ctx.Height <= 0 {
		return
	}
	w.Draw(shape.Text{X: 0, Y: ctx.Height - hudRows, Value: s.HUDLine(ctx), Color: core.ColorGray})
}

func heldActions(keys core.KeyState) string {
	var names []string
	for _, a := range core.AllActions() {
		if keys.Held(a) {
			names = append(names, a.String())
		}
	}
	return strings.Join(names, "+")
}
