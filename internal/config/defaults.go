package config

import (
	_ "embed"
)

//go:embed defaults/demo.yaml
var defaultDemoYAML []byte

// DefaultDemoConfig returns the default demo configuration.
func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		Window: WindowConfig{
			Title:  "keyloop",
			Width:  80,
			Height: 24,
		},
		Loop: LoopConfig{
			PollRate:             500,
			UpdateRate:           60,
			DrawRate:             60,
			DiagnosticIntervalMs: 1000,
		},
		Input: InputConfig{
			RepeatDelayMs:  700,
			ReleaseAfterMs: 150,
			Bindings: map[string][]string{
				"up":    {"w", "up"},
				"down":  {"s", "down"},
				"left":  {"a", "left"},
				"right": {"d", "right"},
				"run":   {"space"},
			},
		},
		Player: PlayerConfig{
			X:                   10,
			Y:                   5,
			Width:               6,
			Height:              3,
			Glyph:               "█",
			MoveDelta:           1.0,
			Velocity:            0.25,
			MinVelocity:         0.25,
			MaxVelocity:         1.0,
			Acceleration:        0.05,
			Colors:              []string{"red", "yellow", "green", "cyan", "blue", "magenta"},
			AnimationsPerSecond: 4,
			ClampToWindow:       true,
		},
		Shapes: []ShapeConfig{
			{X: 40, Y: 8, Width: 10, Height: 4, Glyph: "▒", Colors: []string{"blue", "cyan", "white"}, AnimationsPerSecond: 2},
			{X: 60, Y: 14, Width: 6, Height: 2, Glyph: "░", Color: "gray"},
		},
	}
}
