package config

import (
	"fmt"

	"github.com/vovakirdan/keyloop/internal/core"
)

// SpeedPreset represents a named kinematics profile for the player.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// Presets lists the known presets in display order.
func Presets() []SpeedPreset {
	return []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast}
}

// ParsePreset resolves a preset name. An empty name means normal.
func ParsePreset(name string) (SpeedPreset, error) {
	switch p := SpeedPreset(name); p {
	case "":
		return SpeedNormal, nil
	case SpeedSlow, SpeedNormal, SpeedFast:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown speed preset %q", name)
}

// scaleForPreset returns the multiplier applied to the player's velocities.
func scaleForPreset(p SpeedPreset) float64 {
	switch p {
	case SpeedSlow:
		return 0.5
	case SpeedFast:
		return 2.0
	default:
		return 1.0
	}
}

// ApplyPreset scales the player's velocity bounds and acceleration.
// The current velocity is kept inside the scaled bounds.
func ApplyPreset(cfg *DemoConfig, p SpeedPreset) {
	k := scaleForPreset(p)
	if k == 1.0 {
		return
	}
	pl := &cfg.Player
	pl.MinVelocity *= k
	pl.MaxVelocity *= k
	pl.Acceleration *= k
	pl.Velocity = core.ClampF(pl.Velocity*k, pl.MinVelocity, pl.MaxVelocity)
}
