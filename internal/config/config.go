// Package config provides YAML-based configuration loading and validation
// for the key loop demo.
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/vovakirdan/keyloop/internal/core"
	"github.com/vovakirdan/keyloop/internal/timing"
)

// DemoConfig contains all configuration for the demo.
type DemoConfig struct {
	Window WindowConfig  `yaml:"window"`
	Loop   LoopConfig    `yaml:"loop"`
	Input  InputConfig   `yaml:"input"`
	Player PlayerConfig  `yaml:"player"`
	Shapes []ShapeConfig `yaml:"shapes"`
}

// WindowConfig defines the window title and the size used when no terminal
// size is available (headless runs).
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// LoopConfig defines the scheduler cadences.
type LoopConfig struct {
	PollRate             int     `yaml:"poll_rate"`              // Loop iterations per second
	UpdateRate           float64 `yaml:"update_rate"`            // Fixed updates per second
	DrawRate             float64 `yaml:"draw_rate"`              // Draw passes per second
	DiagnosticIntervalMs float64 `yaml:"diagnostic_interval_ms"` // Period of the FPS line
}

// InputConfig defines key bindings per action name.
type InputConfig struct {
	// Terminals report presses and auto-repeats but no releases. A held key
	// is released after RepeatDelayMs without its first repeat, then after
	// ReleaseAfterMs between repeats.
	RepeatDelayMs  int                 `yaml:"repeat_delay_ms"`
	ReleaseAfterMs int                 `yaml:"release_after_ms"`
	Bindings       map[string][]string `yaml:"bindings"`
}

// PlayerConfig defines the controllable rectangle.
type PlayerConfig struct {
	X                   float64  `yaml:"x"`
	Y                   float64  `yaml:"y"`
	Width               float64  `yaml:"width"`
	Height              float64  `yaml:"height"`
	Glyph               string   `yaml:"glyph"`
	MoveDelta           float64  `yaml:"move_delta"`
	Velocity            float64  `yaml:"velocity"`
	MinVelocity         float64  `yaml:"min_velocity"`
	MaxVelocity         float64  `yaml:"max_velocity"`
	Acceleration        float64  `yaml:"acceleration"`
	Colors              []string `yaml:"colors"`
	AnimationsPerSecond float64  `yaml:"animations_per_second"`
	ClampToWindow       bool     `yaml:"clamp_to_window"`
}

// ShapeConfig defines an extra rectangle. Colors makes it animated,
// otherwise Color is its static fill.
type ShapeConfig struct {
	X                   float64  `yaml:"x"`
	Y                   float64  `yaml:"y"`
	Width               float64  `yaml:"width"`
	Height              float64  `yaml:"height"`
	Glyph               string   `yaml:"glyph"`
	Color               string   `yaml:"color"`
	Colors              []string `yaml:"colors"`
	AnimationsPerSecond float64  `yaml:"animations_per_second"`
}

// Cadence converts the loop rates into scheduler periods.
func (l LoopConfig) Cadence() (timing.Cadence, error) {
	c, err := timing.CadenceFromRates(l.UpdateRate, l.DrawRate, l.DiagnosticIntervalMs)
	if err != nil {
		return timing.Cadence{}, fmt.Errorf("config: loop: %w", err)
	}
	if !(c.DiagnosticMillis > 0) {
		return timing.Cadence{}, fmt.Errorf("config: loop: diagnostic interval %vms: %w", l.DiagnosticIntervalMs, timing.ErrInvalidCadence)
	}
	return c, nil
}

// PollInterval returns the sleep between loop iterations.
func (l LoopConfig) PollInterval() time.Duration {
	if l.PollRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(l.PollRate)
}

// ReleaseAfter returns the synthesized release timeout between repeats.
func (i InputConfig) ReleaseAfter() time.Duration {
	return time.Duration(i.ReleaseAfterMs) * time.Millisecond
}

// RepeatDelay returns the synthesized release timeout before the first repeat.
func (i InputConfig) RepeatDelay() time.Duration {
	return time.Duration(i.RepeatDelayMs) * time.Millisecond
}

// QuitKeys and HelpKey are handled by the terminal front end before a key
// reaches the loop, so they cannot be bound to actions.
var QuitKeys = []string{"q", "ctrl+c", "esc"}

// HelpKey toggles the full help view.
const HelpKey = "?"

func reservedKey(key string) bool {
	return key == HelpKey || slices.Contains(QuitKeys, key)
}

// KeyBind builds the binding table, walking actions in declaration order.
func (i InputConfig) KeyBind() (*core.KeyBind, error) {
	bind := core.NewKeyBind()
	owner := make(map[string]string)

	for name := range i.Bindings {
		if _, err := core.ParseAction(name); err != nil {
			return nil, fmt.Errorf("config: input bindings: %w", err)
		}
	}

	for _, a := range core.AllActions() {
		for name, keys := range i.Bindings {
			parsed, _ := core.ParseAction(name)
			if parsed != a {
				continue
			}
			for _, key := range keys {
				if key == "" {
					return nil, fmt.Errorf("config: input bindings: empty key for %s", a)
				}
				if reservedKey(key) {
					return nil, fmt.Errorf("config: input bindings: key %q is reserved and cannot be bound to %s", key, a)
				}
				if prev, dup := owner[key]; dup {
					return nil, fmt.Errorf("config: input bindings: key %q bound to both %s and %s", key, prev, a)
				}
				owner[key] = a.String()
				bind.Bind(key, a)
			}
		}
	}
	return bind, nil
}

// GlyphRune returns the first rune of glyph, or 0 when empty.
func GlyphRune(glyph string) rune {
	for _, r := range glyph {
		return r
	}
	return 0
}

// Validate checks the configuration for values the loop cannot run with.
func (c DemoConfig) Validate() error {
	var errs []error

	if _, err := c.Loop.Cadence(); err != nil {
		errs = append(errs, err)
	}
	if c.Loop.PollRate < 0 {
		errs = append(errs, fmt.Errorf("config: loop: negative poll rate %d", c.Loop.PollRate))
	}
	if c.Input.ReleaseAfterMs <= 0 {
		errs = append(errs, fmt.Errorf("config: input: release_after_ms %d: %w", c.Input.ReleaseAfterMs, timing.ErrInvalidCadence))
	}
	if c.Input.RepeatDelayMs < c.Input.ReleaseAfterMs {
		errs = append(errs, fmt.Errorf("config: input: repeat_delay_ms %d is shorter than release_after_ms %d", c.Input.RepeatDelayMs, c.Input.ReleaseAfterMs))
	}
	if _, err := c.Input.KeyBind(); err != nil {
		errs = append(errs, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: window: size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}

	p := c.Player
	if p.Width <= 0 || p.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: player: size %vx%v must be positive", p.Width, p.Height))
	}
	if p.MinVelocity > p.MaxVelocity {
		errs = append(errs, fmt.Errorf("config: player: min_velocity %v exceeds max_velocity %v", p.MinVelocity, p.MaxVelocity))
	}
	if p.Acceleration < 0 {
		errs = append(errs, fmt.Errorf("config: player: negative acceleration %v", p.Acceleration))
	}
	if err := validateColors("player", p.Colors, p.AnimationsPerSecond); err != nil {
		errs = append(errs, err)
	}

	for i, s := range c.Shapes {
		label := fmt.Sprintf("shapes[%d]", i)
		if s.Width <= 0 || s.Height <= 0 {
			errs = append(errs, fmt.Errorf("config: %s: size %vx%v must be positive", label, s.Width, s.Height))
		}
		if s.Color != "" {
			if _, err := core.ParseColor(s.Color); err != nil {
				errs = append(errs, fmt.Errorf("config: %s: %w", label, err))
			}
		}
		if err := validateColors(label, s.Colors, s.AnimationsPerSecond); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func validateColors(label string, colors []string, perSecond float64) error {
	if len(colors) == 0 {
		return nil
	}
	if _, err := core.ParseColors(colors); err != nil {
		return fmt.Errorf("config: %s: %w", label, err)
	}
	if !(perSecond > 0) {
		return fmt.Errorf("config: %s: animations_per_second %v: %w", label, perSecond, timing.ErrInvalidCadence)
	}
	return nil
}
