package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/keyloop/internal/core"
)

// Theme contains the visual styles of the terminal demo.
type Theme struct {
	Name string

	// Cell colors; a missing entry renders unstyled.
	Palette map[core.Color]lipgloss.Style

	Title  lipgloss.Style
	Status lipgloss.Style
}

// DefaultTheme returns the default ANSI color theme.
func DefaultTheme() Theme {
	return Theme{
		Name:    "default",
		Palette: colorStyles,
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// MonochromeTheme returns a theme that renders every cell unstyled.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "mono"
	theme.Palette = nil
	theme.Title = lipgloss.NewStyle().Bold(true)
	theme.Status = lipgloss.NewStyle()
	return theme
}

// ThemeByName resolves a theme name. An empty name means default.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "default":
		return DefaultTheme(), nil
	case "mono", "monochrome":
		return MonochromeTheme(), nil
	}
	return Theme{}, fmt.Errorf("tui: unknown theme %q", name)
}
