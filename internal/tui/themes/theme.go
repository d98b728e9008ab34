// Package themes defines the color schemes of the diagnosis form.
package themes

import (
	"fmt"
	"sort"

	"github.com/Veraticus/icd-suggest/internal/common"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Bold          lipgloss.Style
	Code          lipgloss.Style
	Box           lipgloss.Style
	FocusedBox    lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonDisable lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	Muted         lipgloss.Color
	Primary       lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	// ProgressStart and ProgressEnd bound the confidence bar gradient.
	ProgressStart string
	ProgressEnd   string
}

var defaultMuted = lipgloss.Color("#737373")

// Default is the default theme.
var Default = Theme{
	Primary:       lipgloss.Color("#3b82f6"),
	Foreground:    lipgloss.Color("#fafafa"),
	Border:        lipgloss.Color("#404040"),
	Muted:         defaultMuted,
	ProgressStart: "#93c5fd",
	ProgressEnd:   "#10b981",

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Code: lipgloss.NewStyle().
		Bold(true).
		Background(lipgloss.Color("#1e3a8a")).
		Foreground(lipgloss.Color("#e5e5e5")).
		Padding(0, 1),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),
	FocusedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3b82f6")).
		Padding(0, 1),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")).
		Background(lipgloss.Color("#1d4ed8")).
		Padding(0, 2),
	ButtonFocused: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		Background(lipgloss.Color("#3b82f6")).
		Padding(0, 2),
	ButtonDisable: lipgloss.NewStyle().
		Foreground(defaultMuted).
		Background(lipgloss.Color("#262626")).
		Padding(0, 2),

	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#10b981")).
		Bold(true),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f59e0b")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3b82f6")).
		Bold(true),
}

// Mono is a colorless theme for terminals without color support.
var Mono = Theme{
	Primary:       lipgloss.Color(""),
	Foreground:    lipgloss.Color(""),
	Border:        lipgloss.Color(""),
	Muted:         lipgloss.Color(""),
	ProgressStart: "#ffffff",
	ProgressEnd:   "#ffffff",

	Title:         lipgloss.NewStyle().Bold(true).MarginBottom(1),
	Subtitle:      lipgloss.NewStyle().Faint(true),
	Bold:          lipgloss.NewStyle().Bold(true),
	Code:          lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1),
	Box:           lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
	FocusedBox:    lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1),
	Button:        lipgloss.NewStyle().Padding(0, 2),
	ButtonFocused: lipgloss.NewStyle().Reverse(true).Padding(0, 2),
	ButtonDisable: lipgloss.NewStyle().Faint(true).Padding(0, 2),
	StatusSuccess: lipgloss.NewStyle().Bold(true),
	StatusWarning: lipgloss.NewStyle().Bold(true),
	StatusInfo:    lipgloss.NewStyle(),
}

var registry = map[string]Theme{
	"default": Default,
	"mono":    Mono,
}

// Names lists the available theme names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns a theme by name.
func Lookup(name string) (Theme, error) {
	theme, ok := registry[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: unknown theme %q (available: %v)", common.ErrInvalidConfig, name, Names())
	}
	return theme, nil
}
