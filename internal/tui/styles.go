package tui

import "github.com/charmbracelet/lipgloss"

// Theme is a named accent palette applied on top of the static styles
type Theme struct {
	Name   string
	Accent lipgloss.Color
	Dim    lipgloss.Color
}

// Themes returns the selectable accent palettes in display order
func Themes() []Theme {
	return []Theme{
		{Name: "indigo", Accent: lipgloss.Color("#6366F1"), Dim: lipgloss.Color("#4338CA")},
		{Name: "blue", Accent: lipgloss.Color("#3B82F6"), Dim: lipgloss.Color("#1D4ED8")},
		{Name: "emerald", Accent: lipgloss.Color("#10B981"), Dim: lipgloss.Color("#047857")},
		{Name: "rose", Accent: lipgloss.Color("#F43F5E"), Dim: lipgloss.Color("#BE123C")},
		{Name: "amber", Accent: lipgloss.Color("#F59E0B"), Dim: lipgloss.Color("#B45309")},
	}
}

// ThemeByName resolves a persisted theme name, defaulting to the first
// palette for unknown names
func ThemeByName(name string) Theme {
	for _, t := range Themes() {
		if t.Name == name {
			return t
		}
	}
	return Themes()[0]
}

// Static styles for content elements
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	ProfitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	LossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true)

	LiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	PausedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7"))
)
