package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Title  lipgloss.Style
	Ruler  lipgloss.Style
	Offset lipgloss.Style

	// ActivePane styles the bytes of the pane receiving keys.
	ActivePane   lipgloss.Style
	InactivePane lipgloss.Style

	Cursor         lipgloss.Style
	CursorPending  lipgloss.Style
	CursorInactive lipgloss.Style

	Message   lipgloss.Style
	KeyLabel  lipgloss.Style
	Inspector lipgloss.Style
}

// Theme holds colors for DefaultStyle; empty fields keep the default.
type Theme struct {
	Title          string
	Cursor         string
	CursorPending  string
	CursorInactive string
	Message        string
	KeyLabel       string
}

func DefaultStyle() Style {
	return ThemedStyle(Theme{})
}

// ThemedStyle builds the default style with the colors in t.
func ThemedStyle(t Theme) Style {
	pick := func(v, def string) lipgloss.Color {
		if v == "" {
			return lipgloss.Color(def)
		}
		return lipgloss.Color(v)
	}

	black := lipgloss.Color("0")
	gray := pick(t.Title, "250")
	return Style{
		Title:  lipgloss.NewStyle().Foreground(black).Background(gray),
		Ruler:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Offset: lipgloss.NewStyle(),

		ActivePane:   lipgloss.NewStyle().Bold(true),
		InactivePane: lipgloss.NewStyle(),

		Cursor:         lipgloss.NewStyle().Foreground(black).Background(pick(t.Cursor, "2")),
		CursorPending:  lipgloss.NewStyle().Foreground(black).Background(pick(t.CursorPending, "3")),
		CursorInactive: lipgloss.NewStyle().Foreground(black).Background(pick(t.CursorInactive, "250")),

		Message:   lipgloss.NewStyle().Foreground(black).Background(pick(t.Message, "250")),
		KeyLabel:  lipgloss.NewStyle().Foreground(black).Background(pick(t.KeyLabel, "250")),
		Inspector: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}
