package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles a Switch renders with. The view
// overlays these on the resolved state and focus, the way node props
// overlay theme defaults.
type Styles struct {
	// Label styles the switch label.
	Label lipgloss.Style
	// Focused replaces Label while the switch has focus.
	Focused lipgloss.Style
	// On styles the mark when the resolved value is true.
	On lipgloss.Style
	// Off styles the mark when the resolved value is false.
	Off lipgloss.Style

	// OnMark and OffMark are the glyphs drawn for each state.
	OnMark  string
	OffMark string
}

// DefaultStyles returns the standard switch appearance.
func DefaultStyles() Styles {
	return Styles{
		Label:   lipgloss.NewStyle(),
		Focused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		On:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Off:     lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		OnMark:  "[x]",
		OffMark: "[ ]",
	}
}
