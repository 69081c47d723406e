package demo

import "github.com/charmbracelet/lipgloss"

// Demo chrome styles. Card styles live in card.go next to the renderer.
//
//nolint:gochecknoglobals // Package-level style definitions.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Padding(0, 1)

	cardBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	selectedCardBorderStyle = cardBorderStyle.
				BorderForeground(lipgloss.Color("212"))

	cardNameStyle = lipgloss.NewStyle().Bold(true)

	cardPriceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	cardTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Padding(0, 1)

	cardDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
)
