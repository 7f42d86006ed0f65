package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CLI output styles for consistent primer-themed terminal output.
var (
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

func symSuccess() string { return cliSuccess.Render("✓") }

// kvPair is a label/value line inside a card.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines renders aligned key/value pairs as card body text.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}

	var b strings.Builder
	for i, p := range pairs {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %s", cliMuted.Render(fmt.Sprintf("%-*s", width, p.key)), p.value)
	}
	return b.String()
}

// renderCard draws a rounded-border card with a title and body sections.
func renderCard(title string, sections ...string) string {
	body := title
	if len(sections) > 0 {
		body += "\n\n" + strings.Join(sections, "\n")
	}

	return cliBorder.Render(lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}).
		Padding(0, 2).
		Render(body))
}

// renderSuccessCard draws a card with a success checkmark in the title.
func renderSuccessCard(title string, sections ...string) string {
	return renderCard(fmt.Sprintf("%s %s", symSuccess(), title), sections...)
}
