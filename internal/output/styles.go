package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: component names, build names, usernames.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for filled slots and success lines.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings and discounted prices.
	ColorYellow = lipgloss.Color("220")

	// ColorRed is used for removals and out-of-stock markers.
	ColorRed = lipgloss.Color("196")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders, empty slots, and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (component names, build names, usernames).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StylePrice styles monetary amounts.
	StylePrice = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (slot labels, separators, timestamps).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)

	// StyleWarning styles compatibility warnings.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)

	// StyleError styles inline error text.
	StyleError = lipgloss.NewStyle().Foreground(ColorRed)
)

// Slot status constants for selection listings.
const (
	StatusSelected = "selected"
	StatusEmpty    = "empty"
	StatusRemoved  = "removed"
)

// StatusStyle returns the lipgloss style for a given slot status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusSelected:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusEmpty:
		return lipgloss.NewStyle().Faint(true)
	case StatusRemoved:
		return lipgloss.NewStyle().Foreground(ColorRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minSlotColumnWidth is the minimum width for the slot/component column
// before the status suffix. This ensures status words align consistently.
const minSlotColumnWidth = 40

// FormatSlotLine renders a slot assignment with a right-aligned,
// color-coded status suffix.
//
// Format: s:<slot/name>  <status>
// For empty slots: s:<slot>
func FormatSlotLine(slot, name, status string) string {
	path := slot
	if name != "" {
		path = fmt.Sprintf("%s/%s", slot, name)
	}

	padding := minSlotColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("s:")
	styledPath := StyleNoun.Render(path)
	styledStatus := StatusStyle(status).Render(status)

	return prefix + styledPath + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatPrice renders an amount in the catalog currency.
func FormatPrice(amount float64) string {
	return StylePrice.Render(fmt.Sprintf("¥%.2f", amount))
}
