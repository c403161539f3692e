package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/buildmaster/cli/internal/catalog"
)

// rigBoxStyle frames the rig rendering like a case side panel.
var rigBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorDimGray).
	Padding(0, 2)

// rigTitleStyle styles the build name above the slot listing.
var rigTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCyan)

// RenderRig draws the build as a case panel: every slot on its own
// line, filled or empty, with the derived total underneath. Slots
// appear in canonical order so two renders of the same build always
// look the same.
func RenderRig(title string, components map[catalog.SlotType]catalog.Component, total float64) string {
	lines := make([]string, 0, len(catalog.SlotTypes())+2)
	if title != "" {
		lines = append(lines, rigTitleStyle.Render(title), "")
	}

	for _, slot := range catalog.SlotTypes() {
		if c, ok := components[slot]; ok {
			lines = append(lines, FormatSlotLine(string(slot), c.Name, StatusSelected))
		} else {
			lines = append(lines, FormatSlotLine(string(slot), "", StatusEmpty))
		}
	}

	for slot, c := range components {
		if !slot.IsKnown() {
			lines = append(lines, FormatSlotLine(string(slot), c.Name, StatusSelected))
		}
	}

	lines = append(lines, "", fmt.Sprintf("%s %s",
		StyleSummary.Render("total:"), FormatPrice(total)))

	return rigBoxStyle.Render(strings.Join(lines, "\n"))
}
