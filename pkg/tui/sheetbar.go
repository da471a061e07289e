package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/gridley/gridley-cli/pkg/models"
)

// renderSheetTabs draws the sheet tab bar in display order, highlighting
// the active sheet and honoring per-sheet tab colors.
func renderSheetTabs(wb *models.Workbook, width int) string {
	parts := make([]string, 0, len(wb.Sheets))
	for _, s := range wb.Sheets {
		style := tabStyle
		if s.ID == wb.ActiveSheetID {
			style = activeTabStyle
		} else if s.Color != "" {
			style = style.Foreground(lipgloss.Color(s.Color))
		}
		parts = append(parts, style.Render(s.Name))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return truncate.String(row, uint(width))
}
