package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"github.com/gridley/gridley-cli/pkg/engine"
	"github.com/gridley/gridley-cli/pkg/grid"
	"github.com/gridley/gridley-cli/pkg/models"
)

// View renders the virtualized grid window: one column header line, then
// the visible row bands. Off-screen rows and columns are never touched.
func (m *GridModel) View() string {
	s := m.eng.Workbook().ActiveSheet()
	if s == nil || m.width == 0 || m.height == 0 {
		return ""
	}
	cols := m.visibleCols()
	rows := m.visibleRows()

	var b strings.Builder
	b.WriteString(rowHeaderStyle.Render(strings.Repeat(" ", rowGutterWidth)))
	for _, span := range cols {
		label := truncate.String(grid.ColumnLabel(span.col), uint(span.width))
		b.WriteString(colHeaderStyle.Width(span.width).Align(lipgloss.Center).Render(label))
	}

	for _, band := range rows {
		for line := 0; line < band.height; line++ {
			b.WriteByte('\n')
			b.WriteString(m.renderGutter(band, line))
			b.WriteString(m.renderRowLine(s, band, line, cols))
		}
	}
	return b.String()
}

func (m *GridModel) renderGutter(band rowBand, line int) string {
	if line == 0 {
		return rowHeaderStyle.Render(fmt.Sprintf("%*d ", rowGutterWidth-1, band.row+1))
	}
	return rowHeaderStyle.Render(strings.Repeat(" ", rowGutterWidth))
}

// renderRowLine walks the visible columns of one screen line. A merge
// origin consumes the spans of every visible column it covers; member
// cells that fall outside an origin's consumed run (origin scrolled off or
// on a different row) render as blanks.
func (m *GridModel) renderRowLine(s *models.Sheet, band rowBand, line int, cols []colSpan) string {
	var b strings.Builder
	for i := 0; i < len(cols); i++ {
		span := cols[i]
		ref := grid.Ref(band.row, span.col)
		rect := engine.MergeRect(s, ref)

		if rect.Top == band.row && rect.Left == span.col && (rect.Bottom > rect.Top || rect.Right > rect.Left) {
			// Merge origin: combine the widths of its visible columns.
			width := span.width
			for i+1 < len(cols) && cols[i+1].col <= rect.Right {
				i++
				width += cols[i].width
			}
			b.WriteString(m.renderCell(s, ref, width, band, line))
			continue
		}
		if rect.Contains(ref) && (rect.Top != band.row || rect.Left != span.col) {
			// Merge member: content lives on the origin, draw background only.
			b.WriteString(m.styleFor(s, ref).Width(span.width).Render(""))
			continue
		}
		b.WriteString(m.renderCell(s, ref, span.width, band, line))
	}
	return b.String()
}

func (m *GridModel) renderCell(s *models.Sheet, ref grid.CellRef, width int, band rowBand, line int) string {
	wb := m.eng.Workbook()

	// The editor replaces the cell content on the band's first line.
	if wb.EditingCell != nil && *wb.EditingCell == ref {
		if line == 0 {
			m.editor.Width = width
			return editingStyle.MaxWidth(width).Render(truncate.String(m.editor.View(), uint(width)))
		}
		return editingStyle.Width(width).Render("")
	}

	c := s.Cells[ref]
	text := m.cellLineText(s, c, ref, width, band.height, line)

	style := m.styleFor(s, ref)
	style = applyFormatStyle(style, c)
	if m.isFillCorner(ref) && line == band.height-1 {
		text = placeFillHandle(text, width)
	}
	return style.Width(width).MaxWidth(width).Render(text)
}

// cellLineText picks the text shown on one line of a (possibly multi-line)
// row band, honoring wrap and vertical alignment.
func (m *GridModel) cellLineText(s *models.Sheet, c *models.Cell, ref grid.CellRef, width, bandHeight, line int) string {
	display := DisplayValue(c)
	if display == "" {
		return ""
	}

	var lines []string
	if c.Format != nil && c.Format.TextWrap == models.WrapWrap {
		lines = strings.Split(wordwrap.String(display, width), "\n")
	} else {
		lines = []string{truncate.String(display, uint(width))}
	}

	offset := 0
	if c.Format != nil && len(lines) < bandHeight {
		switch c.Format.VerticalAlign {
		case models.AlignMiddle:
			offset = (bandHeight - len(lines)) / 2
		case models.AlignBottom:
			offset = bandHeight - len(lines)
		}
	}
	idx := line - offset
	if idx < 0 || idx >= len(lines) {
		return ""
	}
	return truncate.String(lines[idx], uint(width))
}

// styleFor returns the selection/preview overlay style for a cell.
func (m *GridModel) styleFor(s *models.Sheet, ref grid.CellRef) lipgloss.Style {
	wb := m.eng.Workbook()
	for _, r := range m.fillRange {
		if r == ref {
			return fillPreviewStyle
		}
	}
	if ref == m.cursor && wb.IsSelected(ref) {
		return cursorCellStyle
	}
	if wb.IsSelected(ref) {
		return selectedStyle
	}
	return lipgloss.NewStyle()
}

// applyFormatStyle layers the cell's own format onto the overlay style.
func applyFormatStyle(style lipgloss.Style, c *models.Cell) lipgloss.Style {
	if c == nil {
		return style
	}
	if c.Link != nil {
		style = style.Foreground(linkStyle.GetForeground()).Underline(true)
	}
	f := c.Format
	if f == nil {
		return style
	}
	if f.Bold != nil && *f.Bold {
		style = style.Bold(true)
	}
	if f.Italic != nil && *f.Italic {
		style = style.Italic(true)
	}
	if f.Underline != nil && *f.Underline {
		style = style.Underline(true)
	}
	if f.Strikethrough != nil && *f.Strikethrough {
		style = style.Strikethrough(true)
	}
	if f.TextColor != "" {
		style = style.Foreground(lipgloss.Color(f.TextColor))
	}
	if f.BackgroundColor != "" {
		style = style.Background(lipgloss.Color(f.BackgroundColor))
	}
	switch f.HorizontalAlign {
	case models.AlignCenter:
		style = style.Align(lipgloss.Center)
	case models.AlignRight:
		style = style.Align(lipgloss.Right)
	}
	return style
}

// isFillCorner reports whether ref is the bottom-right cell of the
// selection's bounding box, where the fill handle is drawn.
func (m *GridModel) isFillCorner(ref grid.CellRef) bool {
	rect, ok := grid.BoundingBox(m.eng.Workbook().Selected)
	if !ok {
		return false
	}
	return ref.Row == rect.Bottom && ref.Col == rect.Right
}

// placeFillHandle pins a "+" into the last character column of the cell.
func placeFillHandle(text string, width int) string {
	runes := []rune(text)
	if len(runes) >= width {
		if width > 0 {
			runes = runes[:width-1]
		}
		return string(runes) + "+"
	}
	return string(runes) + strings.Repeat(" ", width-len(runes)-1) + "+"
}
