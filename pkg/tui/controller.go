package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridley/gridley-cli/pkg/grid"
)

// handleMouse drives the pointer state machine: idle -> rangeSelecting /
// fillDragging / resizingColumn / resizingRow, back to idle on release.
func (m *GridModel) handleMouse(msg tea.MouseMsg) (*GridModel, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.pointerDown(msg)
	case tea.MouseActionMotion:
		return m.pointerMove(msg)
	case tea.MouseActionRelease:
		return m.pointerUp()
	}
	return m, nil
}

func (m *GridModel) pointerDown(msg tea.MouseMsg) (*GridModel, tea.Cmd) {
	if m.state != dragIdle {
		return m, nil
	}

	// A click outside the editor commits the pending edit first.
	if m.editing() {
		m.commitEdit()
	}

	// Column header: resize handle on a column's right edge.
	if msg.Y == 0 {
		if col, ok := m.columnBoundaryAt(msg.X); ok {
			s := m.eng.Workbook().ActiveSheet()
			m.state = dragResizingColumn
			m.resizeIndex = col
			m.resizeFrom = msg.X
			m.resizeSize = m.eng.Sizer().ColumnWidth(s, col)
			m.resized = false
		}
		return m, nil
	}

	// Row gutter: resize handle on a row's bottom edge.
	if msg.X < rowGutterWidth {
		if row, ok := m.rowBoundaryAt(msg.Y); ok {
			s := m.eng.Workbook().ActiveSheet()
			m.state = dragResizingRow
			m.resizeIndex = row
			m.resizeFrom = msg.Y
			m.resizeSize = m.eng.Sizer().RowHeight(s, row)
			m.resized = false
		}
		return m, nil
	}

	// Fill handle beats cell selection.
	if m.fillHandleAt(msg.X, msg.Y) {
		m.state = dragFilling
		m.fillRange = nil
		return m, nil
	}

	ref, ok := m.cellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}

	// Second press on the same cell inside the double-click window opens
	// the editor directly.
	now := time.Now()
	if ref == m.lastClickRef && now.Sub(m.lastClickTime) < doubleClickDelay {
		m.lastClickTime = time.Time{}
		m.startEditing(ref, "")
		return m, nil
	}
	m.lastClickRef = ref
	m.lastClickTime = now

	if msg.Ctrl {
		m.unionSelect(ref)
	} else {
		m.selectOnly(ref)
	}
	m.state = dragRangeSelecting
	m.dragStart = ref
	return m, nil
}

func (m *GridModel) pointerMove(msg tea.MouseMsg) (*GridModel, tea.Cmd) {
	switch m.state {
	case dragRangeSelecting:
		if ref, ok := m.cellAt(msg.X, msg.Y); ok {
			m.anchor = m.dragStart
			m.selectSpan(ref)
		}

	case dragFilling:
		ref, ok := m.cellAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		sel := m.eng.Workbook().Selected
		if len(sel) == 0 {
			return m, nil
		}
		span := grid.RectBetween(sel[0], ref)
		m.fillRange = m.fillRange[:0]
		for _, r := range span.Refs() {
			if !m.eng.Workbook().IsSelected(r) {
				m.fillRange = append(m.fillRange, r)
			}
		}

	case dragResizingColumn:
		size := m.resizeSize + (msg.X - m.resizeFrom)
		m.eng.ResizeColumn(m.resizeIndex, size)
		m.resized = true

	case dragResizingRow:
		size := m.resizeSize + (msg.Y - m.resizeFrom)
		m.eng.ResizeRow(m.resizeIndex, size)
		m.resized = true
	}
	return m, nil
}

func (m *GridModel) pointerUp() (*GridModel, tea.Cmd) {
	switch m.state {
	case dragFilling:
		if len(m.fillRange) > 0 {
			m.eng.FillCells(m.eng.Workbook().Selected, m.fillRange)
		}
		m.fillRange = nil

	case dragResizingColumn, dragResizingRow:
		// The drag committed sizes on every move; record the end state once.
		if m.resized {
			m.eng.SaveToHistory()
		}
	}
	m.state = dragIdle
	return m, nil
}
