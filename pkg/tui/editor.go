package tui

import (
	"github.com/gridley/gridley-cli/pkg/grid"
)

// startEditing opens the cell editor. seed overrides the buffer for
// type-to-overwrite entry; empty seed loads the cell's raw value.
func (m *GridModel) startEditing(ref grid.CellRef, seed string) {
	wb := m.eng.Workbook()
	r := ref
	wb.EditingCell = &r
	m.selectOnly(ref)

	if seed != "" {
		m.editor.SetValue(seed)
	} else {
		c := wb.GetCell(wb.ActiveSheetID, ref)
		if c != nil {
			m.editor.SetValue(c.Value)
		} else {
			m.editor.SetValue("")
		}
	}
	m.editor.CursorEnd()
	m.editor.Focus()
}

// commitEdit writes the buffer through the engine as one history entry and
// leaves editing mode. Keystrokes never touched the workbook, so a whole
// editing session coalesces into this single snapshot.
func (m *GridModel) commitEdit() {
	wb := m.eng.Workbook()
	if wb.EditingCell == nil {
		return
	}
	ref := *wb.EditingCell
	wb.EditingCell = nil
	m.editor.Blur()
	m.eng.SetCellValue(ref, m.editor.Value(), true)
}

// cancelEdit discards the buffer without mutating the workbook.
func (m *GridModel) cancelEdit() {
	wb := m.eng.Workbook()
	wb.EditingCell = nil
	m.editor.Blur()
	m.editor.SetValue("")
}
