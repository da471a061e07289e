package engine

// ResizeColumn sets a column width override on the active sheet, floored at
// the configured minimum. Resize drags commit on every pointer move, so no
// history snapshot is taken here; the controller records one entry when the
// drag ends.
func (e *Engine) ResizeColumn(col, width int) {
	s := e.wb.ActiveSheet()
	if s == nil {
		return
	}
	if width < e.cfg.MinColumnWidth {
		width = e.cfg.MinColumnWidth
	}
	s.ColWidths[col] = width
	// Wrap requirements depend on column width.
	e.sizer.InvalidateSheet(s.ID)
}

// ResizeRow sets a row height override, floored at the configured minimum.
func (e *Engine) ResizeRow(row, height int) {
	s := e.wb.ActiveSheet()
	if s == nil {
		return
	}
	if height < e.cfg.MinRowHeight {
		height = e.cfg.MinRowHeight
	}
	s.RowHeights[row] = height
	e.sizer.InvalidateRow(s.ID, row)
}
