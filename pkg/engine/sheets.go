package engine

import (
	"fmt"

	"github.com/gridley/gridley-cli/pkg/models"
)

// Sheet lifecycle operations are structural, not content edits, and stay
// outside the undo stream.

// AddSheet appends a new empty sheet named after the current count and
// makes it active.
func (e *Engine) AddSheet() *models.Sheet {
	s := models.NewSheet(e.nextSheetID(), fmt.Sprintf("Sheet%d", len(e.wb.Sheets)+1))
	e.wb.Sheets = append(e.wb.Sheets, s)
	e.wb.ActiveSheetID = s.ID
	return s
}

// DeleteSheet removes the sheet with the given id. Deleting the last
// remaining sheet is a no-op. If the active sheet goes away, the first
// remaining sheet becomes active.
func (e *Engine) DeleteSheet(id string) {
	wb := e.wb
	if len(wb.Sheets) <= 1 {
		return
	}
	idx := -1
	for i, s := range wb.Sheets {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	wb.Sheets = append(wb.Sheets[:idx], wb.Sheets[idx+1:]...)
	if wb.ActiveSheetID == id {
		wb.ActiveSheetID = wb.Sheets[0].ID
	}
	e.sizer.InvalidateSheet(id)
}

// RenameSheet sets the sheet's display name. Names need not be unique.
func (e *Engine) RenameSheet(id, name string) {
	if s := e.wb.SheetByID(id); s != nil {
		s.Name = name
	}
}

// DuplicateSheet deep-copies a sheet under a new id and a " Copy" name,
// appends it to the tab order and makes it active.
func (e *Engine) DuplicateSheet(id string) *models.Sheet {
	src := e.wb.SheetByID(id)
	if src == nil {
		return nil
	}
	dup := src.Clone()
	dup.ID = e.nextSheetID()
	dup.Name = src.Name + " Copy"
	e.wb.Sheets = append(e.wb.Sheets, dup)
	e.wb.ActiveSheetID = dup.ID
	return dup
}

// SetSheetColor sets the tab color only.
func (e *Engine) SetSheetColor(id, color string) {
	if s := e.wb.SheetByID(id); s != nil {
		s.Color = color
	}
}
