package engine

import (
	"github.com/gridley/gridley-cli/pkg/grid"
	"github.com/gridley/gridley-cli/pkg/models"
)

// SaveToHistory records the workbook's sheets and selection as a new
// snapshot: redo entries beyond the cursor are discarded, the snapshot is
// appended, the oldest entry is evicted past capacity, and the cursor moves
// to the end. Callers invoke it as the final step of a mutation so a
// snapshot always captures a fully applied state.
func (e *Engine) SaveToHistory() {
	wb := e.wb
	if wb.HistoryIndex < len(wb.History)-1 {
		wb.History = wb.History[:wb.HistoryIndex+1]
	}
	wb.History = append(wb.History, models.HistoryEntry{
		Sheets:   forkSheets(wb.Sheets),
		Selected: cloneRefs(wb.Selected),
	})
	if limit := wb.HistoryCapacity; limit > 0 && len(wb.History) > limit {
		wb.History = wb.History[len(wb.History)-limit:]
	}
	wb.HistoryIndex = len(wb.History) - 1
}

// Undo steps the history cursor back and restores that snapshot. It is a
// no-op at the start of the retained window.
func (e *Engine) Undo() bool {
	wb := e.wb
	if wb.HistoryIndex <= 0 {
		return false
	}
	wb.HistoryIndex--
	e.restore(wb.History[wb.HistoryIndex])
	return true
}

// Redo steps the cursor forward and restores that snapshot. No-op at the
// newest entry.
func (e *Engine) Redo() bool {
	wb := e.wb
	if wb.HistoryIndex >= len(wb.History)-1 {
		return false
	}
	wb.HistoryIndex++
	e.restore(wb.History[wb.HistoryIndex])
	return true
}

// restore replaces the live sheets and selection with fresh forks of the
// snapshot, so subsequent mutations cannot write back into it. Any pending
// edit is abandoned.
func (e *Engine) restore(entry models.HistoryEntry) {
	wb := e.wb
	wb.Sheets = forkSheets(entry.Sheets)
	wb.Selected = cloneRefs(entry.Selected)
	wb.EditingCell = nil
	if wb.ActiveSheet() == nil && len(wb.Sheets) > 0 {
		wb.ActiveSheetID = wb.Sheets[0].ID
	}
	e.sizer.InvalidateAll()
}

func forkSheets(sheets []*models.Sheet) []*models.Sheet {
	out := make([]*models.Sheet, len(sheets))
	for i, s := range sheets {
		out[i] = s.Fork()
	}
	return out
}

func cloneRefs(refs []grid.CellRef) []grid.CellRef {
	out := make([]grid.CellRef, len(refs))
	copy(out, refs)
	return out
}
