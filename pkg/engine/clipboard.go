package engine

import (
	"github.com/gridley/gridley-cli/pkg/grid"
	"github.com/gridley/gridley-cli/pkg/models"
)

// Copy snapshots the records at refs into the workbook clipboard, in
// selection order, substituting blank placeholders for unpopulated cells.
// The snapshot is a value copy decoupled from every sheet and is not itself
// a history-affecting operation.
func (e *Engine) Copy(refs []grid.CellRef) {
	if len(refs) == 0 {
		return
	}
	s := e.wb.ActiveSheet()
	if s == nil {
		return
	}
	out := make([]*models.Cell, len(refs))
	for i, ref := range refs {
		if c := s.Cells[ref]; c != nil {
			out[i] = c.Clone()
		} else {
			out[i] = &models.Cell{Ref: ref}
		}
	}
	e.wb.CopiedCells = out
}

// Paste tiles the clipboard onto refs with index-modulo wraparound: target
// i receives clipboard[i % len]. A single copied cell repeats across the
// whole target, a smaller clipboard cycles. No-op on an empty clipboard.
func (e *Engine) Paste(refs []grid.CellRef) {
	src := e.wb.CopiedCells
	if len(src) == 0 || len(refs) == 0 {
		return
	}
	s := e.wb.ActiveSheet()
	if s == nil {
		return
	}
	for i, ref := range refs {
		c := src[i%len(src)].Clone()
		c.Ref = ref
		s.Cells[ref] = c
		if c.Format != nil && c.Format.TextWrap == models.WrapWrap {
			e.sizer.GrowRow(s, ref.Row)
		}
	}
	e.SaveToHistory()
}

// Cut is copy followed by clearing the selection's values.
func (e *Engine) Cut(refs []grid.CellRef) {
	e.Copy(refs)
	e.DeleteSelection(refs)
}

// FillCells propagates the first source cell's full record (value, format,
// dropdown, link) onto every target, each target getting its own deep copy.
// No-op without a populated source record or without targets.
func (e *Engine) FillCells(src, dst []grid.CellRef) {
	if len(src) == 0 || len(dst) == 0 {
		return
	}
	s := e.wb.ActiveSheet()
	if s == nil {
		return
	}
	source := s.Cells[src[0]]
	if source == nil {
		return
	}
	for _, ref := range dst {
		c := source.Clone()
		c.Ref = ref
		s.Cells[ref] = c
		if c.Format != nil && c.Format.TextWrap == models.WrapWrap {
			e.sizer.GrowRow(s, ref.Row)
		}
	}
	e.SaveToHistory()
}
