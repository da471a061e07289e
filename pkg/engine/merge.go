package engine

import (
	"github.com/gridley/gridley-cli/pkg/grid"
	"github.com/gridley/gridley-cli/pkg/models"
)

// MergeCells merges the bounding box of refs: the top-left cell becomes the
// origin carrying the span, every other cell in the rectangle becomes a
// member pointing back at it. The rectangle may include cells the caller
// never selected. No-op with fewer than two refs or if any cell in the
// rectangle already belongs to a merge.
func (e *Engine) MergeCells(refs []grid.CellRef) {
	if len(refs) < 2 {
		return
	}
	s := e.wb.ActiveSheet()
	if s == nil {
		return
	}
	rect, ok := grid.BoundingBox(refs)
	if !ok {
		return
	}
	cells := rect.Refs()
	for _, ref := range cells {
		if s.Merges[ref] != nil {
			return
		}
	}
	origin := rect.Origin()
	rowSpan := rect.Bottom - rect.Top + 1
	colSpan := rect.Right - rect.Left + 1
	for _, ref := range cells {
		if s.Cells[ref] == nil {
			s.Cells[ref] = &models.Cell{Ref: ref}
		}
		if ref == origin {
			s.Merges[ref] = &models.Merge{RowSpan: rowSpan, ColSpan: colSpan, IsOrigin: true}
		} else {
			s.Merges[ref] = &models.Merge{RowSpan: 1, ColSpan: 1, Origin: origin}
		}
	}
	e.SaveToHistory()
}

// UnmergeCells dissolves every merge touched by refs: an origin clears its
// whole rectangle, a member resolves to its origin first. Unmerged refs are
// ignored. History is appended only when a merge was actually cleared.
func (e *Engine) UnmergeCells(refs []grid.CellRef) {
	s := e.wb.ActiveSheet()
	if s == nil {
		return
	}
	changed := false
	for _, ref := range refs {
		m := s.Merges[ref]
		if m == nil {
			continue
		}
		origin := ref
		if !m.IsOrigin {
			origin = m.Origin
		}
		om := s.Merges[origin]
		if om == nil || !om.IsOrigin {
			continue
		}
		rect := grid.Rect{
			Top:    origin.Row,
			Left:   origin.Col,
			Bottom: origin.Row + om.RowSpan - 1,
			Right:  origin.Col + om.ColSpan - 1,
		}
		for _, member := range rect.Refs() {
			if s.Merges[member] != nil {
				delete(s.Merges, member)
				changed = true
			}
		}
	}
	if changed {
		e.SaveToHistory()
	}
}

// MergeRect returns the full rectangle of the merge containing ref, or a
// 1x1 rectangle when the cell is unmerged. Rendering uses it to decide
// which cells to skip and how wide to draw an origin.
func MergeRect(s *models.Sheet, ref grid.CellRef) grid.Rect {
	m := s.Merges[ref]
	if m == nil {
		return grid.Rect{Top: ref.Row, Left: ref.Col, Bottom: ref.Row, Right: ref.Col}
	}
	origin := ref
	if !m.IsOrigin {
		origin = m.Origin
		m = s.Merges[origin]
		if m == nil {
			return grid.Rect{Top: ref.Row, Left: ref.Col, Bottom: ref.Row, Right: ref.Col}
		}
	}
	return grid.Rect{
		Top:    origin.Row,
		Left:   origin.Col,
		Bottom: origin.Row + m.RowSpan - 1,
		Right:  origin.Col + m.ColSpan - 1,
	}
}
