package engine

import (
	"github.com/gridley/gridley-cli/pkg/grid"
	"github.com/gridley/gridley-cli/pkg/models"
)

// Sizer resolves effective column widths and row heights. The wrap
// requirement of a row is cached per sheet and row; mutations invalidate
// only the rows they touch, so the visible window can re-resolve sizes on
// every render pass without rescanning the sheet.
type Sizer struct {
	cfg     models.GridSettings
	measure grid.TextMeasurer
	cache   map[string]map[int]int // sheet id -> row -> wrap requirement
}

func NewSizer(cfg models.GridSettings, m grid.TextMeasurer) *Sizer {
	return &Sizer{
		cfg:     cfg,
		measure: m,
		cache:   make(map[string]map[int]int),
	}
}

// ColumnWidth returns the effective width of a column on the given sheet:
// the override if set, else the sheet default, else the global default.
func (z *Sizer) ColumnWidth(s *models.Sheet, col int) int {
	if w, ok := s.ColWidths[col]; ok {
		return w
	}
	if s.DefaultColWidth > 0 {
		return s.DefaultColWidth
	}
	return z.cfg.ColumnWidth
}

// RowHeight returns the effective height of a row: the larger of the
// override-or-default and the wrap requirement of the row's cells.
func (z *Sizer) RowHeight(s *models.Sheet, row int) int {
	base := z.baseRowHeight(s, row)
	if req := z.wrapRequirement(s, row); req > base {
		return req
	}
	return base
}

func (z *Sizer) baseRowHeight(s *models.Sheet, row int) int {
	if h, ok := s.RowHeights[row]; ok {
		return h
	}
	if s.DefaultRowHeight > 0 {
		return s.DefaultRowHeight
	}
	return z.cfg.RowHeight
}

// GrowRow persists the row's current wrap requirement into the override map
// when it exceeds the effective height. Value edits only ever grow a row;
// shrinking is left to an explicit resize.
func (z *Sizer) GrowRow(s *models.Sheet, row int) {
	cur := z.RowHeight(s, row)
	z.InvalidateRow(s.ID, row)
	if req := z.wrapRequirement(s, row); req > cur {
		s.RowHeights[row] = req
	}
}

// InvalidateRow drops the cached wrap requirement for one row.
func (z *Sizer) InvalidateRow(sheetID string, row int) {
	if rows, ok := z.cache[sheetID]; ok {
		delete(rows, row)
	}
}

// InvalidateSheet drops every cached row of one sheet.
func (z *Sizer) InvalidateSheet(sheetID string) {
	delete(z.cache, sheetID)
}

// InvalidateAll drops the whole cache. Used after undo/redo, which can
// replace any number of sheets at once.
func (z *Sizer) InvalidateAll() {
	z.cache = make(map[string]map[int]int)
}

// wrapRequirement scans the row for wrap-enabled, non-empty cells and
// returns the tallest measured height, or zero when nothing wraps.
func (z *Sizer) wrapRequirement(s *models.Sheet, row int) int {
	if rows, ok := z.cache[s.ID]; ok {
		if req, ok := rows[row]; ok {
			return req
		}
	}
	req := 0
	for ref, cell := range s.Cells {
		if ref.Row != row || cell == nil || cell.Value == "" {
			continue
		}
		f := cell.Format
		if f == nil || f.TextWrap != models.WrapWrap {
			continue
		}
		size := f.FontSize
		if size == 0 {
			size = grid.DefaultFontSize
		}
		h := z.measure.WrappedHeight(cell.Value, z.ColumnWidth(s, ref.Col), size, f.FontFamily)
		if h > req {
			req = h
		}
	}
	rows, ok := z.cache[s.ID]
	if !ok {
		rows = make(map[int]int)
		z.cache[s.ID] = rows
	}
	rows[row] = req
	return req
}
