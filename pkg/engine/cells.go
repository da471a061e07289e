package engine

import (
	"github.com/gridley/gridley-cli/pkg/grid"
	"github.com/gridley/gridley-cli/pkg/models"
)

// SetCellValue replaces the value at ref on the active sheet, preserving
// format, dropdown and link. Wrap-enabled cells can grow their row, never
// shrink it. record=false suppresses the history snapshot so keystroke
// streams can coalesce into one entry at commit time.
func (e *Engine) SetCellValue(ref grid.CellRef, value string, record bool) {
	s := e.wb.ActiveSheet()
	if s == nil {
		return
	}
	c := cellForWrite(s, ref)
	c.Value = value
	s.Cells[ref] = c
	if c.Format != nil && c.Format.TextWrap == models.WrapWrap {
		e.sizer.GrowRow(s, ref.Row)
	}
	if record {
		e.SaveToHistory()
	}
}

// boolFormatFields is the closed set of format fields with toggle-on-reapply
// semantics. Everything else in a format patch is set absolutely.
var boolFormatFields = []struct {
	get func(*models.CellFormat) *bool
	set func(*models.CellFormat, bool)
}{
	{func(f *models.CellFormat) *bool { return f.Bold }, func(f *models.CellFormat, v bool) { f.Bold = &v }},
	{func(f *models.CellFormat) *bool { return f.Italic }, func(f *models.CellFormat, v bool) { f.Italic = &v }},
	{func(f *models.CellFormat) *bool { return f.Underline }, func(f *models.CellFormat, v bool) { f.Underline = &v }},
	{func(f *models.CellFormat) *bool { return f.Strikethrough }, func(f *models.CellFormat, v bool) { f.Strikethrough = &v }},
}

// ApplyFormat applies a partial format to every cell in refs and appends a
// single history snapshot for the whole batch. Boolean fields present in
// the patch toggle relative to each cell's own prior state: a cell that
// already has the field set gets its negation, an untouched cell gets the
// patch value. Non-boolean fields are set absolutely.
func (e *Engine) ApplyFormat(refs []grid.CellRef, patch *models.CellFormat) {
	if len(refs) == 0 || patch == nil {
		return
	}
	s := e.wb.ActiveSheet()
	if s == nil {
		return
	}
	for _, ref := range refs {
		c := cellForWrite(s, ref)
		c.Format = mergeFormat(c.Format, patch)
		s.Cells[ref] = c
		if patch.TextWrap != "" || patch.FontSize > 0 {
			e.sizer.InvalidateRow(s.ID, ref.Row)
		}
	}
	e.SaveToHistory()
}

func mergeFormat(existing, patch *models.CellFormat) *models.CellFormat {
	out := existing.Clone()
	if out == nil {
		out = &models.CellFormat{}
	}
	for _, fld := range boolFormatFields {
		p := fld.get(patch)
		if p == nil {
			continue
		}
		if cur := fld.get(out); cur != nil {
			fld.set(out, !*cur)
		} else {
			fld.set(out, *p)
		}
	}
	if patch.FontFamily != "" {
		out.FontFamily = patch.FontFamily
	}
	if patch.FontSize > 0 {
		out.FontSize = patch.FontSize
	}
	if patch.TextColor != "" {
		out.TextColor = patch.TextColor
	}
	if patch.BackgroundColor != "" {
		out.BackgroundColor = patch.BackgroundColor
	}
	if patch.NumberFormat != "" {
		out.NumberFormat = patch.NumberFormat
	}
	if patch.HorizontalAlign != "" {
		out.HorizontalAlign = patch.HorizontalAlign
	}
	if patch.VerticalAlign != "" {
		out.VerticalAlign = patch.VerticalAlign
	}
	if patch.TextWrap != "" {
		out.TextWrap = patch.TextWrap
	}
	if patch.Borders != nil {
		b := *patch.Borders
		out.Borders = &b
	}
	return out
}

// SetLink sets or clears the link at ref; nothing else on the record moves.
func (e *Engine) SetLink(ref grid.CellRef, link *models.CellLink) {
	s := e.wb.ActiveSheet()
	if s == nil {
		return
	}
	c := cellForWrite(s, ref)
	c.Link = link.Clone()
	s.Cells[ref] = c
	e.SaveToHistory()
}

// SetDropdown sets or clears the dropdown binding at ref. Assigning a
// non-empty dropdown to a blank cell auto-selects its first option.
func (e *Engine) SetDropdown(ref grid.CellRef, dd *models.Dropdown) {
	s := e.wb.ActiveSheet()
	if s == nil {
		return
	}
	c := cellForWrite(s, ref)
	c.Dropdown = dd.Clone()
	if dd != nil && len(dd.Options) > 0 && c.Value == "" {
		c.Value = dd.Options[0].Value
	}
	s.Cells[ref] = c
	e.SaveToHistory()
}

// DeleteSelection clears the value of every existing record in refs,
// keeping formats, dropdowns, links and merges. Absent cells stay absent.
// History is appended only when something actually cleared.
func (e *Engine) DeleteSelection(refs []grid.CellRef) {
	s := e.wb.ActiveSheet()
	if s == nil {
		return
	}
	changed := false
	for _, ref := range refs {
		c := s.Cells[ref]
		if c == nil || c.Value == "" {
			continue
		}
		nc := c.Clone()
		nc.Value = ""
		s.Cells[ref] = nc
		changed = true
		if nc.Format != nil && nc.Format.TextWrap == models.WrapWrap {
			e.sizer.InvalidateRow(s.ID, ref.Row)
		}
	}
	if changed {
		e.SaveToHistory()
	}
}
