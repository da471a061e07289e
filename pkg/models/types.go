package models

import "github.com/gridley/gridley-cli/pkg/grid"

// NumberFormat selects how a cell value is converted for display. Only
// number, currency and percent are interpreted by rendering; the rest are
// carried as annotations.
type NumberFormat string

const (
	NumberFormatText     NumberFormat = "text"
	NumberFormatNumber   NumberFormat = "number"
	NumberFormatCurrency NumberFormat = "currency"
	NumberFormatPercent  NumberFormat = "percent"
	NumberFormatDate     NumberFormat = "date"
	NumberFormatTime     NumberFormat = "time"
)

// Alignment values. Empty means "unset, use the rendering default".
const (
	AlignLeft   = "left"
	AlignCenter = "center"
	AlignRight  = "right"
	AlignTop    = "top"
	AlignMiddle = "middle"
	AlignBottom = "bottom"
)

// Text wrap modes.
const (
	WrapClip = "clip"
	WrapWrap = "wrap"
)

// Borders marks which cell edges draw a border.
type Borders struct {
	Top    bool
	Right  bool
	Bottom bool
	Left   bool
}

// CellFormat is a partial record: zero-valued fields are unset and fall
// back to rendering defaults (14px font, left align, clip). The boolean
// styles use pointers so "unset" is distinguishable from "explicitly off",
// which the toggle-on-reapply semantics in the engine depend on.
type CellFormat struct {
	FontFamily      string
	FontSize        int
	Bold            *bool
	Italic          *bool
	Underline       *bool
	Strikethrough   *bool
	TextColor       string
	BackgroundColor string
	NumberFormat    NumberFormat
	HorizontalAlign string
	VerticalAlign   string
	TextWrap        string
	Borders         *Borders
}

// Clone returns a fully decoupled copy.
func (f *CellFormat) Clone() *CellFormat {
	if f == nil {
		return nil
	}
	c := *f
	c.Bold = cloneBool(f.Bold)
	c.Italic = cloneBool(f.Italic)
	c.Underline = cloneBool(f.Underline)
	c.Strikethrough = cloneBool(f.Strikethrough)
	if f.Borders != nil {
		b := *f.Borders
		c.Borders = &b
	}
	return &c
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

// DropdownOption is one selectable entry of a dropdown binding. Values are
// unique within one dropdown.
type DropdownOption struct {
	Value           string
	Label           string
	BackgroundColor string
	TextColor       string
}

// Dropdown constrains a cell's value to a closed option list.
type Dropdown struct {
	ID      string
	Options []DropdownOption
}

func (d *Dropdown) Clone() *Dropdown {
	if d == nil {
		return nil
	}
	c := &Dropdown{ID: d.ID, Options: make([]DropdownOption, len(d.Options))}
	copy(c.Options, d.Options)
	return c
}

// CellLink attaches a hyperlink to a cell. It never affects the value.
type CellLink struct {
	URL   string
	Title string
}

func (l *CellLink) Clone() *CellLink {
	if l == nil {
		return nil
	}
	c := *l
	return &c
}

// Cell is one sparse cell record. A cell with no attributes set is
// indistinguishable from an absent one for read purposes.
type Cell struct {
	Ref      grid.CellRef
	Value    string
	Format   *CellFormat
	Dropdown *Dropdown
	Link     *CellLink
}

// Clone returns a fully decoupled copy.
func (c *Cell) Clone() *Cell {
	if c == nil {
		return nil
	}
	return &Cell{
		Ref:      c.Ref,
		Value:    c.Value,
		Format:   c.Format.Clone(),
		Dropdown: c.Dropdown.Clone(),
		Link:     c.Link.Clone(),
	}
}

// IsBlank reports whether the record carries no attributes, i.e. whether it
// could be dropped from storage without changing reads.
func (c *Cell) IsBlank() bool {
	return c == nil || (c.Value == "" && c.Format == nil && c.Dropdown == nil && c.Link == nil)
}

// Merge describes a cell's participation in a merged rectangle. The origin
// (top-left) cell carries the span; members point back at the origin.
type Merge struct {
	RowSpan  int
	ColSpan  int
	IsOrigin bool
	Origin   grid.CellRef // set on members only
}

func (m *Merge) Clone() *Merge {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

// Sheet aggregates the sparse cell store, the merge tracker and the sizing
// override maps under one identity. Cell and merge records stored behind
// pointers are immutable once stored: the engine replaces records instead
// of mutating them, so history snapshots may share the pointers safely.
type Sheet struct {
	ID         string
	Name       string
	Color      string
	Cells      map[grid.CellRef]*Cell
	Merges     map[grid.CellRef]*Merge
	RowHeights map[int]int // row index -> screen lines
	ColWidths  map[int]int // col index -> character cells

	// Per-sheet size defaults; zero means use the workbook settings.
	DefaultRowHeight int
	DefaultColWidth  int
}

// NewSheet creates an empty sheet.
func NewSheet(id, name string) *Sheet {
	return &Sheet{
		ID:         id,
		Name:       name,
		Cells:      make(map[grid.CellRef]*Cell),
		Merges:     make(map[grid.CellRef]*Merge),
		RowHeights: make(map[int]int),
		ColWidths:  make(map[int]int),
	}
}

// Fork returns a copy with fresh map headers that shares the (immutable)
// cell and merge records. History snapshots are built from forks, so a
// later mutation of the live maps can never reach back into a snapshot.
func (s *Sheet) Fork() *Sheet {
	c := *s
	c.Cells = make(map[grid.CellRef]*Cell, len(s.Cells))
	for ref, cell := range s.Cells {
		c.Cells[ref] = cell
	}
	c.Merges = make(map[grid.CellRef]*Merge, len(s.Merges))
	for ref, m := range s.Merges {
		c.Merges[ref] = m
	}
	c.RowHeights = make(map[int]int, len(s.RowHeights))
	for k, v := range s.RowHeights {
		c.RowHeights[k] = v
	}
	c.ColWidths = make(map[int]int, len(s.ColWidths))
	for k, v := range s.ColWidths {
		c.ColWidths[k] = v
	}
	return &c
}

// Clone returns a fully decoupled deep copy, cloning every record. Used for
// sheet duplication, where the copy gets an independent editing life.
func (s *Sheet) Clone() *Sheet {
	c := s.Fork()
	for ref, cell := range c.Cells {
		c.Cells[ref] = cell.Clone()
	}
	for ref, m := range c.Merges {
		c.Merges[ref] = m.Clone()
	}
	return c
}

// HistoryEntry is one undo snapshot: the sheets and the selection as they
// were immediately after a mutation.
type HistoryEntry struct {
	Sheets   []*Sheet
	Selected []grid.CellRef
}

// Workbook is the single live spreadsheet state. The TUI owns one instance;
// every mutation runs to completion before the next is dispatched.
type Workbook struct {
	Sheets        []*Sheet
	ActiveSheetID string
	Selected      []grid.CellRef // insertion order matters for fill/paste anchors
	EditingCell   *grid.CellRef
	CopiedCells   []*Cell // value snapshot, decoupled from any sheet

	History         []HistoryEntry
	HistoryIndex    int // -1 when empty
	HistoryCapacity int

	SheetSerial int // feeds generated sheet ids/names
}

// ActiveSheet returns the sheet ActiveSheetID points at, or nil if the
// workbook is in a broken intermediate state (never observable in practice).
func (wb *Workbook) ActiveSheet() *Sheet {
	for _, s := range wb.Sheets {
		if s.ID == wb.ActiveSheetID {
			return s
		}
	}
	return nil
}

// SheetByID looks a sheet up by id.
func (wb *Workbook) SheetByID(id string) *Sheet {
	for _, s := range wb.Sheets {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// GetCell returns the cell record at ref on the given sheet, or nil if
// absent. Absent and present-with-defaults read the same.
func (wb *Workbook) GetCell(sheetID string, ref grid.CellRef) *Cell {
	s := wb.SheetByID(sheetID)
	if s == nil {
		return nil
	}
	return s.Cells[ref]
}

// IsSelected reports whether ref is part of the current selection.
func (wb *Workbook) IsSelected(ref grid.CellRef) bool {
	for _, sel := range wb.Selected {
		if sel == ref {
			return true
		}
	}
	return false
}
