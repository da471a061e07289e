package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridley/gridley-cli/pkg/engine"
	"github.com/gridley/gridley-cli/pkg/grid"
)

// dragState is the pointer half of the interaction state machine. Editing
// is tracked separately through the workbook's editing pointer, since it is
// entered from both pointer and keyboard gestures.
type dragState int

const (
	dragIdle dragState = iota
	dragRangeSelecting
	dragFilling
	dragResizingColumn
	dragResizingRow
)

const (
	rowGutterWidth   = 5
	doubleClickDelay = 300 * time.Millisecond
)

// GridModel owns the grid viewport: virtualized scroll window, selection,
// pointer state machine and the cell editor.
type GridModel struct {
	eng *engine.Engine

	width  int
	height int

	scrollRow int
	scrollCol int

	// Selection geometry. anchor is the drag/extend origin, cursor the
	// focused cell; the workbook's Selected list is derived from them for
	// rectangular selections and extended cell-by-cell for unions.
	anchor grid.CellRef
	cursor grid.CellRef

	state     dragState
	dragStart grid.CellRef
	fillRange []grid.CellRef

	resizeIndex int
	resizeFrom  int // pointer coordinate at drag start
	resizeSize  int // size at drag start
	resized     bool

	lastClickRef  grid.CellRef
	lastClickTime time.Time

	editor textinput.Model
}

// NewGridModel creates the grid view over an engine.
func NewGridModel(eng *engine.Engine) *GridModel {
	ti := textinput.New()
	ti.Prompt = ""
	return &GridModel{
		eng:    eng,
		editor: ti,
	}
}

// SetSize updates the viewport dimensions.
func (m *GridModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selection returns the current selection in insertion order.
func (m *GridModel) Selection() []grid.CellRef {
	return m.eng.Workbook().Selected
}

// EditingCell returns the cell being edited, or nil.
func (m *GridModel) EditingCell() *grid.CellRef {
	return m.eng.Workbook().EditingCell
}

// FillPreview returns the uncommitted fill-drag range.
func (m *GridModel) FillPreview() []grid.CellRef {
	return m.fillRange
}

func (m *GridModel) editing() bool {
	return m.eng.Workbook().EditingCell != nil
}

// Update routes pointer and keyboard events.
func (m *GridModel) Update(msg tea.Msg) (*GridModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// selectOnly replaces the selection with a single cell.
func (m *GridModel) selectOnly(ref grid.CellRef) {
	m.anchor = ref
	m.cursor = ref
	m.eng.Workbook().Selected = []grid.CellRef{ref}
	m.ensureVisible(ref)
}

// selectSpan replaces the selection with the rectangle between the anchor
// and the cursor.
func (m *GridModel) selectSpan(cursor grid.CellRef) {
	m.cursor = cursor
	m.eng.Workbook().Selected = grid.RectBetween(m.anchor, cursor).Refs()
	m.ensureVisible(cursor)
}

// unionSelect adds a cell to the selection without replacing it, collapsing
// duplicates.
func (m *GridModel) unionSelect(ref grid.CellRef) {
	wb := m.eng.Workbook()
	if !wb.IsSelected(ref) {
		wb.Selected = append(wb.Selected, ref)
	}
	m.anchor = ref
	m.cursor = ref
	m.ensureVisible(ref)
}

// ensureVisible scrolls the window so ref is on screen.
func (m *GridModel) ensureVisible(ref grid.CellRef) {
	if ref.Row < m.scrollRow {
		m.scrollRow = ref.Row
	}
	if ref.Col < m.scrollCol {
		m.scrollCol = ref.Col
	}
	// Walk forward until the cell fits in the window.
	for m.scrollRow < ref.Row && !m.rowFullyVisible(ref.Row) {
		m.scrollRow++
	}
	for m.scrollCol < ref.Col && !m.colFullyVisible(ref.Col) {
		m.scrollCol++
	}
}

func (m *GridModel) rowFullyVisible(row int) bool {
	s := m.eng.Workbook().ActiveSheet()
	if s == nil {
		return true
	}
	budget := m.height - 1 // column header line
	y := 0
	for r := m.scrollRow; r <= row; r++ {
		y += m.eng.Sizer().RowHeight(s, r)
		if y > budget {
			return false
		}
	}
	return true
}

func (m *GridModel) colFullyVisible(col int) bool {
	s := m.eng.Workbook().ActiveSheet()
	if s == nil {
		return true
	}
	budget := m.width - rowGutterWidth
	x := 0
	for c := m.scrollCol; c <= col; c++ {
		x += m.eng.Sizer().ColumnWidth(s, c)
		if x > budget {
			return false
		}
	}
	return true
}

// colSpan places one visible column on screen.
type colSpan struct {
	col   int
	x     int // first screen column, gutter included
	width int
}

// rowBand places one visible row on screen.
type rowBand struct {
	row    int
	y      int // first screen line, header included
	height int
}

// visibleCols computes the horizontal render window.
func (m *GridModel) visibleCols() []colSpan {
	s := m.eng.Workbook().ActiveSheet()
	if s == nil {
		return nil
	}
	cfg := m.eng.Config()
	var spans []colSpan
	x := rowGutterWidth
	for col := m.scrollCol; col < cfg.Cols && x < m.width; col++ {
		w := m.eng.Sizer().ColumnWidth(s, col)
		if x+w > m.width {
			w = m.width - x
		}
		spans = append(spans, colSpan{col: col, x: x, width: w})
		x += w
	}
	return spans
}

// visibleRows computes the vertical render window.
func (m *GridModel) visibleRows() []rowBand {
	s := m.eng.Workbook().ActiveSheet()
	if s == nil {
		return nil
	}
	cfg := m.eng.Config()
	var bands []rowBand
	y := 1 // below the column header
	for row := m.scrollRow; row < cfg.Rows && y < m.height; row++ {
		h := m.eng.Sizer().RowHeight(s, row)
		if y+h > m.height {
			h = m.height - y
		}
		bands = append(bands, rowBand{row: row, y: y, height: h})
		y += h
	}
	return bands
}

// cellAt maps a screen position to the cell under it.
func (m *GridModel) cellAt(x, y int) (grid.CellRef, bool) {
	if x < rowGutterWidth || y < 1 {
		return grid.CellRef{}, false
	}
	var row, col = -1, -1
	for _, band := range m.visibleRows() {
		if y >= band.y && y < band.y+band.height {
			row = band.row
			break
		}
	}
	for _, span := range m.visibleCols() {
		if x >= span.x && x < span.x+span.width {
			col = span.col
			break
		}
	}
	if row < 0 || col < 0 {
		return grid.CellRef{}, false
	}
	return grid.Ref(row, col), true
}

// columnBoundaryAt reports the column whose right edge sits under x on the
// header line, i.e. a resize handle hit.
func (m *GridModel) columnBoundaryAt(x int) (int, bool) {
	for _, span := range m.visibleCols() {
		if x == span.x+span.width-1 {
			return span.col, true
		}
	}
	return 0, false
}

// rowBoundaryAt reports the row whose bottom edge sits under y inside the
// row-number gutter.
func (m *GridModel) rowBoundaryAt(y int) (int, bool) {
	for _, band := range m.visibleRows() {
		if y == band.y+band.height-1 {
			return band.row, true
		}
	}
	return 0, false
}

// fillHandleAt reports whether the position is the fill handle: the
// bottom-right character of the selection's bounding rectangle.
func (m *GridModel) fillHandleAt(x, y int) bool {
	sel := m.eng.Workbook().Selected
	rect, ok := grid.BoundingBox(sel)
	if !ok {
		return false
	}
	corner := grid.Ref(rect.Bottom, rect.Right)
	for _, band := range m.visibleRows() {
		if band.row != corner.Row {
			continue
		}
		for _, span := range m.visibleCols() {
			if span.col != corner.Col {
				continue
			}
			return x == span.x+span.width-1 && y == band.y+band.height-1
		}
	}
	return false
}
