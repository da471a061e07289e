package grid

import (
	"strconv"
	"strings"
)

// Grid bounds. Rows are open-ended in principle; these are the limits the
// interactive surface exposes.
const (
	MaxRows = 1000
	MaxCols = 26
)

// CellRef identifies a cell by zero-based row and column. It is used
// directly as a map key so lookups never parse strings.
type CellRef struct {
	Row int
	Col int
}

// Ref is a convenience constructor.
func Ref(row, col int) CellRef {
	return CellRef{Row: row, Col: col}
}

// Key returns the canonical "<row>-<col>" string form used at the external
// API surface and in clipboard text.
func (r CellRef) Key() string {
	return strconv.Itoa(r.Row) + "-" + strconv.Itoa(r.Col)
}

// Label returns the human-readable address, e.g. "B7" for row 6, col 1.
func (r CellRef) Label() string {
	return ColumnLabel(r.Col) + strconv.Itoa(r.Row+1)
}

// ParseKey parses a "<row>-<col>" key. The second return is false for
// malformed keys or negative indices.
func ParseKey(key string) (CellRef, bool) {
	rowPart, colPart, found := strings.Cut(key, "-")
	if !found {
		return CellRef{}, false
	}
	row, err := strconv.Atoi(rowPart)
	if err != nil || row < 0 {
		return CellRef{}, false
	}
	col, err := strconv.Atoi(colPart)
	if err != nil || col < 0 {
		return CellRef{}, false
	}
	return CellRef{Row: row, Col: col}, true
}

// ColumnLabel converts a zero-based column index to its letter label using
// bijective base-26 numeration: A..Z, AA, AB, ...
func ColumnLabel(col int) string {
	if col < 0 {
		return ""
	}
	var b []byte
	for col >= 0 {
		b = append([]byte{byte('A' + col%26)}, b...)
		col = col/26 - 1
	}
	return string(b)
}

// Rect is an inclusive rectangle of cells.
type Rect struct {
	Top    int
	Left   int
	Bottom int
	Right  int
}

// RectBetween returns the rectangle spanned by two corner cells, in any
// corner order.
func RectBetween(a, b CellRef) Rect {
	return Rect{
		Top:    min(a.Row, b.Row),
		Left:   min(a.Col, b.Col),
		Bottom: max(a.Row, b.Row),
		Right:  max(a.Col, b.Col),
	}
}

// BoundingBox returns the smallest rectangle containing every ref. The
// second return is false for an empty input.
func BoundingBox(refs []CellRef) (Rect, bool) {
	if len(refs) == 0 {
		return Rect{}, false
	}
	r := Rect{Top: refs[0].Row, Left: refs[0].Col, Bottom: refs[0].Row, Right: refs[0].Col}
	for _, ref := range refs[1:] {
		r.Top = min(r.Top, ref.Row)
		r.Left = min(r.Left, ref.Col)
		r.Bottom = max(r.Bottom, ref.Row)
		r.Right = max(r.Right, ref.Col)
	}
	return r, true
}

// Contains reports whether the ref lies inside the rectangle.
func (r Rect) Contains(ref CellRef) bool {
	return ref.Row >= r.Top && ref.Row <= r.Bottom && ref.Col >= r.Left && ref.Col <= r.Right
}

// Refs enumerates the rectangle's cells in row-major order.
func (r Rect) Refs() []CellRef {
	refs := make([]CellRef, 0, (r.Bottom-r.Top+1)*(r.Right-r.Left+1))
	for row := r.Top; row <= r.Bottom; row++ {
		for col := r.Left; col <= r.Right; col++ {
			refs = append(refs, CellRef{Row: row, Col: col})
		}
	}
	return refs
}

// Origin returns the top-left cell.
func (r Rect) Origin() CellRef {
	return CellRef{Row: r.Top, Col: r.Left}
}
