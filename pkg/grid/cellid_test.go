package grid

import (
	"strings"
	"testing"
)

func TestKeyRoundTrip(t *testing.T) {
	tests := []struct {
		row, col int
		key      string
	}{
		{0, 0, "0-0"},
		{5, 3, "5-3"},
		{999, 25, "999-25"},
	}

	for _, tt := range tests {
		ref := Ref(tt.row, tt.col)
		if got := ref.Key(); got != tt.key {
			t.Errorf("Ref(%d,%d).Key() = %q, want %q", tt.row, tt.col, got, tt.key)
		}
		parsed, ok := ParseKey(tt.key)
		if !ok {
			t.Fatalf("ParseKey(%q) failed", tt.key)
		}
		if parsed != ref {
			t.Errorf("ParseKey(%q) = %+v, want %+v", tt.key, parsed, ref)
		}
	}
}

func TestParseKeyRejectsMalformed(t *testing.T) {
	for _, key := range []string{"", "5", "a-b", "1-", "-1", "1.5-2", "3-x"} {
		if _, ok := ParseKey(key); ok {
			t.Errorf("ParseKey(%q) accepted malformed key", key)
		}
	}
}

func TestColumnLabel(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{0, "A"},
		{1, "B"},
		{25, "Z"},
		{26, "AA"},
		{27, "AB"},
		{51, "AZ"},
		{52, "BA"},
		{701, "ZZ"},
		{702, "AAA"},
	}
	for _, tt := range tests {
		if got := ColumnLabel(tt.col); got != tt.want {
			t.Errorf("ColumnLabel(%d) = %q, want %q", tt.col, got, tt.want)
		}
	}
}

func TestColumnLabelStable(t *testing.T) {
	for col := 0; col < 100; col++ {
		if ColumnLabel(col) != ColumnLabel(col) {
			t.Fatalf("ColumnLabel(%d) not stable", col)
		}
	}
}

func TestRectBetween(t *testing.T) {
	r := RectBetween(Ref(5, 3), Ref(2, 7))
	want := Rect{Top: 2, Left: 3, Bottom: 5, Right: 7}
	if r != want {
		t.Errorf("RectBetween = %+v, want %+v", r, want)
	}
}

func TestBoundingBox(t *testing.T) {
	refs := []CellRef{Ref(4, 1), Ref(1, 4), Ref(2, 2)}
	r, ok := BoundingBox(refs)
	if !ok {
		t.Fatal("BoundingBox returned not-ok for non-empty input")
	}
	want := Rect{Top: 1, Left: 1, Bottom: 4, Right: 4}
	if r != want {
		t.Errorf("BoundingBox = %+v, want %+v", r, want)
	}

	if _, ok := BoundingBox(nil); ok {
		t.Error("BoundingBox(nil) should return not-ok")
	}
}

func TestRectRefsRowMajor(t *testing.T) {
	r := Rect{Top: 0, Left: 0, Bottom: 1, Right: 1}
	refs := r.Refs()
	want := []CellRef{Ref(0, 0), Ref(0, 1), Ref(1, 0), Ref(1, 1)}
	if len(refs) != len(want) {
		t.Fatalf("Refs() returned %d cells, want %d", len(refs), len(want))
	}
	for i := range want {
		if refs[i] != want[i] {
			t.Errorf("Refs()[%d] = %+v, want %+v", i, refs[i], want[i])
		}
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{Top: 1, Left: 1, Bottom: 3, Right: 3}
	if !r.Contains(Ref(2, 2)) {
		t.Error("interior cell reported outside")
	}
	if !r.Contains(Ref(1, 3)) {
		t.Error("corner cell reported outside")
	}
	if r.Contains(Ref(0, 2)) || r.Contains(Ref(2, 4)) {
		t.Error("exterior cell reported inside")
	}
}

func TestWrappedHeightMonotonic(t *testing.T) {
	m := ReflowMeasurer{}
	text := ""
	prev := 0
	for i := 0; i < 200; i++ {
		text += "ab "
		h := m.WrappedHeight(strings.TrimSpace(text), 10, DefaultFontSize, "")
		if h < prev {
			t.Fatalf("height decreased from %d to %d at length %d", prev, h, len(text))
		}
		prev = h
	}
}

func TestWrappedHeightBasics(t *testing.T) {
	m := ReflowMeasurer{}
	if h := m.WrappedHeight("", 10, DefaultFontSize, ""); h != 0 {
		t.Errorf("empty text height = %d, want 0", h)
	}
	if h := m.WrappedHeight("hi", 10, DefaultFontSize, ""); h != 1 {
		t.Errorf("short text height = %d, want 1", h)
	}
	if h := m.WrappedHeight("one two three four", 8, DefaultFontSize, ""); h < 2 {
		t.Errorf("wrapping text height = %d, want >= 2", h)
	}
	// Doubling the font size should not shrink the requirement.
	small := m.WrappedHeight("one two three four", 8, DefaultFontSize, "")
	large := m.WrappedHeight("one two three four", 8, DefaultFontSize*2, "")
	if large < small {
		t.Errorf("larger font shrank height: %d < %d", large, small)
	}
}
