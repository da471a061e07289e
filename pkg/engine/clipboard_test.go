package engine

import (
	"testing"

	"github.com/gridley/gridley-cli/pkg/grid"
	"github.com/gridley/gridley-cli/pkg/models"
)

func TestPasteTilesClipboardModulo(t *testing.T) {
	e := makeTestEngine()
	e.SetCellValue(grid.Ref(0, 0), "even", true)
	e.SetCellValue(grid.Ref(0, 1), "odd", true)

	e.Copy(makeRefs(0, 0, 0, 1))
	targets := makeRefs(2, 0, 2, 1, 2, 2, 2, 3, 2, 4)
	e.Paste(targets)

	want := []string{"even", "odd", "even", "odd", "even"}
	for i, ref := range targets {
		if got := cellValue(e, ref); got != want[i] {
			t.Errorf("target %d value = %q, want %q", i, got, want[i])
		}
	}
}

func TestPasteSingleCellTiles(t *testing.T) {
	e := makeTestEngine()
	e.SetCellValue(grid.Ref(0, 0), "seed", true)
	e.Copy(makeRefs(0, 0))

	targets := makeRefs(3, 0, 3, 1, 4, 0, 4, 1)
	e.Paste(targets)
	for _, ref := range targets {
		if got := cellValue(e, ref); got != "seed" {
			t.Errorf("cell %v = %q, want %q", ref, got, "seed")
		}
	}
}

func TestPasteEmptyClipboardNoOp(t *testing.T) {
	e := makeTestEngine()
	e.Paste(makeRefs(0, 0))
	if len(e.Workbook().History) != 0 {
		t.Error("paste with empty clipboard should be a no-op")
	}
}

func TestCopyIsNotAHistoryOperation(t *testing.T) {
	e := makeTestEngine()
	e.SetCellValue(grid.Ref(0, 0), "x", true)
	before := len(e.Workbook().History)
	e.Copy(makeRefs(0, 0))
	if got := len(e.Workbook().History); got != before {
		t.Error("copy recorded a history entry")
	}
}

func TestCopySnapshotIsDecoupled(t *testing.T) {
	e := makeTestEngine()
	e.SetCellValue(grid.Ref(0, 0), "original", true)
	e.Copy(makeRefs(0, 0))

	// Mutating the sheet afterwards must not change the clipboard.
	e.SetCellValue(grid.Ref(0, 0), "changed", true)

	if got := e.Workbook().CopiedCells[0].Value; got != "original" {
		t.Errorf("clipboard value = %q, want %q", got, "original")
	}
}

func TestCopyBlankPlaceholders(t *testing.T) {
	e := makeTestEngine()
	e.Copy(makeRefs(7, 7))
	cc := e.Workbook().CopiedCells
	if len(cc) != 1 {
		t.Fatalf("clipboard length = %d, want 1", len(cc))
	}
	if !cc[0].IsBlank() {
		t.Error("unpopulated copy source should yield a blank placeholder")
	}
}

func TestFillTiling(t *testing.T) {
	e := makeTestEngine()
	src := grid.Ref(0, 0)
	e.SetCellValue(src, "fill me", true)
	e.ApplyFormat([]grid.CellRef{src}, &models.CellFormat{Bold: boolPtr(true)})

	targets := makeRefs(1, 0, 2, 0, 3, 0)
	e.FillCells([]grid.CellRef{src}, targets)

	wb := e.Workbook()
	for _, ref := range targets {
		c := wb.GetCell(wb.ActiveSheetID, ref)
		if c == nil || c.Value != "fill me" {
			t.Fatalf("target %v not filled", ref)
		}
		if c.Format == nil || c.Format.Bold == nil || !*c.Format.Bold {
			t.Errorf("target %v lost the source format", ref)
		}
		if c.Ref != ref {
			t.Errorf("target %v carries wrong identity %v", ref, c.Ref)
		}
	}

	// Deep copies: targets must not share format pointers with the source.
	srcCell := wb.GetCell(wb.ActiveSheetID, src)
	first := wb.GetCell(wb.ActiveSheetID, targets[0])
	if srcCell.Format == first.Format {
		t.Error("fill shared a format pointer between source and target")
	}
}

func TestFillUsesFirstSourceOnly(t *testing.T) {
	e := makeTestEngine()
	e.SetCellValue(grid.Ref(0, 0), "first", true)
	e.SetCellValue(grid.Ref(0, 1), "second", true)

	e.FillCells(makeRefs(0, 0, 0, 1), makeRefs(1, 0, 1, 1))

	if got := cellValue(e, grid.Ref(1, 0)); got != "first" {
		t.Errorf("target value = %q, want %q", got, "first")
	}
	if got := cellValue(e, grid.Ref(1, 1)); got != "first" {
		t.Errorf("target value = %q, want %q", got, "first")
	}
}

func TestFillNoSourceNoOp(t *testing.T) {
	e := makeTestEngine()
	before := len(e.Workbook().History)

	e.FillCells(nil, makeRefs(1, 0))
	e.FillCells(makeRefs(9, 9), makeRefs(1, 0)) // absent source record
	e.FillCells(makeRefs(0, 0), nil)

	if got := len(e.Workbook().History); got != before {
		t.Error("degenerate fills should not record history")
	}
}

func TestCutClearsValuesAndFillsClipboard(t *testing.T) {
	e := makeTestEngine()
	e.SetCellValue(grid.Ref(0, 0), "gone", true)
	e.Cut(makeRefs(0, 0))

	if got := cellValue(e, grid.Ref(0, 0)); got != "" {
		t.Errorf("cut left value %q behind", got)
	}
	if got := e.Workbook().CopiedCells[0].Value; got != "gone" {
		t.Errorf("clipboard value = %q, want %q", got, "gone")
	}
}

// The end-to-end scenario: type, copy, paste, undo.
func TestCopyPasteUndoScenario(t *testing.T) {
	e := makeTestEngine()
	wb := e.Workbook()

	wb.Selected = makeRefs(0, 0)
	e.SetCellValue(grid.Ref(0, 0), "Hello", true)

	e.Copy(makeRefs(0, 0))

	wb.Selected = makeRefs(1, 0, 1, 1)
	e.Paste(wb.Selected)

	if cellValue(e, grid.Ref(1, 0)) != "Hello" || cellValue(e, grid.Ref(1, 1)) != "Hello" {
		t.Fatal("paste did not propagate the copied value")
	}

	if !e.Undo() {
		t.Fatal("undo failed")
	}
	if got := cellValue(e, grid.Ref(1, 0)); got != "" {
		t.Errorf("1-0 after undo = %q, want blank", got)
	}
	if got := cellValue(e, grid.Ref(1, 1)); got != "" {
		t.Errorf("1-1 after undo = %q, want blank", got)
	}
	if got := cellValue(e, grid.Ref(0, 0)); got != "Hello" {
		t.Errorf("0-0 after undo = %q, want %q", got, "Hello")
	}
}
