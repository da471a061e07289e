package engine

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/gridley/gridley-cli/pkg/grid"
)

func TestHistoryBound(t *testing.T) {
	e := makeTestEngine()
	for i := 0; i < 60; i++ {
		e.SetCellValue(grid.Ref(0, 0), strconv.Itoa(i), true)
	}

	wb := e.Workbook()
	if len(wb.History) > 50 {
		t.Fatalf("history length = %d, want <= 50", len(wb.History))
	}
	if wb.HistoryIndex != len(wb.History)-1 {
		t.Errorf("cursor = %d, want %d", wb.HistoryIndex, len(wb.History)-1)
	}

	// Undoing all the way lands on the oldest retained snapshot, not the
	// true original: the earliest edits were evicted.
	for e.Undo() {
	}
	if got := cellValue(e, grid.Ref(0, 0)); got != "10" {
		t.Errorf("oldest retained value = %q, want %q", got, "10")
	}
}

func TestUndoRedoInverse(t *testing.T) {
	e := makeTestEngine()
	ref := grid.Ref(0, 0)

	e.SetCellValue(ref, "first", true)
	snapshotSheet := e.Workbook().ActiveSheet()

	e.SetCellValue(ref, "second", true)

	if !e.Undo() {
		t.Fatal("undo failed with two history entries")
	}
	live := e.Workbook().ActiveSheet()
	if got := live.Cells[ref].Value; got != "first" {
		t.Errorf("after undo value = %q, want %q", got, "first")
	}
	// Restored state is a copy, never the snapshot itself.
	if live == snapshotSheet {
		t.Error("undo aliased the live sheet with a snapshot")
	}

	if !e.Redo() {
		t.Fatal("redo failed")
	}
	if got := cellValue(e, ref); got != "second" {
		t.Errorf("after redo value = %q, want %q", got, "second")
	}
}

func TestUndoRedoBoundariesNoOp(t *testing.T) {
	e := makeTestEngine()
	if e.Undo() {
		t.Error("undo on empty history should be a no-op")
	}
	if e.Redo() {
		t.Error("redo on empty history should be a no-op")
	}

	e.SetCellValue(grid.Ref(0, 0), "only", true)
	if e.Undo() {
		t.Error("undo at index 0 should be a no-op")
	}
	if e.Redo() {
		t.Error("redo at the newest entry should be a no-op")
	}
}

func TestHistoryTruncatesRedoBranch(t *testing.T) {
	e := makeTestEngine()
	ref := grid.Ref(0, 0)
	e.SetCellValue(ref, "a", true)
	e.SetCellValue(ref, "b", true)
	e.SetCellValue(ref, "c", true)

	e.Undo()
	e.Undo()
	// A new mutation discards the redo branch (b, c).
	e.SetCellValue(ref, "d", true)

	if e.Redo() {
		t.Error("redo should be impossible after branching")
	}
	wb := e.Workbook()
	if len(wb.History) != 2 {
		t.Errorf("history length = %d, want 2 (a, d)", len(wb.History))
	}
	if got := cellValue(e, ref); got != "d" {
		t.Errorf("value = %q, want %q", got, "d")
	}
}

func TestSnapshotsAreDecoupledFromLiveState(t *testing.T) {
	e := makeTestEngine()
	ref := grid.Ref(0, 0)
	e.SetCellValue(ref, "frozen", true)

	// Mutate the live state without recording. The existing snapshot must
	// not see the change.
	e.SetCellValue(ref, "mutated", false)

	snap := e.Workbook().History[0]
	if got := snap.Sheets[0].Cells[ref].Value; got != "frozen" {
		t.Errorf("snapshot value = %q, want %q (snapshot aliased live state)", got, "frozen")
	}
}

func TestUndoClearsEditingCell(t *testing.T) {
	e := makeTestEngine()
	ref := grid.Ref(0, 0)
	e.SetCellValue(ref, "a", true)
	e.SetCellValue(ref, "b", true)

	editing := grid.Ref(0, 0)
	e.Workbook().EditingCell = &editing
	e.Undo()
	if e.Workbook().EditingCell != nil {
		t.Error("undo should clear the editing pointer")
	}
}

func TestUndoRestoresSelection(t *testing.T) {
	e := makeTestEngine()
	e.Workbook().Selected = makeRefs(0, 0)
	e.SetCellValue(grid.Ref(0, 0), "x", true)

	e.Workbook().Selected = makeRefs(5, 5, 5, 6)
	e.SetCellValue(grid.Ref(5, 5), "y", true)

	e.Undo()
	want := fmt.Sprintf("%v", makeRefs(0, 0))
	if got := fmt.Sprintf("%v", e.Workbook().Selected); got != want {
		t.Errorf("selection after undo = %s, want %s", got, want)
	}
}
