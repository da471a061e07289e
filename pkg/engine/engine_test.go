package engine

import (
	"github.com/gridley/gridley-cli/pkg/grid"
	"github.com/gridley/gridley-cli/pkg/models"
)

// Test helpers shared by the engine tests.

func makeTestEngine() *Engine {
	return New(models.DefaultSettings())
}

func makeRefs(pairs ...int) []grid.CellRef {
	refs := make([]grid.CellRef, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		refs = append(refs, grid.Ref(pairs[i], pairs[i+1]))
	}
	return refs
}

func boolPtr(v bool) *bool {
	return &v
}

func makeDropdown(values ...string) *models.Dropdown {
	dd := &models.Dropdown{ID: "dd-test"}
	for _, v := range values {
		dd.Options = append(dd.Options, models.DropdownOption{Value: v, Label: v})
	}
	return dd
}

// cellValue reads a value off the active sheet, "" for absent cells.
func cellValue(e *Engine, ref grid.CellRef) string {
	c := e.Workbook().GetCell(e.Workbook().ActiveSheetID, ref)
	if c == nil {
		return ""
	}
	return c.Value
}
