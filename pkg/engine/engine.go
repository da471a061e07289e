// Package engine implements the spreadsheet mutation operations. Every
// operation runs to completion on the caller's goroutine and either leaves
// the workbook untouched (no-op on invalid input) or commits a whole new
// consistent state, usually followed by a history snapshot.
package engine

import (
	"fmt"

	"github.com/gridley/gridley-cli/pkg/grid"
	"github.com/gridley/gridley-cli/pkg/models"
)

// Engine owns the single live workbook and the sizing cache. Cell and merge
// records reachable from the workbook are treated as immutable: mutations
// always clone-modify-replace, never write through a stored pointer, so
// history snapshots can share records with the live maps.
type Engine struct {
	wb    *models.Workbook
	sizer *Sizer
	cfg   models.GridSettings
}

// New creates an engine over a fresh single-sheet workbook.
func New(settings *models.Settings) *Engine {
	cfg := settings.Grid
	return &Engine{
		wb:    NewWorkbook(cfg),
		sizer: NewSizer(cfg, grid.ReflowMeasurer{}),
		cfg:   cfg,
	}
}

// NewWorkbook returns an empty workbook with one sheet named Sheet1.
func NewWorkbook(cfg models.GridSettings) *models.Workbook {
	first := models.NewSheet("sheet-1", "Sheet1")
	return &models.Workbook{
		Sheets:          []*models.Sheet{first},
		ActiveSheetID:   first.ID,
		Selected:        []grid.CellRef{grid.Ref(0, 0)},
		HistoryIndex:    -1,
		HistoryCapacity: cfg.HistoryCapacity,
		SheetSerial:     1,
	}
}

// Workbook exposes the live state for readers (the render boundary).
func (e *Engine) Workbook() *models.Workbook {
	return e.wb
}

// Sizer exposes effective row/column sizing for the render boundary.
func (e *Engine) Sizer() *Sizer {
	return e.sizer
}

// Config returns the grid settings the engine was built with.
func (e *Engine) Config() models.GridSettings {
	return e.cfg
}

// cellForWrite returns a private copy of the record at ref, or a fresh
// blank record if the cell is absent. The caller mutates the copy and
// stores it back, which keeps stored records immutable.
func cellForWrite(s *models.Sheet, ref grid.CellRef) *models.Cell {
	if c := s.Cells[ref]; c != nil {
		return c.Clone()
	}
	return &models.Cell{Ref: ref}
}

func (e *Engine) nextSheetID() string {
	e.wb.SheetSerial++
	return fmt.Sprintf("sheet-%d", e.wb.SheetSerial)
}
