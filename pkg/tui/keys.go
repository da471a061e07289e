package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gridley/gridley-cli/pkg/grid"
	"github.com/gridley/gridley-cli/pkg/models"
)

func statusCmd(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg { return StatusMsg(msg) }
}

// handleKey dispatches keyboard input, routing to the editor buffer while
// an edit is in progress.
func (m *GridModel) handleKey(msg tea.KeyMsg) (*GridModel, tea.Cmd) {
	if m.editing() {
		return m.handleEditingKey(msg)
	}

	wb := m.eng.Workbook()
	switch msg.String() {
	case "up":
		m.moveCursor(-1, 0, false)
	case "down":
		m.moveCursor(1, 0, false)
	case "left":
		m.moveCursor(0, -1, false)
	case "right", "tab":
		m.moveCursor(0, 1, false)
	case "shift+up":
		m.moveCursor(-1, 0, true)
	case "shift+down":
		m.moveCursor(1, 0, true)
	case "shift+left":
		m.moveCursor(0, -1, true)
	case "shift+right":
		m.moveCursor(0, 1, true)
	case "shift+tab":
		m.moveCursor(0, -1, false)

	case "enter", "f2":
		if len(wb.Selected) == 1 {
			m.startEditing(wb.Selected[0], "")
		}

	case "delete", "backspace":
		m.eng.DeleteSelection(wb.Selected)

	case "ctrl+z":
		if m.eng.Undo() {
			return m, statusCmd("Undone")
		}
		return m, statusCmd("Nothing to undo")
	case "ctrl+y":
		if m.eng.Redo() {
			return m, statusCmd("Redone")
		}
		return m, statusCmd("Nothing to redo")

	case "ctrl+c":
		m.eng.Copy(wb.Selected)
		m.exportCopiedToClipboard()
		return m, statusCmd("Copied %d cell(s)", len(wb.Selected))
	case "ctrl+x":
		m.eng.Cut(wb.Selected)
		m.exportCopiedToClipboard()
		return m, statusCmd("Cut %d cell(s)", len(wb.Selected))
	case "ctrl+v":
		m.eng.Paste(wb.Selected)

	case "ctrl+b":
		m.eng.ApplyFormat(wb.Selected, &models.CellFormat{Bold: ptr(true)})
	case "alt+i":
		m.eng.ApplyFormat(wb.Selected, &models.CellFormat{Italic: ptr(true)})
	case "ctrl+u":
		m.eng.ApplyFormat(wb.Selected, &models.CellFormat{Underline: ptr(true)})
	case "alt+s":
		m.eng.ApplyFormat(wb.Selected, &models.CellFormat{Strikethrough: ptr(true)})

	case "alt+w":
		m.eng.ApplyFormat(wb.Selected, &models.CellFormat{TextWrap: m.nextWrapMode()})
	case "alt+1":
		m.eng.ApplyFormat(wb.Selected, &models.CellFormat{HorizontalAlign: models.AlignLeft})
	case "alt+2":
		m.eng.ApplyFormat(wb.Selected, &models.CellFormat{HorizontalAlign: models.AlignCenter})
	case "alt+3":
		m.eng.ApplyFormat(wb.Selected, &models.CellFormat{HorizontalAlign: models.AlignRight})

	case "alt+m":
		m.eng.MergeCells(wb.Selected)
	case "alt+u":
		m.eng.UnmergeCells(wb.Selected)

	default:
		// A single printable character enters type-to-overwrite editing.
		if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1 {
			if len(wb.Selected) == 1 {
				m.startEditing(wb.Selected[0], string(msg.Runes))
			}
		}
	}
	return m, nil
}

func (m *GridModel) handleEditingKey(msg tea.KeyMsg) (*GridModel, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.commitEdit()
		m.moveCursor(1, 0, false)
	case "tab":
		m.commitEdit()
		m.moveCursor(0, 1, false)
	case "shift+tab":
		m.commitEdit()
		m.moveCursor(0, -1, false)
	case "esc":
		m.cancelEdit()
	default:
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

// moveCursor shifts the focused cell, clamped to the grid bounds. With
// extend the selection grows to the rectangle between the anchor and the
// new cursor instead of being replaced.
func (m *GridModel) moveCursor(dRow, dCol int, extend bool) {
	cfg := m.eng.Config()
	next := grid.Ref(m.cursor.Row+dRow, m.cursor.Col+dCol)
	if next.Row < 0 {
		next.Row = 0
	}
	if next.Col < 0 {
		next.Col = 0
	}
	if next.Row > cfg.Rows-1 {
		next.Row = cfg.Rows - 1
	}
	if next.Col > cfg.Cols-1 {
		next.Col = cfg.Cols - 1
	}
	if extend {
		m.selectSpan(next)
	} else {
		m.selectOnly(next)
	}
}

// nextWrapMode flips the cursor cell's wrap mode. ApplyFormat sets the
// field absolutely, so the toggle decision happens here.
func (m *GridModel) nextWrapMode() string {
	wb := m.eng.Workbook()
	c := wb.GetCell(wb.ActiveSheetID, m.cursor)
	if c != nil && c.Format != nil && c.Format.TextWrap == models.WrapWrap {
		return models.WrapClip
	}
	return models.WrapWrap
}

// exportCopiedToClipboard mirrors the workbook clipboard to the system
// clipboard as tab-separated text, best effort. It reads the copied
// snapshot, not the sheet, so cut exports the pre-delete values.
func (m *GridModel) exportCopiedToClipboard() {
	copied := m.eng.Workbook().CopiedCells
	if len(copied) == 0 {
		return
	}
	byRef := make(map[grid.CellRef]*models.Cell, len(copied))
	refs := make([]grid.CellRef, len(copied))
	for i, c := range copied {
		byRef[c.Ref] = c
		refs[i] = c.Ref
	}
	rect, _ := grid.BoundingBox(refs)
	var b strings.Builder
	for row := rect.Top; row <= rect.Bottom; row++ {
		if row > rect.Top {
			b.WriteByte('\n')
		}
		for col := rect.Left; col <= rect.Right; col++ {
			if col > rect.Left {
				b.WriteByte('\t')
			}
			if c, ok := byRef[grid.Ref(row, col)]; ok {
				b.WriteString(DisplayValue(c))
			}
		}
	}
	_ = clipboard.WriteAll(b.String())
}

func ptr(v bool) *bool {
	return &v
}
