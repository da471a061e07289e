package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gridley/gridley-cli/pkg/engine"
	"github.com/gridley/gridley-cli/pkg/models"
)

// StatusMsg carries a transient message for the status bar.
type StatusMsg string

// App is the top-level bubbletea model: one grid over one workbook, plus
// the sheet-level prompts.
type App struct {
	eng       *engine.Engine
	grid      *GridModel
	confirm   *ConfirmationModel
	rename    textinput.Model
	renaming  bool
	statusMsg string
	width     int
	height    int

	showFormulaBar bool
	showSheetTabs  bool
}

// NewApp builds the application model over fresh state.
func NewApp(settings *models.Settings) *App {
	eng := engine.New(settings)
	rename := textinput.New()
	rename.Prompt = "Rename sheet: "
	rename.CharLimit = 64
	return &App{
		eng:            eng,
		grid:           NewGridModel(eng),
		confirm:        NewConfirmation(),
		rename:         rename,
		showFormulaBar: settings.UI.ShowFormulaBar,
		showSheetTabs:  settings.UI.ShowSheetTabs,
	}
}

// chromeHeight is the number of screen lines around the grid: header and
// status line always, formula bar and sheet tabs per UI settings.
func (a *App) chromeHeight() int {
	h := 2
	if a.showFormulaBar {
		h++
	}
	if a.showSheetTabs {
		h++
	}
	return h
}

// gridTopOffset is the number of screen lines above the grid viewport;
// pointer coordinates are translated by it before they reach the grid.
func (a *App) gridTopOffset() int {
	if a.showFormulaBar {
		return 2
	}
	return 1
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.grid.SetSize(msg.Width, msg.Height-a.chromeHeight())
		return a, nil

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case tea.KeyMsg:
		a.statusMsg = ""

		if msg.String() == "ctrl+q" {
			return a, tea.Quit
		}
		if a.confirm.Active() {
			return a, a.confirm.Update(msg)
		}
		if a.renaming {
			return a, a.updateRename(msg)
		}
		if cmd, handled := a.handleSheetKey(msg); handled {
			return a, cmd
		}

		var cmd tea.Cmd
		a.grid, cmd = a.grid.Update(msg)
		return a, cmd

	case tea.MouseMsg:
		// Translate into grid-viewport coordinates; chrome is not a
		// pointer target.
		msg.Y -= a.gridTopOffset()
		if msg.Y < 0 || msg.Y >= a.height-a.chromeHeight() {
			return a, nil
		}
		var cmd tea.Cmd
		a.grid, cmd = a.grid.Update(msg)
		return a, cmd
	}
	return a, nil
}

// handleSheetKey dispatches the sheet-lifecycle shortcuts.
func (a *App) handleSheetKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	wb := a.eng.Workbook()
	switch msg.String() {
	case "ctrl+t":
		s := a.eng.AddSheet()
		return statusCmd("Added %s", s.Name), true

	case "ctrl+w":
		s := wb.ActiveSheet()
		if s == nil {
			return nil, true
		}
		if len(wb.Sheets) == 1 {
			return statusCmd("Cannot delete the last sheet"), true
		}
		id, name := s.ID, s.Name
		a.confirm.Show(fmt.Sprintf("Delete sheet %q?", name), func() tea.Cmd {
			a.eng.DeleteSheet(id)
			return statusCmd("Deleted %s", name)
		})
		return nil, true

	case "ctrl+r":
		if s := wb.ActiveSheet(); s != nil {
			a.renaming = true
			a.rename.SetValue(s.Name)
			a.rename.CursorEnd()
			a.rename.Focus()
		}
		return nil, true

	case "ctrl+d":
		if s := wb.ActiveSheet(); s != nil {
			dup := a.eng.DuplicateSheet(s.ID)
			return statusCmd("Duplicated into %s", dup.Name), true
		}
		return nil, true

	case "alt+right":
		a.cycleSheet(1)
		return nil, true
	case "alt+left":
		a.cycleSheet(-1)
		return nil, true
	}
	return nil, false
}

func (a *App) updateRename(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		a.renaming = false
		a.rename.Blur()
		if s := a.eng.Workbook().ActiveSheet(); s != nil {
			a.eng.RenameSheet(s.ID, a.rename.Value())
		}
		return nil
	case "esc":
		a.renaming = false
		a.rename.Blur()
		return nil
	}
	var cmd tea.Cmd
	a.rename, cmd = a.rename.Update(msg)
	return cmd
}

func (a *App) cycleSheet(delta int) {
	wb := a.eng.Workbook()
	for i, s := range wb.Sheets {
		if s.ID == wb.ActiveSheetID {
			next := (i + delta + len(wb.Sheets)) % len(wb.Sheets)
			wb.ActiveSheetID = wb.Sheets[next].ID
			return
		}
	}
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	wb := a.eng.Workbook()
	title := "gridley"
	if s := wb.ActiveSheet(); s != nil {
		title += " - " + s.Name
	}

	parts := []string{headerStyle.Render(" " + title)}
	if a.showFormulaBar {
		parts = append(parts, a.formulaBar())
	}
	parts = append(parts, a.grid.View())
	if a.showSheetTabs {
		parts = append(parts, renderSheetTabs(wb, a.width))
	}
	parts = append(parts, a.bottomBar())
	return lipgloss.JoinVertical(lipgloss.Top, parts...)
}

// formulaBar shows the focused cell's address, its raw value and any link.
func (a *App) formulaBar() string {
	wb := a.eng.Workbook()
	ref := a.grid.cursor
	c := wb.GetCell(wb.ActiveSheetID, ref)

	content := ref.Label() + " ▸ "
	if a.grid.editing() {
		content += a.grid.editor.Value()
	} else if c != nil {
		content += c.Value
		if c.Link != nil {
			content += "  [" + c.Link.URL + "]"
		}
	}
	return formulaBarStyle.Width(a.width).Render(content)
}

func (a *App) bottomBar() string {
	if a.confirm.Active() {
		return a.confirm.View()
	}
	if a.renaming {
		return a.rename.View()
	}
	if a.statusMsg != "" {
		return statusBarStyle.Render(a.statusMsg)
	}
	return helpStyle.Render(" ^B bold  ^U underline  M-w wrap  M-m merge  ^Z undo  ^T sheet  ^Q quit")
}
