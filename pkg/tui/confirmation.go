package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationModel handles yes/no prompts shown in the status line, used
// for destructive operations like deleting a sheet.
type ConfirmationModel struct {
	active    bool
	message   string
	onConfirm func() tea.Cmd
}

// NewConfirmation creates an inactive confirmation model.
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with a message and a confirm callback.
func (m *ConfirmationModel) Show(message string, onConfirm func() tea.Cmd) {
	m.active = true
	m.message = message
	m.onConfirm = onConfirm
}

// Active returns whether the confirmation is currently shown.
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles key events while the confirmation is showing.
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}
	switch msg.String() {
	case "y", "Y", "enter":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
	case "n", "N", "esc":
		m.active = false
	}
	return nil
}

// View renders the prompt line.
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}
	prompt := lipgloss.NewStyle().
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("124")).
		Padding(0, 1)
	return prompt.Render(m.message + " (y/n)")
}
