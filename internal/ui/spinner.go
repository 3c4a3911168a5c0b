package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Messages the spinner program receives when the wrapped operation finishes.
type (
	operationSuccessMsg struct{}
	operationErrorMsg   struct{ err error }
)

// clearLine erases the spinner line so the outcome message replaces it.
const clearLine = "\033[2K\r"

// spinnerModel animates a spinner next to a progress message until the
// wrapped operation reports back.
type spinnerModel struct {
	spinner        spinner.Model
	message        string
	done           bool
	operationError error
}

func newSpinnerModel(message string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Points
	return spinnerModel{
		spinner: s,
		message: message,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case operationSuccessMsg:
		m.done = true
		return m, tea.Quit
	case operationErrorMsg:
		m.done = true
		m.operationError = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			return m, tea.Quit
		}
		return m, nil
	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m spinnerModel) View() string {
	if m.done {
		return clearLine
	}
	return m.message + " " + m.spinner.View()
}
