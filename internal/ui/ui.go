package ui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Provider provides terminal UI components
type Provider interface {
	// RunWithSpinner runs a function with a bubbletea spinner
	RunWithSpinner(message string, operation func() error) error

	// ShowInfo displays an informational message (no special formatting)
	ShowInfo(message string)

	// ShowHeading displays a heading/section title
	ShowHeading(message string)

	// ShowKeyValue displays a key-value pair with bold key
	ShowKeyValue(key, value string)

	// ShowTable displays rows under a styled header row
	ShowTable(headers []string, rows [][]string)

	// NewLine prints a blank line
	NewLine()

	// ShowWarning displays a warning message
	ShowWarning(message string)

	// ShowSuccess displays a success message
	ShowSuccess(message string)

	// ShowJSON displays formatted JSON output
	ShowJSON(data any) error

	// ShowYAML displays formatted YAML output
	ShowYAML(data any) error
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	keyStyle     = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	tableHeader  = lipgloss.NewStyle().Bold(true).Underline(true)
)

// BubbleteaUI implementation of the UI Provider interface.
type BubbleteaUI struct {
	stdout         io.Writer
	programOptions []tea.ProgramOption
}

// New creates a new UI instance using bubbletea
func New() *BubbleteaUI {
	return &BubbleteaUI{
		stdout: os.Stdout,
	}
}

// NewWithOptions creates a new UI instance with custom options for testing
func NewWithOptions(stdout io.Writer, input io.Reader) *BubbleteaUI {
	var options []tea.ProgramOption

	if input != nil {
		options = append(options, tea.WithInput(input))
	}

	if stdout != nil {
		options = append(options, tea.WithOutput(stdout))
	}

	// Always disable renderer for testing to avoid TTY issues
	options = append(options, tea.WithoutRenderer())

	return &BubbleteaUI{
		stdout:         stdout,
		programOptions: options,
	}
}

// RunWithSpinner runs a function with a bubbletea spinner
func (ui *BubbleteaUI) RunWithSpinner(message string, operation func() error) error {
	model := newSpinnerModel(message)
	program := tea.NewProgram(model, ui.programOptions...)

	// Run the operation in a goroutine
	go func() {
		err := operation()
		if err != nil {
			program.Send(operationErrorMsg{err})
		} else {
			program.Send(operationSuccessMsg{})
		}
	}()

	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}

	final := finalModel.(spinnerModel)
	return final.operationError
}

// ShowInfo displays an informational message (no special formatting)
func (ui *BubbleteaUI) ShowInfo(message string) {
	fmt.Fprintln(ui.stdout, message)
}

// ShowHeading displays a heading/section title
func (ui *BubbleteaUI) ShowHeading(message string) {
	fmt.Fprintln(ui.stdout, headingStyle.Render(message))
}

// ShowKeyValue displays a key-value pair with bold key
func (ui *BubbleteaUI) ShowKeyValue(key, value string) {
	fmt.Fprintf(ui.stdout, "%s %s\n", keyStyle.Render(key+":"), value)
}

// NewLine prints a blank line
func (ui *BubbleteaUI) NewLine() {
	fmt.Fprintln(ui.stdout)
}

// ShowWarning displays a warning message
func (ui *BubbleteaUI) ShowWarning(message string) {
	fmt.Fprintln(ui.stdout, warningStyle.Render(message))
}

// ShowSuccess displays a success message
func (ui *BubbleteaUI) ShowSuccess(message string) {
	fmt.Fprintln(ui.stdout, successStyle.Render(message))
}
