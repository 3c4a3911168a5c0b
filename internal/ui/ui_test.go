package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestUI creates a UI instance with a buffer for testing
func newTestUI() (*BubbleteaUI, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	ui := &BubbleteaUI{
		stdout: stdout,
	}
	return ui, stdout
}

func TestBubbleteaUI_ShowInfo(t *testing.T) {
	ui, stdout := newTestUI()

	ui.ShowInfo("Test message")

	assert.Equal(t, "Test message\n", stdout.String())
}

func TestBubbleteaUI_ShowHeading(t *testing.T) {
	ui, stdout := newTestUI()

	ui.ShowHeading("Existing sites:")

	// styling depends on the terminal profile, the text does not
	assert.Contains(t, stdout.String(), "Existing sites:")
}

func TestBubbleteaUI_ShowKeyValue(t *testing.T) {
	ui, stdout := newTestUI()

	ui.ShowKeyValue("Status", "planned")

	assert.Contains(t, stdout.String(), "Status:")
	assert.Contains(t, stdout.String(), "planned")
}

func TestBubbleteaUI_ShowWarning(t *testing.T) {
	ui, stdout := newTestUI()

	ui.ShowWarning("Site 'demo-site-1' already exists with different attributes. No action taken.")

	assert.Contains(t, stdout.String(), "already exists with different attributes")
}

func TestBubbleteaUI_ShowSuccess(t *testing.T) {
	ui, stdout := newTestUI()

	ui.ShowSuccess("Site created successfully.")

	assert.Contains(t, stdout.String(), "Site created successfully.")
}

func TestBubbleteaUI_NewLine(t *testing.T) {
	ui, stdout := newTestUI()

	ui.NewLine()

	assert.Equal(t, "\n", stdout.String())
}

func TestBubbleteaUI_ShowTable(t *testing.T) {
	ui, stdout := newTestUI()

	ui.ShowTable(
		[]string{"NAME", "STATUS"},
		[][]string{
			{"demo-site-1", "planned"},
			{"hq", "active"},
		},
	)

	out := stdout.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[0], "STATUS")
	// columns are padded to the widest cell
	assert.Equal(t, "demo-site-1  planned", lines[1])
	assert.Equal(t, "hq"+strings.Repeat(" ", 11)+"active", lines[2])
}

func TestBubbleteaUI_RunWithSpinner(t *testing.T) {
	stdout := &bytes.Buffer{}
	ui := NewWithOptions(stdout, strings.NewReader(""))

	t.Run("operation success", func(t *testing.T) {
		called := false
		err := ui.RunWithSpinner("working", func() error {
			called = true
			return nil
		})
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("operation error is returned", func(t *testing.T) {
		expected := errors.New("boom")
		err := ui.RunWithSpinner("working", func() error {
			return expected
		})
		assert.ErrorIs(t, err, expected)
	})
}
