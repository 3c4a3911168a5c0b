package ui

import (
	"fmt"
	"strings"
)

// ShowTable displays rows under a styled header row, with columns padded to
// the widest cell.
func (ui *BubbleteaUI) ShowTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var header strings.Builder
	for i, h := range headers {
		if i > 0 {
			header.WriteString("  ")
		}
		header.WriteString(pad(h, widths[i]))
	}
	fmt.Fprintln(ui.stdout, tableHeader.Render(header.String()))

	for _, row := range rows {
		var line strings.Builder
		for i, cell := range row {
			if i > 0 {
				line.WriteString("  ")
			}
			if i < len(widths) {
				cell = pad(cell, widths[i])
			}
			line.WriteString(cell)
		}
		fmt.Fprintln(ui.stdout, strings.TrimRight(line.String(), " "))
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
