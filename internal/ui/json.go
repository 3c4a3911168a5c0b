package ui

import (
	"encoding/json"
	"fmt"
)

// ShowJSON renders data as indented JSON on stdout.
func (ui *BubbleteaUI) ShowJSON(data any) error {
	out, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(ui.stdout, string(out))
	return nil
}
