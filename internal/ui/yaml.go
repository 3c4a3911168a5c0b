package ui

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ShowYAML renders data as YAML on stdout. The marshalled document already
// ends in a newline, so none is added.
func (ui *BubbleteaUI) ShowYAML(data any) error {
	out, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	fmt.Fprint(ui.stdout, string(out))
	return nil
}
