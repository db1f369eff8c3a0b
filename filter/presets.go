package filter

import "fmt"

// DefaultPreset is the preset name applied when nothing else is given
const DefaultPreset = "default"

// ResolveExpression determines the filter expression to use.
// Priority: explicit expression > named preset > "default" preset.
// An empty result means no filtering.
func ResolveExpression(expression, preset string, presets map[string]string) (string, error) {
	if expression != "" {
		return expression, nil
	}

	if preset != "" {
		if presetExpr, ok := presets[preset]; ok {
			return presetExpr, nil
		}
		return "", fmt.Errorf("preset '%s' not found in config", preset)
	}

	return presets[DefaultPreset], nil
}
