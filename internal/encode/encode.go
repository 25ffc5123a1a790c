// Package encode renders extraction results as text: a lossless JSON or
// YAML tree, or the token-efficient tabular form. All encoders are
// byte-deterministic for equal inputs.
package encode

import (
	"fmt"
	"sort"

	"github.com/specslice/specslice/internal/model"
)

const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatTabular = "tabular"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatJSON, FormatYAML, FormatTabular}
}

// Encode renders a result in the named format.
func Encode(result *model.ExtractionResult, format string) (string, error) {
	switch format {
	case FormatJSON:
		return Tree(result)
	case FormatYAML:
		return TreeYAML(result)
	case FormatTabular:
		return Tabular(result), nil
	}
	return "", fmt.Errorf("unknown output format: %s", format)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
