package encode

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/specslice/specslice/internal/model"
)

// EncodeDeep renders recursively resolved field trees keyed by definition
// name. Field trees nest arbitrarily, so only the tree formats apply.
func EncodeDeep(trees map[string]map[string]model.DeepField, format string) (string, error) {
	switch format {
	case FormatJSON:
		return deepJSON(trees)
	case FormatYAML:
		return deepYAML(trees)
	}
	return "", fmt.Errorf("field trees render as json or yaml, not %s", format)
}

func deepJSON(trees map[string]map[string]model.DeepField) (string, error) {
	data, err := json.MarshalIndent(trees, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding field tree: %w", err)
	}
	return string(data) + "\n", nil
}

func deepYAML(trees map[string]map[string]model.DeepField) (string, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range sortedKeys(trees) {
		mapPut(root, name, deepFieldsNode(trees[name]))
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return "", fmt.Errorf("encoding field tree: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding field tree: %w", err)
	}
	return buf.String(), nil
}

func deepFieldsNode(fields map[string]model.DeepField) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range sortedKeys(fields) {
		n.Content = append(n.Content, strNode(name), deepFieldNode(fields[name]))
	}
	return n
}

func deepFieldNode(f model.DeepField) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	mapPut(n, "type", strNode(f.Type))
	if len(f.Fields) > 0 {
		mapPut(n, "fields", deepFieldsNode(f.Fields))
	}
	return n
}
