package encode

import (
	"encoding/json"
	"fmt"

	"github.com/specslice/specslice/internal/model"
)

// Tree encodes a result as indented JSON. Map keys marshal sorted, so equal
// results produce byte-identical text, and nothing is dropped: decoding the
// text yields the original result.
func Tree(result *model.ExtractionResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding tree: %w", err)
	}
	return string(data) + "\n", nil
}
