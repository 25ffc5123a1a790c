package encode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specslice/specslice/internal/model"
)

func orderTree() map[string]map[string]model.DeepField {
	return map[string]map[string]model.DeepField{
		"Order": {
			"id": {Type: "integer(int64)"},
			"owner": {
				Type: "Owner",
				Fields: map[string]model.DeepField{
					"name": {Type: "string"},
				},
			},
		},
	}
}

func TestEncodeDeepYAML(t *testing.T) {
	got, err := EncodeDeep(orderTree(), FormatYAML)
	require.NoError(t, err)

	expected := `Order:
  id:
    type: integer(int64)
  owner:
    type: Owner
    fields:
      name:
        type: string
`
	require.Equal(t, expected, got)
}

func TestEncodeDeepJSON(t *testing.T) {
	got, err := EncodeDeep(orderTree(), FormatJSON)
	require.NoError(t, err)

	expected := `{
  "Order": {
    "id": {
      "type": "integer(int64)"
    },
    "owner": {
      "type": "Owner",
      "fields": {
        "name": {
          "type": "string"
        }
      }
    }
  }
}
`
	require.Equal(t, expected, got)
}

func TestEncodeDeepMultipleRoots(t *testing.T) {
	trees := orderTree()
	trees["Customer"] = map[string]model.DeepField{
		"email": {Type: "string(email)"},
	}

	got, err := EncodeDeep(trees, FormatYAML)
	require.NoError(t, err)

	expected := `Customer:
  email:
    type: string(email)
Order:
  id:
    type: integer(int64)
  owner:
    type: Owner
    fields:
      name:
        type: string
`
	require.Equal(t, expected, got)
}

func TestEncodeDeepEmptyTree(t *testing.T) {
	got, err := EncodeDeep(map[string]map[string]model.DeepField{"Empty": {}}, FormatYAML)
	require.NoError(t, err)
	require.Equal(t, "Empty: {}\n", got)
}

func TestEncodeDeepIsDeterministic(t *testing.T) {
	first, err := EncodeDeep(orderTree(), FormatYAML)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := EncodeDeep(orderTree(), FormatYAML)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestEncodeDeepRejectsTabular(t *testing.T) {
	_, err := EncodeDeep(orderTree(), FormatTabular)
	require.Error(t, err)
	require.Contains(t, err.Error(), "tabular")
}
