package flatten

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specslice/specslice/internal/model"
)

func TestResolveRef(t *testing.T) {
	tests := []struct {
		name     string
		schema   *model.SchemaDef
		expected string
	}{
		{"direct reference", ref("Pet"), "Pet"},
		{"array of references", array(ref("Pet")), "Pet[]"},
		{"array of primitives", array(prim("string")), ""},
		{"primitive", prim("string"), ""},
		{"inline object", object(prop("x", ref("Pet"))), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, ResolveRef(tt.schema))
		})
	}
}

func TestRefName(t *testing.T) {
	require.Equal(t, "Pet", RefName("Pet[]"))
	require.Equal(t, "Pet", RefName("Pet"))
	require.Equal(t, "", RefName(""))
}

func TestFindReferencesWalksEveryShape(t *testing.T) {
	fragment := object(
		prop("owner", ref("Owner")),
		prop("tags", array(ref("Tag"))),
		prop("meta", &model.SchemaDef{
			Kind:            model.KindObject,
			AdditionalProps: ref("MetaValue"),
		}),
		prop("variant", allOf(ref("Base"), object(prop("inner", ref("Owner"))))),
	)

	require.Equal(t, []string{"Base", "MetaValue", "Owner", "Tag"}, FindReferences(fragment))
}

func TestFindReferencesOnPlainValues(t *testing.T) {
	require.Empty(t, FindReferences(prim("string")))
	require.Empty(t, FindReferences(nil))
	require.Equal(t, []string{"Item"}, FindReferences(array(array(ref("Item")))))
}
