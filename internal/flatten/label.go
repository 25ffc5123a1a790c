package flatten

import (
	"strings"

	"github.com/specslice/specslice/internal/model"
)

// Label renders the compact type label of a schema node: bare names for
// references, "Name[]" or "string[]" for arrays, "enum(a, b)" for inline
// enums, "string(date-time)" for formatted primitives, "object" for inline
// objects and compositions, and "any" when nothing is declared.
func Label(s *model.SchemaDef) string {
	if s == nil {
		return "any"
	}
	switch s.Kind {
	case model.KindReference:
		return s.Ref
	case model.KindArray:
		return itemLabel(s.Items) + "[]"
	case model.KindEnum:
		return "enum(" + strings.Join(s.Enum, ", ") + ")"
	case model.KindPrimitive:
		if s.Format != "" {
			return s.Type + "(" + s.Format + ")"
		}
		return s.Type
	case model.KindObject, model.KindComposition:
		return "object"
	}
	return "any"
}

// itemLabel labels array items. Formats are dropped and enums collapse to
// their declared base type so array labels keep the plain "x[]" shape.
func itemLabel(item *model.SchemaDef) string {
	if item == nil {
		return "any"
	}
	switch item.Kind {
	case model.KindReference:
		return item.Ref
	case model.KindPrimitive:
		return item.Type
	case model.KindEnum:
		if item.Type != "" {
			return item.Type
		}
		return "string"
	case model.KindArray:
		return itemLabel(item.Items) + "[]"
	case model.KindObject, model.KindComposition:
		return "object"
	}
	return "any"
}
