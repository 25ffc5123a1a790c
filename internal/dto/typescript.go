package dto

import (
	"fmt"
	"strings"

	"github.com/specslice/specslice/internal/flatten"
	"github.com/specslice/specslice/internal/model"
)

func renderTypeScript(g *genContext, name string, def *model.SchemaDef, fields map[string]string) string {
	switch def.Kind {
	case model.KindEnum:
		return fmt.Sprintf("export type %s = %s;", name, tsUnion(def.Enum))
	case model.KindObject, model.KindComposition:
		var b strings.Builder
		fmt.Fprintf(&b, "export interface %s {\n", name)
		for _, field := range sortedFieldNames(fields) {
			fmt.Fprintf(&b, "  %s: %s;\n", CamelCase(field), tsType(parseLabel(fields[field])))
		}
		b.WriteString("}")
		return b.String()
	default:
		return fmt.Sprintf("export type %s = %s;", name, tsType(parseLabel(flatten.Label(def))))
	}
}

func tsType(tl typeLabel) string {
	var base string
	switch {
	case tl.enum != nil:
		base = tsUnion(tl.enum)
		if tl.array > 0 && strings.Contains(base, "|") {
			base = "(" + base + ")"
		}
	case tl.name != "":
		base = tl.name
	default:
		base = tsPrimitive(tl.prim)
	}
	return base + strings.Repeat("[]", tl.array)
}

// tsPrimitive keeps string formats as plain strings: the JSON wire carries
// dates and UUIDs as text, and the interfaces describe the wire.
func tsPrimitive(prim string) string {
	switch prim {
	case "string":
		return "string"
	case "integer", "number":
		return "number"
	case "boolean":
		return "boolean"
	case "object":
		return "Record<string, unknown>"
	}
	return "unknown"
}

func tsUnion(values []string) string {
	if len(values) == 0 {
		return "never"
	}
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if isNumeric(v) {
			parts = append(parts, v)
		} else {
			parts = append(parts, fmt.Sprintf("%q", v))
		}
	}
	return strings.Join(parts, " | ")
}
