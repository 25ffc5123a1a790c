package dto

import (
	"fmt"
	"strings"

	"github.com/specslice/specslice/internal/flatten"
	"github.com/specslice/specslice/internal/model"
)

func renderGo(g *genContext, name string, def *model.SchemaDef, fields map[string]string) string {
	switch def.Kind {
	case model.KindEnum:
		return goEnum(name, def.Enum)
	case model.KindObject, model.KindComposition:
		if len(fields) == 0 {
			return fmt.Sprintf("type %s struct{}", name)
		}
		var b strings.Builder
		fmt.Fprintf(&b, "type %s struct {\n", name)
		for _, field := range sortedFieldNames(fields) {
			fmt.Fprintf(&b, "\t%s %s `json:%q`\n", PascalCase(field), goType(parseLabel(fields[field])), field)
		}
		b.WriteString("}")
		return b.String()
	default:
		return fmt.Sprintf("type %s = %s", name, goType(parseLabel(flatten.Label(def))))
	}
}

func goEnum(name string, values []string) string {
	base := "string"
	if allInts(values) {
		base = "int"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "type %s %s\n\nconst (\n", name, base)
	for _, v := range values {
		if base == "int" {
			fmt.Fprintf(&b, "\t%s%s %s = %s\n", name, PascalCase(identWords(v)), name, v)
		} else {
			fmt.Fprintf(&b, "\t%s%s %s = %q\n", name, PascalCase(identWords(v)), name, v)
		}
	}
	b.WriteString(")")
	return b.String()
}

func goType(tl typeLabel) string {
	var base string
	switch {
	case tl.enum != nil:
		base = "string"
		if allInts(tl.enum) {
			base = "int"
		}
	case tl.name != "":
		base = tl.name
	default:
		base = goPrimitive(tl.prim, tl.format)
	}
	return strings.Repeat("[]", tl.array) + base
}

func goPrimitive(prim, format string) string {
	switch prim {
	case "string":
		switch format {
		case "date-time", "date":
			return "time.Time"
		case "byte", "binary":
			return "[]byte"
		}
		return "string"
	case "integer":
		switch format {
		case "int32":
			return "int32"
		case "int64":
			return "int64"
		}
		return "int"
	case "number":
		if format == "float" {
			return "float32"
		}
		return "float64"
	case "boolean":
		return "bool"
	case "object":
		return "map[string]any"
	}
	return "any"
}
