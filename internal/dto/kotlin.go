package dto

import (
	"fmt"
	"sort"
	"strings"

	"github.com/specslice/specslice/internal/flatten"
	"github.com/specslice/specslice/internal/model"
)

func renderKotlin(g *genContext, name string, def *model.SchemaDef, fields map[string]string) string {
	switch def.Kind {
	case model.KindEnum:
		var b strings.Builder
		fmt.Fprintf(&b, "enum class %s {\n", name)
		for i, v := range def.Enum {
			fmt.Fprintf(&b, "    %s", EnumMember(v))
			if i < len(def.Enum)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString("}")
		return b.String()
	case model.KindObject, model.KindComposition:
		if len(fields) == 0 {
			return fmt.Sprintf("class %s", name)
		}
		var b strings.Builder
		fmt.Fprintf(&b, "data class %s(\n", name)
		names := sortedFieldNames(fields)
		for i, field := range names {
			ktName := EscapeReserved(LangKotlin, CamelCase(field))
			fmt.Fprintf(&b, "    val %s: %s", ktName, ktType(g, parseLabel(fields[field])))
			if i < len(names)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString(")")
		return b.String()
	default:
		return fmt.Sprintf("typealias %s = %s", name, ktType(g, parseLabel(flatten.Label(def))))
	}
}

func ktType(g *genContext, tl typeLabel) string {
	var base string
	switch {
	case tl.enum != nil:
		base = "String"
		if allInts(tl.enum) {
			base = "Int"
		}
	case tl.name != "":
		base = tl.name
	default:
		base = ktPrimitive(g, tl.prim, tl.format)
	}
	for i := 0; i < tl.array; i++ {
		base = "List<" + base + ">"
	}
	return base
}

func ktPrimitive(g *genContext, prim, format string) string {
	switch prim {
	case "string":
		switch format {
		case "date-time":
			g.need("datetime")
			return "OffsetDateTime"
		case "date":
			g.need("date")
			return "LocalDate"
		case "uuid":
			g.need("uuid")
			return "UUID"
		case "byte", "binary":
			return "ByteArray"
		}
		return "String"
	case "integer":
		if format == "int64" {
			return "Long"
		}
		return "Int"
	case "number":
		if format == "float" {
			return "Float"
		}
		return "Double"
	case "boolean":
		return "Boolean"
	case "object":
		return "Map<String, Any?>"
	}
	return "Any?"
}

func kotlinPrologue(needs map[string]bool) string {
	imports := map[string]string{
		"datetime": "java.time.OffsetDateTime",
		"date":     "java.time.LocalDate",
		"uuid":     "java.util.UUID",
	}
	var paths []string
	for key, path := range imports {
		if needs[key] {
			paths = append(paths, path)
		}
	}
	if len(paths) == 0 {
		return ""
	}
	sort.Strings(paths)
	var b strings.Builder
	for _, path := range paths {
		fmt.Fprintf(&b, "import %s\n", path)
	}
	return b.String()
}
