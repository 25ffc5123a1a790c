package dto

import (
	"fmt"
	"sort"
	"strings"

	"github.com/specslice/specslice/internal/flatten"
	"github.com/specslice/specslice/internal/model"
)

func renderJava(g *genContext, name string, def *model.SchemaDef, fields map[string]string) string {
	switch def.Kind {
	case model.KindEnum:
		var b strings.Builder
		fmt.Fprintf(&b, "enum %s {\n", name)
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
			return fmt.Sprintf("record %s() {}", name)
		}
		var b strings.Builder
		fmt.Fprintf(&b, "record %s(\n", name)
		names := sortedFieldNames(fields)
		for i, field := range names {
			javaName := EscapeReserved(LangJava, CamelCase(field))
			fmt.Fprintf(&b, "    %s %s", javaType(g, parseLabel(fields[field])), javaName)
			if i < len(names)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString(") {}")
		return b.String()
	default:
		return fmt.Sprintf("record %s(%s value) {}", name, javaType(g, parseLabel(flatten.Label(def))))
	}
}

func javaType(g *genContext, tl typeLabel) string {
	var base string
	switch {
	case tl.enum != nil:
		base = "String"
		if allInts(tl.enum) {
			base = "int"
		}
	case tl.name != "":
		base = tl.name
	default:
		base = javaPrimitive(g, tl.prim, tl.format)
	}
	for i := 0; i < tl.array; i++ {
		g.need("list")
		base = "List<" + javaBox(base) + ">"
	}
	return base
}

func javaPrimitive(g *genContext, prim, format string) string {
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
			return "byte[]"
		}
		return "String"
	case "integer":
		if format == "int64" {
			return "long"
		}
		return "int"
	case "number":
		if format == "float" {
			return "float"
		}
		return "double"
	case "boolean":
		return "boolean"
	case "object":
		g.need("map")
		return "Map<String, Object>"
	}
	return "Object"
}

// javaBox lifts primitives to their wrapper types inside generics.
func javaBox(base string) string {
	switch base {
	case "int":
		return "Integer"
	case "long":
		return "Long"
	case "float":
		return "Float"
	case "double":
		return "Double"
	case "boolean":
		return "Boolean"
	}
	return base
}

func javaPrologue(needs map[string]bool) string {
	imports := map[string]string{
		"datetime": "java.time.OffsetDateTime",
		"date":     "java.time.LocalDate",
		"list":     "java.util.List",
		"map":      "java.util.Map",
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
		fmt.Fprintf(&b, "import %s;\n", path)
	}
	return b.String()
}
