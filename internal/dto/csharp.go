package dto

import (
	"fmt"
	"strings"

	"github.com/specslice/specslice/internal/flatten"
	"github.com/specslice/specslice/internal/model"
)

func renderCSharp(g *genContext, name string, def *model.SchemaDef, fields map[string]string) string {
	switch def.Kind {
	case model.KindEnum:
		var b strings.Builder
		fmt.Fprintf(&b, "public enum %s\n{\n", name)
		for i, v := range def.Enum {
			fmt.Fprintf(&b, "    %s", EnumMemberPascal(v))
			if i < len(def.Enum)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString("}")
		return b.String()
	case model.KindObject, model.KindComposition:
		if len(fields) == 0 {
			return fmt.Sprintf("public record %s();", name)
		}
		var b strings.Builder
		fmt.Fprintf(&b, "public record %s(\n", name)
		names := sortedFieldNames(fields)
		for i, field := range names {
			fmt.Fprintf(&b, "    %s %s", csType(g, parseLabel(fields[field])), PascalCase(field))
			if i < len(names)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString(");")
		return b.String()
	default:
		return fmt.Sprintf("public record %s(%s Value);", name, csType(g, parseLabel(flatten.Label(def))))
	}
}

func csType(g *genContext, tl typeLabel) string {
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
		base = csPrimitive(g, tl.prim, tl.format)
	}
	for i := 0; i < tl.array; i++ {
		g.need("generic")
		base = "List<" + base + ">"
	}
	return base
}

func csPrimitive(g *genContext, prim, format string) string {
	switch prim {
	case "string":
		switch format {
		case "date-time":
			g.need("system")
			return "DateTimeOffset"
		case "date":
			g.need("system")
			return "DateOnly"
		case "uuid":
			g.need("system")
			return "Guid"
		case "byte", "binary":
			return "byte[]"
		}
		return "string"
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
		return "bool"
	case "object":
		g.need("generic")
		return "Dictionary<string, object>"
	}
	return "object"
}

func csharpPrologue(needs map[string]bool) string {
	var b strings.Builder
	if needs["system"] {
		b.WriteString("using System;\n")
	}
	if needs["generic"] {
		b.WriteString("using System.Collections.Generic;\n")
	}
	return b.String()
}
