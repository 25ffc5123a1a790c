package dto

import (
	"fmt"
	"strings"

	"github.com/specslice/specslice/internal/flatten"
	"github.com/specslice/specslice/internal/model"
)

func renderPython(g *genContext, name string, def *model.SchemaDef, fields map[string]string) string {
	switch def.Kind {
	case model.KindEnum:
		return fmt.Sprintf("%s = %s", name, pyLiteral(g, def.Enum))
	case model.KindObject, model.KindComposition:
		g.need("dataclass")
		var b strings.Builder
		fmt.Fprintf(&b, "@dataclass\nclass %s:\n", name)
		if len(fields) == 0 {
			b.WriteString("    pass")
			return b.String()
		}
		names := sortedFieldNames(fields)
		for i, field := range names {
			pyName := EscapeReserved(LangPython, SnakeCase(field))
			fmt.Fprintf(&b, "    %s: %s", pyName, pyType(g, parseLabel(fields[field])))
			if i < len(names)-1 {
				b.WriteString("\n")
			}
		}
		return b.String()
	default:
		return fmt.Sprintf("%s = %s", name, pyType(g, parseLabel(flatten.Label(def))))
	}
}

func pyType(g *genContext, tl typeLabel) string {
	var base string
	switch {
	case tl.enum != nil:
		base = pyLiteral(g, tl.enum)
	case tl.name != "":
		base = tl.name
	default:
		base = pyPrimitive(g, tl.prim, tl.format)
	}
	for i := 0; i < tl.array; i++ {
		base = "list[" + base + "]"
	}
	return base
}

func pyPrimitive(g *genContext, prim, format string) string {
	switch prim {
	case "string":
		switch format {
		case "date-time":
			g.need("datetime")
			return "datetime"
		case "date":
			g.need("date")
			return "date"
		case "uuid":
			g.need("uuid")
			return "UUID"
		case "byte", "binary":
			return "bytes"
		}
		return "str"
	case "integer":
		return "int"
	case "number":
		return "float"
	case "boolean":
		return "bool"
	case "object":
		g.need("any")
		return "dict[str, Any]"
	}
	g.need("any")
	return "Any"
}

func pyLiteral(g *genContext, values []string) string {
	g.need("literal")
	if len(values) == 0 {
		return "Literal[()]"
	}
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if isNumeric(v) {
			parts = append(parts, v)
		} else {
			parts = append(parts, fmt.Sprintf("%q", v))
		}
	}
	return "Literal[" + strings.Join(parts, ", ") + "]"
}

func pythonPrologue(needs map[string]bool) string {
	var imports []string
	if needs["dataclass"] {
		imports = append(imports, "from dataclasses import dataclass")
	}
	switch {
	case needs["date"] && needs["datetime"]:
		imports = append(imports, "from datetime import date, datetime")
	case needs["date"]:
		imports = append(imports, "from datetime import date")
	case needs["datetime"]:
		imports = append(imports, "from datetime import datetime")
	}
	switch {
	case needs["any"] && needs["literal"]:
		imports = append(imports, "from typing import Any, Literal")
	case needs["any"]:
		imports = append(imports, "from typing import Any")
	case needs["literal"]:
		imports = append(imports, "from typing import Literal")
	}
	if needs["uuid"] {
		imports = append(imports, "from uuid import UUID")
	}

	var b strings.Builder
	b.WriteString("from __future__ import annotations\n")
	if len(imports) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(imports, "\n"))
		b.WriteString("\n")
	}
	return b.String()
}
