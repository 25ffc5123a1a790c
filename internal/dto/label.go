package dto

import (
	"strings"
	"unicode"
)

// typeLabel is a parsed field type label.
type typeLabel struct {
	array  int      // array nesting depth
	enum   []string // literal values when the label is enum(...)
	name   string   // referenced definition name
	prim   string   // primitive label: string, integer, number, boolean, object, any
	format string
}

var primitiveNames = map[string]bool{
	"string":  true,
	"integer": true,
	"number":  true,
	"boolean": true,
	"object":  true,
	"any":     true,
}

// parseLabel splits a type label into its parts. Labels ending in [] are
// arrays, enum(...) carries its literal values, a label starting with an
// uppercase rune that is not a known primitive is a reference, and anything
// else is a primitive optionally suffixed with a (format).
func parseLabel(label string) typeLabel {
	var tl typeLabel
	for strings.HasSuffix(label, "[]") {
		label = strings.TrimSuffix(label, "[]")
		tl.array++
	}
	if strings.HasPrefix(label, "enum(") && strings.HasSuffix(label, ")") {
		inner := strings.TrimSuffix(strings.TrimPrefix(label, "enum("), ")")
		if inner != "" {
			tl.enum = strings.Split(inner, ", ")
		}
		return tl
	}
	if base, format, ok := strings.Cut(label, "("); ok && strings.HasSuffix(format, ")") {
		tl.prim = base
		tl.format = strings.TrimSuffix(format, ")")
		return tl
	}
	if label == "" {
		tl.prim = "any"
		return tl
	}
	first := []rune(label)[0]
	if unicode.IsUpper(first) {
		if primitiveNames[strings.ToLower(label)] {
			tl.prim = strings.ToLower(label)
		} else {
			tl.name = label
		}
		return tl
	}
	tl.prim = label
	return tl
}
