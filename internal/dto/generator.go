// Package dto renders schema definitions as data transfer object source text
// for a fixed set of target languages. Emission is table driven: one entry
// per language pairing a declaration renderer with an import prologue.
package dto

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/specslice/specslice/internal/flatten"
	"github.com/specslice/specslice/internal/model"
	"github.com/specslice/specslice/internal/specerr"
)

type Language string

const (
	LangTypeScript Language = "typescript"
	LangPython     Language = "python"
	LangGo         Language = "go"
	LangJava       Language = "java"
	LangCSharp     Language = "csharp"
	LangKotlin     Language = "kotlin"
)

// genContext accumulates which library types the rendered declarations used,
// so the prologue only imports what the output needs.
type genContext struct {
	needs map[string]bool
}

func (g *genContext) need(key string) {
	g.needs[key] = true
}

type language struct {
	render   func(g *genContext, name string, def *model.SchemaDef, fields map[string]string) string
	prologue func(needs map[string]bool) string
}

var languages = map[Language]language{
	LangTypeScript: {render: renderTypeScript},
	LangPython:     {render: renderPython, prologue: pythonPrologue},
	LangGo:         {render: renderGo},
	LangJava:       {render: renderJava, prologue: javaPrologue},
	LangCSharp:     {render: renderCSharp, prologue: csharpPrologue},
	LangKotlin:     {render: renderKotlin, prologue: kotlinPrologue},
}

// Languages lists the supported DTO targets, alphabetical.
func Languages() []string {
	names := make([]string, 0, len(languages))
	for lang := range languages {
		names = append(names, string(lang))
	}
	sort.Strings(names)
	return names
}

// Generate renders one declaration per named definition, in the given order,
// for the target language. Names without a definition are skipped; an
// unknown language is rejected. Declaration names keep the schema names
// unchanged so cross-references stay valid as written.
func Generate(defs map[string]*model.SchemaDef, names []string, lang Language) (string, error) {
	target, ok := languages[lang]
	if !ok {
		return "", fmt.Errorf("%w: %q (valid: %s)", specerr.ErrUnknownLanguage, lang, strings.Join(Languages(), ", "))
	}

	g := &genContext{needs: map[string]bool{}}
	var decls []string
	for _, name := range names {
		def, ok := defs[name]
		if !ok {
			continue
		}
		decls = append(decls, target.render(g, name, def, flatten.Fields(def, defs)))
	}
	if len(decls) == 0 {
		return "", nil
	}

	body := strings.Join(decls, "\n\n") + "\n"
	if target.prologue != nil {
		if prologue := target.prologue(g.needs); prologue != "" {
			return prologue + "\n" + body, nil
		}
	}
	return body, nil
}

func sortedFieldNames(fields map[string]string) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func allInts(values []string) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			return false
		}
	}
	return true
}

func isNumeric(value string) bool {
	_, err := strconv.ParseFloat(value, 64)
	return value != "" && err == nil
}
