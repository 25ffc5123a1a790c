// Package flatten turns schema definitions into compact field views: type
// labels, shallow field maps, and recursively resolved field trees.
package flatten

import (
	"sort"
	"strings"

	"github.com/specslice/specslice/internal/model"
)

// ResolveRef returns the definition name a schema node points at: the bare
// name for a direct reference, "Name[]" for an array of references, and ""
// for anything else.
func ResolveRef(s *model.SchemaDef) string {
	if s == nil {
		return ""
	}
	switch s.Kind {
	case model.KindReference:
		return s.Ref
	case model.KindArray:
		if s.Items != nil && s.Items.Kind == model.KindReference {
			return s.Items.Ref + "[]"
		}
	}
	return ""
}

// RefName strips the array suffix from a resolved reference label.
func RefName(ref string) string {
	return strings.TrimSuffix(ref, "[]")
}

// FindReferences walks a schema fragment at any depth, through properties,
// array items, additionalProperties and composition members, and returns
// every referenced definition name, deduplicated and sorted.
func FindReferences(s *model.SchemaDef) []string {
	seen := map[string]bool{}
	collectRefs(s, seen)
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectRefs(s *model.SchemaDef, seen map[string]bool) {
	if s == nil {
		return
	}
	if s.Kind == model.KindReference {
		if s.Ref != "" {
			seen[s.Ref] = true
		}
		return
	}
	collectRefs(s.Items, seen)
	collectRefs(s.AdditionalProps, seen)
	for _, m := range s.Members {
		collectRefs(m, seen)
	}
	for _, p := range s.Properties {
		collectRefs(p.Schema, seen)
	}
}
