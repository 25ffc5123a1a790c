package flatten

import "github.com/specslice/specslice/internal/model"

// Fields flattens one definition into a field name to type label mapping,
// one entry per declared property. References stay opaque labels; allOf,
// oneOf and anyOf members are flattened and merged, recursing into each
// referenced member at most once per call so composition cycles terminate.
// Definitions without properties flatten to an empty mapping.
func Fields(def *model.SchemaDef, defs map[string]*model.SchemaDef) map[string]string {
	return flattenInto(def, defs, map[string]bool{})
}

func flattenInto(def *model.SchemaDef, defs map[string]*model.SchemaDef, visited map[string]bool) map[string]string {
	fields := map[string]string{}
	if def == nil {
		return fields
	}
	switch def.Kind {
	case model.KindObject:
		for _, p := range def.Properties {
			fields[p.Name] = Label(p.Schema)
		}
	case model.KindComposition:
		for _, m := range def.Members {
			member := m
			if m.Kind == model.KindReference {
				if visited[m.Ref] {
					continue
				}
				visited[m.Ref] = true
				member = defs[m.Ref]
			}
			for name, label := range flattenInto(member, defs, visited) {
				fields[name] = label
			}
		}
	}
	return fields
}
