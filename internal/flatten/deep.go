package flatten

import "github.com/specslice/specslice/internal/model"

// Deep resolves a named definition into a nested field tree, expanding
// reference-valued fields into their target's fields in place. The visited
// set tracks names along the current expansion path only, so sibling
// branches each expand a shared type fully while a second occurrence of a
// name on one path stays an opaque leaf. Unknown names return nil.
func Deep(name string, defs map[string]*model.SchemaDef) map[string]model.DeepField {
	def, ok := defs[name]
	if !ok {
		return nil
	}
	return deepFields(def, defs, map[string]bool{name: true})
}

func deepFields(def *model.SchemaDef, defs map[string]*model.SchemaDef, path map[string]bool) map[string]model.DeepField {
	if def == nil {
		return nil
	}
	switch def.Kind {
	case model.KindObject:
		fields := make(map[string]model.DeepField, len(def.Properties))
		for _, p := range def.Properties {
			fields[p.Name] = deepField(p.Schema, defs, path)
		}
		return fields
	case model.KindComposition:
		fields := map[string]model.DeepField{}
		for _, m := range def.Members {
			if m.Kind == model.KindReference {
				if path[m.Ref] {
					continue
				}
				path[m.Ref] = true
				for name, f := range deepFields(defs[m.Ref], defs, path) {
					fields[name] = f
				}
				delete(path, m.Ref)
				continue
			}
			for name, f := range deepFields(m, defs, path) {
				fields[name] = f
			}
		}
		return fields
	}
	return nil
}

func deepField(s *model.SchemaDef, defs map[string]*model.SchemaDef, path map[string]bool) model.DeepField {
	f := model.DeepField{Type: Label(s)}
	name := RefName(ResolveRef(s))
	if name == "" || path[name] {
		return f
	}
	target, ok := defs[name]
	if !ok {
		return f
	}
	path[name] = true
	f.Fields = deepFields(target, defs, path)
	delete(path, name)
	return f
}
