package loader

import (
	"strings"

	"github.com/pb33f/libopenapi/datamodel/high/base"

	"github.com/specslice/specslice/internal/model"
)

// transformer converts parsed schemas into model definitions. The
// componentSchemas map recovers the name of a reference libopenapi resolved
// in place, so reference nodes become opaque stubs instead of inlined
// copies of their target.
type transformer struct {
	componentSchemas map[*base.Schema]string
}

func newTransformer() *transformer {
	return &transformer{
		componentSchemas: make(map[*base.Schema]string),
	}
}

func (t *transformer) register(name string, proxy *base.SchemaProxy) {
	if proxy == nil || proxy.GetReference() != "" {
		return
	}
	if s := proxy.Schema(); s != nil {
		t.componentSchemas[s] = name
	}
}

// transformDefinition converts a named top-level definition. A definition
// that is itself a plain reference stays a reference stub, everything else
// is classified in full.
func (t *transformer) transformDefinition(proxy *base.SchemaProxy) *model.SchemaDef {
	if proxy == nil {
		return nil
	}
	if ref := proxy.GetReference(); ref != "" {
		return refStub(refName(ref))
	}
	return t.transformSchema(proxy.Schema())
}

func (t *transformer) transformProxy(proxy *base.SchemaProxy) *model.SchemaDef {
	if proxy == nil {
		return nil
	}
	if ref := proxy.GetReference(); ref != "" {
		return refStub(refName(ref))
	}
	s := proxy.Schema()
	if s == nil {
		return nil
	}
	if name, ok := t.componentSchemas[s]; ok {
		return refStub(name)
	}
	return t.transformSchema(s)
}

// transformSchema classifies a schema node once. Enum values win over their
// declared base type, compositions absorb sibling properties as an extra
// inline member, and a node with no usable type is the any kind.
func (t *transformer) transformSchema(s *base.Schema) *model.SchemaDef {
	if s == nil {
		return nil
	}
	typ := firstType(s.Type)

	def := &model.SchemaDef{Description: s.Description}
	switch {
	case len(s.Enum) > 0:
		def.Kind = model.KindEnum
		def.Type = typ
		for _, v := range s.Enum {
			if v != nil {
				def.Enum = append(def.Enum, v.Value)
			}
		}
	case len(s.AllOf)+len(s.OneOf)+len(s.AnyOf) > 0:
		def.Kind = model.KindComposition
		for _, proxy := range s.AllOf {
			def.Members = append(def.Members, t.transformProxy(proxy))
		}
		for _, proxy := range s.OneOf {
			def.Members = append(def.Members, t.transformProxy(proxy))
		}
		for _, proxy := range s.AnyOf {
			def.Members = append(def.Members, t.transformProxy(proxy))
		}
		if s.Properties != nil && s.Properties.Len() > 0 {
			def.Members = append(def.Members, t.objectDef(s))
		}
	case typ == "array":
		def.Kind = model.KindArray
		if s.Items != nil && s.Items.IsA() {
			def.Items = t.transformProxy(s.Items.A)
		}
	case typ == "object" || (s.Properties != nil && s.Properties.Len() > 0):
		obj := t.objectDef(s)
		obj.Description = s.Description
		return obj
	case typ != "":
		def.Kind = model.KindPrimitive
		def.Type = typ
		def.Format = s.Format
	default:
		def.Kind = model.KindAny
	}
	return def
}

func (t *transformer) objectDef(s *base.Schema) *model.SchemaDef {
	def := &model.SchemaDef{
		Kind:     model.KindObject,
		Required: s.Required,
	}
	if s.Properties != nil {
		for name, proxy := range s.Properties.FromOldest() {
			def.Properties = append(def.Properties, model.Property{
				Name:   name,
				Schema: t.transformProxy(proxy),
			})
		}
	}
	if s.AdditionalProperties != nil && s.AdditionalProperties.IsA() {
		def.AdditionalProps = t.transformProxy(s.AdditionalProperties.A)
	}
	return def
}

func refStub(name string) *model.SchemaDef {
	return &model.SchemaDef{Kind: model.KindReference, Ref: name}
}

func refName(ref string) string {
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}

// firstType picks the declared type, skipping 3.1 null markers.
func firstType(types []string) string {
	for _, typ := range types {
		if typ != "null" {
			return typ
		}
	}
	return ""
}

func paramLocation(in string) model.ParameterLocation {
	if strings.EqualFold(in, "formData") {
		return model.LocationFormData
	}
	return model.ParameterLocation(strings.ToLower(in))
}

func boolPtr(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
