package loader

import (
	v3 "github.com/pb33f/libopenapi/datamodel/high/v3"

	"github.com/specslice/specslice/internal/model"
)

func transformV3(version string, doc *v3.Document) *model.Document {
	t := newTransformer()
	if doc.Components != nil && doc.Components.Schemas != nil {
		for name, proxy := range doc.Components.Schemas.FromOldest() {
			t.register(name, proxy)
		}
	}

	out := &model.Document{
		OASVersion:  version,
		Definitions: make(map[string]*model.SchemaDef),
	}
	if doc.Info != nil {
		out.Title = doc.Info.Title
		out.Description = doc.Info.Description
		out.Version = doc.Info.Version
	}

	if doc.Components != nil && doc.Components.Schemas != nil {
		for name, proxy := range doc.Components.Schemas.FromOldest() {
			def := t.transformDefinition(proxy)
			if def == nil {
				continue
			}
			def.Name = name
			out.Definitions[name] = def
		}
	}

	if doc.Paths != nil {
		for path, item := range doc.Paths.PathItems.FromOldest() {
			out.Paths = append(out.Paths, t.transformPathV3(path, item))
		}
	}

	return out
}

func (t *transformer) transformPathV3(path string, item *v3.PathItem) model.PathItem {
	out := model.PathItem{Path: path}

	// Use a slice for deterministic ordering
	methods := []struct {
		method model.Method
		op     *v3.Operation
	}{
		{model.MethodGet, item.Get},
		{model.MethodPost, item.Post},
		{model.MethodPut, item.Put},
		{model.MethodDelete, item.Delete},
		{model.MethodPatch, item.Patch},
		{model.MethodHead, item.Head},
		{model.MethodOptions, item.Options},
		{model.MethodTrace, item.Trace},
		{model.MethodQuery, item.Query}, // OpenAPI 3.2
	}

	for _, m := range methods {
		if m.op == nil {
			continue
		}
		out.Operations = append(out.Operations, t.transformOperationV3(m.method, m.op))
	}

	return out
}

func (t *transformer) transformOperationV3(method model.Method, op *v3.Operation) model.Operation {
	operation := model.Operation{
		Method:      method,
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
	}

	for _, p := range op.Parameters {
		operation.Parameters = append(operation.Parameters, model.Parameter{
			Name:     p.Name,
			In:       paramLocation(p.In),
			Required: boolPtr(p.Required),
		})
	}

	if op.RequestBody != nil {
		body := &model.RequestBody{Required: boolPtr(op.RequestBody.Required)}
		if op.RequestBody.Content != nil {
			for mediaType, content := range op.RequestBody.Content.FromOldest() {
				body.Content = append(body.Content, model.MediaTypeContent{
					MediaType: mediaType,
					Schema:    t.transformProxy(content.Schema),
				})
			}
		}
		operation.RequestBody = body
	}

	if op.Responses != nil && op.Responses.Codes != nil {
		for code, resp := range op.Responses.Codes.FromOldest() {
			response := model.Response{StatusCode: code}
			if resp.Content != nil {
				for mediaType, content := range resp.Content.FromOldest() {
					response.Content = append(response.Content, model.MediaTypeContent{
						MediaType: mediaType,
						Schema:    t.transformProxy(content.Schema),
					})
				}
			}
			operation.Responses = append(operation.Responses, response)
		}
	}

	return operation
}
