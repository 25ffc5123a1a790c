package loader

import (
	v2 "github.com/pb33f/libopenapi/datamodel/high/v2"

	"github.com/specslice/specslice/internal/model"
)

// defaultMediaType stands in when a Swagger 2.0 document declares neither
// consumes nor produces.
const defaultMediaType = "application/json"

func transformV2(version string, doc *v2.Swagger) *model.Document {
	t := newTransformer()
	if doc.Definitions != nil && doc.Definitions.Definitions != nil {
		for name, proxy := range doc.Definitions.Definitions.FromOldest() {
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

	if doc.Definitions != nil && doc.Definitions.Definitions != nil {
		for name, proxy := range doc.Definitions.Definitions.FromOldest() {
			def := t.transformDefinition(proxy)
			if def == nil {
				continue
			}
			def.Name = name
			out.Definitions[name] = def
		}
	}

	if doc.Paths != nil && doc.Paths.PathItems != nil {
		for path, item := range doc.Paths.PathItems.FromOldest() {
			out.Paths = append(out.Paths, t.transformPathV2(doc, path, item))
		}
	}

	return out
}

func (t *transformer) transformPathV2(doc *v2.Swagger, path string, item *v2.PathItem) model.PathItem {
	out := model.PathItem{Path: path}

	methods := []struct {
		method model.Method
		op     *v2.Operation
	}{
		{model.MethodGet, item.Get},
		{model.MethodPost, item.Post},
		{model.MethodPut, item.Put},
		{model.MethodDelete, item.Delete},
		{model.MethodPatch, item.Patch},
		{model.MethodHead, item.Head},
		{model.MethodOptions, item.Options},
	}

	for _, m := range methods {
		if m.op == nil {
			continue
		}
		out.Operations = append(out.Operations, t.transformOperationV2(doc, m.method, m.op))
	}

	return out
}

// transformOperationV2 lifts a Swagger 2.0 operation into the shared shape:
// the body parameter becomes a request body spread over the effective
// consumes list, and response schemas are spread over the effective produces
// list. Form and header parameters stay parameters.
func (t *transformer) transformOperationV2(doc *v2.Swagger, method model.Method, op *v2.Operation) model.Operation {
	operation := model.Operation{
		Method:      method,
		Summary:     op.Summary,
		Description: op.Description,
		Tags:        op.Tags,
	}

	consumes := mediaTypes(op.Consumes, doc.Consumes)
	produces := mediaTypes(op.Produces, doc.Produces)

	for _, p := range op.Parameters {
		if p == nil {
			continue
		}
		if paramLocation(p.In) == "body" {
			body := &model.RequestBody{Required: boolPtr(p.Required)}
			for _, mediaType := range consumes {
				body.Content = append(body.Content, model.MediaTypeContent{
					MediaType: mediaType,
					Schema:    t.transformProxy(p.Schema),
				})
			}
			operation.RequestBody = body
			continue
		}
		operation.Parameters = append(operation.Parameters, model.Parameter{
			Name:     p.Name,
			In:       paramLocation(p.In),
			Required: boolPtr(p.Required),
		})
	}

	if op.Responses != nil && op.Responses.Codes != nil {
		for code, resp := range op.Responses.Codes.FromOldest() {
			response := model.Response{StatusCode: code}
			if resp.Schema != nil {
				for _, mediaType := range produces {
					response.Content = append(response.Content, model.MediaTypeContent{
						MediaType: mediaType,
						Schema:    t.transformProxy(resp.Schema),
					})
				}
			}
			operation.Responses = append(operation.Responses, response)
		}
	}

	return operation
}

func mediaTypes(operation, document []string) []string {
	if len(operation) > 0 {
		return operation
	}
	if len(document) > 0 {
		return document
	}
	return []string{defaultMediaType}
}
