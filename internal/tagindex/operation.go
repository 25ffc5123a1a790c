// Package tagindex reduces a document's operations to flat endpoint
// summaries and groups them by tag.
package tagindex

import (
	"strings"

	"github.com/specslice/specslice/internal/flatten"
	"github.com/specslice/specslice/internal/model"
)

// contentTypePriority orders request body media types; JSON wins, then the
// form and binary encodings, then an explicit wildcard. Anything else falls
// back to the first declared content.
var contentTypePriority = []string{
	"application/json",
	"multipart/form-data",
	"application/x-www-form-urlencoded",
	"application/octet-stream",
	"*/*",
}

// successCodes are scanned in order for a response schema.
var successCodes = []string{"200", "201", "202"}

// DescribeOperation reduces one operation to its endpoint summary.
func DescribeOperation(path string, op *model.Operation) model.Endpoint {
	ep := model.Endpoint{
		Method:      string(op.Method),
		Path:        path,
		Summary:     op.Summary,
		Description: op.Description,
		Parameters:  describeParameters(op.Parameters),
	}
	ep.RequestBody, ep.ContentType = pickRequestBody(op.RequestBody)
	ep.Response = pickResponse(op.Responses)
	return ep
}

// describeParameters renders compact parameter strings: the name, "*" when
// required, "(location)" when the location is known, e.g. "id*(path)".
func describeParameters(params []model.Parameter) []string {
	if len(params) == 0 {
		return nil
	}
	out := make([]string, 0, len(params))
	for _, p := range params {
		s := p.Name
		if p.Required {
			s += "*"
		}
		if p.In != "" {
			s += "(" + string(p.In) + ")"
		}
		out = append(out, s)
	}
	return out
}

// pickRequestBody chooses the preferred content type and resolves its schema
// reference. The chosen content type is reported even when the schema is
// inline or absent.
func pickRequestBody(body *model.RequestBody) (ref, contentType string) {
	if body == nil || len(body.Content) == 0 {
		return "", ""
	}
	chosen := body.Content[0]
	for _, want := range contentTypePriority {
		if c, ok := findContent(body.Content, want); ok {
			chosen = c
			break
		}
	}
	return flatten.ResolveRef(chosen.Schema), chosen.MediaType
}

func findContent(content []model.MediaTypeContent, mediaType string) (model.MediaTypeContent, bool) {
	for _, c := range content {
		if c.MediaType == mediaType {
			return c, true
		}
	}
	return model.MediaTypeContent{}, false
}

// pickResponse scans the success codes in order and resolves the schema
// reference of the first one exposing a JSON schema. An inline schema still
// wins its slot; it just resolves to no reference.
func pickResponse(responses []model.Response) string {
	for _, code := range successCodes {
		for _, resp := range responses {
			if resp.StatusCode != code {
				continue
			}
			for _, c := range resp.Content {
				if strings.HasPrefix(c.MediaType, "application/json") && c.Schema != nil {
					return flatten.ResolveRef(c.Schema)
				}
			}
		}
	}
	return ""
}
