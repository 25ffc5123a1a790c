package tagindex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specslice/specslice/internal/model"
)

func jsonContent(schema *model.SchemaDef) model.MediaTypeContent {
	return model.MediaTypeContent{MediaType: "application/json", Schema: schema}
}

func refSchema(name string) *model.SchemaDef {
	return &model.SchemaDef{Kind: model.KindReference, Ref: name}
}

func arrayOf(name string) *model.SchemaDef {
	return &model.SchemaDef{Kind: model.KindArray, Items: refSchema(name)}
}

func TestDescribeParameters(t *testing.T) {
	tests := []struct {
		name     string
		params   []model.Parameter
		expected []string
	}{
		{"required path", []model.Parameter{{Name: "id", In: model.LocationPath, Required: true}}, []string{"id*(path)"}},
		{"optional query", []model.Parameter{{Name: "limit", In: model.LocationQuery}}, []string{"limit(query)"}},
		{"required without location", []model.Parameter{{Name: "token", Required: true}}, []string{"token*"}},
		{"plain", []model.Parameter{{Name: "verbose"}}, []string{"verbose"}},
		{"order preserved", []model.Parameter{
			{Name: "id", In: model.LocationPath, Required: true},
			{Name: "page", In: model.LocationQuery},
		}, []string{"id*(path)", "page(query)"}},
		{"none", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, describeParameters(tt.params))
		})
	}
}

func TestPickRequestBodyPrefersJSON(t *testing.T) {
	body := &model.RequestBody{Content: []model.MediaTypeContent{
		{MediaType: "application/x-www-form-urlencoded", Schema: refSchema("Form")},
		{MediaType: "application/json", Schema: refSchema("Pet")},
	}}

	ref, ct := pickRequestBody(body)
	require.Equal(t, "Pet", ref)
	require.Equal(t, "application/json", ct)
}

func TestPickRequestBodyPriorityLadder(t *testing.T) {
	tests := []struct {
		name       string
		mediaTypes []string
		expected   string
	}{
		{"multipart over urlencoded", []string{"application/x-www-form-urlencoded", "multipart/form-data"}, "multipart/form-data"},
		{"urlencoded over octet-stream", []string{"application/octet-stream", "application/x-www-form-urlencoded"}, "application/x-www-form-urlencoded"},
		{"wildcard over unknown", []string{"application/xml", "*/*"}, "*/*"},
		{"fallback to first declared", []string{"application/xml", "text/csv"}, "application/xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var content []model.MediaTypeContent
			for _, mt := range tt.mediaTypes {
				content = append(content, model.MediaTypeContent{MediaType: mt})
			}
			_, ct := pickRequestBody(&model.RequestBody{Content: content})
			require.Equal(t, tt.expected, ct)
		})
	}
}

func TestPickRequestBodyInlineSchemaKeepsContentType(t *testing.T) {
	body := &model.RequestBody{Content: []model.MediaTypeContent{
		jsonContent(&model.SchemaDef{Kind: model.KindObject}),
	}}

	ref, ct := pickRequestBody(body)
	require.Equal(t, "", ref)
	require.Equal(t, "application/json", ct)
}

func TestPickRequestBodyAbsent(t *testing.T) {
	ref, ct := pickRequestBody(nil)
	require.Equal(t, "", ref)
	require.Equal(t, "", ct)
}

func TestPickResponseScansSuccessCodesInOrder(t *testing.T) {
	tests := []struct {
		name      string
		responses []model.Response
		expected  string
	}{
		{"200 wins", []model.Response{
			{StatusCode: "201", Content: []model.MediaTypeContent{jsonContent(refSchema("Created"))}},
			{StatusCode: "200", Content: []model.MediaTypeContent{jsonContent(refSchema("Pet"))}},
		}, "Pet"},
		{"first json schema is 201", []model.Response{
			{StatusCode: "200", Content: []model.MediaTypeContent{{MediaType: "text/html"}}},
			{StatusCode: "201", Content: []model.MediaTypeContent{jsonContent(refSchema("Created"))}},
		}, "Created"},
		{"202 as last resort", []model.Response{
			{StatusCode: "202", Content: []model.MediaTypeContent{jsonContent(refSchema("Accepted"))}},
			{StatusCode: "500", Content: []model.MediaTypeContent{jsonContent(refSchema("Error"))}},
		}, "Accepted"},
		{"array of references", []model.Response{
			{StatusCode: "200", Content: []model.MediaTypeContent{jsonContent(arrayOf("Pet"))}},
		}, "Pet[]"},
		{"json with charset parameter", []model.Response{
			{StatusCode: "200", Content: []model.MediaTypeContent{{MediaType: "application/json; charset=utf-8", Schema: refSchema("Pet")}}},
		}, "Pet"},
		{"no success responses", []model.Response{
			{StatusCode: "404", Content: []model.MediaTypeContent{jsonContent(refSchema("Error"))}},
		}, ""},
		{"success without json", []model.Response{
			{StatusCode: "200", Content: []model.MediaTypeContent{{MediaType: "application/xml", Schema: refSchema("Pet")}}},
		}, ""},
		{"none", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, pickResponse(tt.responses))
		})
	}
}

func TestDescribeOperation(t *testing.T) {
	op := &model.Operation{
		Method:  model.MethodPost,
		Summary: "Create a pet",
		Parameters: []model.Parameter{
			{Name: "storeId", In: model.LocationPath, Required: true},
		},
		RequestBody: &model.RequestBody{Content: []model.MediaTypeContent{jsonContent(refSchema("NewPet"))}},
		Responses: []model.Response{
			{StatusCode: "201", Content: []model.MediaTypeContent{jsonContent(refSchema("Pet"))}},
		},
	}

	require.Equal(t, model.Endpoint{
		Method:      "POST",
		Path:        "/stores/{storeId}/pets",
		Summary:     "Create a pet",
		Parameters:  []string{"storeId*(path)"},
		RequestBody: "NewPet",
		ContentType: "application/json",
		Response:    "Pet",
	}, DescribeOperation("/stores/{storeId}/pets", op))
}
