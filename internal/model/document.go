package model

import (
	"fmt"
	"sort"
)

type Document struct {
	Title       string
	Description string
	Version     string
	OASVersion  string // document version marker, e.g. "3.0.3" or "2.0"
	Paths       []PathItem
	Definitions map[string]*SchemaDef
}

// Identity returns the display string that heads extraction results.
func (d *Document) Identity() string {
	if d.Version == "" {
		return d.Title
	}
	return fmt.Sprintf("%s v%s", d.Title, d.Version)
}

// DefinitionNames returns all named schema definitions, alphabetical.
func (d *Document) DefinitionNames() []string {
	names := make([]string, 0, len(d.Definitions))
	for name := range d.Definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type PathItem struct {
	Path       string
	Operations []Operation
}

type Operation struct {
	Method      Method
	Summary     string
	Description string
	Tags        []string
	Parameters  []Parameter
	RequestBody *RequestBody
	Responses   []Response
}

type Method string

const (
	MethodGet     Method = "GET"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodPatch   Method = "PATCH"
	MethodHead    Method = "HEAD"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
	MethodQuery   Method = "QUERY" // OpenAPI 3.2
)

type ParameterLocation string

const (
	LocationPath     ParameterLocation = "path"
	LocationQuery    ParameterLocation = "query"
	LocationHeader   ParameterLocation = "header"
	LocationCookie   ParameterLocation = "cookie"
	LocationFormData ParameterLocation = "formData" // Swagger 2.0
)

type Parameter struct {
	Name     string
	In       ParameterLocation
	Required bool
}

type RequestBody struct {
	Required bool
	Content  []MediaTypeContent
}

type MediaTypeContent struct {
	MediaType string
	Schema    *SchemaDef
}

type Response struct {
	StatusCode string
	Content    []MediaTypeContent
}
