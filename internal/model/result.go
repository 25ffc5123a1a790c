package model

// Endpoint is the flat, display-ready summary of one operation. Empty fields
// marshal away, so encoders only ever see populated columns.
type Endpoint struct {
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	Summary     string   `json:"summary,omitempty"`
	Description string   `json:"description,omitempty"`
	Parameters  []string `json:"parameters,omitempty"`
	RequestBody string   `json:"requestBody,omitempty"`
	ContentType string   `json:"contentType,omitempty"`
	Response    string   `json:"response,omitempty"`
}

// TagBucket groups the endpoints that carry one tag, with per-method counts
// for index display.
type TagBucket struct {
	Name      string
	Total     int
	Methods   map[string]int
	Endpoints []Endpoint
}

// ExtractionResult is a self-contained subset of a document: the endpoints of
// the selected tags plus every schema they transitively reference, shallowly
// flattened.
type ExtractionResult struct {
	API       string                       `json:"api"`
	Tags      []string                     `json:"tags"`
	Endpoints map[string][]Endpoint        `json:"endpoints"`
	Schemas   map[string]map[string]string `json:"schemas"`
}

// DeepField is one node of a recursively resolved schema tree. A nil Fields
// map marks a leaf: a primitive, an unknown reference, or a cycle cut.
type DeepField struct {
	Type   string               `json:"type"`
	Fields map[string]DeepField `json:"fields,omitempty"`
}
