// Package extractor assembles self-contained, tag-scoped document subsets.
package extractor

import (
	"sort"

	"github.com/specslice/specslice/internal/flatten"
	"github.com/specslice/specslice/internal/model"
	"github.com/specslice/specslice/internal/tagindex"
)

// Extract builds the minimal subset of a document covering the selected
// tags: their endpoints copied verbatim from the tag index, plus every
// schema definition transitively reachable from endpoint request and
// response references, shallowly flattened and keyed by name. Unknown tags
// contribute no endpoints; references to definitions the document never
// declares are skipped rather than failing.
func Extract(doc *model.Document, tags []string) *model.ExtractionResult {
	index := tagindex.Analyze(doc)

	result := &model.ExtractionResult{
		API:       doc.Identity(),
		Tags:      append([]string{}, tags...),
		Endpoints: map[string][]model.Endpoint{},
		Schemas:   map[string]map[string]string{},
	}

	seen := map[string]bool{}
	var stack []string
	push := func(ref string) {
		name := flatten.RefName(ref)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		stack = append(stack, name)
	}

	for _, tag := range tags {
		bucket := tagindex.Bucket(index, tag)
		if bucket == nil {
			continue
		}
		result.Endpoints[tag] = bucket.Endpoints
		for _, ep := range bucket.Endpoints {
			push(ep.RequestBody)
			push(ep.Response)
		}
	}

	var closed []string
	for len(stack) > 0 {
		name := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		def, ok := doc.Definitions[name]
		if !ok {
			continue
		}
		closed = append(closed, name)
		for _, ref := range flatten.FindReferences(def) {
			push(ref)
		}
	}

	sort.Strings(closed)
	for _, name := range closed {
		result.Schemas[name] = flatten.Fields(doc.Definitions[name], doc.Definitions)
	}
	return result
}
