package encode

import (
	"bytes"
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/specslice/specslice/internal/model"
)

// TreeYAML encodes a result as YAML. The node tree is assembled explicitly
// with sorted schema and field keys, so output stays byte-deterministic
// regardless of map iteration order.
func TreeYAML(result *model.ExtractionResult) (string, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	mapPut(root, "api", strNode(result.API))

	tags := &yaml.Node{Kind: yaml.SequenceNode}
	for _, tag := range result.Tags {
		tags.Content = append(tags.Content, strNode(tag))
	}
	mapPut(root, "tags", tags)

	endpoints := &yaml.Node{Kind: yaml.MappingNode}
	for _, tag := range sortedKeys(result.Endpoints) {
		group := &yaml.Node{Kind: yaml.SequenceNode}
		for _, ep := range result.Endpoints[tag] {
			group.Content = append(group.Content, endpointNode(ep))
		}
		mapPut(endpoints, tag, group)
	}
	mapPut(root, "endpoints", endpoints)

	schemas := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range sortedKeys(result.Schemas) {
		fields := result.Schemas[name]
		fieldsNode := &yaml.Node{Kind: yaml.MappingNode}
		for _, field := range sortedKeys(fields) {
			mapPut(fieldsNode, field, strNode(fields[field]))
		}
		mapPut(schemas, name, fieldsNode)
	}
	mapPut(root, "schemas", schemas)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return "", fmt.Errorf("encoding yaml tree: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encoding yaml tree: %w", err)
	}
	return buf.String(), nil
}

// endpointNode mirrors the JSON field set: always method and path, the rest
// only when populated.
func endpointNode(ep model.Endpoint) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	mapPut(n, "method", strNode(ep.Method))
	mapPut(n, "path", strNode(ep.Path))
	if ep.Summary != "" {
		mapPut(n, "summary", strNode(ep.Summary))
	}
	if ep.Description != "" {
		mapPut(n, "description", strNode(ep.Description))
	}
	if len(ep.Parameters) > 0 {
		params := &yaml.Node{Kind: yaml.SequenceNode}
		for _, p := range ep.Parameters {
			params.Content = append(params.Content, strNode(p))
		}
		mapPut(n, "parameters", params)
	}
	if ep.RequestBody != "" {
		mapPut(n, "requestBody", strNode(ep.RequestBody))
	}
	if ep.ContentType != "" {
		mapPut(n, "contentType", strNode(ep.ContentType))
	}
	if ep.Response != "" {
		mapPut(n, "response", strNode(ep.Response))
	}
	return n
}

func strNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}

func mapPut(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content, strNode(key), value)
}
