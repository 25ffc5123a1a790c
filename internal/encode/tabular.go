package encode

import (
	"fmt"
	"strings"

	"github.com/specslice/specslice/internal/model"
)

// endpointColumns is the fixed candidate column order. A tag group only
// declares the columns at least one of its endpoints populates.
var endpointColumns = []struct {
	name  string
	value func(model.Endpoint) string
}{
	{"method", func(ep model.Endpoint) string { return ep.Method }},
	{"path", func(ep model.Endpoint) string { return ep.Path }},
	{"summary", func(ep model.Endpoint) string { return ep.Summary }},
	{"description", func(ep model.Endpoint) string { return ep.Description }},
	{"parameters", func(ep model.Endpoint) string { return strings.Join(ep.Parameters, ";") }},
	{"requestBody", func(ep model.Endpoint) string { return ep.RequestBody }},
	{"contentType", func(ep model.Endpoint) string { return ep.ContentType }},
	{"response", func(ep model.Endpoint) string { return ep.Response }},
}

// Tabular encodes a result in the compact line-oriented form: an api line, a
// tag list line, one endpoint group per selected tag with a tag-local column
// header, then the flattened schemas, alphabetical. Cells containing a
// comma, colon or newline are double-quoted with inner quotes doubled.
func Tabular(result *model.ExtractionResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "api: %s\n", quoteCell(result.API))
	b.WriteString(countedLine("tags", result.Tags) + "\n")

	emitted := map[string]bool{}
	for _, tag := range result.Tags {
		eps, ok := result.Endpoints[tag]
		if !ok || emitted[tag] {
			continue
		}
		emitted[tag] = true

		var cols []int
		for i, col := range endpointColumns {
			for _, ep := range eps {
				if col.value(ep) != "" {
					cols = append(cols, i)
					break
				}
			}
		}
		names := make([]string, 0, len(cols))
		for _, i := range cols {
			names = append(names, endpointColumns[i].name)
		}
		fmt.Fprintf(&b, "  %s[%d]{%s}:\n", tag, len(eps), strings.Join(names, ","))

		for _, ep := range eps {
			cells := make([]string, 0, len(cols))
			for _, i := range cols {
				cells = append(cells, quoteCell(endpointColumns[i].value(ep)))
			}
			fmt.Fprintf(&b, "    %s\n", strings.Join(cells, ","))
		}
	}

	names := sortedKeys(result.Schemas)
	fmt.Fprintf(&b, "schemas[%d]:\n", len(names))
	for _, name := range names {
		fmt.Fprintf(&b, "  %s:\n", name)
		fields := result.Schemas[name]
		for _, field := range sortedKeys(fields) {
			fmt.Fprintf(&b, "    %s: %s\n", quoteCell(field), quoteCell(fields[field]))
		}
	}
	return b.String()
}

// countedLine renders a scalar array line like "tags[2]: Pets,Users".
func countedLine(name string, values []string) string {
	line := fmt.Sprintf("%s[%d]:", name, len(values))
	if len(values) == 0 {
		return line
	}
	cells := make([]string, 0, len(values))
	for _, v := range values {
		cells = append(cells, quoteCell(v))
	}
	return line + " " + strings.Join(cells, ",")
}

func quoteCell(s string) string {
	if strings.ContainsAny(s, ",\n:") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
