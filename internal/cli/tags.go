package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/specslice/specslice/internal/config"
	"github.com/specslice/specslice/internal/model"
	"github.com/specslice/specslice/internal/tagindex"
)

func TagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List every tag with its endpoints",
		RunE:  runTags,
	}

	config.BindCommonFlags(cmd)

	return cmd
}

func runTags(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	doc, err := loadDocument(cmd, cfg)
	if err != nil {
		return err
	}

	index := tagindex.Analyze(doc)
	if len(cfg.Tags) > 0 {
		var selected []model.TagBucket
		for _, tag := range cfg.Tags {
			bucket := tagindex.Bucket(index, tag)
			if bucket == nil {
				cmd.PrintErrf("no such tag: %s\n", tag)
				continue
			}
			selected = append(selected, *bucket)
		}
		index = selected
	}

	cmd.Printf("%s (OpenAPI %s)\n", doc.Identity(), doc.OASVersion)
	for _, bucket := range index {
		cmd.Printf("\n%s: %d %s (%s)\n", bucket.Name, bucket.Total, plural(bucket.Total, "endpoint"), methodCounts(bucket))
		for _, ep := range bucket.Endpoints {
			if ep.Summary != "" {
				cmd.Printf("  %s %s  %s\n", ep.Method, ep.Path, ep.Summary)
			} else {
				cmd.Printf("  %s %s\n", ep.Method, ep.Path)
			}
		}
	}

	return nil
}

func methodCounts(bucket model.TagBucket) string {
	var parts []string
	for _, method := range tagindex.Methods() {
		if n := bucket.Methods[string(method)]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", method, n))
		}
	}
	return strings.Join(parts, ", ")
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
