package cli

import (
	"github.com/spf13/cobra"

	"github.com/specslice/specslice/internal/config"
	"github.com/specslice/specslice/internal/encode"
	"github.com/specslice/specslice/internal/extractor"
	"github.com/specslice/specslice/internal/tagindex"
)

func ExtractCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract selected tags with their schema closure",
		RunE:  runExtract,
	}

	config.BindCommonFlags(cmd)
	cmd.Flags().StringP("format", "f", "", "Output format (json, yaml, tabular)")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	doc, err := loadDocument(cmd, cfg)
	if err != nil {
		return err
	}

	tags := cfg.Tags
	if len(tags) == 0 {
		for _, bucket := range tagindex.Analyze(doc) {
			tags = append(tags, bucket.Name)
		}
	}

	result := extractor.Extract(doc, tags)

	text, err := encode.Encode(result, cfg.Format)
	if err != nil {
		return err
	}

	stats := encode.Measure(text)
	cmd.PrintErrf("%s: %d tags, %d schemas, %d lines, %d chars, ~%d tokens\n",
		cfg.Format, len(result.Tags), len(result.Schemas), stats.Lines, stats.Chars, stats.Tokens)

	return writeOutput(cmd, cfg, text)
}
