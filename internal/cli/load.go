package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/specslice/specslice/internal/config"
	"github.com/specslice/specslice/internal/loader"
	"github.com/specslice/specslice/internal/model"
)

// loadDocument is the shared load path: optional full document validation
// first, then parse, transform and the structural check every command needs.
func loadDocument(cmd *cobra.Command, cfg *config.Config) (*model.Document, error) {
	if cfg.ValidateDoc {
		data, err := os.ReadFile(cfg.Spec)
		if err != nil {
			return nil, fmt.Errorf("reading document: %w", err)
		}
		if findings := loader.ValidateBytes(data); len(findings) > 0 {
			for _, f := range findings {
				cmd.PrintErrf("validation: %s\n", f)
			}
			return nil, fmt.Errorf("document failed validation with %d findings", len(findings))
		}
	}

	doc, err := loader.LoadFile(cfg.Spec)
	if err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}

	if err := loader.Check(doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// writeOutput sends rendered text to the configured output file, stdout
// otherwise.
func writeOutput(cmd *cobra.Command, cfg *config.Config, text string) error {
	if cfg.Output == "" {
		cmd.Print(text)
		return nil
	}
	if err := os.WriteFile(cfg.Output, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.Output, err)
	}
	cmd.PrintErrf("Written: %s\n", cfg.Output)
	return nil
}
