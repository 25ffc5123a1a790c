package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/specslice/specslice/internal/config"
	"github.com/specslice/specslice/internal/dto"
	"github.com/specslice/specslice/internal/extractor"
)

func DTOCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dto",
		Short: "Generate DTO source for schema definitions",
		RunE:  runDTO,
	}

	config.BindCommonFlags(cmd)
	cmd.Flags().StringP("language", "l", "", "Target language (typescript, python, go, java, csharp, kotlin)")
	cmd.Flags().StringP("package", "p", "", "Package name for Go output (default: dtos)")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runDTO(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	doc, err := loadDocument(cmd, cfg)
	if err != nil {
		return err
	}

	var names []string
	if len(cfg.Tags) > 0 {
		result := extractor.Extract(doc, cfg.Tags)
		for name := range result.Schemas {
			names = append(names, name)
		}
		sort.Strings(names)
	} else {
		names = doc.DefinitionNames()
	}

	src, err := dto.Generate(doc.Definitions, names, dto.Language(cfg.Language))
	if err != nil {
		return err
	}

	if dto.Language(cfg.Language) == dto.LangGo && src != "" {
		formatted, err := dto.FormatGo([]byte("package " + cfg.Package + "\n\n" + src))
		if err != nil {
			return fmt.Errorf("formatting go source: %w", err)
		}
		src = string(formatted)
	}

	cmd.PrintErrf("%s: %d definitions\n", cfg.Language, len(names))

	return writeOutput(cmd, cfg, src)
}
