package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/specslice/specslice/internal/config"
	"github.com/specslice/specslice/internal/encode"
	"github.com/specslice/specslice/internal/flatten"
	"github.com/specslice/specslice/internal/model"
)

func ResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <definition>...",
		Short: "Resolve definitions into their full field trees",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runResolve,
	}

	config.BindCommonFlags(cmd)
	cmd.Flags().StringP("format", "f", "", "Output format (json, yaml)")
	cmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd)
	if err != nil {
		return err
	}

	doc, err := loadDocument(cmd, cfg)
	if err != nil {
		return err
	}

	trees := make(map[string]map[string]model.DeepField, len(args))
	for _, name := range args {
		if _, ok := doc.Definitions[name]; !ok {
			return fmt.Errorf("unknown definition: %s", name)
		}
		fields := flatten.Deep(name, doc.Definitions)
		if fields == nil {
			// Known but fieldless, e.g. a primitive alias.
			fields = map[string]model.DeepField{}
		}
		trees[name] = fields
	}

	text, err := encode.EncodeDeep(trees, cfg.Format)
	if err != nil {
		return err
	}

	return writeOutput(cmd, cfg, text)
}
