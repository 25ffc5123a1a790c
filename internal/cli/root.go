package cli

import "github.com/spf13/cobra"

func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "specslice",
		Short:   "specslice - carve OpenAPI documents into tag-sized slices",
		Version: "1.0.0",

		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		TagsCommand(),
		ExtractCommand(),
		DTOCommand(),
		ResolveCommand(),
	)

	return root
}
