package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/snek/project"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a snek.toml with default settings",
		Long: `Create a snek.toml with default settings.

If a directory is provided, it is created when missing. Otherwise the
current directory is used. The command refuses to overwrite an existing
snek.toml, snek.yaml or snek.yml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			path, err := project.Init(dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
}
