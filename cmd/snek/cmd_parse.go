package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/snek/format"
	"github.com/dhamidi/snek/parser"
	"github.com/dhamidi/snek/project"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includePositions bool
	var asExpression bool
	var asType bool
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a Snek file and dump its syntax tree",
		Long: `Parse a Snek file and dump its syntax tree.

Without a file, or with "-", the source is read from standard input.
With --expr or --type the input is a single expression or type instead
of a program.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asExpression && asType {
				return errors.New("--expr and --type are mutually exclusive")
			}

			src, filename, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("max-depth") {
				maxDepth = parser.DefaultMaxDepth
				if proj, err := project.Load(); err == nil {
					maxDepth = proj.Config.Parser.MaxDepth
				}
			}
			opts := []parser.Option{parser.WithFile(filename), parser.WithMaxDepth(maxDepth)}

			var formatOpts []format.Option
			if includePositions {
				formatOpts = append(formatOpts, format.WithPositions())
			}

			var obj *format.Object
			switch {
			case asExpression:
				expr, err := parser.ParseExpression(src, opts...)
				if err != nil {
					return err
				}
				obj = format.Node(expr, formatOpts...)
			case asType:
				typ, err := parser.ParseType(src, opts...)
				if err != nil {
					return err
				}
				obj = format.Node(typ, formatOpts...)
			default:
				stmts, err := parser.Parse(src, opts...)
				if err != nil {
					return err
				}
				obj = format.Program(stmts, formatOpts...)
			}

			encoder, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := encoder.Encode(obj); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, yaml, tree)")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include source positions in the output")
	cmd.Flags().BoolVar(&asExpression, "expr", false, "parse the input as a single expression")
	cmd.Flags().BoolVar(&asType, "type", false, "parse the input as a single type")
	cmd.Flags().IntVar(&maxDepth, "max-depth", parser.DefaultMaxDepth, "maximum nesting depth, 0 for no limit")

	return cmd
}
