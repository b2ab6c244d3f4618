package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/snek/format"
	"github.com/dhamidi/snek/lexer"
)

func newLexCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "lex [file]",
		Short: "Print the tokens of a Snek file, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, filename, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			tokens, err := lexer.Tokenize(src, filename)
			if err != nil {
				return err
			}

			if outputFormat == "text" {
				return format.NewTokenEncoder(cmd.OutOrStdout()).Encode(tokens)
			}
			encoder, err := format.NewEncoder(outputFormat, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := encoder.Encode(format.Tokens(tokens)); err != nil {
				return fmt.Errorf("encode %s: %w", outputFormat, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json, yaml)")

	return cmd
}
