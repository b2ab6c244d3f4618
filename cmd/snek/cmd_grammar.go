package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/snek/grammar"
	"github.com/dhamidi/snek/lexer"
)

func newGrammarCmd() *cobra.Command {
	var checkOnly bool
	var listProductions bool
	var recognize string

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Verify and print the EBNF grammar of Snek",
		Long: `Verify and print the EBNF grammar of Snek.

With --recognize the grammar itself, rather than the parser, decides
whether a file is a valid program.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.Load()
			if err != nil {
				for _, e := range grammar.Errors(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), e)
				}
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case checkOnly:
				fmt.Fprintf(out, "grammar OK: %d productions\n", len(g))
			case recognize != "":
				return runRecognize(cmd, g, recognize)
			case listProductions:
				for _, name := range grammar.Productions(g) {
					fmt.Fprintln(out, name)
				}
			default:
				_, err = out.Write(grammar.Source())
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&checkOnly, "check", false, "only verify the grammar")
	cmd.Flags().BoolVar(&listProductions, "productions", false, "list production names")
	cmd.Flags().StringVar(&recognize, "recognize", "", "check a source file against the grammar")

	return cmd
}

func runRecognize(cmd *cobra.Command, g ebnf.Grammar, path string) error {
	src, filename, err := readInput(cmd.InOrStdin(), []string{path})
	if err != nil {
		return err
	}
	tokens, err := lexer.Tokenize(src, filename)
	if err != nil {
		return err
	}
	r, err := grammar.NewRecognizer(g, grammar.Start)
	if err != nil {
		return err
	}
	if err := r.Recognize(tokens); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: accepted\n", path)
	return nil
}
