// Package grammar holds the reference grammar of the Snek language in EBNF.
//
// The grammar is documentation that can be checked: Load parses it with
// golang.org/x/exp/ebnf and verifies that every production is defined and
// reachable from Program. The terminals are token spellings, with "NEWLINE",
// "INDENT", "DEDENT", "IDENT", "INT", "FLOAT" and "STRING" standing for the
// structural and literal tokens.
package grammar

import (
	"bytes"
	_ "embed"
	"fmt"
	"reflect"
	"sort"

	"golang.org/x/exp/ebnf"
)

// Start is the start production of the grammar.
const Start = "Program"

const filename = "snek.ebnf"

//go:embed snek.ebnf
var source []byte

// Source returns the text of the grammar.
func Source() []byte {
	return bytes.Clone(source)
}

// Load parses and verifies the embedded grammar.
func Load() (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, bytes.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, Start); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}

// Terminals returns the distinct token strings used by g, sorted.
func Terminals(g ebnf.Grammar) []string {
	seen := map[string]bool{}
	for _, prod := range g {
		collectTokens(prod.Expr, seen)
	}
	out := make([]string, 0, len(seen))
	for tok := range seen {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

// Productions returns the production names of g, sorted.
func Productions(g ebnf.Grammar) []string {
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func collectTokens(expr ebnf.Expression, seen map[string]bool) {
	switch x := expr.(type) {
	case ebnf.Alternative:
		for _, e := range x {
			collectTokens(e, seen)
		}
	case ebnf.Sequence:
		for _, e := range x {
			collectTokens(e, seen)
		}
	case *ebnf.Group:
		collectTokens(x.Body, seen)
	case *ebnf.Option:
		collectTokens(x.Body, seen)
	case *ebnf.Repetition:
		collectTokens(x.Body, seen)
	case *ebnf.Token:
		seen[x.String] = true
	}
}

// Errors splits the error list returned by the ebnf package into its
// individual errors. Other errors are returned as a single element.
func Errors(err error) []error {
	for {
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		inner := u.Unwrap()
		if inner == nil {
			break
		}
		err = inner
	}

	v := reflect.ValueOf(err)
	if v.Kind() != reflect.Slice {
		return []error{err}
	}
	out := make([]error, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if e, ok := v.Index(i).Interface().(error); ok {
			out = append(out, e)
		}
	}
	return out
}
