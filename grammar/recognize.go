package grammar

import (
	"fmt"

	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/snek/token"
)

// symbol is a grammar symbol after desugaring: a terminal spelling or the
// name of a rule.
type symbol struct {
	name     string
	terminal bool
}

type rule struct {
	lhs string
	rhs []symbol
}

// Recognizer decides whether a token sequence is a sentence of the grammar.
// It is an Earley recognizer over the grammar rewritten into plain
// alternatives: every group, option and repetition becomes a rule of its own.
type Recognizer struct {
	start    string
	rules    []rule
	byLHS    map[string][]int
	nullable map[string]bool
}

// NewRecognizer prepares g for recognizing sentences derived from start.
func NewRecognizer(g ebnf.Grammar, start string) (*Recognizer, error) {
	if _, ok := g[start]; !ok {
		return nil, fmt.Errorf("production %q not found in grammar", start)
	}
	r := &Recognizer{
		start:    start,
		byLHS:    map[string][]int{},
		nullable: map[string]bool{},
	}
	for _, name := range Productions(g) {
		b := &ruleBuilder{r: r, prefix: name}
		for _, alt := range b.alternatives(g[name].Expr) {
			r.add(name, alt)
		}
	}
	r.computeNullable()
	return r, nil
}

func (r *Recognizer) add(lhs string, rhs []symbol) {
	r.byLHS[lhs] = append(r.byLHS[lhs], len(r.rules))
	r.rules = append(r.rules, rule{lhs: lhs, rhs: rhs})
}

type ruleBuilder struct {
	r      *Recognizer
	prefix string
	n      int
}

// fresh names a synthetic rule. '#' cannot appear in a production name.
func (b *ruleBuilder) fresh() string {
	b.n++
	return fmt.Sprintf("%s#%d", b.prefix, b.n)
}

func (b *ruleBuilder) alternatives(expr ebnf.Expression) [][]symbol {
	if alt, ok := expr.(ebnf.Alternative); ok {
		var out [][]symbol
		for _, e := range alt {
			out = append(out, b.alternatives(e)...)
		}
		return out
	}
	return [][]symbol{b.sequence(expr)}
}

func (b *ruleBuilder) sequence(expr ebnf.Expression) []symbol {
	switch x := expr.(type) {
	case nil:
		return nil
	case ebnf.Sequence:
		out := make([]symbol, 0, len(x))
		for _, e := range x {
			out = append(out, b.symbol(e))
		}
		return out
	}
	return []symbol{b.symbol(expr)}
}

func (b *ruleBuilder) symbol(expr ebnf.Expression) symbol {
	switch x := expr.(type) {
	case *ebnf.Name:
		return symbol{name: x.String}
	case *ebnf.Token:
		return symbol{name: x.String, terminal: true}
	case *ebnf.Range:
		return symbol{name: x.Begin.String + "…" + x.End.String, terminal: true}
	case *ebnf.Group:
		return b.derive(x.Body, false, false)
	case *ebnf.Option:
		return b.derive(x.Body, true, false)
	case *ebnf.Repetition:
		return b.derive(x.Body, true, true)
	}
	return b.derive(expr, false, false)
}

// derive introduces a rule for body. Optional rules also derive the empty
// sequence; repeated ones derive body followed by themselves.
func (b *ruleBuilder) derive(body ebnf.Expression, optional, repeated bool) symbol {
	name := b.fresh()
	if optional {
		b.r.add(name, nil)
	}
	for _, alt := range b.alternatives(body) {
		if repeated {
			alt = append(alt, symbol{name: name})
		}
		b.r.add(name, alt)
	}
	return symbol{name: name}
}

func (r *Recognizer) computeNullable() {
	for changed := true; changed; {
		changed = false
		for _, ru := range r.rules {
			if r.nullable[ru.lhs] {
				continue
			}
			empty := true
			for _, sym := range ru.rhs {
				if sym.terminal || !r.nullable[sym.name] {
					empty = false
					break
				}
			}
			if empty {
				r.nullable[ru.lhs] = true
				changed = true
			}
		}
	}
}

// Terminal returns the grammar terminal that tok stands for.
func Terminal(tok token.Token) string {
	switch tok.Kind {
	case token.NewLine:
		return "NEWLINE"
	case token.Indent:
		return "INDENT"
	case token.Dedent:
		return "DEDENT"
	case token.Ident:
		return "IDENT"
	case token.Int:
		return "INT"
	case token.Float:
		return "FLOAT"
	case token.Str:
		return "STRING"
	}
	return tok.Kind.String()
}

type item struct {
	rule   int
	dot    int
	origin int
}

type itemSet struct {
	items []item
	seen  map[item]bool
}

func (s *itemSet) add(it item) {
	if s.seen[it] {
		return
	}
	s.seen[it] = true
	s.items = append(s.items, it)
}

// Recognize reports whether tokens form a sentence of the grammar. The
// error names the first token the grammar cannot account for.
func (r *Recognizer) Recognize(tokens []token.Token) error {
	n := len(tokens)
	chart := make([]*itemSet, n+1)
	for i := range chart {
		chart[i] = &itemSet{seen: map[item]bool{}}
	}
	for _, idx := range r.byLHS[r.start] {
		chart[0].add(item{rule: idx})
	}

	for i := 0; i <= n; i++ {
		set := chart[i]
		for j := 0; j < len(set.items); j++ {
			it := set.items[j]
			ru := r.rules[it.rule]

			if it.dot == len(ru.rhs) {
				// complete
				for _, waiting := range chart[it.origin].items {
					wr := r.rules[waiting.rule]
					if waiting.dot < len(wr.rhs) && !wr.rhs[waiting.dot].terminal && wr.rhs[waiting.dot].name == ru.lhs {
						set.add(item{waiting.rule, waiting.dot + 1, waiting.origin})
					}
				}
				continue
			}

			next := ru.rhs[it.dot]
			if next.terminal {
				// scan
				if i < n && Terminal(tokens[i]) == next.name {
					chart[i+1].add(item{it.rule, it.dot + 1, it.origin})
				}
				continue
			}

			// predict
			for _, idx := range r.byLHS[next.name] {
				set.add(item{rule: idx, origin: i})
			}
			if r.nullable[next.name] {
				set.add(item{it.rule, it.dot + 1, it.origin})
			}
		}
	}

	for _, it := range chart[n].items {
		ru := r.rules[it.rule]
		if ru.lhs == r.start && it.origin == 0 && it.dot == len(ru.rhs) {
			return nil
		}
	}

	furthest := n
	for furthest > 0 && len(chart[furthest].items) == 0 {
		furthest--
	}
	if furthest < n {
		tok := tokens[furthest]
		return fmt.Errorf("%s: grammar does not accept %s here", tok.Pos, tok)
	}
	return fmt.Errorf("grammar does not accept end of input")
}
