package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/snek/token"
)

// TreeEncoder prints an Object as an indented outline, one node per line.
// Scalar fields appear on the node's line, nested nodes below it.
//
//	Program
//	  statements[0]: Assign @1:1
//	    target: Identifier name="x"
//	    value: Int value=1 literal="1"
type TreeEncoder struct {
	w   io.Writer
	obj *Object
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w}
}

func (e *TreeEncoder) Encode(obj *Object) error {
	e.obj = obj
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	if e.obj != nil {
		writeTree(&sb, "", e.obj, 0)
	}
	return []byte(sb.String()), nil
}

func writeTree(sb *strings.Builder, label string, obj *Object, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	if label != "" {
		sb.WriteString(label)
		sb.WriteString(": ")
	}
	sb.WriteString(treeHeader(obj))
	sb.WriteByte('\n')

	for _, f := range obj.Fields {
		switch v := f.Value.(type) {
		case *Object:
			if f.Key == "position" {
				continue
			}
			writeTree(sb, f.Key, v, depth+1)
		case []*Object:
			for i, child := range v {
				writeTree(sb, fmt.Sprintf("%s[%d]", f.Key, i), child, depth+1)
			}
		}
	}
}

func treeHeader(obj *Object) string {
	var parts []string
	if kind := obj.Kind(); kind != "" {
		parts = append(parts, kind)
	}
	for _, f := range obj.Fields {
		if f.Key == "kind" {
			continue
		}
		switch v := f.Value.(type) {
		case string:
			parts = append(parts, fmt.Sprintf("%s=%q", f.Key, v))
		case bool, int, int64, float64:
			parts = append(parts, fmt.Sprintf("%s=%v", f.Key, v))
		}
	}
	if pos, ok := obj.Get("position"); ok {
		if p, ok := pos.(*Object); ok {
			line, _ := p.Get("line")
			column, _ := p.Get("column")
			parts = append(parts, fmt.Sprintf("@%v:%v", line, column))
		}
	}
	return strings.Join(parts, " ")
}

// TokenEncoder writes one token per line: position, then the token.
type TokenEncoder struct {
	w      io.Writer
	tokens []token.Token
}

func NewTokenEncoder(w io.Writer) *TokenEncoder {
	return &TokenEncoder{w: w}
}

func (e *TokenEncoder) Encode(tokens []token.Token) error {
	e.tokens = tokens
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TokenEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, tok := range e.tokens {
		fmt.Fprintf(&sb, "%s\t%s\n", tok.Pos, tok)
	}
	return []byte(sb.String()), nil
}

// Tokens converts a token stream for the JSON and YAML encoders.
func Tokens(tokens []token.Token) *Object {
	items := make([]*Object, len(tokens))
	for i, tok := range tokens {
		item := NewObject().
			Set("kind", tok.Kind.String()).
			Set("position", position(tok.Pos))
		if tok.Value != "" {
			item.Set("value", tok.Value)
		}
		items[i] = item
	}
	return NewObject().Set("kind", "Tokens").Set("tokens", items)
}
