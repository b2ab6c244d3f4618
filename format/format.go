// Package format renders Snek syntax trees and token streams for tools.
//
// Trees are first converted into an Object, an ordered key/value form that
// keeps field order stable across encoders. The JSON, YAML and tree
// encoders all consume that form.
package format

import (
	"encoding"
	"fmt"
	"io"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(obj *Object) error
}

var (
	_ Encoder = (*JSONEncoder)(nil)
	_ Encoder = (*YAMLEncoder)(nil)
	_ Encoder = (*TreeEncoder)(nil)
)

// NewEncoder returns the encoder registered under name: "json", "yaml" or
// "tree".
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "json":
		return NewJSONEncoder(w), nil
	case "yaml", "yml":
		return NewYAMLEncoder(w), nil
	case "tree":
		return NewTreeEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format %q", name)
}
