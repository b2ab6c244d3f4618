package format

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Field is one entry of an Object. Value is a string, bool, int, int64,
// float64, *Object, []*Object or nil.
type Field struct {
	Key   string
	Value any
}

// Object is an ordered set of fields. It marshals to JSON and YAML with
// its keys in insertion order.
type Object struct {
	Fields []Field
}

func NewObject() *Object {
	return &Object{}
}

// Set appends a field and returns o for chaining.
func (o *Object) Set(key string, value any) *Object {
	o.Fields = append(o.Fields, Field{Key: key, Value: value})
	return o
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	for _, f := range o.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Kind returns the "kind" field, or "" when there is none.
func (o *Object) Kind() string {
	v, _ := o.Get("kind")
	s, _ := v.(string)
	return s
}

func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (o *Object) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, f := range o.Fields {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key}
		value := &yaml.Node{}
		if err := value.Encode(f.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, value)
	}
	return node, nil
}
