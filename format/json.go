package format

import (
	"encoding/json"
	"io"
)

type JSONEncoder struct {
	w   io.Writer
	obj *Object
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(obj *Object) error {
	e.obj = obj
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	text, err := json.MarshalIndent(e.obj, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(text, '\n'), nil
}
