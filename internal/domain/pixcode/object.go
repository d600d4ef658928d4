package pixcode

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotObject is returned when the pix value is absent or is not a JSON object.
var ErrNotObject = errors.New("pix value is not a JSON object")

// Field is one own property of the gateway's pix object.
type Field struct {
	Key   string
	Value json.RawMessage
}

// String returns the field value when it is a non-empty JSON string.
func (f Field) String() (string, bool) {
	trimmed := bytes.TrimSpace(f.Value)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil || s == "" {
		return "", false
	}
	return s, true
}

// Object is the pix object with its fields in document order. Duplicate keys
// keep their first position and last value, matching how a decoded object
// behaves.
type Object struct {
	Fields []Field
}

// Get looks a key up with exact, case-sensitive matching.
func (o Object) Get(key string) (Field, bool) {
	for _, f := range o.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// ParseObject decodes raw as a JSON object without losing key order.
func ParseObject(raw json.RawMessage) (Object, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Object{}, ErrNotObject
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil {
		return Object{}, fmt.Errorf("read object start: %w", err)
	}

	var obj Object
	index := map[string]int{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Object{}, fmt.Errorf("read key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return Object{}, fmt.Errorf("unexpected key token %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return Object{}, fmt.Errorf("read value of %q: %w", key, err)
		}

		if i, seen := index[key]; seen {
			obj.Fields[i].Value = value
			continue
		}
		index[key] = len(obj.Fields)
		obj.Fields = append(obj.Fields, Field{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return Object{}, fmt.Errorf("read object end: %w", err)
	}
	return obj, nil
}

// PixObject pulls the "pix" member out of a full gateway response body.
func PixObject(response json.RawMessage) (Object, error) {
	root, err := ParseObject(response)
	if err != nil {
		return Object{}, err
	}
	pix, ok := root.Get("pix")
	if !ok {
		return Object{}, ErrNotObject
	}
	return ParseObject(pix.Value)
}
