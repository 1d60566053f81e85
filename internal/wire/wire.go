// Package wire serializes resources to and from structured documents. The
// JSON form carries type-annotated cty values and is the lossless round-trip
// format; a YAML form of the same envelope is provided for human-edited
// documents.
package wire

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/vk/declargo/internal/resource"
)

// ErrMalformed is wrapped by every deserialization failure: undecodable
// input, missing mandatory fields, or unrepresentable parameter values.
var ErrMalformed = errors.New("wire: malformed resource document")

// document is the serialized envelope. Parameters are a sequence, not a map,
// so insertion order survives the round trip.
type document struct {
	Type       string       `json:"type"`
	Title      string       `json:"title"`
	Parameters []paramEntry `json:"parameters,omitempty"`
	Tags       []string     `json:"tags,omitempty"`
	File       string       `json:"file,omitempty"`
	Line       int          `json:"line,omitempty"`
}

// paramEntry carries one parameter; the value is cty JSON, which embeds the
// value's type alongside the data.
type paramEntry struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

// Marshal serializes a resource to its JSON wire form, preserving the type,
// title, full ordered parameter mapping, and tag set.
func Marshal(res *resource.Resource) ([]byte, error) {
	doc := document{
		Type:  res.Type(),
		Title: res.Title(),
		Tags:  res.Tags(),
		File:  res.File,
		Line:  res.Line,
	}
	for name, val := range res.Params() {
		raw, err := ctyjson.Marshal(val, cty.DynamicPseudoType)
		if err != nil {
			return nil, fmt.Errorf("wire: encoding parameter %q of %s: %w", name, res.Ref(), err)
		}
		doc.Parameters = append(doc.Parameters, paramEntry{Name: name, Value: raw})
	}
	return json.Marshal(doc)
}

// Unmarshal reconstructs a resource from its JSON wire form. The result is
// element-wise equal to the original in type, title, and every parameter
// pair; default tags regenerate from type and title, and any further tags in
// the document are re-added.
func Unmarshal(data []byte) (*resource.Resource, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	res, err := resource.New(doc.Type, doc.Title)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for _, p := range doc.Parameters {
		val, err := ctyjson.Unmarshal(p.Value, cty.DynamicPseudoType)
		if err != nil {
			return nil, fmt.Errorf("%w: parameter %q: %v", ErrMalformed, p.Name, err)
		}
		res.SetValue(p.Name, val)
	}
	for _, tag := range doc.Tags {
		res.AddTag(tag)
	}
	res.File = doc.File
	res.Line = doc.Line
	return res, nil
}
