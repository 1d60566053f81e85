package wire

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vk/declargo/internal/ctyconv"
	"github.com/vk/declargo/internal/resource"
)

// yamlDocument mirrors the JSON envelope with parameter values as native
// scalars and sequences, which keeps hand-edited documents readable.
type yamlDocument struct {
	Type       string      `yaml:"type"`
	Title      string      `yaml:"title"`
	Parameters []yamlParam `yaml:"parameters,omitempty"`
	Tags       []string    `yaml:"tags,omitempty"`
	File       string      `yaml:"file,omitempty"`
	Line       int         `yaml:"line,omitempty"`
}

type yamlParam struct {
	Name  string `yaml:"name"`
	Value any    `yaml:"value"`
}

// MarshalYAML serializes a resource to the YAML form of the wire envelope.
func MarshalYAML(res *resource.Resource) ([]byte, error) {
	doc := yamlDocument{
		Type:  res.Type(),
		Title: res.Title(),
		Tags:  res.Tags(),
		File:  res.File,
		Line:  res.Line,
	}
	for name, val := range res.Params() {
		gv, err := ctyconv.ToGo(val)
		if err != nil {
			return nil, fmt.Errorf("wire: encoding parameter %q of %s: %w", name, res.Ref(), err)
		}
		doc.Parameters = append(doc.Parameters, yamlParam{Name: name, Value: gv})
	}
	return yaml.Marshal(doc)
}

// UnmarshalYAML reconstructs a resource from the YAML wire form.
func UnmarshalYAML(data []byte) (*resource.Resource, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	res, err := resource.New(doc.Type, doc.Title)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	for _, p := range doc.Parameters {
		val, err := ctyconv.FromGo(p.Value)
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
