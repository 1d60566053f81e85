// Package render produces deterministic manifest source text from a resource.
// The output is a textual contract: quoting and line structure are fixed so
// downstream tooling can consume it byte-for-byte.
package render

import (
	"sort"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/declargo/internal/resource"
)

// Options is the formatting policy. It is passed explicitly by callers;
// this package reads no ambient state.
type Options struct {
	// SortParams renders parameters in lexical order instead of insertion
	// order.
	SortParams bool
}

// Manifest renders a resource with the default policy: parameters in
// insertion order.
func Manifest(res *resource.Resource) string {
	return ManifestWith(res, Options{})
}

// ManifestWith renders a resource as manifest text:
//
//	<type> { '<title>':
//	    <name> => <value>,
//	}
//
// The type is emitted as given, the title single-quoted. Rendering never
// mutates the resource; two calls on an unmodified resource yield identical
// bytes.
func ManifestWith(res *resource.Resource, opts Options) string {
	var sb strings.Builder
	sb.WriteString(res.Type())
	sb.WriteString(" { '")
	sb.WriteString(res.Title())
	sb.WriteString("':\n")

	names := res.Store().Names()
	if opts.SortParams {
		sort.Strings(names)
	}
	for _, name := range names {
		v, ok := res.Get(name)
		if !ok {
			continue
		}
		sb.WriteString("    ")
		sb.WriteString(name)
		sb.WriteString(" => ")
		sb.WriteString(Value(v))
		sb.WriteString(",\n")
	}

	sb.WriteString("}\n")
	return sb.String()
}

// Value renders a single parameter value. Scalars are always single-quoted,
// never bare literals; sequences render as ['a','b'] with each element quoted
// and no spaces.
func Value(v cty.Value) string {
	if v.IsNull() {
		return "''"
	}
	ty := v.Type()
	if ty.IsListType() || ty.IsSetType() || ty.IsTupleType() {
		var sb strings.Builder
		sb.WriteByte('[')
		first := true
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			if !first {
				sb.WriteByte(',')
			}
			sb.WriteString(scalar(ev))
			first = false
		}
		sb.WriteByte(']')
		return sb.String()
	}
	return scalar(v)
}

func scalar(v cty.Value) string {
	return "'" + scalarText(v) + "'"
}

// scalarText converts a scalar to its textual form through cty's conversion
// rules, so booleans become "true"/"false" and numbers their decimal form.
func scalarText(v cty.Value) string {
	if v.IsNull() {
		return ""
	}
	sv, err := convert.Convert(v, cty.String)
	if err != nil {
		return v.GoString()
	}
	return sv.AsString()
}
