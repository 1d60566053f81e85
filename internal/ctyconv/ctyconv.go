// Package ctyconv converts between native Go values and cty values. It is the
// single boundary through which parameter values enter and leave the cty type
// system, so every caller agrees on one conversion behaviour.
package ctyconv

import (
	"fmt"
	"math/big"
	"reflect"
	"sort"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// FromGo converts a native Go value into its corresponding cty.Value. A
// cty.Value passes through unchanged, and nil becomes a typeless null.
func FromGo(v any) (cty.Value, error) {
	switch tv := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), nil
	case cty.Value:
		return tv, nil
	case []any:
		return sliceFromGo(tv)
	case map[string]any:
		return mapFromGo(tv)
	}

	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type for %T: %w", v, err)
	}
	return gocty.ToCtyValue(v, ty)
}

// sliceFromGo builds a list when every element shares a type, and a tuple
// otherwise.
func sliceFromGo(vs []any) (cty.Value, error) {
	if len(vs) == 0 {
		return cty.EmptyTupleVal, nil
	}
	elems := make([]cty.Value, 0, len(vs))
	for _, v := range vs {
		ev, err := FromGo(v)
		if err != nil {
			return cty.NilVal, err
		}
		elems = append(elems, ev)
	}
	uniform := true
	for _, ev := range elems[1:] {
		if !ev.Type().Equals(elems[0].Type()) {
			uniform = false
			break
		}
	}
	if uniform {
		return cty.ListVal(elems), nil
	}
	return cty.TupleVal(elems), nil
}

func mapFromGo(vs map[string]any) (cty.Value, error) {
	if len(vs) == 0 {
		return cty.EmptyObjectVal, nil
	}
	attrs := make(map[string]cty.Value, len(vs))
	for k, v := range vs {
		av, err := FromGo(v)
		if err != nil {
			return cty.NilVal, err
		}
		attrs[k] = av
	}
	return cty.ObjectVal(attrs), nil
}

// ToGo converts a cty.Value into a plain Go value built from bools, strings,
// int64/float64, []any and map[string]any. Nulls become nil.
func ToGo(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	ty := v.Type()
	switch {
	case ty == cty.Bool:
		return v.True(), nil
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Number:
		bf := v.AsBigFloat()
		if i, acc := bf.Int64(); acc == big.Exact {
			return i, nil
		}
		f, _ := bf.Float64()
		return f, nil
	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		out := make([]any, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			gv, err := ToGo(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, gv)
		}
		return out, nil
	case ty.IsMapType() || ty.IsObjectType():
		out := make(map[string]any, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			kv, ev := it.Element()
			gv, err := ToGo(ev)
			if err != nil {
				return nil, err
			}
			out[kv.AsString()] = gv
		}
		return out, nil
	}
	return nil, fmt.Errorf("unsupported cty type %s", ty.FriendlyName())
}

// Decode handles the conversion and decoding of a cty.Value into a Go pointer,
// applying implicit type conversion where the target type allows it.
func Decode(val cty.Value, target any) error {
	ptr := reflect.ValueOf(target)
	if ptr.Kind() != reflect.Ptr {
		return fmt.Errorf("target for decoding must be a pointer, got %T", target)
	}

	impliedType, err := gocty.ImpliedType(ptr.Elem().Interface())
	if err != nil {
		// No implied type for the target; attempt direct decoding.
		return gocty.FromCtyValue(val, target)
	}

	convertedVal, err := convert.Convert(val, impliedType)
	if err != nil {
		return fmt.Errorf("cannot convert %s to required type %s: %w",
			val.Type().FriendlyName(), impliedType.FriendlyName(), err)
	}

	return gocty.FromCtyValue(convertedVal, target)
}

// SortedKeys returns the keys of a string-keyed map in lexical order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
