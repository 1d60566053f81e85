package ctyconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func TestFromGo(t *testing.T) {
	testCases := []struct {
		name     string
		in       any
		expected cty.Value
	}{
		{name: "nil", in: nil, expected: cty.NullVal(cty.DynamicPseudoType)},
		{name: "string", in: "present", expected: cty.StringVal("present")},
		{name: "bool", in: true, expected: cty.True},
		{name: "int", in: 42, expected: cty.NumberIntVal(42)},
		{name: "float", in: 1.5, expected: cty.NumberFloatVal(1.5)},
		{name: "string slice", in: []string{"a", "b"}, expected: cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")})},
		{name: "cty value passthrough", in: cty.StringVal("x"), expected: cty.StringVal("x")},
		{
			name:     "uniform any slice becomes list",
			in:       []any{"a", "b"},
			expected: cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}),
		},
		{
			name:     "mixed any slice becomes tuple",
			in:       []any{"a", int64(1)},
			expected: cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.NumberIntVal(1)}),
		},
		{name: "empty any slice", in: []any{}, expected: cty.EmptyTupleVal},
		{
			name:     "string map becomes object",
			in:       map[string]any{"hostname": "web01"},
			expected: cty.ObjectVal(map[string]cty.Value{"hostname": cty.StringVal("web01")}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromGo(tc.in)
			require.NoError(t, err)
			assert.True(t, tc.expected.RawEquals(got), "want %#v, got %#v", tc.expected, got)
		})
	}
}

func TestFromGoUnsupported(t *testing.T) {
	_, err := FromGo(make(chan int))
	assert.Error(t, err)
}

func TestToGo(t *testing.T) {
	testCases := []struct {
		name     string
		in       cty.Value
		expected any
	}{
		{name: "null", in: cty.NullVal(cty.String), expected: nil},
		{name: "string", in: cty.StringVal("present"), expected: "present"},
		{name: "bool", in: cty.True, expected: true},
		{name: "integral number", in: cty.NumberIntVal(42), expected: int64(42)},
		{name: "fractional number", in: cty.NumberFloatVal(1.5), expected: 1.5},
		{
			name:     "list",
			in:       cty.ListVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")}),
			expected: []any{"a", "b"},
		},
		{
			name:     "object",
			in:       cty.ObjectVal(map[string]cty.Value{"hostname": cty.StringVal("web01")}),
			expected: map[string]any{"hostname": "web01"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToGo(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

// FromGo and ToGo are inverses over the value shapes the model stores.
func TestRoundTrip(t *testing.T) {
	values := []any{"present", true, int64(42), []any{"a", "b"}}

	for _, v := range values {
		cv, err := FromGo(v)
		require.NoError(t, err)
		back, err := ToGo(cv)
		require.NoError(t, err)
		assert.Equal(t, v, back)
	}
}

func TestDecode(t *testing.T) {
	t.Run("string into string", func(t *testing.T) {
		var s string
		require.NoError(t, Decode(cty.StringVal("present"), &s))
		assert.Equal(t, "present", s)
	})

	t.Run("tuple into string slice", func(t *testing.T) {
		var ss []string
		tuple := cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")})
		require.NoError(t, Decode(tuple, &ss))
		assert.Equal(t, []string{"a", "b"}, ss)
	})

	t.Run("number into string converts", func(t *testing.T) {
		var s string
		require.NoError(t, Decode(cty.NumberIntVal(644), &s))
		assert.Equal(t, "644", s)
	})

	t.Run("non-pointer target fails", func(t *testing.T) {
		var s string
		assert.Error(t, Decode(cty.StringVal("x"), s))
	})

	t.Run("incompatible conversion fails", func(t *testing.T) {
		var n int
		assert.Error(t, Decode(cty.StringVal("not a number"), &n))
	})
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"bravo": 2, "alpha": 1, "charlie": 3}
	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, SortedKeys(m))
}
