package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/declargo/internal/resource"
)

// roundTripResource builds a resource with every value shape the model
// supports.
func roundTripResource(t *testing.T) *resource.Resource {
	t.Helper()
	r, err := resource.New("one::two", "/my/file",
		resource.Param{Name: "noop", Value: true},
		resource.Param{Name: "retries", Value: 3},
		resource.Param{Name: "ensure", Value: "present"},
		resource.Param{Name: "foo", Value: []string{"one", "two"}},
	)
	require.NoError(t, err)
	return r
}

// assertEqualResources checks element-wise equality of type, title, and every
// parameter pair.
func assertEqualResources(t *testing.T, want, got *resource.Resource) {
	t.Helper()
	assert.Equal(t, want.Type(), got.Type())
	assert.Equal(t, want.Title(), got.Title())
	assert.Equal(t, want.Store().Names(), got.Store().Names())
	for name, wv := range want.Params() {
		gv, ok := got.Get(name)
		require.True(t, ok, "parameter %q missing after round trip", name)
		assert.True(t, wv.RawEquals(gv), "parameter %q: want %#v, got %#v", name, wv, gv)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	original := roundTripResource(t)

	data, err := Marshal(original)
	require.NoError(t, err)

	restored, err := Unmarshal(data)
	require.NoError(t, err)
	assertEqualResources(t, original, restored)

	// Default tags regenerate from type and title.
	assert.True(t, restored.IsTagged("one::two"))
}

func TestJSONRoundTripPreservesManualTags(t *testing.T) {
	original := roundTripResource(t)
	original.AddTag("manual")

	data, err := Marshal(original)
	require.NoError(t, err)

	restored, err := Unmarshal(data)
	require.NoError(t, err)
	assert.True(t, restored.IsTagged("manual"))
}

func TestJSONRoundTripMetadata(t *testing.T) {
	original := roundTripResource(t)
	original.File = "site.hcl"
	original.Line = 7

	data, err := Marshal(original)
	require.NoError(t, err)

	restored, err := Unmarshal(data)
	require.NoError(t, err)
	assert.Equal(t, "site.hcl", restored.File)
	assert.Equal(t, 7, restored.Line)
}

func TestUnmarshalMalformed(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{nope"},
		{name: "missing type", data: `{"title":"/my/file"}`},
		{name: "missing title", data: `{"type":"file"}`},
		{name: "bad parameter value", data: `{"type":"file","title":"x","parameters":[{"name":"p","value":{"value":1}}]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tc.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	original := roundTripResource(t)

	data, err := MarshalYAML(original)
	require.NoError(t, err)

	restored, err := UnmarshalYAML(data)
	require.NoError(t, err)
	assertEqualResources(t, original, restored)
}

func TestUnmarshalYAMLMalformed(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "not yaml", data: "{invalid"},
		{name: "missing type", data: "title: /my/file\n"},
		{name: "missing title", data: "type: file\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := UnmarshalYAML([]byte(tc.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}
