package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidTag(t *testing.T) {
	testCases := []struct {
		name  string
		tag   string
		valid bool
	}{
		{name: "plain word", tag: "bar", valid: true},
		{name: "underscore leader", tag: "_internal", valid: true},
		{name: "namespaced", tag: "one::two", valid: true},
		{name: "dotted", tag: "web.front", valid: true},
		{name: "hyphenated", tag: "web-front", valid: true},
		{name: "empty", tag: "", valid: false},
		{name: "leading slash", tag: "/bar", valid: false},
		{name: "path-like", tag: "/my/file", valid: false},
		{name: "leading hyphen", tag: "-bar", valid: false},
		{name: "embedded space", tag: "two words", valid: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, ValidTag(tc.tag))
		})
	}
}

func TestDefaultTagDerivation(t *testing.T) {
	t.Run("valid title is tagged", func(t *testing.T) {
		r, err := New("file", "bar")
		require.NoError(t, err)
		assert.True(t, r.IsTagged("file"))
		assert.True(t, r.IsTagged("bar"))
	})

	t.Run("invalid title is silently excluded", func(t *testing.T) {
		r, err := New("file", "/bar")
		require.NoError(t, err)
		assert.True(t, r.IsTagged("file"))
		assert.False(t, r.IsTagged("/bar"))
	})
}

func TestAddTag(t *testing.T) {
	r, err := New("exec", "ls")
	require.NoError(t, err)

	assert.False(t, r.IsTagged("manual"))
	r.AddTag("manual")
	assert.True(t, r.IsTagged("manual"))

	// Adding twice keeps set semantics.
	r.AddTag("manual")
	assert.Equal(t, []string{"exec", "ls", "manual"}, r.Tags())
}
