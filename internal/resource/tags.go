package resource

import (
	"regexp"
	"sort"
)

// tagPattern is the tag acceptance grammar: an alphanumeric or underscore
// leader followed by alphanumerics, underscores, colons, dots, or hyphens.
// Path-like strings (leading slash and similar) never match.
var tagPattern = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_:.\-]*$`)

// ValidTag reports whether s satisfies the tag grammar.
func ValidTag(s string) bool {
	return tagPattern.MatchString(s)
}

// TagSet is a plain extensible set of tag strings.
type TagSet struct {
	members map[string]struct{}
}

// defaultTags derives the construction-time tag set from an identity: always
// the type, plus the title only when the title itself is a valid tag. An
// invalid title is silently excluded, never an error. This runs once at
// construction and is not recomputed.
func defaultTags(id Identity) *TagSet {
	t := &TagSet{members: make(map[string]struct{})}
	t.Add(id.Type())
	if ValidTag(id.Title()) {
		t.Add(id.Title())
	}
	return t
}

// Add inserts a tag into the set.
func (t *TagSet) Add(tag string) {
	t.members[tag] = struct{}{}
}

// Has reports set membership.
func (t *TagSet) Has(tag string) bool {
	_, ok := t.members[tag]
	return ok
}

// List returns the tags in lexical order.
func (t *TagSet) List() []string {
	out := make([]string, 0, len(t.members))
	for tag := range t.members {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}
