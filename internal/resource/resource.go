package resource

import (
	"iter"

	"github.com/zclconf/go-cty/cty"
)

// Resource is the aggregate exchanged across the system boundary: an Identity
// plus an ordered ParamStore and a TagSet. The provenance fields are metadata
// only; they take no part in identity or equality.
type Resource struct {
	id     Identity
	params *ParamStore
	tags   *TagSet

	// Provenance: the manifest file and line this resource came from, and an
	// opaque back-reference to an owning catalog, when known.
	File    string
	Line    int
	Catalog any
}

// New constructs a Resource with a mandatory type and title. Initial
// parameters are applied in argument order, so later rendering reproduces the
// caller's ordering.
func New(typ, title string, params ...Param) (*Resource, error) {
	id, err := NewIdentity(typ, title)
	if err != nil {
		return nil, err
	}
	r := &Resource{
		id:     id,
		params: NewParamStore(),
		tags:   defaultTags(id),
	}
	for _, p := range params {
		if err := r.Set(p.Name, p.Value); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Identity returns the resource's identity value.
func (r *Resource) Identity() Identity { return r.id }

// Type returns the resource type, case preserved.
func (r *Resource) Type() string { return r.id.Type() }

// Title returns the resource title.
func (r *Resource) Title() string { return r.id.Title() }

// Ref returns the canonical reference string, e.g. `File[/etc/motd]`.
func (r *Resource) Ref() string { return r.id.Ref() }

// Set stores a parameter, converting the native Go value.
func (r *Resource) Set(name string, value any) error {
	return r.params.Set(name, value)
}

// SetValue stores an already-converted parameter value.
func (r *Resource) SetValue(name string, v cty.Value) {
	r.params.SetValue(name, v)
}

// Get returns a parameter value; the boolean reports presence.
func (r *Resource) Get(name string) (cty.Value, bool) {
	return r.params.Get(name)
}

// Delete removes a parameter; absent names are a no-op.
func (r *Resource) Delete(name string) {
	r.params.Delete(name)
}

// Has reports whether a parameter is set.
func (r *Resource) Has(name string) bool { return r.params.Has(name) }

// Len returns the number of parameters.
func (r *Resource) Len() int { return r.params.Len() }

// Empty reports whether the resource carries no parameters.
func (r *Resource) Empty() bool { return r.params.Empty() }

// Params returns a restartable in-order sequence of parameter pairs.
func (r *Resource) Params() iter.Seq2[string, cty.Value] {
	return r.params.All()
}

// Store exposes the underlying parameter store.
func (r *Resource) Store() *ParamStore { return r.params }

// AddTag inserts a tag beyond the construction-time defaults.
func (r *Resource) AddTag(tag string) { r.tags.Add(tag) }

// IsTagged reports tag membership.
func (r *Resource) IsTagged(tag string) bool { return r.tags.Has(tag) }

// Tags returns all tags in lexical order.
func (r *Resource) Tags() []string { return r.tags.List() }
