package resource

import (
	"iter"
	"strings"

	"github.com/zclconf/go-cty/cty"

	"github.com/vk/declargo/internal/ctyconv"
)

// Param is a (name, value) pair used to seed a resource at construction.
type Param struct {
	Name  string
	Value any
}

// ParamStore is an ordered mapping from canonical parameter name to value.
// Insertion order is preserved for iteration and rendering; it does not
// affect equality.
type ParamStore struct {
	order []string
	vals  map[string]cty.Value
}

// NewParamStore creates an empty store.
func NewParamStore() *ParamStore {
	return &ParamStore{vals: make(map[string]cty.Value)}
}

// CanonicalName collapses the two accepted surface forms of a parameter name,
// the symbol form (":mode") and the plain form ("mode"), into one canonical
// string. Every store operation normalizes through here so the two forms can
// never occupy separate slots.
func CanonicalName(name string) string {
	return strings.TrimPrefix(strings.TrimSpace(name), ":")
}

// Set converts a native Go value and stores it under the canonical name,
// overwriting any existing entry for that name.
func (s *ParamStore) Set(name string, value any) error {
	v, err := ctyconv.FromGo(value)
	if err != nil {
		return err
	}
	s.SetValue(name, v)
	return nil
}

// SetValue stores an already-converted value under the canonical name.
func (s *ParamStore) SetValue(name string, v cty.Value) {
	key := CanonicalName(name)
	if _, exists := s.vals[key]; !exists {
		s.order = append(s.order, key)
	}
	s.vals[key] = v
}

// Get returns the stored value for the canonical name. Absence is reported
// through the boolean, never as an error.
func (s *ParamStore) Get(name string) (cty.Value, bool) {
	v, ok := s.vals[CanonicalName(name)]
	return v, ok
}

// Delete removes the canonical entry. Deleting an absent name is a no-op.
func (s *ParamStore) Delete(name string) {
	key := CanonicalName(name)
	if _, ok := s.vals[key]; !ok {
		return
	}
	delete(s.vals, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Has reports whether the canonical name is set.
func (s *ParamStore) Has(name string) bool {
	_, ok := s.vals[CanonicalName(name)]
	return ok
}

// Len returns the number of stored parameters.
func (s *ParamStore) Len() int { return len(s.vals) }

// Empty reports whether the store holds no parameters.
func (s *ParamStore) Empty() bool { return len(s.vals) == 0 }

// All returns a restartable sequence of (canonical name, value) pairs in
// insertion order. Each range over the result is a fresh pass.
func (s *ParamStore) All() iter.Seq2[string, cty.Value] {
	return func(yield func(string, cty.Value) bool) {
		for _, k := range s.order {
			v, ok := s.vals[k]
			if !ok {
				continue
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

// Names returns the canonical parameter names in insertion order.
func (s *ParamStore) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
