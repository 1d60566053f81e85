package registry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/vk/declargo/internal/resource"
)

// Module is the interface that all builtin type modules must implement to be
// registered.
type Module interface {
	Register(r *Registry)
}

// BuiltinType holds the compiled Go parts of a builtin resource type.
type BuiltinType struct {
	// Build constructs the opaque runtime handle for a resource of this
	// type. The full resource is passed; whatever Build returns is the
	// handle.
	Build func(ctx context.Context, res *resource.Resource) (any, error)
}

// Registry maps resource type names to their registered builtin constructors
// for a single application instance.
type Registry struct {
	builtins map[string]*BuiltinType
}

// New creates and initializes an empty Registry instance.
func New() *Registry {
	return &Registry{
		builtins: make(map[string]*BuiltinType),
	}
}

// RegisterType registers a builtin constructor under a type name. Duplicate
// registration is a programmer error and panics.
func (r *Registry) RegisterType(name string, t *BuiltinType) {
	if _, exists := r.builtins[name]; exists {
		panic(fmt.Sprintf("builtin type '%s' already registered", name))
	}
	if t == nil || t.Build == nil {
		panic(fmt.Sprintf("builtin type '%s' registered without a Build function", name))
	}
	slog.Debug("Registering builtin type.", "type", name)
	r.builtins[name] = t
}

// Lookup resolves a type name against the registry. The boolean reports
// whether the type is builtin.
func (r *Registry) Lookup(name string) (*BuiltinType, bool) {
	t, ok := r.builtins[name]
	return t, ok
}

// Types returns all registered type names in lexical order.
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.builtins))
	for name := range r.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
