// Package exec provides the builtin 'exec' resource type.
package exec

import (
	"context"
	"fmt"

	"github.com/vk/declargo/internal/ctyconv"
	"github.com/vk/declargo/internal/registry"
	"github.com/vk/declargo/internal/resource"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Handle is the runtime handle for an exec resource.
type Handle struct {
	Command string
	Cwd     string
	Creates string
	Path    []string
	Returns []string
}

// Build constructs the handle for an exec resource. The title doubles as the
// command unless an explicit command parameter overrides it.
func Build(ctx context.Context, res *resource.Resource) (any, error) {
	h := &Handle{
		Command: res.Title(),
	}
	for name, val := range res.Params() {
		var target any
		switch name {
		case "command":
			target = &h.Command
		case "cwd":
			target = &h.Cwd
		case "creates":
			target = &h.Creates
		case "path":
			target = &h.Path
		case "returns":
			target = &h.Returns
		default:
			return nil, fmt.Errorf("%s: unknown parameter %q", res.Ref(), name)
		}
		if err := ctyconv.Decode(val, target); err != nil {
			return nil, fmt.Errorf("%s: parameter %q: %w", res.Ref(), name, err)
		}
	}
	return h, nil
}

// Register registers the builtin constructor with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterType("exec", &registry.BuiltinType{Build: Build})
}
