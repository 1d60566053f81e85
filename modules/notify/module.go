// Package notify provides the builtin 'notify' resource type.
package notify

import (
	"context"
	"fmt"

	"github.com/vk/declargo/internal/ctyconv"
	"github.com/vk/declargo/internal/registry"
	"github.com/vk/declargo/internal/resource"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Handle is the runtime handle for a notify resource.
type Handle struct {
	Message  string
	Loglevel string
}

// Build constructs the handle for a notify resource. The title doubles as the
// message unless an explicit message parameter overrides it.
func Build(ctx context.Context, res *resource.Resource) (any, error) {
	h := &Handle{
		Message:  res.Title(),
		Loglevel: "notice",
	}
	for name, val := range res.Params() {
		var target any
		switch name {
		case "message":
			target = &h.Message
		case "loglevel":
			target = &h.Loglevel
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
	r.RegisterType("notify", &registry.BuiltinType{Build: Build})
}
