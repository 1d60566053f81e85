// Package file provides the builtin 'file' resource type.
package file

import (
	"context"
	"fmt"

	"github.com/vk/declargo/internal/ctyconv"
	"github.com/vk/declargo/internal/registry"
	"github.com/vk/declargo/internal/resource"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// Handle is the runtime handle for a file resource.
type Handle struct {
	Path    string
	Ensure  string
	Mode    string
	Owner   string
	Group   string
	Content string
	Source  string
}

// Build constructs the handle for a file resource. The title doubles as the
// path unless an explicit path parameter overrides it.
func Build(ctx context.Context, res *resource.Resource) (any, error) {
	h := &Handle{
		Path:   res.Title(),
		Ensure: "present",
	}
	for name, val := range res.Params() {
		var target any
		switch name {
		case "path":
			target = &h.Path
		case "ensure":
			target = &h.Ensure
		case "mode":
			target = &h.Mode
		case "owner":
			target = &h.Owner
		case "group":
			target = &h.Group
		case "content":
			target = &h.Content
		case "source":
			target = &h.Source
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
	r.RegisterType("file", &registry.BuiltinType{Build: Build})
}
