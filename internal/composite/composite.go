// Package composite provides the construction path for resource types that
// have no registered builtin constructor: user-defined aggregates built from
// other resources.
package composite

import (
	"context"

	"github.com/vk/declargo/internal/resource"
)

// Component is the opaque handle for a composite resource. Evaluation of the
// aggregate's body into child resources happens outside this core.
type Component struct {
	Ref      string
	Resource *resource.Resource
}

// Build wraps a resource of a user-defined type in a Component handle. It is
// the default composite Builder wired into the runtime converter.
func Build(ctx context.Context, res *resource.Resource) (any, error) {
	return &Component{
		Ref:      res.Ref(),
		Resource: res,
	}, nil
}
