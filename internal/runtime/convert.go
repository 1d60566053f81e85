// Package runtime converts resources into runtime-executable handles by
// dispatching on registry membership: a registered type builds through its
// builtin constructor, an unregistered type through the composite builder.
// This package knows nothing about how either kind of handle executes.
package runtime

import (
	"context"

	"github.com/vk/declargo/internal/registry"
	"github.com/vk/declargo/internal/resource"
)

// Builder constructs an opaque runtime handle from a resource.
type Builder func(ctx context.Context, res *resource.Resource) (any, error)

// Converter resolves a resource's type against a registry once and dispatches
// to exactly one of two construction paths.
type Converter struct {
	reg       *registry.Registry
	composite Builder
}

// New creates a Converter. The composite builder is mandatory; without it
// unregistered types would have no construction path.
func New(reg *registry.Registry, composite Builder) *Converter {
	if composite == nil {
		panic("runtime: composite builder is required")
	}
	return &Converter{reg: reg, composite: composite}
}

// ToHandle builds the runtime handle for a resource. Whichever path is taken,
// its result and its failure are returned unchanged; no error is synthesized
// here.
func (c *Converter) ToHandle(ctx context.Context, res *resource.Resource) (any, error) {
	if builtin, ok := c.reg.Lookup(res.Type()); ok {
		return builtin.Build(ctx, res)
	}
	return c.composite(ctx, res)
}
