package app

import (
	"context"
	"fmt"

	"github.com/vk/declargo/internal/ctxlog"
	"github.com/vk/declargo/internal/facts"
	"github.com/vk/declargo/internal/render"
	"github.com/vk/declargo/internal/resource"
	"github.com/vk/declargo/internal/wire"
)

// Run loads the configured manifests and emits every declared resource in the
// configured output format, optionally validating each one against the
// registry first.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	resources, err := a.loader.Load(ctx, a.cfg.ManifestPath)
	if err != nil {
		return err
	}
	a.logger.Info("Manifests loaded.", "resources", len(resources))

	if a.cfg.FactsFor != "" {
		bundle, err := a.factBundle(ctx, a.cfg.FactsFor)
		if err != nil {
			return err
		}
		resources = append(resources, bundle)
	}

	if a.cfg.Validate {
		for _, res := range resources {
			if _, err := a.converter.ToHandle(ctx, res); err != nil {
				return err
			}
		}
		a.logger.Debug("All resources validated against the registry.")
	}

	for _, res := range resources {
		if err := a.emit(res); err != nil {
			return err
		}
	}
	return nil
}

// factBundle snapshots the environment fact source and wraps it as a
// resource for the named node.
func (a *App) factBundle(ctx context.Context, name string) (*resource.Resource, error) {
	var src facts.EnvSource
	snap, err := src.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return facts.Bundle(name, snap)
}

// emit writes one resource to the output in the configured format.
func (a *App) emit(res *resource.Resource) error {
	switch a.cfg.Output {
	case OutputJSON:
		data, err := wire.Marshal(res)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.outW, "%s\n", data)
	case OutputYAML:
		data, err := wire.MarshalYAML(res)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.outW, "---\n%s", data)
	default:
		fmt.Fprint(a.outW, render.Manifest(res))
	}
	return nil
}
