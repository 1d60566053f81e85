package hclload

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/declargo/internal/ctxlog"
	"github.com/vk/declargo/internal/ctyconv"
	"github.com/vk/declargo/internal/fsutil"
	"github.com/vk/declargo/internal/resource"
)

// Loader reads HCL manifests into resources.
type Loader struct{}

// NewLoader creates a new manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every manifest reachable from the given paths and returns the
// declared resources in file, then source, order.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*resource.Resource, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Manifest loader started.", "path_count", len(paths))

	files, err := l.findManifestFiles(paths)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered manifest files.", "count", len(files))

	parser := hclparse.NewParser()
	var resources []*resource.Resource

	for _, path := range files {
		hclFile, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse manifest %s: %w", path, diags)
		}

		content, diags := hclFile.Body.Content(rootSchema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode manifest %s: %w", path, diags)
		}

		for _, block := range content.Blocks {
			res, err := l.translateBlock(block, path)
			if err != nil {
				return nil, err
			}
			resources = append(resources, res)
		}
	}

	logger.Debug("Manifest loading complete.", "files", len(files), "resources", len(resources))
	return resources, nil
}

// translateBlock converts one `resource` block into a Resource, stamping the
// originating file and line.
func (l *Loader) translateBlock(block *hcl.Block, path string) (*resource.Resource, error) {
	res, err := resource.New(block.Labels[0], block.Labels[1])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", block.DefRange, err)
	}
	res.File = path
	res.Line = block.DefRange.Start.Line

	content, diags := block.Body.Content(resourceSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode resource %s: %w", res.Ref(), diags)
	}

	if attr, ok := content.Attributes["tags"]; ok {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate tags of %s: %w", res.Ref(), diags)
		}
		var tags []string
		if err := ctyconv.Decode(val, &tags); err != nil {
			return nil, fmt.Errorf("tags of %s must be a list of strings: %w", res.Ref(), err)
		}
		for _, tag := range tags {
			res.AddTag(tag)
		}
	}

	for _, inner := range content.Blocks {
		attrs, diags := inner.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to read arguments of %s: %w", res.Ref(), diags)
		}
		// JustAttributes returns a map; re-establish source order so the
		// store keeps the author's parameter ordering.
		ordered := make([]*hcl.Attribute, 0, len(attrs))
		for _, a := range attrs {
			ordered = append(ordered, a)
		}
		sort.Slice(ordered, func(i, j int) bool {
			return ordered[i].Range.Start.Byte < ordered[j].Range.Start.Byte
		})
		for _, a := range ordered {
			val, diags := a.Expr.Value(nil)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to evaluate argument %q of %s: %w", a.Name, res.Ref(), diags)
			}
			res.SetValue(a.Name, val)
		}
	}

	return res, nil
}

// findManifestFiles walks all given paths and returns a deduplicated flat
// list of .hcl files.
func (l *Loader) findManifestFiles(paths []string) ([]string, error) {
	var allFiles []string
	seen := make(map[string]struct{})

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue // It's not an error if a configured path doesn't exist.
			}
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			found, err := fsutil.FindFilesByExtension(path, ".hcl")
			if err != nil {
				return nil, err
			}
			for _, p := range found {
				if _, wasSeen := seen[p]; !wasSeen {
					allFiles = append(allFiles, p)
					seen[p] = struct{}{}
				}
			}
		} else if filepath.Ext(path) == ".hcl" {
			if _, wasSeen := seen[path]; !wasSeen {
				allFiles = append(allFiles, path)
				seen[path] = struct{}{}
			}
		}
	}
	return allFiles, nil
}
