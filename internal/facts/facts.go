// Package facts models the external fact source collaborator: a flat mapping
// of fact name to observed value. The core consumes snapshots as an opaque
// data source; how facts are gathered is not specified here.
package facts

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/vk/declargo/internal/ctyconv"
	"github.com/vk/declargo/internal/resource"
)

// ErrReadOnly is returned by any attempt to use the fact source as a
// persistence target. The collaborator is read-only; mutation must fail
// loudly rather than silently no-op.
var ErrReadOnly = errors.New("facts: fact source is read-only")

// Snapshot is a flat mapping of fact name to value. Values are strings or
// nested string-keyed mappings.
type Snapshot map[string]any

// Store is the collaborator surface. Snapshot is the only operation expected
// to succeed; Save and Destroy exist so that misuse is rejected explicitly.
type Store interface {
	Snapshot(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
	Destroy(ctx context.Context, name string) error
}

// EnvSource exposes the process environment as a fact snapshot.
type EnvSource struct{}

// Snapshot returns one fact per environment variable.
func (EnvSource) Snapshot(ctx context.Context) (Snapshot, error) {
	snap := make(Snapshot)
	for _, e := range os.Environ() {
		if k, v, ok := strings.Cut(e, "="); ok {
			snap[k] = v
		}
	}
	return snap, nil
}

// Save always fails: the fact source is not a persistence target.
func (EnvSource) Save(ctx context.Context, snap Snapshot) error {
	return ErrReadOnly
}

// Destroy always fails: the fact source is not a persistence target.
func (EnvSource) Destroy(ctx context.Context, name string) error {
	return ErrReadOnly
}

// Decode populates target from a snapshot.
func Decode(snap Snapshot, target any) error {
	return mapstructure.Decode(map[string]any(snap), target)
}

// Bundle wraps a snapshot as a `facts` resource titled by the node the
// snapshot was taken from. Fact names become parameters in lexical order so
// the bundle renders deterministically.
func Bundle(name string, snap Snapshot) (*resource.Resource, error) {
	res, err := resource.New("facts", name)
	if err != nil {
		return nil, err
	}
	for _, k := range ctyconv.SortedKeys(snap) {
		if err := res.Set(k, snap[k]); err != nil {
			return nil, err
		}
	}
	return res, nil
}
