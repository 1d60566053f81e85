// Package resource defines the declarative resource model: a single unit of
// desired state identified by a type and a title, carrying an ordered mapping
// of named parameters and a tag set.
//
// A Resource is a plain in-memory value object. It performs no I/O and holds
// no external handles; callers that share one across goroutines must provide
// their own synchronization.
package resource
