// Package registry provides the central glue between resource type names and
// the compiled Go constructors that build their runtime handles.
//
// A type present in the registry is "builtin": its registered constructor is
// invoked when a resource of that type is converted for execution. A type
// absent from the registry is treated as a composite and handled elsewhere.
// The registry is populated once at startup and then only read.
package registry
