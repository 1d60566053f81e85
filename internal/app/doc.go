// Package app wires the application together: configuration, logging, the
// builtin type registry, the manifest loader, and the output paths
// (manifest text, JSON, YAML).
package app
