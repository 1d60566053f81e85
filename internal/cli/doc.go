// Package cli parses command-line arguments into an app.Config, layering
// flags over the project config file and environment defaults.
package cli
