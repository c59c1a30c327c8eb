// Package cli parses command-line arguments into an app.Config. It knows
// nothing about flows or graphs; it only maps flags to configuration and
// produces exit-code-aware errors.
package cli
