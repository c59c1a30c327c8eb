// Package app wires the application together: configuration, logging, the
// flow loader, graph construction and plan rendering. It owns the lifecycle
// of one planning run and nothing else.
package app
