// Package plan turns a finished execution graph into human- or
// machine-readable output. It sits on the graph's conversion boundary: the
// text renderer registers tasks through a Collector the way an external
// scheduler would, and the JSON renderer works from the flattened task set.
package plan

import (
	"fmt"
	"io"

	"github.com/vk/flowgraphgo/internal/config"
	"github.com/vk/flowgraphgo/internal/graph"
)

// Renderer writes the plan for a constructed flow graph.
type Renderer interface {
	Render(w io.Writer, g *graph.Graph[*config.Task]) error
}

// NewRenderer returns the renderer for the given output format.
func NewRenderer(format string) (Renderer, error) {
	switch format {
	case "text":
		return &textRenderer{}, nil
	case "json":
		return &jsonRenderer{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Entry is one task registration recorded by a Collector.
type Entry struct {
	Name     string
	After    []string
	RunAfter []string
}

// Collector implements graph.Registrar, standing in for an external
// scheduler: every registered task is recorded in order and referenced by
// its name. It demonstrates, and in the text renderer exercises, the
// graph-to-scheduler handoff without executing anything.
type Collector struct {
	Entries []Entry
}

// Register records one task and returns its name as the scheduler ref.
func (c *Collector) Register(task *config.Task, after []string, constraints []graph.Constraint) (string, error) {
	labels := make([]string, 0, len(constraints))
	for _, cons := range constraints {
		labels = append(labels, fmt.Sprint(cons))
	}
	c.Entries = append(c.Entries, Entry{Name: task.Name, After: after, RunAfter: labels})
	return task.Name, nil
}
