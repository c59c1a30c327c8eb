// Package builder wires a declared flow model into an execution graph. It
// is the only place where depends_on lists meet the graph primitives: no
// dependencies means a root, one means a sequential chain, several mean a
// fan-in.
package builder

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/flowgraphgo/internal/config"
	"github.com/vk/flowgraphgo/internal/ctxlog"
	"github.com/vk/flowgraphgo/internal/graph"
)

// Build constructs the execution graph for a flow model.
//
// Declarations may reference tasks declared later in the flow, but the
// graph only accepts predecessors that already exist, so tasks are created
// in dependency order: each round creates, in declaration order, every task
// whose dependencies all have nodes. A round that creates nothing while
// tasks remain means the flow declares a cycle.
func Build(ctx context.Context, model *config.Model) (*graph.Graph[*config.Task], error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: starting graph construction.", "tasks", len(model.Tasks))

	byName := make(map[string]*config.Task, len(model.Tasks))
	for _, task := range model.Tasks {
		if _, exists := byName[task.Name]; exists {
			return nil, fmt.Errorf("duplicate task name: %q", task.Name)
		}
		byName[task.Name] = task
	}
	for _, task := range model.Tasks {
		for _, dep := range task.DependsOn {
			if _, ok := byName[dep]; !ok {
				return nil, fmt.Errorf("task %q depends on unknown task %q", task.Name, dep)
			}
			if dep == task.Name {
				return nil, fmt.Errorf("task %q depends on itself", task.Name)
			}
		}
	}

	g := graph.New[*config.Task]()
	handles := make(map[string]graph.Handle[*config.Task], len(model.Tasks))
	remaining := len(model.Tasks)

	for remaining > 0 {
		progressed := false
		for _, task := range model.Tasks {
			if _, done := handles[task.Name]; done {
				continue
			}
			if !ready(task, handles) {
				continue
			}

			h, err := createNode(g, task, handles)
			if err != nil {
				return nil, fmt.Errorf("creating node for task %q: %w", task.Name, err)
			}
			handles[task.Name] = h
			remaining--
			progressed = true
		}
		if !progressed {
			return nil, cycleError(model.Tasks, handles)
		}
	}

	logger.Debug("Build: graph construction complete.", "node_count", g.Len())
	return g, nil
}

// ready reports whether every dependency of the task already has a node.
func ready(task *config.Task, handles map[string]graph.Handle[*config.Task]) bool {
	for _, dep := range task.DependsOn {
		if _, ok := handles[dep]; !ok {
			return false
		}
	}
	return true
}

// createNode picks the graph primitive matching the task's dependency count
// and attaches its run_after labels as pass-through constraints.
func createNode(g *graph.Graph[*config.Task], task *config.Task, handles map[string]graph.Handle[*config.Task]) (graph.Handle[*config.Task], error) {
	var h graph.Handle[*config.Task]
	switch len(task.DependsOn) {
	case 0:
		h = g.Root(task)
	case 1:
		h = handles[task.DependsOn[0]].Then(task)
	default:
		members := make(graph.Group[*config.Task], 0, len(task.DependsOn))
		for _, dep := range task.DependsOn {
			members = append(members, handles[dep])
		}
		var err error
		h, err = members.Join(task)
		if err != nil {
			return graph.Handle[*config.Task]{}, err
		}
	}
	if err := h.Err(); err != nil {
		return graph.Handle[*config.Task]{}, err
	}

	for _, label := range task.RunAfter {
		h = h.Constrain(label)
	}
	return h, nil
}

// cycleError names the tasks stuck in a declared dependency cycle.
func cycleError(tasks []*config.Task, handles map[string]graph.Handle[*config.Task]) error {
	var stuck []string
	for _, task := range tasks {
		if _, done := handles[task.Name]; !done {
			stuck = append(stuck, task.Name)
		}
	}
	sort.Strings(stuck)
	return fmt.Errorf("dependency cycle involving: %s", strings.Join(stuck, ", "))
}
