package graph

import (
	"fmt"
	"slices"
)

// TaskSpec is one entry of a flattened graph: the task payload, the ids of
// the tasks that must complete before it, and its pass-through constraints.
type TaskSpec[T any] struct {
	ID          NodeID
	Task        T
	After       []NodeID
	Constraints []Constraint
}

// TaskSet is the externally consumable form of a graph: every node exactly
// once, in insertion order. Insertion order makes the output stable, so
// flattening the same graph twice yields element-for-element identical
// sets.
type TaskSet[T any] []TaskSpec[T]

// Flatten walks the store once and emits the task set. It is a pure read:
// the graph remains usable afterwards, though callers are expected to treat
// flattening as the end of construction and hand the result to their
// scheduler.
func (g *Graph[T]) Flatten() (TaskSet[T], error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.err != nil {
		return nil, g.err
	}

	out := make(TaskSet[T], 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, TaskSpec[T]{
			ID:          n.id,
			Task:        n.task,
			After:       slices.Clone(n.after),
			Constraints: slices.Clone(n.constraints),
		})
	}
	return out, nil
}

// Registrar is the capability an external scheduler exposes for accepting
// work: register one task together with the refs of the tasks it must run
// after, receiving back an opaque ref for the registered instance. R is
// whatever the scheduler uses to name a task instance.
type Registrar[T, R any] interface {
	Register(task T, after []R, constraints []Constraint) (R, error)
}

// Convert hands an entire graph to an external scheduler through its
// Registrar, translating every predecessor id into the ref the scheduler
// returned for that predecessor. Nodes are registered in insertion order;
// predecessors always precede their dependents there, so their refs are
// known by the time they are needed.
func Convert[T, R any](g *Graph[T], reg Registrar[T, R]) ([]R, error) {
	set, err := g.Flatten()
	if err != nil {
		return nil, err
	}

	refs := make(map[NodeID]R, len(set))
	out := make([]R, 0, len(set))
	for _, spec := range set {
		after := make([]R, 0, len(spec.After))
		for _, id := range spec.After {
			after = append(after, refs[id])
		}
		ref, err := reg.Register(spec.Task, after, spec.Constraints)
		if err != nil {
			return nil, fmt.Errorf("registering task %d: %w", spec.ID, err)
		}
		refs[spec.ID] = ref
		out = append(out, ref)
	}
	return out, nil
}
