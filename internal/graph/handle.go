package graph

// Handle is a lightweight reference to one node within one graph. Handles
// are plain values: copying one yields another reference to the same node,
// and building from the copy mutates the same shared store as building from
// the original.
//
// Handles returned by Root, Then, Fork and Join are interchangeable; no
// operation cares how its receiver was produced.
type Handle[T any] struct {
	g   *Graph[T]
	id  NodeID
	err error
}

// ID returns the identifier of the referenced node.
func (h Handle[T]) ID() NodeID {
	return h.id
}

// Graph returns the shared graph that the node belongs to.
func (h Handle[T]) Graph() *Graph[T] {
	return h.g
}

// Err reports whether the call that produced this handle failed. A nil
// result means the node exists in the store. After an allocation failure
// the handle is inert: chaining from it produces further failed handles
// carrying the same error.
func (h Handle[T]) Err() error {
	return h.err
}

// Same reports whether both handles refer to the same node of the same
// graph, regardless of where either handle was obtained.
func (h Handle[T]) Same(other Handle[T]) bool {
	return h.g == other.g && h.id == other.id
}

// Then creates a new node that must not start before the receiver's node
// has completed, and returns its handle.
//
// Calling Then repeatedly on one handle creates siblings that all wait for
// the receiver but carry no ordering among themselves; Fork is shorthand
// for exactly that.
func (h Handle[T]) Then(task T) Handle[T] {
	if h.err != nil {
		return h
	}
	return h.g.allocate(task, []NodeID{h.id})
}

// Fork fans out: each task becomes a new node depending solely on the
// receiver. The handles come back in argument order. Forked siblings have
// no dependency on each other; once the receiver's task completes they may
// run in any order or concurrently, as the external scheduler sees fit.
func (h Handle[T]) Fork(tasks ...T) Group[T] {
	out := make(Group[T], 0, len(tasks))
	for _, task := range tasks {
		out = append(out, h.Then(task))
	}
	return out
}

// Constrain attaches opaque external ordering metadata to the node's task.
// Constraints are carried through Flatten and Convert verbatim and are
// never inspected here; they exist so a task can be ordered relative to
// work outside this graph. Constrain returns the receiver so it can sit in
// the middle of a chain:
//
//	g.Root(load).Constrain(After("io")).Then(parse)
func (h Handle[T]) Constrain(cs ...Constraint) Handle[T] {
	if h.err != nil || len(cs) == 0 {
		return h
	}
	h.g.constrain(h.id, cs)
	return h
}

// Flatten flattens the entire graph the node belongs to. A single node has
// no free-standing external meaning, so this is identical to calling
// Flatten on the graph itself.
func (h Handle[T]) Flatten() (TaskSet[T], error) {
	if h.err != nil {
		return nil, h.err
	}
	return h.g.Flatten()
}
