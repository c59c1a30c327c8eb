package graph

import (
	"math"
	"sync"

	"github.com/google/uuid"
)

// NodeID identifies a single node within its graph. Identifiers are
// allocated monotonically starting at zero and are never reused.
type NodeID uint32

// maxNodeID is the last allocatable identifier.
const maxNodeID = uint64(math.MaxUint32)

// Constraint is opaque ordering metadata attached to a task for the benefit
// of the external scheduler, e.g. "run after label X". The graph never
// interprets constraints; it only carries them through to the flattened
// output.
type Constraint any

// node is a single graph entry. It is unexported so that all interaction
// goes through handles; nodes are immutable once created except for the
// constraint list, which may grow during construction.
type node[T any] struct {
	id   NodeID
	task T
	// after holds the predecessor ids in the order the caller supplied
	// them. Semantically the set is unordered; the order is kept only so
	// diagnostics read the way the graph was written.
	after       []NodeID
	constraints []Constraint
}

// Graph is the shared store backing one logical execution graph.
//
// All handles derived from one New call alias the same store, so mutations
// made through any handle are observed by every other handle. Construction
// calls are serialized by an internal mutex and may therefore be issued from
// multiple goroutines, though the relative order of concurrent calls is up
// to the callers.
type Graph[T any] struct {
	id uuid.UUID

	mu    sync.Mutex
	nodes []*node[T] // insertion order, which is also flatten order
	next  uint64     // next id to allocate; grows past maxNodeID on exhaustion
	err   error      // sticky allocation failure
}

// New creates an empty graph.
func New[T any]() *Graph[T] {
	return &Graph[T]{id: uuid.New()}
}

// ID returns the graph's unique identity. It is used in diagnostics and to
// explain cross-graph join failures; two graphs never share an ID.
func (g *Graph[T]) ID() uuid.UUID {
	return g.id
}

// SameGraph reports whether other refers to the same logical graph.
func (g *Graph[T]) SameGraph(other *Graph[T]) bool {
	return other != nil && g.id == other.id
}

// Len returns the number of nodes currently in the graph.
func (g *Graph[T]) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.nodes)
}

// Err returns the graph's sticky construction failure, if any. It becomes
// non-nil only when the identifier allocator is exhausted; from then on all
// construction calls are inert and report the same error.
func (g *Graph[T]) Err() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.err
}

// Root creates a node with no predecessors and returns its handle. A graph
// may have any number of distinct roots.
func (g *Graph[T]) Root(task T) Handle[T] {
	return g.allocate(task, nil)
}

// allocate appends one node to the store. The after slice must contain only
// ids previously returned by this store; both creation paths (Then/Fork take
// ids from their receiver handle, Join validates store identity first)
// guarantee that, which is what makes cycles structurally impossible.
func (g *Graph[T]) allocate(task T, after []NodeID) Handle[T] {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.err != nil {
		return Handle[T]{g: g, err: g.err}
	}
	if g.next > maxNodeID {
		g.err = ErrIdentifierExhausted
		return Handle[T]{g: g, err: g.err}
	}

	id := NodeID(g.next)
	g.next++
	g.nodes = append(g.nodes, &node[T]{id: id, task: task, after: after})
	return Handle[T]{g: g, id: id}
}

// constrain appends opaque scheduler metadata to an existing node's task.
// Scans from the tail: constraints are attached right after creation in
// practice, so the target is almost always the newest node.
func (g *Graph[T]) constrain(id NodeID, cs []Constraint) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := len(g.nodes) - 1; i >= 0; i-- {
		if g.nodes[i].id == id {
			g.nodes[i].constraints = append(g.nodes[i].constraints, cs...)
			return
		}
	}
}
