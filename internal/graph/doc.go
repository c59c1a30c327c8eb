// Package graph builds strict-order execution graphs: directed acyclic
// graphs of opaque task payloads connected by must-complete-before edges.
//
// A Graph is a shared, mutable store of nodes. Handles are cheap value
// references into that store; every construction operation is a method on a
// handle (or a group of handles) and mutates the shared store, so a graph
// can be grown from any handle that points into it.
//
// Four primitives cover all shapes:
//
//	g := graph.New[string]()
//	a := g.Root("extract")             // no dependencies
//	b := a.Then("normalize")           // b starts after a
//	outs := b.Fork("index", "report")  // fan out, siblings unordered
//	done, err := outs.Join("publish")  // fan in, waits for every sibling
//
// Handles returned by any primitive are interchangeable with handles from
// any other, so fan-out composes with fan-in to arbitrary depth.
//
// Acyclicity is structural rather than checked: a new node may only name
// already-existing nodes as predecessors, so no sequence of calls can
// produce a cycle. The store is append-only and nodes are never removed.
//
// The package schedules nothing. Flatten and Convert translate a finished
// graph into a dependency-annotated collection for an external scheduler;
// whether unordered siblings actually run concurrently is that scheduler's
// decision.
package graph
