package graph

import "fmt"

// Group is an ordered collection of handles, as returned by Fork. It exists
// to carry fan-in: joining a group creates one node that waits for every
// member. A Group is not itself stored in the graph; it is just a slice, so
// callers may also assemble one by hand from any handles of one graph.
type Group[T any] []Handle[T]

// Join fans in: it creates a new node that may not start until every member
// of the group has completed, and returns its handle.
//
// All members must belong to the same graph; mixing graphs returns
// ErrCrossGraphJoin and leaves both stores untouched. Joining an empty
// group returns ErrEmptyJoin. The members' order is irrelevant to the
// resulting semantics but is preserved in the new node's predecessor list
// so diagnostics match the call site.
func (gr Group[T]) Join(task T) (Handle[T], error) {
	if len(gr) == 0 {
		return Handle[T]{}, ErrEmptyJoin
	}

	owner := gr[0].g
	after := make([]NodeID, 0, len(gr))
	for _, h := range gr {
		if h.err != nil {
			return Handle[T]{}, h.err
		}
		if h.g == nil || owner == nil {
			return Handle[T]{}, fmt.Errorf("%w: zero-value handle in join", ErrCrossGraphJoin)
		}
		if !owner.SameGraph(h.g) {
			return Handle[T]{}, fmt.Errorf("%w: graph %s vs graph %s",
				ErrCrossGraphJoin, owner.ID(), h.g.ID())
		}
		after = append(after, h.id)
	}

	h := owner.allocate(task, after)
	return h, h.err
}

// JoinAll creates one new node per task, each waiting for every member of
// the group. It is equivalent to calling Join once per task, and the
// resulting handles come back in task order.
func (gr Group[T]) JoinAll(tasks ...T) (Group[T], error) {
	out := make(Group[T], 0, len(tasks))
	for _, task := range tasks {
		h, err := gr.Join(task)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}
