package graph

import "errors"

var (
	// ErrCrossGraphJoin is returned when the handles given to a join belong
	// to different graphs. Linking nodes across stores would corrupt both
	// graphs, so the join is refused outright.
	ErrCrossGraphJoin = errors.New("joined handles must belong to the same graph")

	// ErrEmptyJoin is returned when a join is attempted over zero handles.
	ErrEmptyJoin = errors.New("join requires at least one handle")

	// ErrIdentifierExhausted is returned once the node identifier space is
	// used up. Identifiers are never reused; wrapping around would allow id
	// collisions and silently cyclic graphs, so allocation fails instead.
	ErrIdentifierExhausted = errors.New("node identifier space exhausted")
)
