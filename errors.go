// Package arbor provides a generic, mutable, in-memory tree where every node
// carries a payload, has at most one parent, and keeps its children in
// insertion order.
package arbor

import "errors"

// Argument errors
var (
	// ErrNilNode indicates that a nil node was passed where a node is required.
	ErrNilNode = errors.New("nil node")
)

// Tree structure errors
var (
	// ErrCycle indicates that an attach would make a node its own ancestor
	// (attaching a node to itself or to one of its descendants).
	ErrCycle = errors.New("attach would create a cycle")
)
