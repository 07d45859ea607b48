package arbor

// Node is a single vertex of a tree.
//
// A node owns its children; the parent link is a back-reference only.
// Nodes are not safe for concurrent use: callers mutating or traversing
// the same tree from several goroutines must serialize access themselves.
type Node[T any] struct {
	value T

	// parent is nil for a root.
	parent *Node[T]

	// children in insertion order. Each child's parent points back here.
	children []*Node[T]
}

// New creates a detached node holding value.
// Use a pointer type argument when the payload may be absent.
func New[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns the node's payload.
func (n *Node[T]) Value() T {
	return n.value
}

// Parent returns the node's parent, or nil for a root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Children returns a snapshot of the direct children in order.
// The returned slice is a copy; modifying it does not change the tree.
func (n *Node[T]) Children() []*Node[T] {
	out := make([]*Node[T], len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount returns the number of direct children.
func (n *Node[T]) ChildCount() int {
	return len(n.children)
}

// ChildAt returns the i-th direct child.
func (n *Node[T]) ChildAt(i int) (*Node[T], bool) {
	if i < 0 || i >= len(n.children) {
		return nil, false
	}
	return n.children[i], true
}

// IndexOf returns the position of c among the direct children, or -1.
func (n *Node[T]) IndexOf(c *Node[T]) int {
	if c == nil || c.parent != n {
		return -1
	}
	for i, child := range n.children {
		if child == c {
			return i
		}
	}
	return -1
}

// IsRoot reports whether the node has no parent.
func (n *Node[T]) IsRoot() bool {
	return n.parent == nil
}

// IsLeaf reports whether the node has no children.
func (n *Node[T]) IsLeaf() bool {
	return len(n.children) == 0
}

// Level returns the number of ancestors above the node (0 for a root).
// It walks the parent chain on every call; nothing is cached.
func (n *Node[T]) Level() int {
	level := 0
	for p := n.parent; p != nil; p = p.parent {
		level++
	}
	return level
}

// Root returns the root of the tree containing n.
func (n *Node[T]) Root() *Node[T] {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}
