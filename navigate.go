package arbor

import "iter"

// WalkAction tells Walk how to continue after visiting a node.
type WalkAction int

const (
	// Continue descends into the node's children.
	Continue WalkAction = iota

	// SkipChildren moves on without visiting the node's subtree.
	SkipChildren

	// Stop ends the walk.
	Stop
)

// WalkFunc is called for each visited node with its depth relative to the
// node the walk started at.
type WalkFunc[T any] func(node *Node[T], depth int) WalkAction

// Ancestors returns n, its parent, its parent's parent and so on up to and
// including the root. A root's ancestors are just itself.
func (n *Node[T]) Ancestors() []*Node[T] {
	out := make([]*Node[T], 0, n.Level()+1)
	for a := n; a != nil; a = a.parent {
		out = append(out, a)
	}
	return out
}

// Descendants returns n followed by every node below it in pre-order.
// A leaf's descendants are just itself.
func (n *Node[T]) Descendants() []*Node[T] {
	var out []*Node[T]
	n.Walk(func(node *Node[T], _ int) WalkAction {
		out = append(out, node)
		return Continue
	})
	return out
}

// Siblings returns the other children of n's parent in their current order.
// It is empty for a root.
func (n *Node[T]) Siblings() []*Node[T] {
	if n.parent == nil {
		return []*Node[T]{}
	}

	out := make([]*Node[T], 0, len(n.parent.children)-1)
	for _, s := range n.parent.children {
		if s != n {
			out = append(out, s)
		}
	}
	return out
}

// IsAncestorOf reports whether n is d or lies on d's path to the root.
func (n *Node[T]) IsAncestorOf(d *Node[T]) bool {
	for a := d; a != nil; a = a.parent {
		if a == n {
			return true
		}
	}
	return false
}

// Size returns the number of nodes in the subtree rooted at n.
func (n *Node[T]) Size() int {
	size := 1
	for _, c := range n.children {
		size += c.Size()
	}
	return size
}

// Height returns the number of edges on the longest path from n down to a leaf.
func (n *Node[T]) Height() int {
	height := 0
	for _, c := range n.children {
		height = max(height, c.Height()+1)
	}
	return height
}

// Walk visits n and its subtree in pre-order. It returns false if fn stopped
// the walk.
func (n *Node[T]) Walk(fn WalkFunc[T]) bool {
	return n.walk(fn, 0)
}

func (n *Node[T]) walk(fn WalkFunc[T], depth int) bool {
	switch fn(n, depth) {
	case Stop:
		return false
	case SkipChildren:
		return true
	}

	for _, c := range n.children {
		if !c.walk(fn, depth+1) {
			return false
		}
	}
	return true
}

// All returns a pre-order iterator over n's subtree yielding each node's
// depth relative to n and the node itself.
func (n *Node[T]) All() iter.Seq2[int, *Node[T]] {
	return func(yield func(int, *Node[T]) bool) {
		n.Walk(func(node *Node[T], depth int) WalkAction {
			if !yield(depth, node) {
				return Stop
			}
			return Continue
		})
	}
}
