package arbor

import "fmt"

// AddChild appends c to n's children and returns c.
//
// If c already has a parent (n included) it is detached first, so c ends up
// exactly once at the end of n's children. ErrCycle is returned, and nothing
// changes, when c is n or one of n's ancestors.
func (n *Node[T]) AddChild(c *Node[T]) (*Node[T], error) {
	if err := attach(n, c); err != nil {
		return nil, err
	}
	return c, nil
}

// MustAddChild is like AddChild but panics on error.
// It is meant for building trees from literals.
func (n *Node[T]) MustAddChild(c *Node[T]) *Node[T] {
	child, err := n.AddChild(c)
	if err != nil {
		panic(fmt.Sprintf("arbor: MustAddChild: %v", err))
	}
	return child
}

// RemoveChild detaches c from n. It reports whether c was a direct child;
// when it was not, the tree is left untouched. The removed node keeps its
// own subtree.
func (n *Node[T]) RemoveChild(c *Node[T]) bool {
	if c == nil || c.parent != n {
		return false
	}
	detach(c)
	return true
}

// SetParent moves n under p, exactly as p.AddChild(n) would.
// A nil p detaches n from its current parent; this is a no-op for a root.
func (n *Node[T]) SetParent(p *Node[T]) error {
	if n == nil {
		return ErrNilNode
	}
	if p == nil {
		detach(n)
		return nil
	}
	return attach(p, n)
}

// attach makes child the last child of parent. It is the only place where
// a parent link is set.
func attach[T any](parent, child *Node[T]) error {
	if parent == nil || child == nil {
		return ErrNilNode
	}
	if child.IsAncestorOf(parent) {
		return fmt.Errorf("attaching %v under %v: %w", child.value, parent.value, ErrCycle)
	}

	detach(child)
	child.parent = parent
	parent.children = append(parent.children, child)
	return nil
}

// detach removes child from its parent's children and clears the link.
func detach[T any](child *Node[T]) {
	p := child.parent
	if p == nil {
		return
	}

	for i, c := range p.children {
		if c == child {
			copy(p.children[i:], p.children[i+1:])
			p.children[len(p.children)-1] = nil
			p.children = p.children[:len(p.children)-1]
			break
		}
	}
	child.parent = nil
}
