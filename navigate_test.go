package arbor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAncestors(t *testing.T) {
	s := newSampleTree(t)

	tests := []struct {
		name string
		node *Node[any]
		want []*Node[any]
	}{
		{"root", s.root, []*Node[any]{s.root}},
		{"level_1", s.i, []*Node[any]{s.i, s.root}},
		{"level_2", s.g, []*Node[any]{s.g, s.d, s.root}},
		{"level_3", s.f, []*Node[any]{s.f, s.e, s.d, s.root}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Ancestors())
		})
	}
}

func TestDescendantsPreOrder(t *testing.T) {
	s := newSampleTree(t)

	want := []*Node[any]{s.root, s.a, s.b, s.c, s.d, s.e, s.f, s.g, s.h, s.i}
	assert.Equal(t, want, s.root.Descendants())
	assert.Equal(t, []*Node[any]{s.d, s.e, s.f, s.g, s.h}, s.d.Descendants())
	assert.Equal(t, []*Node[any]{s.f}, s.f.Descendants())
}

func TestDescendantsContiguous(t *testing.T) {
	s := newSampleTree(t)
	all := s.root.Descendants()

	for _, n := range all {
		start := indexIn(all, n)
		sub := n.Descendants()
		require.LessOrEqual(t, start+len(sub), len(all))
		assert.Equal(t, sub, all[start:start+len(sub)], "subtree of %v must be contiguous", n.Value())
	}
}

func TestSiblings(t *testing.T) {
	s := newSampleTree(t)

	tests := []struct {
		name string
		node *Node[any]
		want []*Node[any]
	}{
		{"root", s.root, []*Node[any]{}},
		{"first", s.a, []*Node[any]{s.d, s.i}},
		{"middle", s.g, []*Node[any]{s.e, s.h}},
		{"last", s.i, []*Node[any]{s.a, s.d}},
		{"only_child", s.f, []*Node[any]{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.Siblings())
		})
	}
}

func TestIsAncestorOf(t *testing.T) {
	s := newSampleTree(t)

	assert.True(t, s.root.IsAncestorOf(s.f))
	assert.True(t, s.d.IsAncestorOf(s.f))
	assert.True(t, s.f.IsAncestorOf(s.f))
	assert.False(t, s.f.IsAncestorOf(s.d))
	assert.False(t, s.a.IsAncestorOf(s.g))
	assert.False(t, s.a.IsAncestorOf(nil))
}

func TestWalk(t *testing.T) {
	s := newSampleTree(t)

	t.Run("depths", func(t *testing.T) {
		var depths []int
		s.d.Walk(func(_ *Node[any], depth int) WalkAction {
			depths = append(depths, depth)
			return Continue
		})
		assert.Equal(t, []int{0, 1, 2, 1, 1}, depths)
	})

	t.Run("skip_children", func(t *testing.T) {
		var seen []*Node[any]
		complete := s.root.Walk(func(n *Node[any], _ int) WalkAction {
			seen = append(seen, n)
			if n == s.a || n == s.e {
				return SkipChildren
			}
			return Continue
		})
		assert.True(t, complete)
		assert.Equal(t, []*Node[any]{s.root, s.a, s.d, s.e, s.g, s.h, s.i}, seen)
	})

	t.Run("stop", func(t *testing.T) {
		var seen []*Node[any]
		complete := s.root.Walk(func(n *Node[any], _ int) WalkAction {
			seen = append(seen, n)
			if n == s.f {
				return Stop
			}
			return Continue
		})
		assert.False(t, complete)
		assert.Equal(t, []*Node[any]{s.root, s.a, s.b, s.c, s.d, s.e, s.f}, seen)
	})
}

func TestAll(t *testing.T) {
	s := newSampleTree(t)

	var seen []*Node[any]
	var depths []int
	for depth, n := range s.root.All() {
		seen = append(seen, n)
		depths = append(depths, depth)
	}
	assert.Equal(t, s.root.Descendants(), seen)
	assert.Equal(t, []int{0, 1, 2, 2, 1, 2, 3, 2, 2, 1}, depths)

	count := 0
	for range s.root.All() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func indexIn[T any](nodes []*Node[T], n *Node[T]) int {
	for i, x := range nodes {
		if x == n {
			return i
		}
	}
	return -1
}
