package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/phroun/arbor"
	"golang.org/x/sync/errgroup"
)

var errInvariant = errors.New("tree invariant violated")

// Options sizes a bench run.
type Options struct {
	Trees   int // number of independent trees
	Depth   int // levels below the root
	Fanout  int // children per inner node
	Workers int // goroutines; each tree is only ever touched by one
}

// BenchResult is the timing of one stage over every tree.
type BenchResult struct {
	Name     string
	Duration time.Duration
	Ops      int
	Extra    string
}

func (r BenchResult) String() string {
	if r.Ops > 0 {
		opsPerSec := float64(r.Ops) / r.Duration.Seconds()
		if r.Extra != "" {
			return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec) %s", r.Name, r.Duration.Round(time.Microsecond), r.Ops, opsPerSec, r.Extra)
		}
		return fmt.Sprintf("%-40s %12v  (%d ops, %.2f ops/sec)", r.Name, r.Duration.Round(time.Microsecond), r.Ops, opsPerSec)
	}
	if r.Extra != "" {
		return fmt.Sprintf("%-40s %12v  %s", r.Name, r.Duration.Round(time.Microsecond), r.Extra)
	}
	return fmt.Sprintf("%-40s %12v", r.Name, r.Duration.Round(time.Microsecond))
}

// stageFunc works on a single tree and returns the number of operations done.
type stageFunc func(ctx context.Context, root *arbor.Node[int]) (int, error)

// runStage applies fn to every tree, in parallel across trees.
func runStage(ctx context.Context, name string, trees []*arbor.Node[int], workers int, fn stageFunc) (BenchResult, error) {
	start := time.Now()
	ops := make([]int, len(trees))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, root := range trees {
		g.Go(func() error {
			n, err := fn(ctx, root)
			if err != nil {
				return fmt.Errorf("%s: tree %d: %w", name, i, err)
			}
			ops[i] = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BenchResult{Name: name, Duration: time.Since(start)}, err
	}

	total := 0
	for _, n := range ops {
		total += n
	}
	return BenchResult{Name: name, Duration: time.Since(start), Ops: total}, nil
}

// buildTrees creates opts.Trees trees in parallel.
func buildTrees(ctx context.Context, opts Options) ([]*arbor.Node[int], BenchResult, error) {
	start := time.Now()
	trees := make([]*arbor.Node[int], opts.Trees)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))
	for i := range trees {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			trees[i] = buildTree(opts.Depth, opts.Fanout)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, BenchResult{}, err
	}

	nodes := 0
	for _, t := range trees {
		nodes += t.Size()
	}
	return trees, BenchResult{
		Name:     "Build trees",
		Duration: time.Since(start),
		Ops:      nodes,
		Extra:    fmt.Sprintf("%d trees", len(trees)),
	}, nil
}

// buildTree returns a complete tree with the given depth and fanout whose
// payloads number the nodes in pre-order.
func buildTree(depth, fanout int) *arbor.Node[int] {
	next := 0
	var grow func(level int) *arbor.Node[int]
	grow = func(level int) *arbor.Node[int] {
		n := arbor.New(next)
		next++
		if level < depth {
			for range fanout {
				n.MustAddChild(grow(level + 1))
			}
		}
		return n
	}
	return grow(0)
}

// navigate runs every navigation query on every node of the tree.
func navigate(ctx context.Context, root *arbor.Node[int]) (int, error) {
	ops := 0
	for _, n := range root.Descendants() {
		if err := ctx.Err(); err != nil {
			return ops, err
		}
		_ = n.Level()
		_ = n.Ancestors()
		_ = n.Siblings()
		_ = n.Descendants()
		ops += 4
	}
	return ops, nil
}

// reparentLeaves moves every leaf under the root and back again.
func reparentLeaves(ctx context.Context, root *arbor.Node[int]) (int, error) {
	ops := 0
	for _, n := range root.Descendants() {
		if err := ctx.Err(); err != nil {
			return ops, err
		}
		if !n.IsLeaf() || n.IsRoot() {
			continue
		}
		home := n.Parent()
		if err := n.SetParent(root); err != nil {
			return ops, err
		}
		if _, err := home.AddChild(n); err != nil {
			return ops, err
		}
		ops += 2
	}
	return ops, nil
}

// detachSubtrees removes each child of the root and reattaches it in order.
func detachSubtrees(ctx context.Context, root *arbor.Node[int]) (int, error) {
	children := root.Children()
	for _, c := range children {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if !root.RemoveChild(c) {
			return 0, fmt.Errorf("child %d not found: %w", c.Value(), errInvariant)
		}
	}
	for _, c := range children {
		root.MustAddChild(c)
	}
	return 2 * len(children), nil
}

// checkInvariants verifies the parent/children links and the derived
// navigation results of every node.
func checkInvariants(ctx context.Context, root *arbor.Node[int]) (int, error) {
	ops := 0
	for depth, n := range root.All() {
		if err := ctx.Err(); err != nil {
			return ops, err
		}
		if n.Level() != depth {
			return ops, fmt.Errorf("node %d: level %d, want %d: %w", n.Value(), n.Level(), depth, errInvariant)
		}
		if len(n.Ancestors()) != depth+1 {
			return ops, fmt.Errorf("node %d: %d ancestors: %w", n.Value(), len(n.Ancestors()), errInvariant)
		}
		for _, c := range n.Children() {
			if c.Parent() != n {
				return ops, fmt.Errorf("node %d: child %d points elsewhere: %w", n.Value(), c.Value(), errInvariant)
			}
		}
		if p := n.Parent(); p != nil && p.IndexOf(n) < 0 {
			return ops, fmt.Errorf("node %d: missing from parent: %w", n.Value(), errInvariant)
		}
		ops++
	}
	return ops, nil
}

// Run executes every stage and returns the results in order.
func Run(ctx context.Context, opts Options) ([]BenchResult, error) {
	trees, built, err := buildTrees(ctx, opts)
	if err != nil {
		return nil, err
	}
	results := []BenchResult{built}

	stages := []struct {
		name string
		fn   stageFunc
	}{
		{"Navigate (level/ancestors/siblings/desc)", navigate},
		{"Reparent leaves", reparentLeaves},
		{"Detach and reattach subtrees", detachSubtrees},
		{"Verify invariants", checkInvariants},
	}
	for _, s := range stages {
		r, err := runStage(ctx, s.name, trees, opts.Workers, s.fn)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}
