package arbor

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultIndent is the per-level indentation used when RenderOptions.Indent is empty.
const DefaultIndent = "  "

// RenderOptions controls the debug dump produced by Render.
type RenderOptions[T any] struct {
	// Indent is repeated once per level below the rendered node.
	Indent string

	// Format turns a payload into a label. Defaults to fmt.Sprint.
	Format func(T) string

	// Decorate, if set, wraps each formatted label, e.g. to apply terminal
	// styling. It sees the node being rendered.
	Decorate func(node *Node[T], label string) string
}

// Render writes a multi-line, indented dump of n's subtree to w, one node per
// line in pre-order. The output is meant for people; it is not a stable format.
func (n *Node[T]) Render(w io.Writer, opts RenderOptions[T]) error {
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}
	if opts.Format == nil {
		opts.Format = func(v T) string { return fmt.Sprint(v) }
	}

	bw := bufio.NewWriter(w)
	var err error
	n.Walk(func(node *Node[T], depth int) WalkAction {
		label := opts.Format(node.value)
		if opts.Decorate != nil {
			label = opts.Decorate(node, label)
		}
		if _, err = fmt.Fprintf(bw, "%s%s\n", strings.Repeat(opts.Indent, depth), label); err != nil {
			return Stop
		}
		return Continue
	})
	if err == nil {
		err = bw.Flush()
	}
	if err != nil {
		return fmt.Errorf("rendering tree: %w", err)
	}
	return nil
}

// String renders n's subtree with default options.
func (n *Node[T]) String() string {
	var sb strings.Builder
	_ = n.Render(&sb, RenderOptions[T]{})
	return strings.TrimSuffix(sb.String(), "\n")
}

// LogValue implements slog.LogValuer. Only the node itself is described,
// not its subtree.
func (n *Node[T]) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("value", n.value),
		slog.Int("level", n.Level()),
		slog.Int("children", len(n.children)),
	)
}
