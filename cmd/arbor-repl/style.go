package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/phroun/arbor"
)

var (
	colorRoot  = lipgloss.Color("#2CD7C7")
	colorInner = lipgloss.Color("#20B9B4")
	colorLeaf  = lipgloss.Color("#2C4A54")
	colorError = lipgloss.Color("#E74C3C")
)

// styles decorates labels in the tree dump by node kind.
type styles struct {
	enabled bool
	root    lipgloss.Style
	inner   lipgloss.Style
	leaf    lipgloss.Style
	err     lipgloss.Style
}

func newStyles(enabled bool) styles {
	return styles{
		enabled: enabled,
		root:    lipgloss.NewStyle().Bold(true).Foreground(colorRoot),
		inner:   lipgloss.NewStyle().Foreground(colorInner),
		leaf:    lipgloss.NewStyle().Foreground(colorLeaf),
		err:     lipgloss.NewStyle().Foreground(colorError),
	}
}

// decorate is an arbor.RenderOptions Decorate hook.
func (s styles) decorate(n *arbor.Node[entry], label string) string {
	if !s.enabled {
		return label
	}
	switch {
	case n.IsRoot():
		return s.root.Render(label)
	case n.IsLeaf():
		return s.leaf.Render(label)
	default:
		return s.inner.Render(label)
	}
}

func (s styles) errorText(msg string) string {
	if !s.enabled {
		return msg
	}
	return s.err.Render(msg)
}

// colorEnabled reports whether styled output should be written to w.
func colorEnabled(w io.Writer, want bool) bool {
	if !want {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
