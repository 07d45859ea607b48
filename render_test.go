package arbor

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	s := newSampleTree(t)

	want := strings.Join([]string{
		"1",
		"  10",
		"    100",
		"    101",
		"  20",
		"    200",
		"      2001",
		"    202",
		"    <nil>",
		"  30",
	}, "\n")
	assert.Equal(t, want, s.root.String())
	assert.Equal(t, "200\n  2001", s.e.String())
	assert.Equal(t, "30", s.i.String())
}

func TestRenderOptions(t *testing.T) {
	s := newSampleTree(t)

	var buf bytes.Buffer
	err := s.d.Render(&buf, RenderOptions[any]{
		Indent: "|-",
		Format: func(v any) string {
			if v == nil {
				return "(none)"
			}
			return fmt.Sprintf("#%v", v)
		},
		Decorate: func(n *Node[any], label string) string {
			if n.IsLeaf() {
				return label + " *"
			}
			return label
		},
	})
	require.NoError(t, err)

	want := "#20\n|-#200\n|-|-#2001 *\n|-#202 *\n|-(none) *\n"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestRenderWriteError(t *testing.T) {
	s := newSampleTree(t)

	err := s.root.Render(failingWriter{}, RenderOptions[any]{})
	assert.ErrorIs(t, err, errWrite)
}

func TestLogValue(t *testing.T) {
	s := newSampleTree(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("node", "n", s.g)

	out := buf.String()
	assert.Contains(t, out, "n.value=202")
	assert.Contains(t, out, "n.level=2")
	assert.Contains(t, out, "n.children=0")
}
