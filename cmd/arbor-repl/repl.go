package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/phroun/arbor"
)

// entry is the payload of every node built in the REPL.
type entry struct {
	Name  string
	Value *string // nil when created without a value
}

func (e entry) String() string {
	if e.Value == nil {
		return e.Name + " = <nil>"
	}
	return fmt.Sprintf("%s = %q", e.Name, *e.Value)
}

// REPL holds the state of the interactive session
type REPL struct {
	cfg    Config
	nodes  map[string]*arbor.Node[entry]
	out    io.Writer
	log    *slog.Logger
	styles styles
}

func newREPL(cfg Config, out io.Writer, log *slog.Logger, st styles) *REPL {
	return &REPL{
		cfg:    cfg,
		nodes:  make(map[string]*arbor.Node[entry]),
		out:    out,
		log:    log,
		styles: st,
	}
}

// Run reads commands from in until EOF or quit.
func (r *REPL) Run(in io.Reader) {
	fmt.Fprintln(r.out, "Arbor REPL - Interactive Tree Builder")
	fmt.Fprintln(r.out, "Type 'help' for available commands, 'quit' to exit")
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(r.out, r.cfg.Prompt)
		input, err := reader.ReadString('\n')
		if err != nil && input == "" {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}

		input = strings.TrimSpace(input)
		if input != "" && !r.handleCommand(input) {
			return
		}
		if err != nil {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) handleCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help":
		r.printHelp()

	case "quit", "exit":
		fmt.Fprintln(r.out, "Goodbye!")
		return false

	case "new":
		r.cmdNew(args)

	case "add":
		r.cmdAdd(args)

	case "remove":
		r.cmdRemove(args)

	case "parent":
		r.cmdParent(args)

	case "show":
		r.cmdShow(args)

	case "info":
		r.cmdInfo(args)

	case "ancestors", "descendants", "siblings", "children":
		r.cmdList(cmd, args)

	case "nodes":
		r.cmdNodes()

	default:
		r.errorf("Unknown command: %s. Type 'help' for available commands.", cmd)
	}

	return true
}

func (r *REPL) printHelp() {
	help := `
Available Commands:
-------------------

BUILDING:
  new <name> [value]      Create a detached node (value '-' or omitted means none)
  add <parent> <child>    Append child to parent, moving it if already attached
  remove <parent> <child> Detach child from parent
  parent <child> <p|->    Set child's parent, or detach it with '-'

INSPECTION:
  show [name]             Dump the subtree of a node, or every tree
  info <name>             Show level, size, height and links of a node
  ancestors <name>        List the node and its ancestors up to the root
  descendants <name>      List the node and its subtree in pre-order
  siblings <name>         List the other children of the node's parent
  children <name>         List the node's direct children
  nodes                   List every node by name

OTHER:
  help                    Show this help message
  quit, exit              Exit the REPL
`
	fmt.Fprintln(r.out, help)
}

func (r *REPL) cmdNew(args []string) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(r.out, "Usage: new <name> [value]")
		return
	}

	name := args[0]
	if _, exists := r.nodes[name]; exists {
		r.errorf("Node %q already exists", name)
		return
	}

	e := entry{Name: name}
	if len(args) == 2 && args[1] != "-" {
		v := args[1]
		e.Value = &v
	}
	n := arbor.New(e)
	r.nodes[name] = n
	r.log.Debug("node created", "node", n)
	fmt.Fprintf(r.out, "Created %s\n", e)
}

func (r *REPL) cmdAdd(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(r.out, "Usage: add <parent> <child>")
		return
	}
	parent, child, ok := r.lookupPair(args[0], args[1])
	if !ok {
		return
	}

	if _, err := parent.AddChild(child); err != nil {
		r.errorf("Add error: %v", err)
		return
	}
	r.log.Debug("child attached", "parent", parent, "child", child)
	fmt.Fprintf(r.out, "%s is now child #%d of %s\n",
		args[1], parent.IndexOf(child), args[0])
}

func (r *REPL) cmdRemove(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(r.out, "Usage: remove <parent> <child>")
		return
	}
	parent, child, ok := r.lookupPair(args[0], args[1])
	if !ok {
		return
	}

	if !parent.RemoveChild(child) {
		fmt.Fprintf(r.out, "%s is not a child of %s\n", args[1], args[0])
		return
	}
	r.log.Debug("child detached", "parent", parent, "child", child)
	fmt.Fprintf(r.out, "Removed %s from %s\n", args[1], args[0])
}

func (r *REPL) cmdParent(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(r.out, "Usage: parent <child> <parent|->")
		return
	}
	child, ok := r.lookup(args[0])
	if !ok {
		return
	}

	if args[1] == "-" {
		if err := child.SetParent(nil); err != nil {
			r.errorf("Parent error: %v", err)
			return
		}
		fmt.Fprintf(r.out, "%s is now a root\n", args[0])
		return
	}

	parent, ok := r.lookup(args[1])
	if !ok {
		return
	}
	if err := child.SetParent(parent); err != nil {
		r.errorf("Parent error: %v", err)
		return
	}
	r.log.Debug("parent set", "parent", parent, "child", child)
	fmt.Fprintf(r.out, "%s is now a child of %s\n", args[0], args[1])
}

func (r *REPL) cmdShow(args []string) {
	if len(args) > 1 {
		fmt.Fprintln(r.out, "Usage: show [name]")
		return
	}

	var roots []*arbor.Node[entry]
	if len(args) == 1 {
		n, ok := r.lookup(args[0])
		if !ok {
			return
		}
		roots = append(roots, n)
	} else {
		for _, name := range r.names() {
			if n := r.nodes[name]; n.IsRoot() {
				roots = append(roots, n)
			}
		}
	}

	if len(roots) == 0 {
		fmt.Fprintln(r.out, "No nodes yet. Use 'new <name>' to create one.")
		return
	}

	opts := arbor.RenderOptions[entry]{
		Indent:   r.cfg.Indent,
		Format:   entry.String,
		Decorate: r.styles.decorate,
	}
	for _, n := range roots {
		if err := n.Render(r.out, opts); err != nil {
			r.errorf("Render error: %v", err)
			return
		}
	}
}

func (r *REPL) cmdInfo(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: info <name>")
		return
	}
	n, ok := r.lookup(args[0])
	if !ok {
		return
	}

	parent := "-"
	if p := n.Parent(); p != nil {
		parent = p.Value().Name
	}

	fmt.Fprintf(r.out, "Node %s:\n", n.Value())
	fmt.Fprintf(r.out, "  Parent:   %s\n", parent)
	fmt.Fprintf(r.out, "  Root:     %s (is root: %v)\n", n.Root().Value().Name, n.IsRoot())
	fmt.Fprintf(r.out, "  Leaf:     %v\n", n.IsLeaf())
	fmt.Fprintf(r.out, "  Level:    %d\n", n.Level())
	fmt.Fprintf(r.out, "  Children: %d\n", n.ChildCount())
	fmt.Fprintf(r.out, "  Size:     %d\n", n.Size())
	fmt.Fprintf(r.out, "  Height:   %d\n", n.Height())
}

func (r *REPL) cmdList(kind string, args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "Usage: %s <name>\n", kind)
		return
	}
	n, ok := r.lookup(args[0])
	if !ok {
		return
	}

	var list []*arbor.Node[entry]
	switch kind {
	case "ancestors":
		list = n.Ancestors()
	case "descendants":
		list = n.Descendants()
	case "siblings":
		list = n.Siblings()
	case "children":
		list = n.Children()
	}

	if len(list) == 0 {
		fmt.Fprintln(r.out, "(none)")
		return
	}
	names := make([]string, len(list))
	for i, x := range list {
		names[i] = x.Value().Name
	}
	fmt.Fprintln(r.out, strings.Join(names, " "))
}

func (r *REPL) cmdNodes() {
	if len(r.nodes) == 0 {
		fmt.Fprintln(r.out, "No nodes yet. Use 'new <name>' to create one.")
		return
	}
	for _, name := range r.names() {
		n := r.nodes[name]
		fmt.Fprintf(r.out, "  %-16s level=%d children=%d\n", name, n.Level(), n.ChildCount())
	}
}

func (r *REPL) names() []string {
	return slices.Sorted(maps.Keys(r.nodes))
}

func (r *REPL) lookup(name string) (*arbor.Node[entry], bool) {
	n, ok := r.nodes[name]
	if !ok {
		r.errorf("No node named %q", name)
	}
	return n, ok
}

func (r *REPL) lookupPair(a, b string) (*arbor.Node[entry], *arbor.Node[entry], bool) {
	na, ok := r.lookup(a)
	if !ok {
		return nil, nil, false
	}
	nb, ok := r.lookup(b)
	if !ok {
		return nil, nil, false
	}
	return na, nb, true
}

func (r *REPL) errorf(format string, args ...any) {
	fmt.Fprintln(r.out, r.styles.errorText(fmt.Sprintf(format, args...)))
}
