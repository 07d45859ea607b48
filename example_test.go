package arbor_test

import (
	"fmt"

	"github.com/phroun/arbor"
)

func Example() {
	root := arbor.New("root")
	docs := root.MustAddChild(arbor.New("docs"))
	docs.MustAddChild(arbor.New("intro.md"))
	src := root.MustAddChild(arbor.New("src"))
	mainGo := src.MustAddChild(arbor.New("main.go"))

	fmt.Println(root)
	fmt.Println("level:", mainGo.Level())
	fmt.Println("siblings of docs:", len(docs.Siblings()))

	// Move main.go under docs.
	docs.MustAddChild(mainGo)
	fmt.Println(root)

	// Output:
	// root
	//   docs
	//     intro.md
	//   src
	//     main.go
	// level: 2
	// siblings of docs: 1
	// root
	//   docs
	//     intro.md
	//     main.go
	//   src
}

func ExampleNode_AddChild_cycle() {
	parent := arbor.New(1)
	child := parent.MustAddChild(arbor.New(2))

	_, err := child.AddChild(parent)
	fmt.Println(err)

	// Output:
	// attaching 1 under 2: attach would create a cycle
}

func ExampleNode_All() {
	root := arbor.New("a")
	b := root.MustAddChild(arbor.New("b"))
	b.MustAddChild(arbor.New("c"))
	root.MustAddChild(arbor.New("d"))

	for depth, n := range root.All() {
		fmt.Println(depth, n.Value())
	}

	// Output:
	// 0 a
	// 1 b
	// 2 c
	// 1 d
}
