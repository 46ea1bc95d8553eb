package gptree_test

import (
	"fmt"
	"log"

	"github.com/ayeganov/gptree"
	"github.com/ayeganov/gptree/pkg/gen"
	"github.com/ayeganov/gptree/pkg/node"
)

// Evaluate a hand-built individual: (x0 + 5) * x1.
func Example_evaluate() {
	tree := node.NewMultiplication(
		node.NewAddition(node.NewParam(0), node.NewTerminal(5)),
		node.NewParam(1),
	)

	value, err := tree.Evaluate(node.Context{2, 3})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(value)
	// Output: 21
}

// Generate a random individual and evaluate it.
func ExampleGenerate() {
	tree, err := gptree.Generate(2, 3, gen.MethodGrow,
		gptree.WithSeed(42),
		gptree.WithTerminals(1, 2, 5),
	)
	if err != nil {
		log.Fatal(err)
	}

	value, err := tree.Evaluate(node.Context{3, 7})
	if err != nil {
		log.Fatal(err)
	}
	_ = value // depends on the seed's draw sequence
}
