/*
Package gptree generates and evaluates genetic-programming individuals:
random arithmetic expression trees bounded by depth.

An individual is a tree of nodes. Leaves are constants (Terminal) or context
accessors (Param); internal nodes are n-ary arithmetic operators. A tree is
evaluated top-down against a Context, an ordered sequence of numeric values
supplied by the caller per evaluation.

Two generation policies are supported: FULL always expands until the depth
budget is exhausted, so every leaf sits at exactly max depth; GROW may stop
early at any level, producing irregular shapes.

Fitness evaluation, selection, crossover and mutation are deliberately out of
scope: gptree supplies the representation and the generator, the consumer
supplies the evolutionary loop.

# Usage

	package main

	import (
		"fmt"
		"log"

		"github.com/ayeganov/gptree"
		"github.com/ayeganov/gptree/pkg/gen"
		"github.com/ayeganov/gptree/pkg/node"
	)

	func main() {
		// Build a random individual over two variables.
		tree, err := gptree.Generate(2, 3, gen.MethodGrow,
			gptree.WithSeed(42),
			gptree.WithTerminals(1, 2, 5),
		)
		if err != nil {
			log.Fatal(err)
		}

		// Evaluate it against a context.
		value, err := tree.Evaluate(node.Context{3, 7})
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(tree.Name(), value)
	}
*/
package gptree
