package gen

import (
	"fmt"

	"github.com/ayeganov/gptree/pkg/node"
)

// Func is a function-set entry: an operator constructor plus its declared
// arity. A variable arity is resolved to a concrete child count once, at
// generation time.
type Func struct {
	Name  string
	Arity node.Arity
	New   func(children ...node.Node) node.Node
}

// builtins maps operator names to their catalog entries.
var builtins = map[string]Func{
	"+": {Name: "+", Arity: node.Variable(), New: func(children ...node.Node) node.Node {
		return node.NewAddition(children...)
	}},
	"*": {Name: "*", Arity: node.Variable(), New: func(children ...node.Node) node.Node {
		return node.NewMultiplication(children...)
	}},
	"/": {Name: "/", Arity: node.Variable(), New: func(children ...node.Node) node.Node {
		return node.NewDivision(children...)
	}},
	"-": {Name: "-", Arity: node.Variable(), New: func(children ...node.Node) node.Node {
		return node.NewSubtraction(children...)
	}},
}

// Functions assembles a function set from operator names.
// Returns ErrUnknownFunction for a name with no registered constructor.
func Functions(names ...string) ([]Func, error) {
	funcs := make([]Func, 0, len(names))
	for _, name := range names {
		fn, ok := builtins[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
		}
		funcs = append(funcs, fn)
	}
	return funcs, nil
}

// DefaultFunctions returns the full arithmetic function set: +, *, /, -.
func DefaultFunctions() []Func {
	funcs, _ := Functions("+", "*", "/", "-")
	return funcs
}
