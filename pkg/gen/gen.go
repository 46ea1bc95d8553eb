package gen

import (
	"fmt"
	"log/slog"

	"github.com/ayeganov/gptree/internal/logging"
	"github.com/ayeganov/gptree/pkg/node"
)

// Method selects the tree-generation policy.
type Method string

const (
	// MethodFull expands every branch until the depth budget is exhausted.
	MethodFull Method = "full"
	// MethodGrow may stop expanding early at any level above depth 0.
	MethodGrow Method = "grow"
)

// DefaultParamBias is the probability of choosing a parameter leaf over a
// constant leaf when a leaf must be produced.
const DefaultParamBias = 0.8

// Rand is the source of randomness for generation. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	// Float64 returns a uniform draw from [0, 1).
	Float64() float64
	// IntN returns a uniform draw from [0, n). Panics if n <= 0.
	IntN(n int) int
}

// Request describes a single random-tree generation.
type Request struct {
	// NumParams is the number of context positions the tree may read.
	NumParams int
	// Functions is the catalog of operator constructors.
	Functions []Func
	// Terminals is the catalog of constant leaf values.
	Terminals []float64
	// MaxDepth bounds the depth of the generated tree.
	MaxDepth int
	// Method is the generation policy, MethodFull or MethodGrow.
	Method Method
}

// Generator builds random expression trees.
type Generator struct {
	rand   Rand
	bias   float64
	logger *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithParamBias overrides the parameter-over-terminal leaf selection bias.
func WithParamBias(p float64) Option {
	return func(g *Generator) {
		g.bias = p
	}
}

// WithLogger sets a structured logger for generation tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// New creates a Generator drawing from r.
func New(r Rand, opts ...Option) *Generator {
	g := &Generator{
		rand:   r,
		bias:   DefaultParamBias,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a random expression tree for the given request.
//
// The tree is built bottom-up: children are fully constructed before the
// parent wraps them, and each child slot recurses with one less depth, so
// generation always terminates. Catalog selection failures propagate
// immediately as ErrEmptyCatalog.
func (g *Generator) Generate(req Request) (node.Node, error) {
	if req.NumParams < 0 {
		return nil, fmt.Errorf("%w: num_params must be >= 0, got %d", ErrInvalidArgument, req.NumParams)
	}
	if req.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: max_depth must be >= 0, got %d", ErrInvalidArgument, req.MaxDepth)
	}
	if req.Method != MethodFull && req.Method != MethodGrow {
		return nil, fmt.Errorf("%w: unknown method %q", ErrInvalidArgument, req.Method)
	}
	return g.build(&req, req.MaxDepth)
}

func (g *Generator) build(req *Request, depth int) (node.Node, error) {
	numLeaves := len(req.Terminals) + req.NumParams
	total := numLeaves + len(req.Functions)
	if total == 0 {
		return nil, fmt.Errorf("%w: no terminals, params or functions to select from", ErrEmptyCatalog)
	}
	leafRatio := float64(numLeaves) / float64(total)

	if depth == 0 || (req.Method == MethodGrow && g.rand.Float64() < leafRatio) {
		return g.leaf(req)
	}

	if len(req.Functions) == 0 {
		return nil, fmt.Errorf("%w: function set is empty", ErrEmptyCatalog)
	}
	fn := req.Functions[g.rand.IntN(len(req.Functions))]

	arity := fn.Arity.Count()
	if fn.Arity.IsVariable() {
		if req.NumParams < 1 {
			return nil, fmt.Errorf("%w: variable arity needs num_params >= 1", ErrEmptyCatalog)
		}
		arity = 1 + g.rand.IntN(req.NumParams)
	}
	g.logger.Debug("expanding function", "name", fn.Name, "children", arity, "depth", depth)

	children := make([]node.Node, 0, arity)
	for i := 0; i < arity; i++ {
		child, err := g.build(req, depth-1)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return fn.New(children...), nil
}

// leaf selects a parameter leaf with probability bias, a constant leaf
// otherwise. A fresh node is constructed per selection so every leaf has a
// single owner.
func (g *Generator) leaf(req *Request) (node.Node, error) {
	if g.rand.Float64() <= g.bias {
		if req.NumParams == 0 {
			return nil, fmt.Errorf("%w: parameter catalog is empty", ErrEmptyCatalog)
		}
		return node.NewParam(g.rand.IntN(req.NumParams)), nil
	}
	if len(req.Terminals) == 0 {
		return nil, fmt.Errorf("%w: terminal set is empty", ErrEmptyCatalog)
	}
	return node.NewTerminal(req.Terminals[g.rand.IntN(len(req.Terminals))]), nil
}
