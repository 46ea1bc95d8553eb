package node

// Context is the ordered sequence of external input values an expression tree
// is evaluated against. Index 0 is the first bound variable. A Context is
// never modified during an evaluation pass and is not owned by any Node; the
// caller supplies it per call and may vary it between calls to the same tree.
type Context []float64

// Node represents a single element in the expression tree.
// Evaluation of an internal node evaluates each child against the same
// context, left to right, then combines the results; a leaf ignores its
// (empty) child list and returns its own intrinsic value.
type Node interface {
	// Evaluate computes the node's value against ctx.
	Evaluate(ctx Context) (float64, error)

	// Name returns the display label, e.g. "+", "Term5", "Param[2]".
	Name() string

	// Arity reports how many children this node kind accepts.
	Arity() Arity

	// Children returns the node's direct children. Leaves return nil.
	Children() []Node
}

// Arity describes how many children a node kind accepts: either a fixed
// count, or a variable count resolved to a concrete number at generation
// time. It is never recomputed during evaluation.
type Arity struct {
	variable bool
	n        int
}

// Fixed returns an arity of exactly n children.
func Fixed(n int) Arity { return Arity{n: n} }

// Variable returns the unbounded arity descriptor. The generator resolves it
// to a uniform draw from [1, num_params].
func Variable() Arity { return Arity{variable: true} }

// IsVariable reports whether the arity is resolved at generation time.
func (a Arity) IsVariable() bool { return a.variable }

// Count returns the fixed child count. Meaningful only when !IsVariable().
func (a Arity) Count() int { return a.n }

// Count returns the total number of nodes in the tree rooted at n.
func Count(n Node) int {
	total := 1
	for _, c := range n.Children() {
		total += Count(c)
	}
	return total
}

// Depth returns the depth of the tree rooted at n. A single leaf has depth 0.
func Depth(n Node) int {
	max := -1
	for _, c := range n.Children() {
		if d := Depth(c); d > max {
			max = d
		}
	}
	return max + 1
}

// evalChildren evaluates every child against ctx, preserving order.
// The first child error aborts the pass.
func evalChildren(ctx Context, children []Node) ([]float64, error) {
	values := make([]float64, len(children))
	for i, c := range children {
		v, err := c.Evaluate(ctx)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}
