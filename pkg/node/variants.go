package node

import (
	"fmt"
	"strconv"
)

// Terminal is a leaf holding a fixed constant.
type Terminal struct {
	value float64
}

// NewTerminal creates a constant leaf named "Term<v>".
func NewTerminal(v float64) *Terminal {
	return &Terminal{value: v}
}

// Evaluate returns the node's constant. The context is ignored.
func (t *Terminal) Evaluate(_ Context) (float64, error) { return t.value, nil }

func (t *Terminal) Name() string {
	return "Term" + strconv.FormatFloat(t.value, 'g', -1, 64)
}

func (t *Terminal) Arity() Arity { return Fixed(0) }

func (t *Terminal) Children() []Node { return nil }

// Value returns the constant supplied at construction.
func (t *Terminal) Value() float64 { return t.value }

// Param is a leaf that extracts a specific value from the context.
//
// The context is addressed like a stack growing upwards:
//
//	3) w
//	2) x
//	1) y
//	0) z
//
// Param(2) evaluates to the value of x.
type Param struct {
	index int
}

// NewParam creates a context accessor named "Param[<i>]".
func NewParam(i int) *Param {
	return &Param{index: i}
}

// Evaluate returns ctx[i]. It fails with ErrIndexOutOfRange when the context
// does not cover the index.
func (p *Param) Evaluate(ctx Context) (float64, error) {
	if p.index < 0 || p.index >= len(ctx) {
		return 0, fmt.Errorf("%w: param %d, context length %d", ErrIndexOutOfRange, p.index, len(ctx))
	}
	return ctx[p.index], nil
}

func (p *Param) Name() string { return fmt.Sprintf("Param[%d]", p.index) }

func (p *Param) Arity() Arity { return Fixed(0) }

func (p *Param) Children() []Node { return nil }

// Index returns the context position this node reads.
func (p *Param) Index() int { return p.index }

// Addition sums the values of all its children.
type Addition struct {
	children []Node
}

// NewAddition wraps the given children in an addition node. The node takes
// ownership of the slice.
func NewAddition(children ...Node) *Addition {
	return &Addition{children: children}
}

func (a *Addition) Evaluate(ctx Context) (float64, error) {
	values, err := evalChildren(ctx, a.children)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum, nil
}

func (a *Addition) Name() string { return "+" }

func (a *Addition) Arity() Arity { return Variable() }

func (a *Addition) Children() []Node { return a.children }

// Multiplication multiplies the values of all its children.
// An empty child list yields the multiplicative identity 1.
type Multiplication struct {
	children []Node
}

// NewMultiplication wraps the given children in a multiplication node.
func NewMultiplication(children ...Node) *Multiplication {
	return &Multiplication{children: children}
}

func (m *Multiplication) Evaluate(ctx Context) (float64, error) {
	values, err := evalChildren(ctx, m.children)
	if err != nil {
		return 0, err
	}
	product := 1.0
	for _, v := range values {
		product *= v
	}
	return product, nil
}

func (m *Multiplication) Name() string { return "*" }

func (m *Multiplication) Arity() Arity { return Variable() }

func (m *Multiplication) Children() []Node { return m.children }

// Division divides its first child by the product of the rest. With a single
// child it returns the reciprocal.
type Division struct {
	children []Node
}

// NewDivision wraps the given children in a division node.
func NewDivision(children ...Node) *Division {
	return &Division{children: children}
}

func (d *Division) Evaluate(ctx Context) (float64, error) {
	values, err := evalChildren(ctx, d.children)
	if err != nil {
		return 0, err
	}
	// An empty context or an empty child list yields 1 instead of an error.
	// The generator always attaches at least one child to an operator, so
	// only hand-built trees can reach the children half of this guard.
	if len(ctx) == 0 || len(d.children) == 0 {
		return 1, nil
	}
	if len(values) == 1 {
		return 1 / values[0], nil
	}
	denominator := 1.0
	for _, v := range values[1:] {
		denominator *= v
	}
	return values[0] / denominator, nil
}

func (d *Division) Name() string { return "/" }

func (d *Division) Arity() Arity { return Variable() }

func (d *Division) Children() []Node { return d.children }

// Subtraction folds its children left to right: c1 - c2 - c3 - ...
// With a single child it returns the negation.
type Subtraction struct {
	children []Node
}

// NewSubtraction wraps the given children in a subtraction node.
func NewSubtraction(children ...Node) *Subtraction {
	return &Subtraction{children: children}
}

func (s *Subtraction) Evaluate(ctx Context) (float64, error) {
	values, err := evalChildren(ctx, s.children)
	if err != nil {
		return 0, err
	}
	if len(values) == 1 {
		return -values[0], nil
	}
	result := values[0]
	for _, v := range values[1:] {
		result -= v
	}
	return result, nil
}

func (s *Subtraction) Name() string { return "-" }

func (s *Subtraction) Arity() Arity { return Variable() }

func (s *Subtraction) Children() []Node { return s.children }
