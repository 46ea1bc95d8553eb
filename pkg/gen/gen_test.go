package gen_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayeganov/gptree/pkg/gen"
	"github.com/ayeganov/gptree/pkg/node"
)

// scriptedRand replays a fixed sequence of draws.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (s *scriptedRand) Float64() float64 {
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptedRand) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func newSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func baseRequest(method gen.Method) gen.Request {
	return gen.Request{
		NumParams: 3,
		Functions: gen.DefaultFunctions(),
		Terminals: []float64{1, 2, 5},
		MaxDepth:  4,
		Method:    method,
	}
}

// leafDepths collects the depth of every leaf in the tree.
func leafDepths(n node.Node, depth int) []int {
	if len(n.Children()) == 0 {
		return []int{depth}
	}
	var out []int
	for _, c := range n.Children() {
		out = append(out, leafDepths(c, depth+1)...)
	}
	return out
}

func TestGenerate_InvalidArguments(t *testing.T) {
	g := gen.New(newSeeded(1))

	t.Run("Negative NumParams", func(t *testing.T) {
		req := baseRequest(gen.MethodGrow)
		req.NumParams = -1
		_, err := g.Generate(req)
		assert.ErrorIs(t, err, gen.ErrInvalidArgument)
	})

	t.Run("Negative MaxDepth", func(t *testing.T) {
		req := baseRequest(gen.MethodFull)
		req.MaxDepth = -2
		_, err := g.Generate(req)
		assert.ErrorIs(t, err, gen.ErrInvalidArgument)
	})

	t.Run("Unknown Method", func(t *testing.T) {
		req := baseRequest("ramped")
		_, err := g.Generate(req)
		assert.ErrorIs(t, err, gen.ErrInvalidArgument)
	})
}

func TestGenerate_FullLeavesAtMaxDepth(t *testing.T) {
	g := gen.New(newSeeded(7))

	for i := 0; i < 50; i++ {
		tree, err := g.Generate(baseRequest(gen.MethodFull))
		require.NoError(t, err)

		for _, d := range leafDepths(tree, 0) {
			assert.Equal(t, 4, d, "FULL method must place every leaf at max depth")
		}
	}
}

func TestGenerate_FullZeroDepthIsSingleLeaf(t *testing.T) {
	g := gen.New(newSeeded(3))

	req := baseRequest(gen.MethodFull)
	req.MaxDepth = 0
	tree, err := g.Generate(req)
	require.NoError(t, err)

	assert.Empty(t, tree.Children())
	assert.Equal(t, 1, node.Count(tree))
}

func TestGenerate_GrowBoundedByMaxDepth(t *testing.T) {
	g := gen.New(newSeeded(11))

	for i := 0; i < 100; i++ {
		tree, err := g.Generate(baseRequest(gen.MethodGrow))
		require.NoError(t, err)
		assert.LessOrEqual(t, node.Depth(tree), 4)
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	req := baseRequest(gen.MethodGrow)

	first, err := gen.New(newSeeded(42)).Generate(req)
	require.NoError(t, err)
	second, err := gen.New(newSeeded(42)).Generate(req)
	require.NoError(t, err)

	a, err := node.Encode(first)
	require.NoError(t, err)
	b, err := node.Encode(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestGenerate_VariableArityBounds(t *testing.T) {
	g := gen.New(newSeeded(5))

	req := baseRequest(gen.MethodFull)
	req.MaxDepth = 1
	for i := 0; i < 50; i++ {
		tree, err := g.Generate(req)
		require.NoError(t, err)
		n := len(tree.Children())
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, req.NumParams)
	}
}

func TestGenerate_EmptyFunctionSet(t *testing.T) {
	g := gen.New(newSeeded(1))

	req := baseRequest(gen.MethodFull)
	req.Functions = nil
	_, err := g.Generate(req)
	assert.ErrorIs(t, err, gen.ErrEmptyCatalog)
}

func TestGenerate_NothingToSelectFrom(t *testing.T) {
	g := gen.New(newSeeded(1))

	_, err := g.Generate(gen.Request{Method: gen.MethodGrow})
	assert.ErrorIs(t, err, gen.ErrEmptyCatalog)
}

func TestGenerate_LeafSelectionBias(t *testing.T) {
	// Forced leaf via MaxDepth 0; the scripted draw exercises the bias
	// comparison directly.
	req := gen.Request{
		NumParams: 2,
		Functions: gen.DefaultFunctions(),
		Terminals: []float64{7},
		MaxDepth:  0,
		Method:    gen.MethodFull,
	}

	t.Run("Draw At Bias Picks Param", func(t *testing.T) {
		// 0.8 <= 0.8: the boundary draw still selects a parameter leaf.
		g := gen.New(&scriptedRand{floats: []float64{0.8}, ints: []int{1}})
		tree, err := g.Generate(req)
		require.NoError(t, err)
		assert.Equal(t, "Param[1]", tree.Name())
	})

	t.Run("Draw Above Bias Picks Terminal", func(t *testing.T) {
		g := gen.New(&scriptedRand{floats: []float64{0.81}, ints: []int{0}})
		tree, err := g.Generate(req)
		require.NoError(t, err)
		assert.Equal(t, "Term7", tree.Name())
	})

	t.Run("Custom Bias", func(t *testing.T) {
		g := gen.New(&scriptedRand{floats: []float64{0.3}, ints: []int{0}}, gen.WithParamBias(0.2))
		tree, err := g.Generate(req)
		require.NoError(t, err)
		assert.Equal(t, "Term7", tree.Name())
	})
}

func TestGenerate_EmptyLeafCatalogs(t *testing.T) {
	req := gen.Request{
		Functions: gen.DefaultFunctions(),
		MaxDepth:  0,
		Method:    gen.MethodFull,
	}

	t.Run("Param Branch With No Params", func(t *testing.T) {
		g := gen.New(&scriptedRand{floats: []float64{0.1}})
		_, err := g.Generate(req)
		assert.ErrorIs(t, err, gen.ErrEmptyCatalog)
	})

	t.Run("Terminal Branch With No Terminals", func(t *testing.T) {
		withParams := req
		withParams.NumParams = 1
		g := gen.New(&scriptedRand{floats: []float64{0.95}})
		_, err := g.Generate(withParams)
		assert.ErrorIs(t, err, gen.ErrEmptyCatalog)
	})
}

func TestGenerate_VariableArityWithoutParams(t *testing.T) {
	// A variable-arity operator cannot size its argument list when there are
	// no parameters to draw the count from.
	req := gen.Request{
		Functions: gen.DefaultFunctions(),
		Terminals: []float64{1},
		MaxDepth:  2,
		Method:    gen.MethodFull,
	}
	g := gen.New(newSeeded(9))
	_, err := g.Generate(req)
	assert.ErrorIs(t, err, gen.ErrEmptyCatalog)
}

func TestGenerate_TreesEvaluate(t *testing.T) {
	g := gen.New(newSeeded(21))

	ctx := node.Context{1, 2, 3}
	for i := 0; i < 30; i++ {
		tree, err := g.Generate(baseRequest(gen.MethodGrow))
		require.NoError(t, err)

		// Every generated Param index is within NumParams, so evaluation
		// against a matching context never reports an index error.
		_, err = tree.Evaluate(ctx)
		assert.NoError(t, err)
	}
}
