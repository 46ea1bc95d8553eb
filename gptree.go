package gptree

import (
	"log/slog"
	"math/rand/v2"

	"github.com/ayeganov/gptree/pkg/gen"
	"github.com/ayeganov/gptree/pkg/node"
)

// Version is the library version, reported by the CLI.
const Version = "0.1.0"

type config struct {
	rand      gen.Rand
	functions []gen.Func
	terminals []float64
	genOpts   []gen.Option
}

// Option defines a functional option for configuring generation.
type Option func(*config)

// WithSeed makes generation deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rand = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithRand injects a custom randomness source, bypassing the default
// seeding.
func WithRand(r gen.Rand) Option {
	return func(c *config) {
		c.rand = r
	}
}

// WithFunctions overrides the default arithmetic function set.
func WithFunctions(funcs ...gen.Func) Option {
	return func(c *config) {
		c.functions = funcs
	}
}

// WithTerminals sets the terminal set of constant values.
func WithTerminals(values ...float64) Option {
	return func(c *config) {
		c.terminals = values
	}
}

// WithParamBias overrides the parameter-over-terminal leaf selection bias.
func WithParamBias(p float64) Option {
	return func(c *config) {
		c.genOpts = append(c.genOpts, gen.WithParamBias(p))
	}
}

// WithLogger sets a structured logger for generation tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.genOpts = append(c.genOpts, gen.WithLogger(logger))
	}
}

// Generate is the high-level entry point: it builds a random expression tree
// with numParams readable context positions, bounded by maxDepth, using the
// given method. Defaults: the full arithmetic function set, an empty terminal
// set, and a non-deterministic seed.
func Generate(numParams, maxDepth int, method gen.Method, opts ...Option) (node.Node, error) {
	c := &config{
		functions: gen.DefaultFunctions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rand == nil {
		c.rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return gen.New(c.rand, c.genOpts...).Generate(gen.Request{
		NumParams: numParams,
		Functions: c.functions,
		Terminals: c.terminals,
		MaxDepth:  maxDepth,
		Method:    method,
	})
}
