package cli

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/ayeganov/gptree/internal/presentation/tree"
	"github.com/ayeganov/gptree/pkg/gen"
	"github.com/ayeganov/gptree/pkg/node"
)

// GenOptions contains all the configuration for the gen command.
type GenOptions struct {
	SpecPath  string
	NumParams int
	MaxDepth  int
	Method    string
	Terminals []float64
	Functions []string
	Seed      uint64
	SeedSet   bool
	JSON      bool
	Color     bool
	Debug     bool
}

// RunGen handles the 'gen' command: build a random tree and print it.
func RunGen(opts GenOptions) error {
	logger := createLogger(opts.Debug)

	var spec *Spec
	if opts.SpecPath != "" {
		loaded, err := LoadSpec(opts.SpecPath)
		if err != nil {
			return err
		}
		spec = loaded
	} else {
		spec = &Spec{
			NumParams: opts.NumParams,
			MaxDepth:  opts.MaxDepth,
			Method:    opts.Method,
			Functions: opts.Functions,
			Terminals: opts.Terminals,
		}
	}

	req, err := spec.Request()
	if err != nil {
		return err
	}

	seed := rand.Uint64()
	switch {
	case opts.SeedSet:
		seed = opts.Seed
	case spec.Seed != nil:
		seed = *spec.Seed
	}
	logger.Debug("generation request",
		"num_params", req.NumParams, "max_depth", req.MaxDepth, "method", req.Method, "seed", seed)

	genOpts := []gen.Option{gen.WithLogger(logger)}
	if spec.ParamBias != nil {
		genOpts = append(genOpts, gen.WithParamBias(*spec.ParamBias))
	}
	g := gen.New(rand.New(rand.NewPCG(seed, seed)), genOpts...)

	generated, err := g.Generate(req)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if opts.JSON {
		encoded, err := node.Encode(generated)
		if err != nil {
			return err
		}
		fmt.Println(string(encoded))
		return nil
	}

	if opts.Color {
		// termenv degrades to plain text when stdout is not a terminal.
		return tree.RenderColor(os.Stdout, generated)
	}
	return tree.Render(os.Stdout, generated)
}
