package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ayeganov/gptree/pkg/node"
)

// EvalOptions contains all the configuration for the eval command.
type EvalOptions struct {
	TreePath string // "-" reads from stdin
	Context  []float64
	Debug    bool
}

// RunEval handles the 'eval' command: load a serialized tree and evaluate it
// against the supplied context.
func RunEval(opts EvalOptions) error {
	logger := createLogger(opts.Debug)

	var data []byte
	var err error
	if opts.TreePath == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(opts.TreePath)
	}
	if err != nil {
		return fmt.Errorf("failed to read tree: %w", err)
	}

	decoded, err := node.Decode(data)
	if err != nil {
		return err
	}
	logger.Debug("tree loaded", "nodes", node.Count(decoded), "depth", node.Depth(decoded))

	value, err := decoded.Evaluate(node.Context(opts.Context))
	if err != nil {
		return err
	}

	fmt.Println(value)
	return nil
}
