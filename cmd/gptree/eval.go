package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ayeganov/gptree/internal/cli"
)

// evalCmd represents the eval command
var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate a serialized expression tree",
	Long:  `Reads a JSON-encoded tree (from a file or stdin with '-') and evaluates it against the supplied context values.`,
	Run: func(cmd *cobra.Command, args []string) {
		treePath, _ := cmd.Flags().GetString("tree")
		context, _ := cmd.Flags().GetFloat64Slice("context")
		debug, _ := cmd.Flags().GetBool("debug")

		opts := cli.EvalOptions{
			TreePath: treePath,
			Context:  context,
			Debug:    debug,
		}
		if err := cli.RunEval(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)

	evalCmd.Flags().String("tree", "-", "Path to a JSON tree file ('-' for stdin)")
	evalCmd.Flags().Float64Slice("context", nil, "Context values, index 0 first")
}
