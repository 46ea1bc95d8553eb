package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ayeganov/gptree/internal/cli"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a random expression tree",
	Long:  `Builds a random expression tree from a function set and a terminal set, bounded by depth, and prints it to stdout.`,
	Run: func(cmd *cobra.Command, args []string) {
		specPath, _ := cmd.Flags().GetString("spec")
		params, _ := cmd.Flags().GetInt("params")
		depth, _ := cmd.Flags().GetInt("depth")
		method, _ := cmd.Flags().GetString("method")
		terminals, _ := cmd.Flags().GetFloat64Slice("terminals")
		functions, _ := cmd.Flags().GetStringSlice("functions")
		seed, _ := cmd.Flags().GetUint64("seed")
		jsonMode, _ := cmd.Flags().GetBool("json")
		color, _ := cmd.Flags().GetBool("color")
		debug, _ := cmd.Flags().GetBool("debug")

		opts := cli.GenOptions{
			SpecPath:  specPath,
			NumParams: params,
			MaxDepth:  depth,
			Method:    method,
			Terminals: terminals,
			Functions: functions,
			Seed:      seed,
			SeedSet:   cmd.Flags().Changed("seed"),
			JSON:      jsonMode,
			Color:     color,
			Debug:     debug,
		}
		if err := cli.RunGen(opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(genCmd)

	genCmd.Flags().String("spec", "", "Path to a YAML generation spec (overrides the generation flags)")
	genCmd.Flags().Int("params", 1, "Number of parameters the tree may read")
	genCmd.Flags().Int("depth", 3, "Maximum tree depth")
	genCmd.Flags().String("method", "grow", "Generation method: full or grow")
	genCmd.Flags().Float64Slice("terminals", nil, "Terminal set of constant values")
	genCmd.Flags().StringSlice("functions", nil, "Function set (default: +,*,/,-)")
	genCmd.Flags().Uint64("seed", 0, "Random seed (default: non-deterministic)")
	genCmd.Flags().Bool("json", false, "Print the tree as JSON instead of indented text")
	genCmd.Flags().Bool("color", false, "Colorize the tree output")
}
