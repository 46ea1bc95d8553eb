package main

import (
	"fmt"

	"github.com/ayeganov/gptree"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gptree",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gptree version %s\n", gptree.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
