package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Overridden at build time via -ldflags.
var (
	version   = "dev"
	gitCommit = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the attriscan version",
	Run: func(cmd *cobra.Command, args []string) {
		if gitCommit != "" {
			fmt.Printf("attriscan %s (%s)\n", version, gitCommit)
			return
		}
		fmt.Printf("attriscan %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
