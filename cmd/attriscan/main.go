package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"attriscan/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:           "attriscan",
	Short:         "record license findings and copyright attributions",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configPath string

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "attriscan.toml", "path to the TOML configuration file")
}

func main() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
