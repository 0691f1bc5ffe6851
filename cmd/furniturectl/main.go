package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "furniturectl",
	Short: "furniturectl - command-line access to the furniture catalog and assistant",
	Long: `furniturectl runs the same catalog and assistant logic as the API server
without starting it.

Examples:
  furniturectl catalog
  furniturectl select 0 3 7
  furniturectl agent "Small Scandinavian studio with a home office"
  furniturectl chat --step 1 "SYSTEM_START: hello"
  furniturectl schema furniture-item`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(agentCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(schemaCmd)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging on stderr")
}
