package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolioctl",
	Short: "Maintain the portfolio collections",
	Long: `portfolioctl works on the same store the API server uses, configured
through the same environment variables and .env file.

Available subcommands:
  seed   - Replace every collection with the built-in or a YAML seed
  export - Write a YAML snapshot of every collection
  flush  - Rewrite every collection to the backing store`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(seedCmd, exportCmd, flushCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
