// Package main implements the cvgen CLI: it renders CV records into
// paginated PDF documents using one of the built-in visual templates.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvgen",
	Short: "CV PDF generator",
	Long:  "cvgen renders structured CV records (JSON) into print-ready PDF documents using one of several visual templates.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
