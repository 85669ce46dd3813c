// Command klex is the CLI wrapper spec.md §1 calls an external
// collaborator: argument parsing and file I/O around the two pure core
// operations, klex.ParseSpec and emit.Generate.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "klex",
	Short: "klex compiles .klex lexer specifications into standalone Go tokenizers",
}

func main() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
