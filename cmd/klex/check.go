package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/klex-lang/klex"
)

var checkCmd = &cobra.Command{
	Use:   "check <spec.klex>",
	Short: "Parse a .klex spec and report errors without generating code",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	text, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("klex: %w", err)
	}

	spec, err := klex.ParseSpec(string(text))
	if err != nil {
		return fmt.Errorf("klex: %s: %w", inputPath, err)
	}

	fmt.Fprintf(os.Stderr, "klex: %s: ok, %d rule(s), %d declared token(s)\n",
		inputPath, len(spec.Rules), len(spec.DeclaredTokens))
	return nil
}
