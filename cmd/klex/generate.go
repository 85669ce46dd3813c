package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/klex-lang/klex"
	"github.com/klex-lang/klex/emit"
	"github.com/klex-lang/klex/internal/config"
)

var (
	generateOut         string
	generatePackageFlag string
)

var generateCmd = &cobra.Command{
	Use:   "generate <spec.klex>",
	Short: "Compile a .klex spec into a standalone Go tokenizer",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "output file (default: stdout)")
	generateCmd.Flags().StringVar(&generatePackageFlag, "package", "", "package name for the generated file (overrides klex.toml)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	text, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("klex: %w", err)
	}

	spec, err := klex.ParseSpec(string(text))
	if err != nil {
		return fmt.Errorf("klex: %s: %w", inputPath, err)
	}

	packageName := resolvePackageName(inputPath)
	sourceLabel := filepath.Base(inputPath)

	out, err := emit.GeneratePackage(spec, sourceLabel, packageName)
	if err != nil {
		return fmt.Errorf("klex: %w", err)
	}

	if generateOut == "" {
		fmt.Fprint(os.Stdout, out)
		return nil
	}
	if err := os.WriteFile(generateOut, []byte(out), 0o644); err != nil {
		return fmt.Errorf("klex: %w", err)
	}
	fmt.Fprintf(os.Stderr, "klex: wrote %s\n", generateOut)
	return nil
}

// resolvePackageName applies, in priority order: --package, klex.toml's
// [package].name, then config.Default()'s "lexer".
func resolvePackageName(inputPath string) string {
	if generatePackageFlag != "" {
		return generatePackageFlag
	}
	if path, ok, err := config.Find(filepath.Dir(inputPath)); err == nil && ok {
		if cfg, err := config.Load(path); err == nil {
			return cfg.Package.Name
		}
	}
	return config.Default().Package.Name
}
