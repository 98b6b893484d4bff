package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"testpilot/internal/adapter/fs"
	"testpilot/internal/domain"
	"testpilot/internal/usecase"
)

var generateOut string

var generateCmd = &cobra.Command{
	Use:   "generate <source-file>",
	Short: "Generate a test skeleton and coverage report for one source file",
	Long: `Generate scans the given source file, extracts functions and classes with
best-effort pattern matching, and writes two files to the output directory:
a test skeleton with TODO-marked stubs and a markdown coverage report.

Supported extensions: .py (unittest), .js and .ts (Jest).

Examples:
  testpilot generate calculator.py
  testpilot generate src/utils.js --out build/`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateOut, "out", "", "output directory (default is current directory)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	srcPath := args[0]

	uc := usecase.NewGenerateUseCase(GetConfig(), fs.NewReader(), fs.NewWriter())

	result, err := uc.Generate(srcPath, generateOut)
	if err != nil {
		return describeFailure(srcPath, err)
	}

	fmt.Printf("Analysis complete:\n")
	fmt.Printf("  Language:  %s\n", result.Language)
	fmt.Printf("  Functions: %d\n", result.Functions)
	fmt.Printf("  Classes:   %d (%d methods)\n", result.Classes, result.Methods)
	if result.Functions == 0 && result.Classes == 0 {
		fmt.Printf("  No functions or classes found; wrote an empty test shell.\n")
	}
	fmt.Printf("\nGenerated test file: %s\n", result.TestFile)
	fmt.Printf("Generated report:    %s\n", result.ReportFile)
	return nil
}

// describeFailure phrases a pipeline error so the user can tell which
// half failed and for which path, without a stack trace.
func describeFailure(srcPath string, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnsupportedLanguage):
		return fmt.Errorf("cannot analyze %s: %w", srcPath, err)
	case errors.Is(err, domain.ErrInputNotFound), errors.Is(err, domain.ErrInputUnreadable):
		return fmt.Errorf("analysis failed: %w", err)
	case errors.Is(err, domain.ErrRenderFailed), errors.Is(err, domain.ErrWriteFailed):
		return fmt.Errorf("generation failed for %s: %w", srcPath, err)
	default:
		return err
	}
}
