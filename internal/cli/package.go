package cli

import (
	"fmt"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"testpilot/internal/usecase"
)

var packageOut string

var packageCmd = &cobra.Command{
	Use:   "package [dir]",
	Short: "Bundle a skill directory into a .skill archive",
	Long: `Package zips the given directory (default: current directory) into a
.skill bundle. Entries are stored under the directory's base name; paths
matching the configured exclude patterns are skipped.

Examples:
  testpilot package                  # Bundle the current directory
  testpilot package ./my-skill       # Bundle a specific directory
  testpilot package ./my-skill -o dist/my-skill.skill`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPackage,
}

func init() {
	packageCmd.Flags().StringVarP(&packageOut, "output", "o", "", "output archive path (default is <dir>.skill)")
	rootCmd.AddCommand(packageCmd)
}

func runPackage(cmd *cobra.Command, args []string) error {
	srcDir := GetRootDir()
	if len(args) > 0 {
		var err error
		srcDir, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
	}

	outPath := packageOut
	if outPath == "" {
		outPath = filepath.Base(srcDir) + ".skill"
	}

	fmt.Printf("Packaging %s...\n", srcDir)

	var bar *progressbar.ProgressBar
	progress := func(processed, total int, current string) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Packaging[reset]"),
				progressbar.OptionOnCompletion(func() {
					fmt.Println()
				}),
			)
		}
		bar.Set(processed)
	}

	uc := usecase.NewBundleUseCase(GetConfig())
	result, err := uc.Bundle(srcDir, outPath, progress)
	if err != nil {
		return fmt.Errorf("packaging failed: %w", err)
	}

	fmt.Printf("\nPackaging complete:\n")
	fmt.Printf("  Files bundled: %d\n", result.Files)
	if result.Skipped > 0 {
		fmt.Printf("  Files skipped: %d (excluded)\n", result.Skipped)
	}
	fmt.Printf("\nArchive written to: %s\n", result.Output)
	return nil
}
