package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"testpilot/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "testpilot",
	Short: "Test-Pilot - Generate test skeletons and coverage reports from source files",
	Long: `testpilot scans a single Python, JavaScript, or TypeScript source file,
heuristically identifies its functions and classes, and writes a TODO-stubbed
test skeleton plus a markdown coverage report.

Example usage:
  testpilot generate calculator.py   # Write test_calculator.py and test-report.md
  testpilot generate utils.ts        # Write utils.test.ts and test-report.md
  testpilot package ./my-skill       # Bundle a skill directory into my-skill.skill`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./testpilot.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
