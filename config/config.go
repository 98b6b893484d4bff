package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the testpilot tool.
type Config struct {
	Generate GenerateConfig `yaml:"generate"`
	Package  PackageConfig  `yaml:"package"`
}

// GenerateConfig holds test-generation configuration.
type GenerateConfig struct {
	OutputDir  string `yaml:"output_dir"`  // empty means current working directory
	ReportFile string `yaml:"report_file"` // report file name
	DocExcerpt int    `yaml:"doc_excerpt"` // max doc excerpt length in the report
}

// PackageConfig holds skill-bundling configuration.
type PackageConfig struct {
	Excludes []string `yaml:"excludes"` // doublestar patterns skipped when bundling
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Generate: GenerateConfig{
			OutputDir:  "",
			ReportFile: "test-report.md",
			DocExcerpt: 100,
		},
		Package: PackageConfig{
			Excludes: []string{
				"**/.git/**",
				"**/node_modules/**",
				"**/__pycache__/**",
				"**/*.pyc",
				"**/*.skill",
				"**/.DS_Store",
			},
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults rather than an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for
// testpilot.yaml, then .testpilot/config.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "testpilot.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".testpilot", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
