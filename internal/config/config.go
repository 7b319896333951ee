package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file expected in a passbook data directory.
const FileName = "passbook.yaml"

// EnvDataDir overrides ledger.data_dir when set.
const EnvDataDir = "PASSBOOK_DATA_DIR"

// Config represents the top-level passbook.yaml configuration.
type Config struct {
	Ledger   LedgerConfig   `yaml:"ledger"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Git      GitConfig      `yaml:"git"`
}

// LedgerConfig locates the ledger state.
type LedgerConfig struct {
	DataDir string `yaml:"data_dir"`
}

// DefaultsConfig fills in CLI flags the user omitted.
type DefaultsConfig struct {
	AccountType string `yaml:"account_type"`
}

// GitConfig controls git versioning of the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a passbook.yaml file from disk and applies environment
// overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.ApplyEnv()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new passbook.
func Default(dataDir string) *Config {
	return &Config{
		Ledger: LedgerConfig{
			DataDir: dataDir,
		},
		Defaults: DefaultsConfig{
			AccountType: "savings",
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Passbook",
			AuthorEmail: "passbook@localhost",
		},
	}
}

// ApplyEnv applies environment overrides. Load calls it; callers
// constructing a Config by hand may need it too.
func (c *Config) ApplyEnv() {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		c.Ledger.DataDir = dir
	}
}
