// Package config loads the optional on-disk configuration file. The
// file only seeds defaults; user-changeable settings live in the store
// and override anything configured here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete application configuration
type Config struct {
	Storage StorageSettings `hcl:"storage,block"`
	AI      AISettings      `hcl:"ai,block"`
	Drive   DriveSettings   `hcl:"drive,block"`
	UI      UISettings      `hcl:"ui,block"`
}

// StorageSettings contains local persistence settings
type StorageSettings struct {
	// DataDir holds the SQLite database; defaults to ~/.nicehand
	DataDir string `hcl:"data_dir,optional"`
}

// AISettings contains the Gemini collaborator settings
type AISettings struct {
	APIKey string `hcl:"api_key,optional"`
}

// DriveSettings contains the Google Drive backup settings
type DriveSettings struct {
	ClientID string `hcl:"client_id,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	Language string `hcl:"language,optional"`
	Theme    string `hcl:"theme,optional"`
}

// DefaultConfig returns the default application configuration
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return &Config{
		Storage: StorageSettings{
			DataDir: filepath.Join(home, ".nicehand"),
		},
		UI: UISettings{
			LogLevel: "warn",
		},
	}
}

// DefaultPath returns the expected config file location
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".nicehand", "config.hcl")
}

// Load loads configuration from an HCL file, returning defaults when
// the file does not exist
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	config := DefaultConfig()
	diags = gohcl.DecodeBody(file.Body, nil, config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.Storage.DataDir == "" {
		config.Storage.DataDir = DefaultConfig().Storage.DataDir
	}
	return config, nil
}

// DatabasePath returns the SQLite file path under the data dir
func (c *Config) DatabasePath() string {
	return filepath.Join(c.Storage.DataDir, "nicehand.db")
}
