package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration file: defaults the flags fall back
// to when not given on the command line.
type Config struct {
	pathname    string
	DefaultOBJ  string `yaml:"default-obj"`
	Trace       string `yaml:"trace"`
	BenchConfig string `yaml:"bench-config"`
}

func LoadOrCreate(configFile string) (*Config, error) {
	f, err := os.Open(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &Config{
				pathname: configFile,
			}
			return cfg, cfg.Save()
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	defer f.Close()
	var config Config
	if err := yaml.NewDecoder(f).Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	config.pathname = configFile
	return &config, nil
}

func (c *Config) Render(w io.Writer) error {
	return yaml.NewEncoder(w).Encode(c)
}

func (c *Config) Save() error {
	dir := filepath.Dir(c.pathname)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmpFile, err := os.CreateTemp(dir, "config.*.yaml")
	if err != nil {
		return err
	}

	err = c.Render(tmpFile)
	tmpFile.Close()
	if err != nil {
		os.Remove(tmpFile.Name())
		return err
	}
	return os.Rename(tmpFile.Name(), c.pathname)
}
