package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lerenn/hypergraph-desktop/configs"
	"github.com/lerenn/hypergraph-desktop/pkg/fs"
	"gopkg.in/yaml.v3"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	SaveConfig(config Config) error
	GetConfigPath() string
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	configPath string
	fs         fs.FS
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(configPath string, f fs.FS) Manager {
	return &realManager{
		configPath: configPath,
		fs:         f,
	}
}

// DefaultConfigPath returns ~/.hgd/config.yaml, or .hgd/config.yaml when home cannot be determined.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".hgd", "config.yaml")
}

// GetConfig loads configuration from the embedded config path.
func (c *realManager) GetConfig() (Config, error) {
	data, err := c.fs.ReadFile(c.configPath)
	if errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotInitialized, c.configPath)
	} else if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	config, err := c.parse([]byte(data))
	if err != nil {
		return Config{}, err
	}

	return config, nil
}

// parse decodes YAML over the defaults so omitted keys keep their default value.
func (c *realManager) parse(data []byte) (Config, error) {
	config := c.DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}

	if err := config.expandTildes(c.fs); err != nil {
		return Config{}, err
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration from the embedded config path, falling back to default if not found.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if err == nil {
		return config, nil
	}

	if errors.Is(err, ErrConfigNotInitialized) {
		return c.DefaultConfig(), nil
	}

	// A config file that exists but is broken is reported, not silently replaced
	return Config{}, err
}

// SaveConfig saves configuration to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := c.fs.MkdirAll(filepath.Dir(c.configPath)); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	if err := c.fs.WriteFile(c.configPath, string(data)); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// DefaultConfig returns the default configuration from the embedded default file.
func (c *realManager) DefaultConfig() Config {
	var config Config
	if err := yaml.Unmarshal(configs.DefaultConfigYAML, &config); err != nil {
		config = Config{Picker: PickerTUI}
	}

	if err := config.expandTildes(c.fs); err != nil {
		config.DefaultDirectory = ""
	}

	return config
}
