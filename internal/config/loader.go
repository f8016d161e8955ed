package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads and validates the demo configuration.
// Search order: customPath -> ~/.keyloop/configs/demo.yaml -> ./configs/demo.yaml -> embedded default
func Load(customPath string) (DemoConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (DemoConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DemoConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("demo.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "demo.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultDemoYAML)
	if err != nil {
		return DefaultDemoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults, so omitted fields keep their
// default values.
func Parse(data []byte) (DemoConfig, error) {
	cfg := DefaultDemoConfig()
	// Shape and binding lists replace the defaults wholesale when present.
	var probe struct {
		Input struct {
			Bindings map[string][]string `yaml:"bindings"`
		} `yaml:"input"`
		Shapes []ShapeConfig `yaml:"shapes"`
	}
	if err := yaml.Unmarshal(data, &probe); err != nil {
		return cfg, err
	}
	if probe.Input.Bindings != nil {
		cfg.Input.Bindings = nil
	}
	if probe.Shapes != nil {
		cfg.Shapes = nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg DemoConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".keyloop", "configs", filename)
}
