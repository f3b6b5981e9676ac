package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// apiKeyEnv is the only required secret; everything else has defaults.
const apiKeyEnv = "GEMINI_API_KEY"

const defaultPort = 8000

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	AI struct {
		BaseURL string `yaml:"baseURL"`
		Model   string `yaml:"model"`
	} `yaml:"ai"`
}

// Load reads the yaml config at path. A missing file is not an error: the
// service runs on defaults with nothing but the API key in the environment.
func Load(path string) (*Config, error) {
	var cfg Config
	cfg.Server.Port = defaultPort

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	return &cfg, nil
}

// APIKey reads the provider credential from the process environment.
func (c *Config) APIKey() string {
	return os.Getenv(apiKeyEnv)
}
