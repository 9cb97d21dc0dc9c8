package config

import (
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// DefaultAPIURL is the hosted library API this console was built against.
const DefaultAPIURL = "http://www.bibliotecaapiuddec.somee.com"

const (
	envPrefix     = "BIBLIODESK_"
	configFileENV = "BIBLIODESK_CONFIG"
)

type Config struct {
	API     APIConfig     `koanf:"api"`
	Server  ServerConfig  `koanf:"server"`
	Suggest SuggestConfig `koanf:"suggest"`
}

// APIConfig points at the upstream library-management REST API.
type APIConfig struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
}

// SuggestConfig points at the generative endpoint used for AI-assisted book
// entry. The endpoint is opaque to the console; it only has to honor the
// fixed suggestion contract.
type SuggestConfig struct {
	URL     string        `koanf:"url"`
	Key     string        `koanf:"key"`
	Timeout time.Duration `koanf:"timeout"`
}

// New loads configuration from defaults, then an optional YAML file named by
// BIBLIODESK_CONFIG, then BIBLIODESK_-prefixed environment variables.
func New() (*Config, error) {
	cfg := &Config{
		API: APIConfig{
			URL:     DefaultAPIURL,
			Timeout: 30 * time.Second,
		},
		Server: ServerConfig{
			Port: 4114,
		},
		Suggest: SuggestConfig{
			Timeout: 60 * time.Second,
		},
	}

	k := koanf.New(".")

	if path := os.Getenv(configFileENV); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "failed to load config file %s", path)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.WithStack(err)
	}

	cfg.API.URL = strings.TrimRight(cfg.API.URL, "/")

	return cfg, nil
}
