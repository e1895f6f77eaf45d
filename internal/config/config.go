package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes the environment variables that override the file.
const EnvPrefix = "LINKDING_"

type ConfigLinkding struct {
	Host           string `koanf:"host" validate:"required,url"`
	Token          string `koanf:"token" validate:"required_without=EncryptedToken"`
	EncryptedToken string `koanf:"encrypted_token"`
	TokenSecret    string `koanf:"token_secret" validate:"required_with=EncryptedToken"`
}

type ConfigHTTP struct {
	Timeout time.Duration `koanf:"timeout" validate:"gte=0"`
}

type Config struct {
	Linkding ConfigLinkding `koanf:"linkding"`
	HTTP     ConfigHTTP     `koanf:"http"`
	LogLevel string         `koanf:"log_level" validate:"oneof=error warn info debug"`
}

func (c *Config) Validate() error {
	validate := validator.New()
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return fmt.Errorf("configuration validation failed: %v", validationErrors)
	}

	return err
}

// Load reads defaults, then the YAML file at path (skipped when path is
// empty), then LINKDING_* environment variables, and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := setDefaultValues(k); err != nil {
		return nil, err
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// envKey maps LINKDING_HOST to linkding.host, LINKDING_HTTP_TIMEOUT to
// http.timeout and LINKDING_LOG_LEVEL to log_level.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	switch {
	case key == "log_level":
		return key
	case strings.HasPrefix(key, "http_"):
		return "http." + strings.TrimPrefix(key, "http_")
	}
	return "linkding." + key
}

func setDefaultValues(k *koanf.Koanf) error {
	return k.Load(confmap.Provider(map[string]any{
		"linkding.host": "http://localhost:9090",
		"http.timeout":  "0s",
		"log_level":     "info",
	}, "."), nil)
}
