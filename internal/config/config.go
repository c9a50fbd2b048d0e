// Package config loads promptgen-server settings. Sources are applied in
// order, each overriding the previous one: defaults, YAML file, environment
// (PROMPTGEN_ prefix), command-line flags.
package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "PROMPTGEN_"

type Config struct {
	Addr     string `yaml:"addr" env:"ADDR"`
	BasePath string `yaml:"basePath" env:"BASE_PATH"`
	// Prompts is a TemplateSet file; empty uses the embedded set.
	Prompts string `yaml:"prompts" env:"PROMPTS"`
	Theme   string `yaml:"theme" env:"THEME"`
	Variant string `yaml:"variant" env:"VARIANT"`
	LogMode string `yaml:"logMode" env:"LOG_MODE"`

	ShutdownTimeout time.Duration `yaml:"shutdownTimeout" env:"SHUTDOWN_TIMEOUT"`

	Session SessionConfig `yaml:"session" envPrefix:"SESSION_"`
	Redis   RedisConfig   `yaml:"redis" envPrefix:"REDIS_"`
}

type SessionConfig struct {
	CookieName   string `yaml:"cookieName" env:"COOKIE_NAME"`
	SecureCookie bool   `yaml:"secureCookie" env:"SECURE_COOKIE"`
}

// RedisConfig selects the Redis session store when Addr is set.
type RedisConfig struct {
	Addr     string        `yaml:"addr" env:"ADDR"`
	Password string        `yaml:"password" env:"PASSWORD"`
	DB       int           `yaml:"db" env:"DB"`
	Prefix   string        `yaml:"prefix" env:"PREFIX"`
	TTL      time.Duration `yaml:"ttl" env:"TTL"`
}

func Defaults() Config {
	return Config{
		Addr:            ":8080",
		BasePath:        "/",
		Theme:           "terminal",
		Variant:         "green",
		LogMode:         "development",
		ShutdownTimeout: 5 * time.Second,
		Session: SessionConfig{
			CookieName: "promptgen_session",
		},
		Redis: RedisConfig{
			Prefix: "promptgen:session:",
			TTL:    12 * time.Hour,
		},
	}
}

// Validate reports settings the server cannot start with.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdownTimeout must be positive"))
	}
	if c.Redis.DB < 0 {
		errs = append(errs, errors.New("redis.db must not be negative"))
	}
	if c.Redis.Addr != "" && c.Redis.TTL <= 0 {
		errs = append(errs, errors.New("redis.ttl must be positive"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// DecodeFile overlays the YAML document at path onto cfg. Unknown keys are
// rejected.
func DecodeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return Decode(cfg, data)
}

// Decode overlays a YAML document onto cfg.
func Decode(cfg *Config, data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("config: decode yaml: %w", err)
	}
	return nil
}

// ApplyEnv overlays PROMPTGEN_* variables from environ onto cfg. Unset
// variables leave the current value untouched.
func ApplyEnv(cfg *Config, environ []string) error {
	if err := env.ParseWithOptions(cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: env.ToMap(environ),
	}); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// Load builds the server configuration from args (without the program name)
// and environ. The file comes from -config, or PROMPTGEN_CONFIG when the flag
// is absent.
func Load(name string, args, environ []string, output io.Writer) (Config, error) {
	cfg := Defaults()

	var (
		configPath string
		flagged    = Config{}
	)
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.StringVar(&configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&flagged.Addr, "addr", "", "listen address (default "+cfg.Addr+")")
	fs.StringVar(&flagged.Prompts, "prompts", "", "TemplateSet JSON or YAML file (default embedded set)")
	fs.StringVar(&flagged.Theme, "theme", "", "theme name (default "+cfg.Theme+")")
	fs.StringVar(&flagged.Variant, "variant", "", "theme variant (default "+cfg.Variant+")")
	fs.StringVar(&flagged.BasePath, "base-path", "", "mount path (default "+cfg.BasePath+")")
	fs.StringVar(&flagged.LogMode, "log-mode", "", "development or production")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if configPath == "" {
		configPath = env.ToMap(environ)[EnvPrefix+"CONFIG"]
	}
	if configPath != "" {
		if err := DecodeFile(&cfg, configPath); err != nil {
			return Config{}, err
		}
	}

	if err := ApplyEnv(&cfg, environ); err != nil {
		return Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = flagged.Addr
		case "prompts":
			cfg.Prompts = flagged.Prompts
		case "theme":
			cfg.Theme = flagged.Theme
		case "variant":
			cfg.Variant = flagged.Variant
		case "base-path":
			cfg.BasePath = flagged.BasePath
		case "log-mode":
			cfg.LogMode = flagged.LogMode
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
