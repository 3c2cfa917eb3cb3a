// This file maps the CLI context and an optional YAML file onto the Config struct.

package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"

	"github.com/rony4d/go-lzw/lzw"
)

// Config aggregates everything a deflate or inflate run needs.
type Config struct {
	Codec   CodecConfig   `yaml:"codec"`
	Logging LoggingConfig `yaml:"logging"`
	Sentry  SentryConfig  `yaml:"sentry"`
}

type CodecConfig struct {
	Bits int  `yaml:"bits"`
	Dict bool `yaml:"dict"`
}

type LoggingConfig struct {
	Verbosity int    `yaml:"verbosity"`
	Format    string `yaml:"format"`
	Color     bool   `yaml:"color"`
}

type SentryConfig struct {
	DSN string `yaml:"dsn"`
}

// -----------------------------------------------------------------------------
// Default config + builders
// -----------------------------------------------------------------------------

func defaultConfig() Config {
	return Config{
		Codec: CodecConfig{
			Bits: DefaultConfig().Codec.Bits,
			Dict: DefaultConfig().Codec.Dict,
		},
		Logging: LoggingConfig{
			Verbosity: DefaultConfig().Logging.Verbosity,
			Format:    DefaultConfig().Logging.Format,
			Color:     DefaultConfig().Logging.Color,
		},
	}
}

// MakeAllConfigs merges defaults, the optional config file, then CLI flag
// overrides, and validates the result. It runs before any file is touched so
// a bad code width never reaches the codec.
func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	if file, ok := lookupString(ctx, "config"); ok && file != "" {
		if err := loadConfigFile(resolvePath(file), &cfg); err != nil {
			return Config{}, err
		}
	}

	applyCLIOverrides(ctx, &cfg)

	if err := lzw.ValidateWidth(cfg.Codec.Bits); err != nil {
		return Config{}, err
	}
	if err := validateLogging(cfg.Logging); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// -----------------------------------------------------------------------------
// Config-file / CLI wiring
// -----------------------------------------------------------------------------

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) {
	if v, ok := lookupInt(ctx, "bits"); ok {
		cfg.Codec.Bits = v
	}
	if v, ok := lookupBool(ctx, "dict"); ok {
		cfg.Codec.Dict = v
	}

	if v, ok := lookupString(ctx, "log.format"); ok {
		cfg.Logging.Format = v
	}
	if v, ok := lookupInt(ctx, "log.verbosity"); ok {
		cfg.Logging.Verbosity = v
	}
	if v, ok := lookupBool(ctx, "log.color"); ok {
		cfg.Logging.Color = v
	}

	if v, ok := lookupString(ctx, "sentry.dsn"); ok {
		cfg.Sentry.DSN = v
	}
}

func validateLogging(cfg LoggingConfig) error {
	if cfg.Verbosity < 0 || cfg.Verbosity > 5 {
		return fmt.Errorf("log verbosity %d not in [0, 5]", cfg.Verbosity)
	}
	switch cfg.Format {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", cfg.Format)
	}
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// Command flags live on the command context, global flags on its parents.
// The lookup helpers only report flags the user actually set.

func lookupString(ctx *cli.Context, name string) (string, bool) {
	if ctx.IsSet(name) {
		return ctx.String(name), true
	}
	if ctx.GlobalIsSet(name) {
		return ctx.GlobalString(name), true
	}
	return "", false
}

func lookupInt(ctx *cli.Context, name string) (int, bool) {
	if ctx.IsSet(name) {
		return ctx.Int(name), true
	}
	if ctx.GlobalIsSet(name) {
		return ctx.GlobalInt(name), true
	}
	return 0, false
}

func lookupBool(ctx *cli.Context, name string) (bool, bool) {
	if ctx.IsSet(name) {
		return ctx.Bool(name), true
	}
	if ctx.GlobalIsSet(name) {
		return ctx.GlobalBool(name), true
	}
	return false, false
}

func resolvePath(p string) string {
	if strings.HasPrefix(p, "~") {
		return filepath.Join(GuessHomeDir(), strings.TrimPrefix(p, "~"))
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(GuessWorkDir(), p)
}

func GuessWorkDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func GuessHomeDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return "."
}
