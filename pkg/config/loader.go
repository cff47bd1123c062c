package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/argspec/pkg/errors"
	"github.com/arthur-debert/argspec/pkg/logging"
)

const (
	// EnvPrefix prefixes every environment override
	EnvPrefix = "ARGSPEC_"

	// UserConfigFile is the user config path relative to XDG_CONFIG_HOME
	UserConfigFile = "argspec/config.toml"
)

// Config is the resolved configuration
type Config struct {
	// AutoArgs and AutoRetvals are extra spec strings added on top of the
	// defaults, in the "name@actions;..." syntax.
	AutoArgs    string `koanf:"auto_args"`
	AutoRetvals string `koanf:"auto_retvals"`

	// UseDefaults enables the built-in table in Defaults
	UseDefaults bool `koanf:"use_defaults"`

	// Triggers are trigger strings whose argument and return value
	// actions are extracted into the accumulated specs.
	Triggers []string `koanf:"triggers"`

	Defaults Defaults     `koanf:"defaults"`
	Log      LogConfig    `koanf:"log"`
	Output   OutputConfig `koanf:"output"`
}

// Defaults is the built-in auto-argument table, one record per element
type Defaults struct {
	AutoArgs    []string `koanf:"auto_args"`
	AutoRetvals []string `koanf:"auto_retvals"`
}

// LogConfig configures pkg/logging
type LogConfig struct {
	Verbosity int    `koanf:"verbosity"`
	File      string `koanf:"file"`
}

// OutputConfig configures pkg/ui. Format is used when --format is not given.
type OutputConfig struct {
	Format  string `koanf:"format"`
	NoColor bool   `koanf:"no_color"`
}

// EffectiveAutoArgs returns the auto-argument string to build: the default
// table when enabled, followed by AutoArgs.
func (c *Config) EffectiveAutoArgs() string {
	return joinRecords(c.UseDefaults, c.Defaults.AutoArgs, c.AutoArgs)
}

// EffectiveAutoRetvals is EffectiveAutoArgs for return values
func (c *Config) EffectiveAutoRetvals() string {
	return joinRecords(c.UseDefaults, c.Defaults.AutoRetvals, c.AutoRetvals)
}

func joinRecords(useDefaults bool, defaults []string, extra string) string {
	var parts []string
	if useDefaults {
		parts = append(parts, defaults...)
	}
	if extra != "" {
		parts = append(parts, extra)
	}
	return strings.Join(parts, ";")
}

func builtinDefaults() map[string]interface{} {
	return map[string]interface{}{
		"auto_args":       "",
		"auto_retvals":    "",
		"use_defaults":    true,
		"triggers":        []string{},
		"log.verbosity":   0,
		"log.file":        "",
		"output.format":   "auto",
		"output.no_color": false,
	}
}

// Load resolves the configuration. path names an explicit config file;
// when empty the XDG user config is used if it exists.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Built-in values
	if err := k.Load(confmap.Provider(builtinDefaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load built-in config")
	}

	// 2. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse embedded defaults")
	}

	// 3. User config
	userPath, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	if userPath != "" {
		if err := k.Load(file.Provider(userPath), parserFor(userPath)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", userPath).
				WithDetail("path", userPath)
		}
		logger.Debug().Str("path", userPath).Msg("Loaded user config")
	}

	// 4. Environment
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				// one trigger per line; ';' separates records inside a trigger
				mapstructure.StringToSliceHookFunc("\n"),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	logger.Trace().
		Bool("use_defaults", cfg.UseDefaults).
		Int("default_args", len(cfg.Defaults.AutoArgs)).
		Int("triggers", len(cfg.Triggers)).
		Msg("Configuration resolved")

	return &cfg, nil
}

// resolvePath returns the config file to load, or "" for none. An explicit
// path must exist.
func resolvePath(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", path).
				WithDetail("path", path)
		}
		return path, nil
	}

	found, err := xdg.SearchConfigFile(UserConfigFile)
	if err != nil {
		return "", nil
	}
	return found, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}
