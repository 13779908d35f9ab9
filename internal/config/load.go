package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. PROXY_RENDER_TEMPLATE.
const EnvPrefix = "PROXY"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("paths.template_dir", "template-data")
	v.SetDefault("paths.data_dir", "data")
	v.SetDefault("paths.output_dir", "output")
	v.SetDefault("render.template", "print")
	v.SetDefault("render.naming", "slug")
	v.SetDefault("render.workers", 2)
	v.SetDefault("render.backs", false)
	v.SetDefault("render.sheet", false)
	v.SetDefault("scryfall.base_url", "https://api.scryfall.com")
	v.SetDefault("scryfall.bulk_type", "oracle_cards")
	v.SetDefault("scryfall.timeout_seconds", 30)
	v.SetDefault("log.level", "info")
}

// Options adjusts where Load looks for settings.
type Options struct {
	// File is an explicit config file; when empty ./config.yaml is used if present.
	File string
	// Flags are bound by key, so a flag named "render.template" overrides that setting.
	Flags *pflag.FlagSet
	// FlagKeys maps config keys to flag names, for flags named differently
	// from their key. When set, only the listed flags are bound.
	FlagKeys map[string]string
}

// Load reads and validates the configuration.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if opts.File != "" {
		v.SetConfigFile(opts.File)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.File != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := bindFlags(v, opts); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func bindFlags(v *viper.Viper, opts Options) error {
	if opts.Flags == nil {
		return nil
	}
	if opts.FlagKeys == nil {
		return v.BindPFlags(opts.Flags)
	}
	for key, name := range opts.FlagKeys {
		f := opts.Flags.Lookup(name)
		if f == nil {
			return fmt.Errorf("no flag %q for %s", name, key)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}
	return nil
}
