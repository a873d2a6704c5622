package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Key      KeyConfig    `mapstructure:"key"`
	Output   OutputConfig `mapstructure:"output"`
	LogLevel string       `mapstructure:"log_level"`
}

type KeyConfig struct {
	// Margin is how many extra digits a generated pad carries beyond the
	// message length; excess key material is ignored by the cipher.
	Margin      int    `mapstructure:"margin"`
	KDFMemMB    uint32 `mapstructure:"kdf_mem_mb"`
	KDFTime     uint32 `mapstructure:"kdf_time"`
	KDFParallel uint8  `mapstructure:"kdf_parallel"`
	AllowWeak   bool   `mapstructure:"allow_weak"`
}

type OutputConfig struct {
	Color bool `mapstructure:"color"`
	QR    bool `mapstructure:"qr"`
	// Groups is the number of two-digit groups per printed line; 0 keeps
	// everything on one line.
	Groups int `mapstructure:"groups"`
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	return Config{
		Key: KeyConfig{
			Margin:      10,
			KDFMemMB:    64,
			KDFTime:     3,
			KDFParallel: 1,
			AllowWeak:   false,
		},
		Output: OutputConfig{
			Color:  true,
			QR:     false,
			Groups: 10,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.Int("key-margin", defaults.Key.Margin, "Extra pad digits generated beyond the message length")
	fs.Uint32("key-kdf-mem-mb", defaults.Key.KDFMemMB, "Argon2id memory in MB for passphrase-derived pads")
	fs.Uint32("key-kdf-time", defaults.Key.KDFTime, "Argon2id iterations for passphrase-derived pads")
	fs.Uint8("key-kdf-parallel", defaults.Key.KDFParallel, "Argon2id parallelism for passphrase-derived pads")
	fs.Bool("allow-weak-key", defaults.Key.AllowWeak, "Accept passphrases below the minimum length")
	fs.Bool("color", defaults.Output.Color, "Colorize output when writing to a TTY")
	fs.Bool("qr", defaults.Output.QR, "Also render digit sequences as a terminal QR code")
	fs.Int("groups", defaults.Output.Groups, "Two-digit groups per output line (0 = single line)")
	fs.String("log-level", defaults.LogLevel, "Log level: debug, info, warn, error")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
		// Aliases shadow config-file values once registered, so they are
		// only installed when flags are actually bound.
		registerAliases(v)
	}

	v.SetEnvPrefix("ONETIMEPAD")
	replacer := strings.NewReplacer("-", "_", ".", "_", "__", "_")
	v.SetEnvKeyReplacer(replacer)
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("onetimepad")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("key.margin", c.Key.Margin)
	v.SetDefault("key.kdf_mem_mb", c.Key.KDFMemMB)
	v.SetDefault("key.kdf_time", c.Key.KDFTime)
	v.SetDefault("key.kdf_parallel", c.Key.KDFParallel)
	v.SetDefault("key.allow_weak", c.Key.AllowWeak)
	v.SetDefault("output.color", c.Output.Color)
	v.SetDefault("output.qr", c.Output.QR)
	v.SetDefault("output.groups", c.Output.Groups)
	v.SetDefault("log_level", c.LogLevel)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("key.margin", "key-margin")
	v.RegisterAlias("key.kdf_mem_mb", "key-kdf-mem-mb")
	v.RegisterAlias("key.kdf_time", "key-kdf-time")
	v.RegisterAlias("key.kdf_parallel", "key-kdf-parallel")
	v.RegisterAlias("key.allow_weak", "allow-weak-key")
	v.RegisterAlias("output.color", "color")
	v.RegisterAlias("output.qr", "qr")
	v.RegisterAlias("output.groups", "groups")
	v.RegisterAlias("log_level", "log-level")
}
