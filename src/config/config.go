package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const EnvPrefix = "PROJECTMAC"

type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Mask   MaskConfig   `mapstructure:"mask"`
	Output OutputConfig `mapstructure:"output"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

//Settings of the masking filters
type MaskConfig struct {
	//Instances a label is withheld for
	Delay int `mapstructure:"delay"`
	//Chance of masking each non class attribute
	Probability float64 `mapstructure:"probability"`
	Seed        int64   `mapstructure:"seed"`
	//Fill missing (not masked) values with means and modes
	ReplaceMissing bool `mapstructure:"replace_missing"`
}

type OutputConfig struct {
	//text, sparse or json
	Format string `mapstructure:"format"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("mask.delay", 0)
	v.SetDefault("mask.probability", 0.0)
	v.SetDefault("mask.seed", 1)
	v.SetDefault("mask.replace_missing", false)
	v.SetDefault("output.format", "text")
}

// New returns a viper instance with defaults and environment bindings
// (PROJECTMAC_MASK_DELAY and so on).
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

//Reads the optional YAML file and decodes the result
func Load(v *viper.Viper, configFile string) (Config, error) {
	var cfg Config
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return cfg, errors.Wrapf(err, "reading config file %s", configFile)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrap(err, "decoding config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Mask.Delay < 0 {
		return errors.Errorf("mask.delay must not be negative, got %d", c.Mask.Delay)
	}
	if c.Mask.Probability < 0 || c.Mask.Probability > 1 {
		return errors.Errorf("mask.probability must be in [0,1], got %v", c.Mask.Probability)
	}
	switch c.Output.Format {
	case "text", "sparse", "json":
	default:
		return errors.Errorf("unknown output.format %q", c.Output.Format)
	}
	return nil
}
