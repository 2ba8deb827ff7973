package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"presetctl/src/preset"
)

const (
	configDir  = ".presetctl"
	configName = "config"
	envPrefix  = "PRESETCTL"
)

type Config struct {
	PresetsFile   string          `mapstructure:"presets_file"`
	DefaultPreset string          `mapstructure:"default_preset"`
	Providers     ProvidersConfig `mapstructure:"providers"`
}

type ProvidersConfig struct {
	AllowUnknown bool     `mapstructure:"allow_unknown"`
	Extra        []string `mapstructure:"extra"`
}

// Keys that can be changed with `presetctl set`.
var ConfigurableKeys = []string{
	"presets_file",
	"default_preset",
	"providers.allow_unknown",
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault("presets_file", "")
	v.SetDefault("default_preset", "")
	v.SetDefault("providers.allow_unknown", false)
	v.SetDefault("providers.extra", []string{})
}

// Init points v at ~/.presetctl/config.yaml and reads it if present. A
// missing config file is not an error.
func Init(v *viper.Viper) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	SetDefaults(v)
	v.AddConfigPath(filepath.Join(home, configDir))
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// Path returns the config file in use, or where one would be written.
func Path(v *viper.Viper) (string, error) {
	if used := v.ConfigFileUsed(); used != "" {
		return used, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDir, configName+".yaml"), nil
}

func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// SaveKey stores key in the config file behind v, creating ~/.presetctl when
// needed. Only what the file already holds plus key is written, so flag and
// environment overrides active in v never end up on disk.
func SaveKey(v *viper.Viper, key string, value interface{}) error {
	path, err := Path(v)
	if err != nil {
		return err
	}

	onDisk := viper.New()
	onDisk.SetConfigFile(path)
	if _, err := os.Stat(path); err == nil {
		if err := onDisk.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	onDisk.Set(key, value)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return onDisk.WriteConfigAs(path)
}

func (c *Config) LoadOptions() []preset.Option {
	opts := []preset.Option{preset.WithUnknownProviders(c.Providers.AllowUnknown)}
	if len(c.Providers.Extra) > 0 {
		opts = append(opts, preset.WithProviders(c.Providers.Extra...))
	}
	return opts
}

// LoadRegistry loads the configured preset file, or the built-in presets
// when no file is configured.
func (c *Config) LoadRegistry() (*preset.Registry, error) {
	if c.PresetsFile == "" {
		return preset.LoadBuiltin(c.LoadOptions()...)
	}
	return preset.LoadFile(c.PresetsFile, c.LoadOptions()...)
}

// Resolve looks up name, falling back to the configured default preset and
// then to the first preset when name is empty.
func (c *Config) Resolve(reg *preset.Registry, name string) (preset.Record, error) {
	if name == "" {
		name = c.DefaultPreset
	}
	if name == "" {
		return reg.Default()
	}
	return reg.Get(name)
}
