package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// envBindings maps setting keys to the environment variables that override them.
var envBindings = map[string]string{
	KeyServerURL:            EnvPrefix + "_SERVER_URL",
	KeyModel:                EnvPrefix + "_MODEL",
	KeyDebugLogs:            EnvPrefix + "_DEBUG_LOGS",
	KeyBackgroundColor:      EnvPrefix + "_BACKGROUND_COLOR",
	KeyUseFilledDarkIcon:    EnvPrefix + "_USE_FILLED_DARK_ICON",
	KeyUseFilledLightIcon:   EnvPrefix + "_USE_FILLED_LIGHT_ICON",
	KeyUseOutlinedDarkIcon:  EnvPrefix + "_USE_OUTLINED_DARK_ICON",
	KeyUseOutlinedLightIcon: EnvPrefix + "_USE_OUTLINED_LIGHT_ICON",
	KeyUseOutlinedIcon:      EnvPrefix + "_USE_OUTLINED_ICON",
}

// NewViper prepares a viper instance with defaults, environment bindings and,
// when found, the configuration file. An explicit configFile must exist; the
// search in $HOME/.kollama and the working directory tolerates a missing file.
func NewViper(configFile string) (*viper.Viper, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault(KeyServerURL, defaults.ServerURL)
	v.SetDefault(KeyModel, defaults.Model)
	v.SetDefault(KeyDebugLogs, defaults.DebugLogs)
	v.SetDefault(KeyBackgroundColor, defaults.BackgroundColor)
	v.SetDefault(KeyUseFilledDarkIcon, false)
	v.SetDefault(KeyUseFilledLightIcon, false)
	v.SetDefault(KeyUseOutlinedDarkIcon, false)
	v.SetDefault(KeyUseOutlinedLightIcon, false)
	v.SetDefault(KeyUseOutlinedIcon, false)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
		return v, nil
	}

	v.SetConfigName("kollama")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.kollama")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}
	return v, nil
}

// Load decodes and validates the settings held by v.
func Load(v *viper.Viper) (Configuration, error) {
	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return Configuration{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

// LoadFile is NewViper followed by Load.
func LoadFile(configFile string) (Configuration, error) {
	v, err := NewViper(configFile)
	if err != nil {
		return Configuration{}, err
	}
	return Load(v)
}
