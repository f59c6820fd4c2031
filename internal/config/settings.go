package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. SAFEHARBOR_LOGGING_LEVEL.
const EnvPrefix = "SAFEHARBOR"

// Settings holds application configuration (not calculation inputs)
type Settings struct {
	TaxYear       int           `mapstructure:"tax_year"`
	ConstantsFile string        `mapstructure:"constants_file"`
	Logging       LoggingConfig `mapstructure:"logging"`
	Output        OutputConfig  `mapstructure:"output"`
	Store         StoreConfig   `mapstructure:"store"`
	Server        ServerConfig  `mapstructure:"server"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputFile string `mapstructure:"output_file"` // optional file output
}

// OutputConfig holds report output options
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// StoreConfig locates the saved-inputs file
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// ServerConfig holds HTTP listener options
type ServerConfig struct {
	Addr            string `mapstructure:"addr"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout_seconds"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tax_year", 2025)
	v.SetDefault("constants_file", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_file", "")
	v.SetDefault("output.format", "console")
	v.SetDefault("store.path", ".safeharbor-inputs.yaml")
	v.SetDefault("server.addr", "127.0.0.1:8080")
	v.SetDefault("server.shutdown_timeout_seconds", 10)
}

// LoadSettings reads settings from an optional file, then .env, then the
// environment. An empty path searches ./safeharbor.yaml; a missing file there
// is not an error.
func LoadSettings(path string) (*Settings, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %w", err)
		}
	} else {
		v.SetConfigName("safeharbor")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file, %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &s, nil
}
