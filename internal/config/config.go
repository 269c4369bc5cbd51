package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/logdata/internal/domain"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/logdata"
	envPrefix  = "LOGDATA"

	KeyLogFile       = "log.file"
	KeyLogByteOrder  = "log.byte_order"
	KeyOutputFormat  = "output.format"
	KeyOutputAsOf    = "output.show_as_of"
	KeyProgress      = "output.progress"
	KeyLoggingLevel  = "logging.level"
	KeyLoggingFormat = "logging.format"
)

var ErrEmptyLogFile = errors.New("session log path is empty")

type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
	OutputTOML OutputFormat = "toml"
)

// Config holds the settings of one run.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// LogConfig locates and describes the session log.
type LogConfig struct {
	File      string `mapstructure:"file"`
	ByteOrder string `mapstructure:"byte_order"`
}

// OutputConfig controls the report written to stdout.
type OutputConfig struct {
	Format   OutputFormat `mapstructure:"format"`
	ShowAsOf bool         `mapstructure:"show_as_of"`
	Progress bool         `mapstructure:"progress"`
}

// LoggingConfig controls diagnostics written to stderr.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogFile, "/var/log/wtmp")
	v.SetDefault(KeyLogByteOrder, "little")
	v.SetDefault(KeyOutputFormat, string(OutputText))
	v.SetDefault(KeyOutputAsOf, false)
	v.SetDefault(KeyProgress, true)
	v.SetDefault(KeyLoggingLevel, "warn")
	v.SetDefault(KeyLoggingFormat, "text")
}

// Load reads $HOME/.config/logdata/config.toml (or path, when set) and
// LOGDATA_* environment variables on top of the defaults. A missing default
// config file is not an error.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, configDir))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if strings.TrimSpace(cfg.Log.File) == "" {
		return Config{}, ErrEmptyLogFile
	}

	format, err := ParseOutputFormat(string(cfg.Output.Format))
	if err != nil {
		return Config{}, err
	}
	cfg.Output.Format = format

	return cfg, nil
}

func ParseOutputFormat(raw string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(raw)))
	switch format {
	case OutputText, OutputJSON, OutputTOML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedOutput, raw)
	}
}
