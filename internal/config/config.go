// Package config loads runtime configuration for the command-line tool.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/baditaflorin/go_text_quality/internal/core/readability"
	"github.com/baditaflorin/go_text_quality/internal/core/weasel"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. TEXTQUALITY_READABILITY_MAX_GRADE.
const EnvPrefix = "TEXTQUALITY"

// Config holds the tool configuration.
type Config struct {
	Logging     LoggingConfig     `mapstructure:"logging"`
	Readability ReadabilityConfig `mapstructure:"readability"`
	Weasel      WeaselConfig      `mapstructure:"weasel"`
	Catalog     CatalogConfig     `mapstructure:"catalog"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"` // debug | info | warn | error
	JSON  bool   `mapstructure:"json"`
	File  string `mapstructure:"file"` // empty = stderr
}

type ReadabilityConfig struct {
	Precision int     `mapstructure:"precision"`
	MaxGrade  float64 `mapstructure:"max_grade"`
}

type WeaselConfig struct {
	Vocabulary []string `mapstructure:"vocabulary"`
}

type CatalogConfig struct {
	RecordsFile string `mapstructure:"records_file"` // empty = built-in records
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	rd := readability.DefaultConfig()
	return &Config{
		Logging: LoggingConfig{Level: "warn"},
		Readability: ReadabilityConfig{
			Precision: rd.Precision,
			MaxGrade:  rd.MaxGrade,
		},
		Weasel: WeaselConfig{Vocabulary: weasel.DefaultVocabulary()},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.json", d.Logging.JSON)
	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("readability.precision", d.Readability.Precision)
	v.SetDefault("readability.max_grade", d.Readability.MaxGrade)
	v.SetDefault("weasel.vocabulary", d.Weasel.Vocabulary)
	v.SetDefault("catalog.records_file", d.Catalog.RecordsFile)
}

// Load reads configuration from the YAML file at path, applying environment
// overrides. An empty path yields defaults plus environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}

	rd := readability.DefaultConfig()
	rd.Precision = c.Readability.Precision
	rd.MaxGrade = c.Readability.MaxGrade
	if err := rd.Validate(); err != nil {
		return err
	}

	if err := (weasel.DetectorConfig{Vocabulary: c.Weasel.Vocabulary}).Validate(); err != nil {
		return err
	}

	if strings.TrimSpace(c.Catalog.RecordsFile) != c.Catalog.RecordsFile {
		return errors.New("catalog.records_file must not have surrounding whitespace")
	}
	return nil
}
