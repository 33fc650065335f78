package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the settings shared by the provider and the CLI.
type Config struct {
	Region  string `mapstructure:"region" validate:"required"`
	Profile string `mapstructure:"profile"`

	// ParamValidation runs Validate on every request before it is sent.
	ParamValidation bool `mapstructure:"paramValidation"`

	Logging Logging `mapstructure:"logging"`
}

// Logging configures the zerolog output.
type Logging struct {
	Enabled bool   `mapstructure:"enabled"`
	Level   string `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	Format  string `mapstructure:"format" validate:"omitempty,oneof=json console"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	return &Config{
		Region:          "us-east-1",
		ParamValidation: true,
		Logging: Logging{
			Enabled: true,
			Level:   "info",
			Format:  "console",
		},
	}
}

// NewViper returns a viper instance with defaults and environment bindings.
// APIGW_REGION, APIGW_LOGGING_LEVEL, ... override file values; AWS_REGION and
// AWS_PROFILE are honoured as fallbacks.
func NewViper() *viper.Viper {
	v := viper.New()
	d := Default()

	v.SetDefault("region", d.Region)
	v.SetDefault("profile", d.Profile)
	v.SetDefault("paramValidation", d.ParamValidation)
	v.SetDefault("logging.enabled", d.Logging.Enabled)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetEnvPrefix("APIGW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("region", "APIGW_REGION", "AWS_REGION")
	_ = v.BindEnv("profile", "APIGW_PROFILE", "AWS_PROFILE")
	return v
}

// Load reads the optional config file (an explicit path, or apigwctl.yaml in
// the working directory or $HOME/.apigwctl) into a validated Config.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("apigwctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.apigwctl")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks the struct tags of the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, e := range verrs {
				msgs = append(msgs, fmt.Sprintf("field '%s' failed on rule '%s'", e.Namespace(), e.Tag()))
			}
			return fmt.Errorf("invalid configuration:\n- %s", strings.Join(msgs, "\n- "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
