package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	APIKey   string `mapstructure:"api_key" validate:"required"`
	BaseURL  string `mapstructure:"base_url" validate:"required,url"`
	Referral string `mapstructure:"referral"`

	// Payment flow timing
	DebounceInterval time.Duration `mapstructure:"debounce_interval" validate:"gt=0"`
	PollInterval     time.Duration `mapstructure:"poll_interval" validate:"gt=0"`

	// Quote defaults
	DefaultSlippageBps int           `mapstructure:"default_slippage_bps" validate:"gte=0,lte=10000"`
	DeadlineHorizon    time.Duration `mapstructure:"deadline_horizon" validate:"gt=0"`

	// Standalone status watcher
	WatchTimeout  time.Duration `mapstructure:"watch_timeout" validate:"gt=0"`
	WatchInterval time.Duration `mapstructure:"watch_interval" validate:"gt=0"`

	LogLevel     string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	ReceiptsPath string `mapstructure:"receipts_path"`
}

const (
	DefaultBaseURL          = "https://1click.chaindefuser.com"
	DefaultReferral         = "near-pay"
	DefaultDebounceInterval = 3 * time.Second
	DefaultPollInterval     = 3 * time.Second
	DefaultSlippageBps      = 100
	DefaultDeadlineHorizon  = time.Hour
	DefaultWatchTimeout     = 600 * time.Second
	DefaultWatchInterval    = 5 * time.Second
	DefaultLogLevel         = "info"
	configFileName          = ".near-pay"
	envPrefix               = "NEAR_PAY"
)

var validate = validator.New()

// Load reads configuration from environment variables and config file
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME")
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api_key", "")
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("referral", DefaultReferral)
	v.SetDefault("debounce_interval", DefaultDebounceInterval)
	v.SetDefault("poll_interval", DefaultPollInterval)
	v.SetDefault("default_slippage_bps", DefaultSlippageBps)
	v.SetDefault("deadline_horizon", DefaultDeadlineHorizon)
	v.SetDefault("watch_timeout", DefaultWatchTimeout)
	v.SetDefault("watch_interval", DefaultWatchInterval)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("receipts_path", "")
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key not found. Please set %s_API_KEY environment variable or create a %s.yaml config file", envPrefix, configFileName)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Default returns a configuration populated with default values and the given API key
func Default(apiKey string) *Config {
	return &Config{
		APIKey:             apiKey,
		BaseURL:            DefaultBaseURL,
		Referral:           DefaultReferral,
		DebounceInterval:   DefaultDebounceInterval,
		PollInterval:       DefaultPollInterval,
		DefaultSlippageBps: DefaultSlippageBps,
		DeadlineHorizon:    DefaultDeadlineHorizon,
		WatchTimeout:       DefaultWatchTimeout,
		WatchInterval:      DefaultWatchInterval,
		LogLevel:           DefaultLogLevel,
	}
}
