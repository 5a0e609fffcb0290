package bustracker

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config carries the constructor settings in loadable form. Zero values
// mean "use the default", except RetryURLs which distinguishes unset from
// false.
type Config struct {
	APIKey string `yaml:"api_key" validate:"required"`

	RetryURLs         *bool   `yaml:"retry_urls"`
	RetryAttempts     int     `yaml:"retry_attempts" validate:"omitempty,gte=1"`
	RetryDelaySeconds float64 `yaml:"retry_delay" validate:"omitempty,gt=0"`
	RetryBackoff      float64 `yaml:"retry_backoff" validate:"omitempty,gt=0"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return config, nil
}

func (config Config) options() []Option {
	var opts []Option

	if config.RetryURLs != nil {
		opts = append(opts, WithRetryURLs(*config.RetryURLs))
	}
	if config.RetryAttempts != 0 {
		opts = append(opts, WithRetryAttempts(config.RetryAttempts))
	}
	if config.RetryDelaySeconds != 0 {
		opts = append(opts, WithRetryDelay(time.Duration(config.RetryDelaySeconds*float64(time.Second))))
	}
	if config.RetryBackoff != 0 {
		opts = append(opts, WithRetryBackoff(config.RetryBackoff))
	}

	return opts
}

// NewFromConfig returns a Client built from a loaded Config.
func NewFromConfig(config Config) *Client {
	return New(config.APIKey, config.options()...)
}

// NewFromConfigFile returns a Client built from a YAML config file.
func NewFromConfigFile(path string) (*Client, error) {
	config, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}

	return NewFromConfig(config), nil
}

// Environment variables read by NewFromEnvironment.
const (
	EnvAPIKey        = "CTABUSTRACKER_API_KEY"
	EnvRetryURLs     = "CTABUSTRACKER_RETRY_URLS"
	EnvRetryAttempts = "CTABUSTRACKER_RETRY_ATTEMPTS"
	EnvRetryDelay    = "CTABUSTRACKER_RETRY_DELAY"
	EnvRetryBackoff  = "CTABUSTRACKER_RETRY_BACKOFF"
)

// NewFromEnvironment returns a Client configured from environment
// variables. CTABUSTRACKER_API_KEY must be set, the retry variables are
// optional and mirror the constructor options, with the delay given in
// seconds.
func NewFromEnvironment() (*Client, error) {
	apiKey := os.Getenv(EnvAPIKey)
	if apiKey == "" {
		return nil, fmt.Errorf("%s is not set", EnvAPIKey)
	}

	var opts []Option

	if raw := os.Getenv(EnvRetryURLs); raw != "" {
		retry, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q", EnvRetryURLs, raw)
		}

		opts = append(opts, WithRetryURLs(retry))
	}

	if raw := os.Getenv(EnvRetryAttempts); raw != "" {
		attempts, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q", EnvRetryAttempts, raw)
		}

		opts = append(opts, WithRetryAttempts(attempts))
	}

	if raw := os.Getenv(EnvRetryDelay); raw != "" {
		seconds, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q", EnvRetryDelay, raw)
		}

		opts = append(opts, WithRetryDelay(time.Duration(seconds*float64(time.Second))))
	}

	if raw := os.Getenv(EnvRetryBackoff); raw != "" {
		backoff, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s value %q", EnvRetryBackoff, raw)
		}

		opts = append(opts, WithRetryBackoff(backoff))
	}

	return New(apiKey, opts...), nil
}
