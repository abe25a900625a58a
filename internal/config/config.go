// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"

	"gopkg.in/yaml.v2"
)

const DefaultPath = "config.yaml"

type Config struct {
	API struct {
		BaseURL   string `yaml:"baseURL"`
		WOEID     string `yaml:"woeid"`
		Count     int    `yaml:"count"`
		TweetMode string `yaml:"tweetMode"`
	} `yaml:"api"`

	Query struct {
		MaxBatches int `yaml:"maxBatches"`
	} `yaml:"query"`

	RateLimit struct {
		RequestsPerSecond float64 `yaml:"requestsPerSecond"`
		Burst             int     `yaml:"burst"`
	} `yaml:"rateLimit"`

	HTTPClient struct {
		Timeout   int    `yaml:"timeout"`
		UserAgent string `yaml:"userAgent"`
	} `yaml:"httpClient"`

	Output struct {
		File      string `yaml:"file"`
		WriteFile bool   `yaml:"writeFile"`
		TopCount  int    `yaml:"topCount"`
		Format    string `yaml:"format"`
	} `yaml:"output"`

	Auth struct {
		CredentialsFile string `yaml:"credentialsFile"`
	} `yaml:"auth"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.Output.WriteFile = true
	setDefaults(cfg)
	return cfg
}

// Load reads and parses the configuration at path. A missing file leaves the defaults in place.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cfg := Default()

	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cfg, nil
	case err != nil:
		return nil, fmt.Errorf("error opening config file: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	// Set default values
	setDefaults(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "https://api.twitter.com/1.1"
	}
	if cfg.API.WOEID == "" {
		cfg.API.WOEID = "US"
	}
	if cfg.API.Count == 0 {
		cfg.API.Count = 100
	}
	if cfg.Query.MaxBatches == 0 {
		cfg.Query.MaxBatches = 5
	}
	if cfg.RateLimit.RequestsPerSecond == 0 {
		cfg.RateLimit.RequestsPerSecond = 1
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 1
	}
	if cfg.HTTPClient.Timeout == 0 {
		cfg.HTTPClient.Timeout = 30
	}
	if cfg.HTTPClient.UserAgent == "" {
		cfg.HTTPClient.UserAgent = "trendstats/1.0"
	}
	if cfg.Output.File == "" {
		cfg.Output.File = "tweets.txt"
	}
	if cfg.Output.TopCount == 0 {
		cfg.Output.TopCount = 9
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "table"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("baseURL %q is not an absolute URL", c.API.BaseURL)
	}
	if c.API.Count <= 0 || c.API.Count > 100 {
		return fmt.Errorf("count must be between 1 and 100")
	}
	if c.API.TweetMode != "" && c.API.TweetMode != "extended" && c.API.TweetMode != "compat" {
		return fmt.Errorf("tweetMode must be extended or compat")
	}
	if c.Query.MaxBatches <= 0 {
		return fmt.Errorf("maxBatches must be positive")
	}
	if c.RateLimit.RequestsPerSecond <= 0 {
		return fmt.Errorf("requestsPerSecond must be positive")
	}
	if c.Output.TopCount <= 0 {
		return fmt.Errorf("topCount must be positive")
	}
	if c.Output.Format != "table" && c.Output.Format != "json" {
		return fmt.Errorf("format must be table or json")
	}
	if c.Output.WriteFile && c.Output.File == "" {
		return fmt.Errorf("output file is required when writeFile is set")
	}
	return nil
}
