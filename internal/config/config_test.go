package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	content := `api:
  baseURL: "https://api.example.com/1.1"
  woeid: "WORLD"
  count: 50
  tweetMode: "extended"
query:
  maxBatches: 3
rateLimit:
  requestsPerSecond: 0.5
  burst: 2
httpClient:
  timeout: 10
  userAgent: "TrendStats-Test/1.0"
output:
  file: "out.json"
  writeFile: false
  topCount: 5
  format: "json"
auth:
  credentialsFile: "/tmp/creds.txt"
log:
  level: "debug"`

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.BaseURL != "https://api.example.com/1.1" {
		t.Errorf("Expected BaseURL = https://api.example.com/1.1, got %s", cfg.API.BaseURL)
	}
	if cfg.API.WOEID != "WORLD" {
		t.Errorf("Expected WOEID = WORLD, got %s", cfg.API.WOEID)
	}
	if cfg.API.Count != 50 {
		t.Errorf("Expected Count = 50, got %d", cfg.API.Count)
	}
	if cfg.Query.MaxBatches != 3 {
		t.Errorf("Expected MaxBatches = 3, got %d", cfg.Query.MaxBatches)
	}
	if cfg.RateLimit.RequestsPerSecond != 0.5 {
		t.Errorf("Expected RequestsPerSecond = 0.5, got %v", cfg.RateLimit.RequestsPerSecond)
	}
	if cfg.Output.WriteFile {
		t.Error("Expected WriteFile = false")
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Expected Format = json, got %s", cfg.Output.Format)
	}
	if cfg.Auth.CredentialsFile != "/tmp/creds.txt" {
		t.Errorf("Expected CredentialsFile = /tmp/creds.txt, got %s", cfg.Auth.CredentialsFile)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected Level = debug, got %s", cfg.Log.Level)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("query:\n  maxBatches: 2\n"), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Query.MaxBatches != 2 {
		t.Errorf("Expected MaxBatches = 2, got %d", cfg.Query.MaxBatches)
	}
	if !cfg.Output.WriteFile {
		t.Error("Expected WriteFile default to stay true")
	}
	if cfg.Output.File != "tweets.txt" {
		t.Errorf("Expected File = tweets.txt, got %s", cfg.Output.File)
	}
	if cfg.API.Count != 100 {
		t.Errorf("Expected Count = 100, got %d", cfg.API.Count)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Query.MaxBatches != 5 {
		t.Errorf("Expected default MaxBatches = 5, got %d", cfg.Query.MaxBatches)
	}
	if cfg.Output.TopCount != 9 {
		t.Errorf("Expected default TopCount = 9, got %d", cfg.Output.TopCount)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api:\n  count: 500\n"), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for count above 100")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "relative base URL",
			mutate:  func(c *Config) { c.API.BaseURL = "api/1.1" },
			wantErr: true,
		},
		{
			name:    "zero batches",
			mutate:  func(c *Config) { c.Query.MaxBatches = 0 },
			wantErr: true,
		},
		{
			name:    "invalid rate limit",
			mutate:  func(c *Config) { c.RateLimit.RequestsPerSecond = 0 },
			wantErr: true,
		},
		{
			name:    "unknown tweet mode",
			mutate:  func(c *Config) { c.API.TweetMode = "long" },
			wantErr: true,
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Output.Format = "csv" },
			wantErr: true,
		},
		{
			name: "write file without path",
			mutate: func(c *Config) {
				c.Output.WriteFile = true
				c.Output.File = ""
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
