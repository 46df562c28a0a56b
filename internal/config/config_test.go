package config

import (
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid default-like config",
			config: Config{
				APIBaseURL:  "http://localhost:8000/api/v1",
				HTTPTimeout: 15 * time.Second,
				LogLevel:    "info",
				PageSize:    20,
			},
			wantErr: false,
		},
		{
			name: "invalid URL scheme",
			config: Config{
				APIBaseURL:  "ftp://example.com/api/v1",
				HTTPTimeout: 15 * time.Second,
				LogLevel:    "info",
				PageSize:    20,
			},
			wantErr:     true,
			errorString: "invalid API URL scheme",
		},
		{
			name: "missing host",
			config: Config{
				APIBaseURL:  "http://",
				HTTPTimeout: 15 * time.Second,
				LogLevel:    "info",
				PageSize:    20,
			},
			wantErr:     true,
			errorString: "missing host",
		},
		{
			name: "timeout too small",
			config: Config{
				APIBaseURL:  "http://localhost:8000/api/v1",
				HTTPTimeout: 100 * time.Millisecond,
				LogLevel:    "info",
				PageSize:    20,
			},
			wantErr:     true,
			errorString: "must be at least 1 second",
		},
		{
			name: "invalid log level",
			config: Config{
				APIBaseURL:  "http://localhost:8000/api/v1",
				HTTPTimeout: 15 * time.Second,
				LogLevel:    "verbose",
				PageSize:    20,
			},
			wantErr:     true,
			errorString: "invalid log level",
		},
		{
			name: "page size out of range",
			config: Config{
				APIBaseURL:  "http://localhost:8000/api/v1",
				HTTPTimeout: 15 * time.Second,
				LogLevel:    "info",
				PageSize:    0,
			},
			wantErr:     true,
			errorString: "invalid page size",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errorString)
				}
				if !strings.Contains(err.Error(), tt.errorString) {
					t.Fatalf("expected error containing %q, got %q", tt.errorString, err.Error())
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.APIBaseURL != "http://localhost:8000/api/v1" {
		t.Errorf("unexpected default API URL: %s", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Errorf("unexpected default timeout: %v", cfg.HTTPTimeout)
	}
	if cfg.PageSize != 20 {
		t.Errorf("unexpected default page size: %d", cfg.PageSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SPENDLY_API_URL", "https://api.example.com/api/v1")
	t.Setenv("SPENDLY_HTTP_TIMEOUT", "30s")
	t.Setenv("SPENDLY_PAGE_SIZE", "50")

	cfg := Load()
	if cfg.APIBaseURL != "https://api.example.com/api/v1" {
		t.Errorf("env API URL not picked up: %s", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("env timeout not picked up: %v", cfg.HTTPTimeout)
	}
	if cfg.PageSize != 50 {
		t.Errorf("env page size not picked up: %d", cfg.PageSize)
	}
}
