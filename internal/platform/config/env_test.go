package config

import (
	"strings"
	"testing"
)

type portConfig struct {
	Port   int    `env:"SUBWAY_TEST_PORT" envDefault:"8095"`
	DBPath string `env:"SUBWAY_TEST_DB_PATH" envDefault:"data/subway.db"`
}

type otelConfig struct {
	Enabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`
	Endpoint string `env:"OTEL_ENDPOINT"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg portConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 8095 {
		t.Fatalf("port = %d, want 8095", cfg.Port)
	}
	if cfg.DBPath != "data/subway.db" {
		t.Fatalf("db path = %q, want data/subway.db", cfg.DBPath)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("SUBWAY_TEST_PORT", "9100")

	var cfg portConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 9100 {
		t.Fatalf("port = %d, want 9100", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("SUBWAY_TEST_PORT", "not-an-int")

	var cfg portConfig
	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvWithPrefix(t *testing.T) {
	t.Setenv("SUBWAY_TEST_OTEL_ENDPOINT", "http://collector:4318")
	t.Setenv("SUBWAY_TEST_OTEL_ENABLED", "false")

	var cfg otelConfig
	if err := ParseEnvWithPrefix(&cfg, "SUBWAY_TEST_"); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Endpoint != "http://collector:4318" {
		t.Fatalf("endpoint = %q", cfg.Endpoint)
	}
	if cfg.Enabled {
		t.Fatal("enabled = true, want false")
	}
}

func TestParseEnvWithBlankPrefix(t *testing.T) {
	t.Setenv("OTEL_ENDPOINT", "http://plain:4318")

	var cfg otelConfig
	if err := ParseEnvWithPrefix(&cfg, " "); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Endpoint != "http://plain:4318" {
		t.Fatalf("endpoint = %q", cfg.Endpoint)
	}
}
