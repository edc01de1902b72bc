package subway

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(flag.NewFlagSet("subway", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 8095 || cfg.HTTPPort != 8096 {
		t.Fatalf("config = %+v, want ports 8095/8096", cfg)
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("SUBWAY_PORT", "9000")
	t.Setenv("SUBWAY_HTTP_PORT", "9001")

	cfg, err := ParseConfig(flag.NewFlagSet("subway", flag.ContinueOnError), []string{"-http-port", "9100"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 9000 {
		t.Fatalf("port = %d, want 9000", cfg.Port)
	}
	if cfg.HTTPPort != 9100 {
		t.Fatalf("http port = %d, want 9100", cfg.HTTPPort)
	}
}

func TestParseConfigRejectsBadPort(t *testing.T) {
	t.Setenv("SUBWAY_PORT", "not-a-port")

	if _, err := ParseConfig(flag.NewFlagSet("subway", flag.ContinueOnError), nil); err == nil {
		t.Fatal("expected error for invalid port")
	}
}
