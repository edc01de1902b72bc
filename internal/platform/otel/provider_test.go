package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/subway/internal/platform/otel"
)

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("SUBWAY_OTEL_ENDPOINT", "")

	shutdown, err := otel.Setup(context.Background(), "subway-test")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestSetupNoopWhenDisabled(t *testing.T) {
	t.Setenv("SUBWAY_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("SUBWAY_OTEL_ENABLED", "false")

	cfg, err := otel.LoadConfig()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Enabled {
		t.Fatal("enabled = true, want false")
	}
	shutdown, err := otel.Setup(context.Background(), "subway-test")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestSetupRejectsInvalidEnabledFlag(t *testing.T) {
	t.Setenv("SUBWAY_OTEL_ENABLED", "sometimes")

	if _, err := otel.Setup(context.Background(), "subway-test"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestSetupWithConfigCreatesProvider(t *testing.T) {
	// Non-routable address so nothing is exported.
	shutdown, err := otel.SetupWithConfig(context.Background(), "subway-test", otel.Config{
		Enabled:  true,
		Endpoint: "http://192.0.2.1:4318",
	})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if otel.Tracer("subway-test") == nil {
		t.Fatal("expected tracer")
	}
}

func TestNoopShutdownIgnoresCancelledContext(t *testing.T) {
	shutdown, err := otel.SetupWithConfig(context.Background(), "subway-test", otel.Config{})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown: %v", err)
	}
}
