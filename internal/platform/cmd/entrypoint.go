// Package cmd holds startup helpers shared by subway commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/louisbranch/subway/internal/platform/config"
	"github.com/louisbranch/subway/internal/platform/otel"
	"github.com/louisbranch/subway/internal/platform/timeouts"
)

// Service names reported to telemetry.
const (
	ServiceSubway    = "subway"
	ServiceSubwayCtl = "subwayctl"
)

// ParseConfig loads environment values into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseFlags loads cfg from the environment, lets bind register flags that
// default to those values, and parses args. Flags win over the environment.
func ParseFlags[T any](cfg *T, fs *flag.FlagSet, args []string, bind func(*flag.FlagSet, *T)) error {
	if fs == nil {
		return errors.New("flag set is required")
	}
	if err := ParseConfig(cfg); err != nil {
		return err
	}
	if bind != nil {
		bind(fs, cfg)
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// RunWithTelemetry runs fn with tracing configured for service and flushes
// spans once fn returns.
func RunWithTelemetry(ctx context.Context, service string, fn func(context.Context) error) error {
	service = strings.TrimSpace(service)
	switch {
	case service == "":
		return errors.New("service name is required")
	case fn == nil:
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return fmt.Errorf("set up %s telemetry: %w", service, err)
	}
	defer flushTelemetry(service, shutdown)
	return fn(ctx)
}

func flushTelemetry(service string, shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Printf("%s telemetry flush: %v", service, err)
	}
}
