// Package subway parses subway server flags and launches the service.
package subway

import (
	"context"
	"flag"

	entrypoint "github.com/louisbranch/subway/internal/platform/cmd"
	server "github.com/louisbranch/subway/internal/services/subway/app"
)

// Config holds subway command configuration.
type Config struct {
	Port     int `env:"SUBWAY_PORT" envDefault:"8095"`
	HTTPPort int `env:"SUBWAY_HTTP_PORT" envDefault:"8096"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseFlags(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The subway gRPC server port")
	fs.IntVar(&cfg.HTTPPort, "http-port", cfg.HTTPPort, "The subway REST server port")
}

// Run starts the subway gRPC and REST APIs.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSubway, func(ctx context.Context) error {
		return server.Run(ctx, cfg.Port, cfg.HTTPPort)
	})
}
