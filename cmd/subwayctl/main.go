// Package main runs the subway operator CLI.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/louisbranch/subway/internal/cmd/subwayctl"
	"github.com/louisbranch/subway/internal/platform/config"
)

func main() {
	log.SetPrefix("[SUBWAYCTL] ")
	cfg, err := subwayctl.ParseConfig()
	if err != nil {
		config.Exitf("parse config: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := subwayctl.Run(ctx, cfg, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}
